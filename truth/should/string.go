// Copyright 2024 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package should

import (
	"strings"

	"go.chromium.org/assertor/truth/comparison"
	"go.chromium.org/assertor/truth/failure"
)

func stringCheck(cmpName, findingName, needle string, ok func(actual string) bool) comparison.Func[string] {
	return func(actual string) *failure.Summary {
		if ok(actual) {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName).
			Actual(actual).WarnIfLong().
			AddFinding(findingName, needle).
			Summary
	}
}

// ContainSubstring returns a comparison.Func which checks to see if a string
// contains `substr`.
func ContainSubstring(substr string) comparison.Func[string] {
	return stringCheck("should.ContainSubstring", "Substring", substr, func(actual string) bool {
		return strings.Contains(actual, substr)
	})
}

// NotContainSubstring returns a comparison.Func which checks to see if a
// string does not contain `substr`.
func NotContainSubstring(substr string) comparison.Func[string] {
	return stringCheck("should.NotContainSubstring", "Substring", substr, func(actual string) bool {
		return !strings.Contains(actual, substr)
	})
}

// HavePrefix returns a comparison.Func which checks to see if a string starts
// with `prefix`.
func HavePrefix(prefix string) comparison.Func[string] {
	return stringCheck("should.HavePrefix", "Prefix", prefix, func(actual string) bool {
		return strings.HasPrefix(actual, prefix)
	})
}

// NotHavePrefix returns a comparison.Func which checks to see if a string does
// not start with `prefix`.
func NotHavePrefix(prefix string) comparison.Func[string] {
	return stringCheck("should.NotHavePrefix", "Prefix", prefix, func(actual string) bool {
		return !strings.HasPrefix(actual, prefix)
	})
}

// HaveSuffix returns a comparison.Func which checks to see if a string ends
// with `suffix`.
func HaveSuffix(suffix string) comparison.Func[string] {
	return stringCheck("should.HaveSuffix", "Suffix", suffix, func(actual string) bool {
		return strings.HasSuffix(actual, suffix)
	})
}

// NotHaveSuffix returns a comparison.Func which checks to see if a string does
// not end with `suffix`.
func NotHaveSuffix(suffix string) comparison.Func[string] {
	return stringCheck("should.NotHaveSuffix", "Suffix", suffix, func(actual string) bool {
		return !strings.HasSuffix(actual, suffix)
	})
}

// BeBlank implements comparison.Func[string] and asserts that `actual` is
// empty or contains only whitespace.
func BeBlank(actual string) *failure.Summary {
	if strings.TrimSpace(actual) == "" {
		return nil
	}
	return comparison.NewSummaryBuilder("should.BeBlank").
		Actual(actual).WarnIfLong().
		Summary
}

// NotBeBlank implements comparison.Func[string] and asserts that `actual`
// contains something other than whitespace.
func NotBeBlank(actual string) *failure.Summary {
	if strings.TrimSpace(actual) != "" {
		return nil
	}
	return comparison.NewSummaryBuilder("should.NotBeBlank").
		Actual(actual).
		Summary
}
