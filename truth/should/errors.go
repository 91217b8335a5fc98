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
	"errors"
	"fmt"
	"strings"

	"go.chromium.org/assertor/truth/comparison"
	"go.chromium.org/assertor/truth/failure"
)

// ErrLike returns a comparison.Func which checks an error against `target`:
//
//   - nil: the error must be nil.
//   - string: the error must be non-nil and its message must contain the
//     string.
//   - error: see ErrLikeError.
//
// Any other `target` type panics.
func ErrLike(target any) comparison.Func[error] {
	switch x := target.(type) {
	case nil:
		return errLikeNil("should.ErrLike")
	case string:
		return ErrLikeString(x)
	case error:
		return ErrLikeError(x)
	}
	panic(fmt.Errorf("should.ErrLike: expected target to be nil, string or error, got %T", target))
}

func errLikeNil(cmpName string) comparison.Func[error] {
	return func(actual error) *failure.Summary {
		if actual == nil {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName).
			Because("Expected nil error.").
			Actual(actual).
			AddFindingf("Actual (type)", "%T", actual).
			Summary
	}
}

// ErrLikeString returns a comparison.Func which checks that an error is
// non-nil and that its message contains `substring`.
func ErrLikeString(substring string) comparison.Func[error] {
	const cmpName = "should.ErrLikeString"

	return func(actual error) *failure.Summary {
		if actual == nil {
			return comparison.NewSummaryBuilder(cmpName).
				Because("Expected a non-nil error.").
				AddFindingf("Substring", "%q", substring).
				Summary
		}
		if strings.Contains(actual.Error(), substring) {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName).
			Because("Error message is missing substring.").
			Actual(actual).WarnIfLong().
			AddFindingf("Substring", "%q", substring).
			Summary
	}
}

// ErrLikeError returns a comparison.Func which checks that an error is like
// `target`.
//
// A nil `target` requires a nil error. Otherwise the error must match
// `target` with errors.Is, or its message must contain `target.Error()`.
func ErrLikeError(target error) comparison.Func[error] {
	const cmpName = "should.ErrLikeError"

	if target == nil {
		return errLikeNil(cmpName)
	}

	return func(actual error) *failure.Summary {
		if actual != nil && (errors.Is(actual, target) || strings.Contains(actual.Error(), target.Error())) {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName).
			Because("Error is not like target.").
			Actual(actual).
			Expected(target).
			Summary
	}
}
