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

	"go.chromium.org/assertor/internal/paniccatcher"
	"go.chromium.org/assertor/truth/comparison"
	"go.chromium.org/assertor/truth/failure"
)

// Panic checks whether a function panics.
func Panic(fn func()) *failure.Summary {
	if paniccatcher.PCall(fn) == nil {
		return comparison.NewSummaryBuilder("should.Panic").
			Because("function did not panic").
			Summary
	}
	return nil
}

// NotPanic checks that a function does not panic.
func NotPanic(fn func()) *failure.Summary {
	caught := paniccatcher.PCall(fn)
	if caught == nil {
		return nil
	}
	return comparison.NewSummaryBuilder("should.NotPanic").
		AddFindingf("Panic", "%v", caught.Reason).
		AddFindingf("Stack", "%s", strings.TrimSpace(caught.Stack)).
		WarnIfLong().
		Summary
}

// PanicLikeString checks if something panics with a string or error whose
// message contains `substring`.
//
// It fails when the panic value is neither a string nor an error.
func PanicLikeString(substring string) comparison.Func[func()] {
	const cmpName = "should.PanicLikeString"

	return func(fn func()) *failure.Summary {
		caught := paniccatcher.PCall(fn)
		if caught == nil {
			return comparison.NewSummaryBuilder(cmpName).
				Because("function did not panic").
				Summary
		}

		var str string
		switch v := caught.Reason.(type) {
		case string:
			str = v
		case error:
			str = v.Error()
		default:
			return comparison.NewSummaryBuilder(cmpName).
				Because("panic reason is neither error nor string").
				AddFindingf("Panic", "%#v", caught.Reason).
				AddFindingf("Substring", "%q", substring).
				Summary
		}
		if strings.Contains(str, substring) {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName).
			Because("Panic is missing substring.").
			Actual(str).WarnIfLong().
			AddFindingf("Substring", "%q", substring).
			Summary
	}
}

// PanicLikeError checks if something panics with an error which matches
// `target` with errors.Is.
func PanicLikeError(target error) comparison.Func[func()] {
	const cmpName = "should.PanicLikeError"

	if target == nil {
		return misuse[func()](cmpName, "nil as expected panic is not allowed; use runtime.PanicNilError instead")
	}

	return func(fn func()) *failure.Summary {
		caught := paniccatcher.PCall(fn)
		if caught == nil {
			return comparison.NewSummaryBuilder(cmpName).
				Because("function did not panic").
				Summary
		}
		e, ok := caught.Reason.(error)
		if !ok {
			return comparison.NewSummaryBuilder(cmpName).
				Because("caught panic is not an error").
				AddFindingf("Panic", "%#v", caught.Reason).
				Expected(target).
				AddFindingf("Stack", "%s", strings.TrimSpace(caught.Stack)).
				WarnIfLong().
				Summary
		}
		if !errors.Is(e, target) {
			return comparison.NewSummaryBuilder(cmpName).
				Because("error does not match target").
				Actual(e).
				Expected(target).
				Summary
		}
		return nil
	}
}

// PanicLike checks whether a function panics like a string or an error.
//
// Prefer PanicLikeString or PanicLikeError, which are type checked. Panics if
// `target` is neither a string nor an error.
func PanicLike(target any) comparison.Func[func()] {
	switch v := target.(type) {
	case string:
		return PanicLikeString(v)
	case error:
		return PanicLikeError(v)
	default:
		panic(fmt.Errorf("should.PanicLike: expects a string or an error, got %T", target))
	}
}
