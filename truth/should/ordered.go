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
	"golang.org/x/exp/constraints"

	"go.chromium.org/assertor/truth/comparison"
	"go.chromium.org/assertor/truth/failure"
)

func orderedCheck[T constraints.Ordered](cmpName, relation string, bound T, ok func(actual T) bool) comparison.Func[T] {
	return func(actual T) *failure.Summary {
		if ok(actual) {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName, bound).
			Actual(actual).
			AddFindingf("Expected", "%s %#v", relation, bound).
			Summary
	}
}

// BeGreaterThan checks that the actual value is strictly greater than `lower`.
func BeGreaterThan[T constraints.Ordered](lower T) comparison.Func[T] {
	return orderedCheck("should.BeGreaterThan", ">", lower, func(actual T) bool {
		return actual > lower
	})
}

// BeGreaterThanOrEqual checks that the actual value is at least `lower`.
func BeGreaterThanOrEqual[T constraints.Ordered](lower T) comparison.Func[T] {
	return orderedCheck("should.BeGreaterThanOrEqual", ">=", lower, func(actual T) bool {
		return actual >= lower
	})
}

// BeLessThan checks that the actual value is strictly less than `upper`.
func BeLessThan[T constraints.Ordered](upper T) comparison.Func[T] {
	return orderedCheck("should.BeLessThan", "<", upper, func(actual T) bool {
		return actual < upper
	})
}

// BeLessThanOrEqual checks that the actual value is at most `upper`.
func BeLessThanOrEqual[T constraints.Ordered](upper T) comparison.Func[T] {
	return orderedCheck("should.BeLessThanOrEqual", "<=", upper, func(actual T) bool {
		return actual <= upper
	})
}

// BeBetween checks that `lower <= actual <= upper`.
func BeBetween[T constraints.Ordered](lower, upper T) comparison.Func[T] {
	const cmpName = "should.BeBetween"

	if lower > upper {
		return misuse[T](cmpName, "%s: lower bound %#v is greater than upper bound %#v", cmpName, lower, upper)
	}

	return func(actual T) *failure.Summary {
		if lower <= actual && actual <= upper {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName, lower).
			Actual(actual).
			AddFindingf("Expected", "in [%#v, %#v]", lower, upper).
			Summary
	}
}
