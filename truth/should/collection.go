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
	"fmt"
	"reflect"
	"slices"

	"go.chromium.org/assertor/diff"
	"go.chromium.org/assertor/truth/comparison"
	"go.chromium.org/assertor/truth/failure"
)

// addItemDiff adds the "Missing (n)" and "Unexpected (n)" findings for a
// failed sequence comparison. Empty groups are skipped.
func addItemDiff[T any](sb *comparison.SummaryBuilder, res *diff.SequenceComparison[T]) *comparison.SummaryBuilder {
	if len(res.Missing) > 0 {
		sb.AddValuesFinding(fmt.Sprintf("Missing (%d)", len(res.Missing)), comparison.Values(res.Missing)...)
	}
	if len(res.Extra) > 0 {
		sb.AddValuesFinding(fmt.Sprintf("Unexpected (%d)", len(res.Extra)), comparison.Values(res.Extra)...)
	}
	return sb
}

// Contain returns a comparison.Func which checks that a slice contains
// `element`.
func Contain[T comparable](element T) comparison.Func[[]T] {
	const cmpName = "should.Contain"

	return func(actual []T) *failure.Summary {
		if slices.Contains(actual, element) {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName, element).
			AddFinding("Expected to contain", element).
			Because("but did not").
			AddValuesFinding("Though it did contain", comparison.Values(actual)...).
			Summary
	}
}

// NotContain returns a comparison.Func which checks that a slice does not
// contain `element`.
func NotContain[T comparable](element T) comparison.Func[[]T] {
	const cmpName = "should.NotContain"

	return func(actual []T) *failure.Summary {
		idx := slices.Index(actual, element)
		if idx < 0 {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName, element).
			AddFinding("Expected not to contain", element).
			AddFindingf("But found it at index", "%d", idx).
			AddValuesFinding("Actual", comparison.Values(actual)...).
			Summary
	}
}

// NotContainAny returns a comparison.Func which checks that a slice contains
// none of `unexpected`.
func NotContainAny[T comparable](unexpected ...T) comparison.Func[[]T] {
	const cmpName = "should.NotContainAny"

	return func(actual []T) *failure.Summary {
		var found []T
		for _, u := range unexpected {
			if slices.Contains(actual, u) && !slices.Contains(found, u) {
				found = append(found, u)
			}
		}
		if len(found) == 0 {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName, unexpected).
			AddValuesFinding(fmt.Sprintf("Found (%d)", len(found)), comparison.Values(found)...).
			AddValuesFinding("Expected to contain none of", comparison.Values(unexpected)...).
			AddValuesFinding("Actual", comparison.Values(actual)...).
			Summary
	}
}

// ContainExactly returns a comparison.Func which checks that a slice holds
// exactly the elements of `expected`, with the same multiplicity, in any
// order.
func ContainExactly[T comparable](expected ...T) comparison.Func[[]T] {
	return containExactly("should.ContainExactly", expected, false, func(a, b T) bool { return a == b })
}

// ContainExactlyInOrder returns a comparison.Func which checks that a slice
// holds exactly the elements of `expected`, in the same order.
//
// Unlike Match, the failure lists the missing and unexpected elements, or
// says that only the order differs.
func ContainExactlyInOrder[T comparable](expected ...T) comparison.Func[[]T] {
	return containExactly("should.ContainExactlyInOrder", expected, true, func(a, b T) bool { return a == b })
}

// ContainExactlyFunc is like ContainExactly, but elements are compared with
// `eq`, which must be symmetric.
func ContainExactlyFunc[T any](eq func(a, b T) bool, expected ...T) comparison.Func[[]T] {
	return containExactly("should.ContainExactlyFunc", expected, false, eq)
}

func containExactly[T any](cmpName string, expected []T, inOrder bool, eq func(a, b T) bool) comparison.Func[[]T] {
	return func(actual []T) *failure.Summary {
		res := diff.CompareSequencesFunc(actual, expected, diff.Strict, eq)
		if res.ContainsExactly() && (!inOrder || res.OrderPreserved) {
			return nil
		}

		sb := comparison.NewSummaryBuilder(cmpName, expected)
		if res.ContainsExactly() {
			sb.Because("contents match, but order was wrong")
		} else {
			addItemDiff(sb, res)
		}
		return sb.
			AddValuesFinding("Expected", comparison.Values(expected)...).
			AddValuesFinding("Actual", comparison.Values(actual)...).
			Summary
	}
}

// ContainAllOf returns a comparison.Func which checks that a slice contains
// every element of `expected` (with multiplicity), ignoring order and extra
// elements.
func ContainAllOf[T comparable](expected ...T) comparison.Func[[]T] {
	return containAllOf("should.ContainAllOf", expected, false)
}

// ContainAllOfInOrder is like ContainAllOf, but also requires the elements of
// `expected` to appear in the same relative order. Other elements may be
// interleaved.
func ContainAllOfInOrder[T comparable](expected ...T) comparison.Func[[]T] {
	return containAllOf("should.ContainAllOfInOrder", expected, true)
}

func containAllOf[T comparable](cmpName string, expected []T, inOrder bool) comparison.Func[[]T] {
	return func(actual []T) *failure.Summary {
		res := diff.CompareSequences(actual, expected, diff.Relative)
		if res.ContainsAll() && (!inOrder || res.OrderPreserved) {
			return nil
		}

		sb := comparison.NewSummaryBuilder(cmpName, expected)
		if res.ContainsAll() {
			return sb.
				Because("required elements were all found, but order was wrong").
				AddValuesFinding("Expected order for required elements", comparison.Values(expected)...).
				AddValuesFinding("Actual", comparison.Values(actual)...).
				Summary
		}
		return sb.
			AddValuesFinding(fmt.Sprintf("Missing (%d)", len(res.Missing)), comparison.Values(res.Missing)...).
			AddValuesFinding("Expected to contain at least", comparison.Values(expected)...).
			AddValuesFinding("Actual", comparison.Values(actual)...).
			Summary
	}
}

// lengthOf returns the length of `actual`, if it has one.
//
// diff.MapLike values (and anything else with a `Len() int` method) use that
// method; otherwise arrays, channels, maps, slices and strings are supported.
//
// A nil pointer whose element type has a value receiver `Len` method has
// length 0, like a nil builtin map.
func lengthOf(actual any) (int, bool) {
	if l, ok := actual.(interface{ Len() int }); ok {
		if val := reflect.ValueOf(actual); val.Kind() == reflect.Pointer && val.IsNil() {
			if _, byValue := val.Type().Elem().MethodByName("Len"); byValue {
				return 0, true
			}
		}
		return l.Len(), true
	}
	if actual == nil {
		return 0, true
	}
	val := reflect.ValueOf(actual)
	switch val.Kind() {
	case reflect.Array, reflect.Chan, reflect.Map, reflect.Slice, reflect.String:
		return val.Len(), true
	case reflect.Pointer:
		if !val.IsNil() && val.Elem().Kind() == reflect.Array {
			return val.Elem().Len(), true
		}
	}
	return 0, false
}

func noLength(cmpName string, actual any) *failure.Summary {
	return comparison.NewSummaryBuilder(cmpName).
		Because("`%T` does not have a length", actual).
		Summary
}

// BeEmpty implements comparison.Func[any] and asserts that `actual` has
// length 0. An untyped nil counts as empty.
func BeEmpty(actual any) *failure.Summary {
	const cmpName = "should.BeEmpty"

	n, ok := lengthOf(actual)
	if !ok {
		return noLength(cmpName, actual)
	}
	if n == 0 {
		return nil
	}
	return comparison.NewSummaryBuilder(cmpName).
		AddFindingf("Length", "%d", n).
		Actual(actual).WarnIfLong().
		Summary
}

// NotBeEmpty implements comparison.Func[any] and asserts that `actual` has a
// non-zero length.
func NotBeEmpty(actual any) *failure.Summary {
	const cmpName = "should.NotBeEmpty"

	n, ok := lengthOf(actual)
	if !ok {
		return noLength(cmpName, actual)
	}
	if n > 0 {
		return nil
	}
	return comparison.NewSummaryBuilder(cmpName).
		Actual(actual).
		Summary
}

// HaveLength returns a comparison.Func which asserts that `actual` has length
// `expected`.
func HaveLength(expected int) comparison.Func[any] {
	const cmpName = "should.HaveLength"

	return func(actual any) *failure.Summary {
		n, ok := lengthOf(actual)
		if !ok {
			return noLength(cmpName, actual)
		}
		if n == expected {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName).
			AddFindingf("Expected length", "%d", expected).
			AddFindingf("Actual length", "%d", n).
			Actual(actual).WarnIfLong().
			Summary
	}
}
