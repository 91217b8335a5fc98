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

	"go.chromium.org/assertor/diff"
	"go.chromium.org/assertor/truth/comparison"
	"go.chromium.org/assertor/truth/failure"
)

// ContainKey returns a comparison.Func which checks that a map has `key`.
//
// The value type comes first so that the key type can be inferred:
//
//	check.That(t, m, should.ContainKey[int]("a"))
func ContainKey[V any, K comparable](key K) comparison.Func[map[K]V] {
	const cmpName = "should.ContainKey"

	return func(actual map[K]V) *failure.Summary {
		if _, ok := actual[key]; ok {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName, key).
			AddFinding("Expected to contain key", key).
			Because("but did not").
			AddValuesFinding("Though it did contain keys", comparison.Values(diff.Map(actual).Keys())...).
			Summary
	}
}

// NotContainKey returns a comparison.Func which checks that a map does not
// have `key`.
func NotContainKey[V any, K comparable](key K) comparison.Func[map[K]V] {
	const cmpName = "should.NotContainKey"

	return func(actual map[K]V) *failure.Summary {
		value, ok := actual[key]
		if !ok {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName, key).
			AddFinding("Expected not to contain key", key).
			AddFinding("But it was mapped to", value).
			Summary
	}
}

// ContainEntry returns a comparison.Func which checks that a map maps `key`
// to `value`.
func ContainEntry[K, V comparable](key K, value V) comparison.Func[map[K]V] {
	const cmpName = "should.ContainEntry"

	return func(actual map[K]V) *failure.Summary {
		got, ok := actual[key]
		if ok && got == value {
			return nil
		}

		sb := comparison.NewSummaryBuilder(cmpName, key, value).
			AddFindingf("Expected key to be mapped to value", "%#v", diff.E(key, value))
		if !ok {
			sb.AddFinding("But key was not found", key)
		} else {
			sb.AddFinding("But key was mapped to a different value", got)
		}
		return sb.
			AddValuesFinding("Though it did contain keys", comparison.Values(diff.Map(actual).Keys())...).
			Summary
	}
}

// ContainEntries returns a comparison.Func which checks that a map contains
// every entry of `expected`. Extra entries are allowed.
func ContainEntries[K, V comparable](expected map[K]V) comparison.Func[map[K]V] {
	return func(actual map[K]V) *failure.Summary {
		return compareEntries("should.ContainEntries", expected, diff.Map(actual), diff.Map(expected), false, diff.Unordered)
	}
}

// ContainExactlyEntries returns a comparison.Func which checks that a map has
// exactly the entries of `expected`.
//
// Unlike Match, the failure lists the missing and unexpected entries and the
// keys whose values differ.
func ContainExactlyEntries[K, V comparable](expected map[K]V) comparison.Func[map[K]V] {
	return func(actual map[K]V) *failure.Summary {
		return compareEntries("should.ContainExactlyEntries", expected, diff.Map(actual), diff.Map(expected), true, diff.Unordered)
	}
}

// ContainEntriesInOrder is like ContainEntries, but for maps with ordered
// keys (see diff.MapLike) it also requires the keys of `expected` to appear in
// the same relative order in the actual map.
//
// If either map does not have ordered keys, the order is not checked.
func ContainEntriesInOrder[K, V comparable](expected diff.MapLike[K, V]) comparison.Func[diff.MapLike[K, V]] {
	return func(actual diff.MapLike[K, V]) *failure.Summary {
		return compareEntries("should.ContainEntriesInOrder", expected, actual, expected, false, diff.Relative)
	}
}

// ContainExactlyEntriesInOrder is like ContainExactlyEntries, but for maps
// with ordered keys (see diff.MapLike) it also requires the keys to be in the
// same order.
//
// If either map does not have ordered keys, the order is not checked.
func ContainExactlyEntriesInOrder[K, V comparable](expected diff.MapLike[K, V]) comparison.Func[diff.MapLike[K, V]] {
	return func(actual diff.MapLike[K, V]) *failure.Summary {
		return compareEntries("should.ContainExactlyEntriesInOrder", expected, actual, expected, true, diff.Strict)
	}
}

// compareEntries reports missing and unexpected entries first, then entries
// with different values, and only then the key order.
func compareEntries[K, V comparable](cmpName string, typeArg any, actual, expected diff.MapLike[K, V], exact bool, order diff.Order) *failure.Summary {
	res := diff.CompareMaps(actual, expected, order)

	contentOK := res.ContainsAll()
	if exact {
		contentOK = res.ContainsExactly()
	}
	orderOK := res.KeyOrder == nil || res.KeyOrder.OrderPreserved
	if contentOK && orderOK {
		return nil
	}

	sb := comparison.NewSummaryBuilder(cmpName, typeArg)

	if contentOK {
		if exact {
			sb.Because("contents match, but order was wrong")
		} else {
			sb.Because("required entries were all found, but order was wrong")
		}
		return sb.
			AddValuesFinding("Expected key order", comparison.Values(expected.Keys())...).
			AddValuesFinding("Actual key order", comparison.Values(actual.Keys())...).
			Summary
	}

	if len(res.Missing) > 0 {
		sb.AddValuesFinding(fmt.Sprintf("Missing (%d)", len(res.Missing)), comparison.Values(res.Missing)...)
	}
	if exact && len(res.Extra) > 0 {
		sb.AddValuesFinding(fmt.Sprintf("Unexpected (%d)", len(res.Extra)), comparison.Values(res.Extra)...)
	}
	if len(res.DifferentValues) > 0 {
		sb.AddValuesFinding(fmt.Sprintf("Different values (%d)", len(res.DifferentValues)), comparison.Values(res.DifferentValues)...)
	}
	return sb.
		AddValuesFinding("Expected", comparison.Values(diff.Entries(expected))...).
		AddValuesFinding("Actual", comparison.Values(diff.Entries(actual))...).
		Summary
}
