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

package diff

import (
	"fmt"
)

// Entry is a single key-value pair of a MapLike.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// E is a short constructor for Entry.
func E[K comparable, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{key, value}
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v:%v", e.Key, e.Value)
}

// GoString renders the entry as `"key": value`, the form used in failure
// reports.
func (e Entry[K, V]) GoString() string {
	return fmt.Sprintf("%#v: %#v", e.Key, e.Value)
}

// Entries returns all entries of `m`, in the order of `m.Keys()`.
func Entries[K comparable, V any](m MapLike[K, V]) []Entry[K, V] {
	keys := m.Keys()
	ret := make([]Entry[K, V], 0, len(keys))
	for _, k := range keys {
		v, _ := m.Get(k)
		ret = append(ret, Entry[K, V]{k, v})
	}
	return ret
}

// MapValueDiff describes a key which is present in both maps, but maps to
// different values.
type MapValueDiff[K comparable, V any] struct {
	Key      K
	Actual   V
	Expected V
}

func (d MapValueDiff[K, V]) String() string {
	return fmt.Sprintf("%v: %v (expected %v)", d.Key, d.Actual, d.Expected)
}

func (d MapValueDiff[K, V]) GoString() string {
	return fmt.Sprintf("%#v: %#v (expected %#v)", d.Key, d.Actual, d.Expected)
}

// MapComparison is the result of comparing two MapLike values.
//
// Common, Extra, Missing and DifferentValues are disjoint and together cover
// every key of either map.
type MapComparison[K comparable, V any] struct {
	// Common holds entries present with an equal value in both maps, in the
	// key order of `actual`.
	Common []Entry[K, V]

	// Extra holds entries present only in `actual`, in its key order.
	Extra []Entry[K, V]

	// Missing holds entries present only in `expected`, in its key order.
	Missing []Entry[K, V]

	// DifferentValues holds keys present in both maps with unequal values, in
	// the key order of `actual`.
	DifferentValues []MapValueDiff[K, V]

	// KeyOrder is the comparison of the key sequences of both maps.
	//
	// It is nil unless an order was requested and both maps have ordered keys.
	KeyOrder *SequenceComparison[K]
}

// ContainsExactly returns true iff both maps have the same keys mapped to
// equal values.
func (m *MapComparison[K, V]) ContainsExactly() bool {
	return len(m.Extra) == 0 && len(m.Missing) == 0 && len(m.DifferentValues) == 0
}

// ContainsAll returns true iff every entry of `expected` is present, with an
// equal value, in `actual`.
func (m *MapComparison[K, V]) ContainsAll() bool {
	return len(m.Missing) == 0 && len(m.DifferentValues) == 0
}

// CompareMaps compares `actual` against `expected`, using `==` for values.
//
// See CompareMapsFunc.
func CompareMaps[K, V comparable](actual, expected MapLike[K, V], order Order) *MapComparison[K, V] {
	return CompareMapsFunc(actual, expected, order, func(a, b V) bool { return a == b })
}

// CompareMapsFunc compares `actual` against `expected`, using `eq` to compare
// values.
//
// If `order` is Strict or Relative and both maps report ordered keys, their
// key sequences are compared with CompareSequences and stored in KeyOrder.
// If either map is unordered the request is silently dropped and KeyOrder is
// nil.
func CompareMapsFunc[K comparable, V any](actual, expected MapLike[K, V], order Order, eq func(a, b V) bool) *MapComparison[K, V] {
	ret := &MapComparison[K, V]{}

	actualKeys := actual.Keys()
	for _, key := range actualKeys {
		value, _ := actual.Get(key)
		switch expectedValue, ok := expected.Get(key); {
		case !ok:
			ret.Extra = append(ret.Extra, Entry[K, V]{key, value})
		case eq(value, expectedValue):
			ret.Common = append(ret.Common, Entry[K, V]{key, value})
		default:
			ret.DifferentValues = append(ret.DifferentValues, MapValueDiff[K, V]{
				Key:      key,
				Actual:   value,
				Expected: expectedValue,
			})
		}
	}

	expectedKeys := expected.Keys()
	for _, key := range expectedKeys {
		if _, ok := actual.Get(key); !ok {
			value, _ := expected.Get(key)
			ret.Missing = append(ret.Missing, Entry[K, V]{key, value})
		}
	}

	if order != Unordered && actual.KeysOrdered() && expected.KeysOrdered() {
		ret.KeyOrder = CompareSequences(actualKeys, expectedKeys, order)
	}

	return ret
}
