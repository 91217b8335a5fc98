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
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// MapLike is the view of a key-value collection used by CompareMaps.
type MapLike[K comparable, V any] interface {
	// Get returns the value mapped to `key`, and whether it was present.
	Get(key K) (V, bool)

	// Keys returns all keys of the collection.
	//
	// If KeysOrdered returns true, the returned order is meaningful and is used
	// for key order comparisons.
	Keys() []K

	// KeysOrdered returns true if the iteration order of Keys is a stable,
	// meaningful order (e.g. sorted or insertion order).
	KeysOrdered() bool

	// Len returns the number of entries.
	Len() int
}

// Keys returns the keys of `m` as a sequence.
func Keys[K comparable, V any](m MapLike[K, V]) []K {
	return m.Keys()
}

// builtinMap adapts a Go map to MapLike.
type builtinMap[K comparable, V any] map[K]V

// Map wraps a builtin Go map as a MapLike.
//
// Go maps have no meaningful iteration order, so KeysOrdered returns false.
// Keys are still returned sorted by their "%v" rendering so that failure
// reports are stable from run to run.
func Map[K comparable, V any](m map[K]V) MapLike[K, V] {
	return builtinMap[K, V](m)
}

func (m builtinMap[K, V]) Get(key K) (V, bool) {
	v, ok := m[key]
	return v, ok
}

func (m builtinMap[K, V]) Keys() []K {
	type keyStr struct {
		key K
		str string
	}
	rendered := make([]keyStr, 0, len(m))
	for k := range m {
		rendered = append(rendered, keyStr{k, fmt.Sprintf("%v", k)})
	}
	slices.SortStableFunc(rendered, func(a, b keyStr) int {
		return cmp.Compare(a.str, b.str)
	})
	ret := make([]K, len(rendered))
	for i, ks := range rendered {
		ret[i] = ks.key
	}
	return ret
}

func (builtinMap[K, V]) KeysOrdered() bool { return false }

func (m builtinMap[K, V]) Len() int { return len(m) }

// sortedMap adapts a Go map with ordered keys to an ascending-key MapLike.
type sortedMap[K cmp.Ordered, V any] map[K]V

// Sorted wraps a builtin Go map as a MapLike whose keys iterate in ascending
// order, like a sorted map.
func Sorted[K cmp.Ordered, V any](m map[K]V) MapLike[K, V] {
	return sortedMap[K, V](m)
}

func (m sortedMap[K, V]) Get(key K) (V, bool) {
	v, ok := m[key]
	return v, ok
}

func (m sortedMap[K, V]) Keys() []K {
	ret := make([]K, 0, len(m))
	for k := range m {
		ret = append(ret, k)
	}
	slices.Sort(ret)
	return ret
}

func (sortedMap[K, V]) KeysOrdered() bool { return true }

func (m sortedMap[K, V]) Len() int { return len(m) }

// OrderedMap is a map which remembers the order in which keys were first
// inserted.
//
// The zero value is an empty map ready to use. A nil *OrderedMap reads like a
// nil builtin map: it is empty and has no keys.
type OrderedMap[K comparable, V any] struct {
	data map[K]V
	keys []K
}

var _ MapLike[string, int] = (*OrderedMap[string, int])(nil)

// NewOrderedMap returns an OrderedMap populated with `entries`, in order.
//
// Later entries for the same key overwrite the value but keep the position of
// the first one.
func NewOrderedMap[K comparable, V any](entries ...Entry[K, V]) *OrderedMap[K, V] {
	ret := &OrderedMap[K, V]{data: make(map[K]V, len(entries))}
	for _, e := range entries {
		ret.Set(e.Key, e.Value)
	}
	return ret
}

// Set maps `key` to `value`. A new key is placed after all existing keys.
func (m *OrderedMap[K, V]) Set(key K, value V) {
	if m.data == nil {
		m.data = map[K]V{}
	}
	if _, ok := m.data[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.data[key] = value
}

// Delete removes `key`, if present.
func (m *OrderedMap[K, V]) Delete(key K) {
	if m == nil {
		return
	}
	if _, ok := m.data[key]; !ok {
		return
	}
	delete(m.data, key)
	m.keys = slices.DeleteFunc(m.keys, func(k K) bool { return k == key })
}

// Get implements MapLike.
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	v, ok := m.data[key]
	return v, ok
}

// Keys implements MapLike; keys are returned in insertion order.
func (m *OrderedMap[K, V]) Keys() []K {
	if m == nil {
		return nil
	}
	return slices.Clone(m.keys)
}

// KeysOrdered implements MapLike.
func (*OrderedMap[K, V]) KeysOrdered() bool { return true }

// Len implements MapLike.
func (m *OrderedMap[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// String renders the map in insertion order, e.g. `{a:1 b:2}`.
func (m *OrderedMap[K, V]) String() string {
	if m == nil {
		return "{}"
	}
	parts := make([]string, len(m.keys))
	for i, k := range m.keys {
		parts[i] = fmt.Sprintf("%v:%v", k, m.data[k])
	}
	return "{" + strings.Join(parts, " ") + "}"
}
