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
	"slices"
)

// Order selects how the order of two sequences is judged.
type Order int

const (
	// Unordered means that no order information is wanted.
	//
	// CompareMaps skips the key order comparison. CompareSequences treats it
	// like Strict; callers which pass Unordered are expected to ignore
	// OrderPreserved.
	Unordered Order = iota

	// Strict requires `actual` and `expected` to agree at every position.
	Strict

	// Relative requires the elements of `expected` to appear in `actual` in
	// the same relative order, ignoring elements of `actual` which are not
	// in `expected`.
	Relative
)

func (o Order) String() string {
	switch o {
	case Unordered:
		return "Unordered"
	case Strict:
		return "Strict"
	case Relative:
		return "Relative"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// SequenceComparison is the result of comparing two sequences.
type SequenceComparison[T any] struct {
	// OrderPreserved is true if the elements found in both sequences appear
	// in the same order, as defined by the Order used for the comparison.
	OrderPreserved bool

	// Extra holds the elements of `actual` which were not accounted for by
	// `expected`, in the order they were found.
	Extra []T

	// Missing holds the elements of `expected` which were not accounted for by
	// `actual`, in the order they were found.
	Missing []T
}

// ContainsExactly returns true iff `actual` and `expected` hold the same
// elements (with the same multiplicity), ignoring order.
func (s *SequenceComparison[T]) ContainsExactly() bool {
	return len(s.Extra) == 0 && len(s.Missing) == 0
}

// ContainsAll returns true iff every element of `expected` was found in
// `actual`, ignoring order and ignoring extra elements.
func (s *SequenceComparison[T]) ContainsAll() bool {
	return len(s.Missing) == 0
}

// CompareSequences compares `actual` against `expected` using `==`.
//
// See CompareSequencesFunc.
func CompareSequences[T comparable](actual, expected []T, order Order) *SequenceComparison[T] {
	return CompareSequencesFunc(actual, expected, order, func(a, b T) bool { return a == b })
}

// CompareSequencesFunc compares `actual` against `expected` using `eq` to
// decide whether two elements are equal.
//
// `eq` is called with elements of either side in either argument position, so
// it must be symmetric.
func CompareSequencesFunc[T any](actual, expected []T, order Order, eq func(a, b T) bool) *SequenceComparison[T] {
	if order == Relative {
		return compareRelative(actual, expected, eq)
	}
	return compareStrict(actual, expected, eq)
}

// cancelOrAppend removes the first element of `*from` equal to `el`. If there
// is none, `el` is appended to `*to` instead.
func cancelOrAppend[T any](el T, from, to *[]T, eq func(a, b T) bool) {
	if idx := slices.IndexFunc(*from, func(e T) bool { return eq(e, el) }); idx >= 0 {
		*from = slices.Delete(*from, idx, idx+1)
		return
	}
	*to = append(*to, el)
}

func compareStrict[T any](actual, expected []T, eq func(a, b T) bool) *SequenceComparison[T] {
	ret := &SequenceComparison[T]{OrderPreserved: true}

	i, j := 0, 0
	for i < len(actual) || j < len(expected) {
		switch {
		case i < len(actual) && j < len(expected):
			a, e := actual[i], expected[j]
			i++
			j++
			if eq(a, e) {
				continue
			}
			ret.OrderPreserved = false
			cancelOrAppend(e, &ret.Extra, &ret.Missing, eq)
			cancelOrAppend(a, &ret.Missing, &ret.Extra, eq)

		case j < len(expected):
			cancelOrAppend(expected[j], &ret.Extra, &ret.Missing, eq)
			j++

		default:
			cancelOrAppend(actual[i], &ret.Missing, &ret.Extra, eq)
			i++
		}
	}

	return ret
}

func compareRelative[T any](actual, expected []T, eq func(a, b T) bool) *SequenceComparison[T] {
	ret := &SequenceComparison[T]{}

	i, j := 0, 0
	for {
		if j >= len(expected) {
			ret.Extra = append(ret.Extra, actual[i:]...)
			break
		}
		if i >= len(actual) {
			ret.Missing = append(ret.Missing, expected[j:]...)
			break
		}
		if eq(actual[i], expected[j]) {
			i++
			j++
		} else {
			ret.Extra = append(ret.Extra, actual[i])
			i++
		}
	}

	ret.OrderPreserved = len(ret.Missing) == 0

	// Anything both extra and missing was present, just out of order.
	if len(ret.Missing) > 0 {
		for _, extra := range ret.Extra {
			if idx := slices.IndexFunc(ret.Missing, func(m T) bool { return eq(m, extra) }); idx >= 0 {
				ret.Missing = slices.Delete(ret.Missing, idx, idx+1)
			}
		}
	}

	return ret
}

// Runes returns the characters of `s` as a sequence, so that strings can be
// compared character by character.
func Runes(s string) []rune {
	return []rune(s)
}
