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
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type sequenceCase struct {
	name     string
	actual   []int
	expected []int

	extra   []int
	missing []int
	order   bool
}

func runSequenceCases(t *testing.T, order Order, cases []sequenceCase) {
	t.Helper()

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CompareSequences(tt.actual, tt.expected, order)
			want := &SequenceComparison[int]{
				OrderPreserved: tt.order,
				Extra:          tt.extra,
				Missing:        tt.missing,
			}
			if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("unexpected diff (-want +got): %s", diff)
			}
		})
	}
}

// These tables pin the exact behavior, including the empty operand cases
// where Strict and Relative disagree about OrderPreserved.
func TestCompareSequencesRelative(t *testing.T) {
	t.Parallel()

	runSequenceCases(t, Relative, []sequenceCase{
		{"empty both", nil, nil, nil, nil, true},
		{"empty right operand", []int{1, 2}, nil, []int{1, 2}, nil, true},
		{"empty left operand", nil, []int{1, 2}, nil, []int{1, 2}, false},
		{"extra and relative order", []int{1, 2, 3}, []int{1, 3}, []int{2}, nil, true},
		{"not found, both extra and missing", []int{1, 2, 3}, []int{1, 3, 4}, []int{2}, []int{4}, false},
		{"not found, extra prefix", []int{1, 2}, []int{1, 2, 4}, nil, []int{4}, false},
		{"not found, extra suffix", []int{1, 2}, []int{0, 1, 2}, []int{1, 2}, []int{0}, false},
		{"all found, out of order", []int{1, 2, 3}, []int{3, 1}, []int{1, 2}, nil, false},
		{"equal", []int{1, 2, 3}, []int{1, 2, 3}, nil, nil, true},
		{"order preserved relatively", []int{1, 2, 3, 4, 5, 6}, []int{1, 3, 6}, []int{2, 4, 5}, nil, true},
		{"prefix sub-sequence", []int{1, 2, 3, 4}, []int{1, 2, 3}, []int{4}, nil, true},
		{"suffix sub-sequence", []int{1, 2, 3, 4}, []int{2, 3, 4}, []int{1}, nil, true},
		{"duplicates in actual", []int{1, 1, 2}, []int{1, 2}, []int{1}, nil, true},
		{"duplicates in expected", []int{1, 2}, []int{1, 1, 2}, []int{2}, []int{1}, false},
	})
}

func TestCompareSequencesStrict(t *testing.T) {
	t.Parallel()

	runSequenceCases(t, Strict, []sequenceCase{
		{"empty both", nil, nil, nil, nil, true},
		{"empty right operand", []int{1, 2}, nil, []int{1, 2}, nil, true},
		{"empty left operand", nil, []int{1, 2}, nil, []int{1, 2}, true},
		{"extra and relative order", []int{1, 2, 3}, []int{1, 3}, []int{2}, nil, false},
		{"not found, both extra and missing", []int{1, 2, 3}, []int{2, 3, 4}, []int{1}, []int{4}, false},
		{"not found, extra prefix", []int{1, 2}, []int{1, 2, 4}, nil, []int{4}, true},
		{"not found, extra suffix", []int{1, 2}, []int{0, 1, 2}, nil, []int{0}, false},
		{"all found, out of order", []int{1, 2, 3}, []int{3, 1}, []int{2}, nil, false},
		{"equal", []int{1, 2, 3}, []int{1, 2, 3}, nil, nil, true},
		{"order preserved relatively", []int{1, 2, 3, 4, 5, 6}, []int{1, 3, 6}, []int{2, 4, 5}, nil, false},
		{"order preserved strictly", []int{1, 2, 3, 4, 5, 6}, []int{3, 4, 5}, []int{1, 2, 6}, nil, false},
		{"prefix sub-sequence", []int{1, 2, 3, 4}, []int{1, 2, 3}, []int{4}, nil, true},
		{"suffix sub-sequence", []int{1, 2, 3, 4}, []int{2, 3, 4}, []int{1}, nil, false},
		{"duplicate reported once", []int{1, 1, 2}, []int{1, 2}, []int{1}, nil, false},
		{"swapped pair", []int{2, 1}, []int{1, 2}, nil, nil, false},
	})
}

func TestCompareSequencesUnorderedIsStrict(t *testing.T) {
	t.Parallel()

	actual, expected := []int{1, 2, 3}, []int{3, 1}
	if diff := cmp.Diff(
		CompareSequences(actual, expected, Strict),
		CompareSequences(actual, expected, Unordered),
	); diff != "" {
		t.Errorf("unexpected diff (-want +got): %s", diff)
	}
}

func TestCompareSequencesFunc(t *testing.T) {
	t.Parallel()

	got := CompareSequencesFunc(
		[]string{"A", "b", "C"},
		[]string{"a", "B", "d"},
		Strict,
		strings.EqualFold,
	)
	want := &SequenceComparison[string]{
		OrderPreserved: false,
		Extra:          []string{"C"},
		Missing:        []string{"d"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected diff (-want +got): %s", diff)
	}
}

func TestRunes(t *testing.T) {
	t.Parallel()

	got := CompareSequences(Runes("foobarbaz"), Runes("bazbar"), Strict)
	if diff := cmp.Diff([]rune("foo"), got.Extra); diff != "" {
		t.Errorf("unexpected extra (-want +got): %s", diff)
	}
	if len(got.Missing) != 0 {
		t.Errorf("unexpected missing: %q", string(got.Missing))
	}
}

func TestSequencePredicates(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		cmp      *SequenceComparison[int]
		exactly  bool
		contains bool
	}{
		{"empty", &SequenceComparison[int]{}, true, true},
		{"extra only", &SequenceComparison[int]{Extra: []int{1}}, false, true},
		{"missing only", &SequenceComparison[int]{Missing: []int{1}}, false, false},
		{"both", &SequenceComparison[int]{Extra: []int{1}, Missing: []int{2}}, false, false},
	}
	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.cmp.ContainsExactly(); got != tt.exactly {
				t.Errorf("ContainsExactly() = %v, want %v", got, tt.exactly)
			}
			if got := tt.cmp.ContainsAll(); got != tt.contains {
				t.Errorf("ContainsAll() = %v, want %v", got, tt.contains)
			}
		})
	}
}

// countOf returns how many times `v` occurs in `s`.
func countOf(s []int, v int) int {
	n := 0
	for _, e := range s {
		if e == v {
			n++
		}
	}
	return n
}

func randomSequence(r *rand.Rand) []int {
	ret := make([]int, r.IntN(8))
	for i := range ret {
		// Keep the alphabet small so duplicates are common.
		ret[i] = r.IntN(4)
	}
	return ret
}

func TestStrictProperties(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(2024, 1))

	for i := 0; i < 500; i++ {
		a, b := randomSequence(r), randomSequence(r)

		self := CompareSequences(a, a, Strict)
		if !self.OrderPreserved || !self.ContainsExactly() {
			t.Fatalf("CompareSequences(%v, %v, Strict) = %+v", a, a, self)
		}

		got := CompareSequences(a, b, Strict)

		// Extra and Missing are exactly the multiset differences a-b and b-a.
		for v := 0; v < 4; v++ {
			ca, cb := countOf(a, v), countOf(b, v)
			wantExtra, wantMissing := max(ca-cb, 0), max(cb-ca, 0)
			if countOf(got.Extra, v) != wantExtra || countOf(got.Missing, v) != wantMissing {
				t.Fatalf("CompareSequences(%v, %v, Strict) = %+v: bad count for %d", a, b, got, v)
			}
		}

		if got.OrderPreserved != (slices.Equal(a, b) || isPrefixCase(a, b)) {
			t.Fatalf("CompareSequences(%v, %v, Strict).OrderPreserved = %v", a, b, got.OrderPreserved)
		}

		// Any permutation contains exactly the same elements.
		perm := slices.Clone(a)
		r.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
		pc := CompareSequences(a, perm, Strict)
		if !pc.ContainsExactly() {
			t.Fatalf("CompareSequences(%v, %v, Strict) = %+v, want exact", a, perm, pc)
		}
		if pc.OrderPreserved != slices.Equal(a, perm) {
			t.Fatalf("CompareSequences(%v, %v, Strict).OrderPreserved = %v", a, perm, pc.OrderPreserved)
		}
	}
}

// isPrefixCase reports whether one of `a` and `b` is a strict prefix of the
// other, which Strict treats as order preserving.
func isPrefixCase(a, b []int) bool {
	if len(a) > len(b) {
		a, b = b, a
	}
	return slices.Equal(a, b[:len(a)])
}
