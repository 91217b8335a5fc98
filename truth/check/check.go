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

// Package check implements the comparison entry points which mark the test as
// failed, but let it continue.
//
// Each function returns true iff the comparison passed, so that later checks
// which depend on it can be skipped:
//
//	if check.That(t, got, should.HaveLength(3)) {
//	  check.That(t, got[2], should.Equal("c"))
//	}
package check

import (
	"go.chromium.org/assertor/truth"
	"go.chromium.org/assertor/truth/comparison"
	"go.chromium.org/assertor/truth/should"
)

// That will compare `actual` using `compare(actual)`.
//
// If this yields a failure.Summary, it is reported with truth.Report and the
// test is marked as failed with t.Fail().
func That[T any](t truth.TestingTB, actual T, compare comparison.Func[T], opts ...truth.Option) (ok bool) {
	if summary := truth.ApplyAllOptions(compare(actual), opts); summary != nil {
		t.Helper()
		truth.Report(t, "check.That", summary)
		t.Fail()
		return false
	}
	return true
}

// Loosely is like That, but converts `actual` to T first with
// comparison.Func.CastCompare.
func Loosely[T any](t truth.TestingTB, actual any, compare comparison.Func[T], opts ...truth.Option) (ok bool) {
	if summary := truth.ApplyAllOptions(compare.CastCompare(actual), opts); summary != nil {
		t.Helper()
		truth.Report(t, "check.Loosely", summary)
		t.Fail()
		return false
	}
	return true
}

// NoErr marks the test as failed if `err` is not nil.
func NoErr(t truth.TestingTB, err error, opts ...truth.Option) (ok bool) {
	if err != nil {
		t.Helper()
		return That(t, err, should.ErrLike(nil), opts...)
	}
	return true
}

// ErrIsLike marks the test as failed unless `err` is like `target`, as
// defined by should.ErrLike.
func ErrIsLike(t truth.TestingTB, err error, target any, opts ...truth.Option) (ok bool) {
	t.Helper()
	return That(t, err, should.ErrLike(target), opts...)
}
