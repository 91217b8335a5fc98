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

// Package assert implements the comparison entry points which stop the test
// on failure.
//
// See go.chromium.org/assertor/truth/check for the variants which let the
// test continue.
package assert

import (
	"go.chromium.org/assertor/truth"
	"go.chromium.org/assertor/truth/comparison"
	"go.chromium.org/assertor/truth/should"
)

// That will compare `actual` using `compare(actual)`.
//
// If this yields a failure.Summary, it is reported with truth.Report and the
// test is stopped with t.FailNow().
//
// Example: `assert.That(t, 10, should.Equal(20))`
func That[T any](t truth.TestingTB, actual T, compare comparison.Func[T], opts ...truth.Option) {
	if summary := truth.ApplyAllOptions(compare(actual), opts); summary != nil {
		t.Helper()
		truth.Report(t, "assert.That", summary)
		t.FailNow()
	}
}

// Loosely is like That, but converts `actual` to T first with
// comparison.Func.CastCompare.
//
// Example: `assert.Loosely(t, uint8(10), should.Equal(10))`
func Loosely[T any](t truth.TestingTB, actual any, compare comparison.Func[T], opts ...truth.Option) {
	if summary := truth.ApplyAllOptions(compare.CastCompare(actual), opts); summary != nil {
		t.Helper()
		truth.Report(t, "assert.Loosely", summary)
		t.FailNow()
	}
}

// NoErr stops the test if `err` is not nil.
//
// Example: `assert.NoErr(t, err)`
func NoErr(t truth.TestingTB, err error, opts ...truth.Option) {
	if err != nil {
		t.Helper()
		That(t, err, should.ErrLike(nil), opts...)
	}
}

// ErrIsLike stops the test unless `err` is like `target`, as defined by
// should.ErrLike.
//
// Example: `assert.ErrIsLike(t, err, "not found")`
func ErrIsLike(t truth.TestingTB, err error, target any, opts ...truth.Option) {
	t.Helper()
	That(t, err, should.ErrLike(target), opts...)
}
