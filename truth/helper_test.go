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
package truth_test

import (
	"fmt"
	"strings"
	"testing"

	"go.chromium.org/assertor/truth"
)

// fakeTB prints each report the way `go test` lays out a failing test's log,
// so that examples can show the rendered output.
type fakeTB struct {
	testing.TB // unimplemented methods panic

	printedHeader bool
}

var _ testing.TB = (*fakeTB)(nil)

func (*fakeTB) Helper()  {}
func (*fakeTB) Fail()    {}
func (*fakeTB) FailNow() {}

func (f *fakeTB) Log(args ...any) {
	if !f.printedHeader {
		fmt.Println("--- FAIL: FakeTestName (0.00s)")
		f.printedHeader = true
	}

	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = fmt.Sprint(arg)
	}
	lines := strings.Split(strings.Join(parts, " "), "\n")
	fmt.Println("    filename.go:NN: " + strings.Join(lines, "\n        "))
}

// override sets `*v` to `val` and returns a func restoring the old value.
func override[T any](v *T, val T) func() {
	old := *v
	*v = val
	return func() { *v = old }
}

func plainOutput() func() {
	restoreColor := override(&truth.Colorize, false)
	restoreVerbose := override(&truth.Verbose, false)
	return func() {
		restoreVerbose()
		restoreColor()
	}
}
