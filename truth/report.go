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

package truth

import (
	"go.chromium.org/assertor/truth/comparison"
	"go.chromium.org/assertor/truth/failure"
)

// TestingTB is the subset of testing.TB which this library needs.
//
// *testing.T, *testing.B and *testing.F all implement it.
type TestingTB interface {
	Helper()
	Log(args ...any)
	Fail()
	FailNow()
}

// Renderer returns the RenderCLI configured by the package variables.
func Renderer() comparison.RenderCLI {
	return comparison.RenderCLI{
		Verbose:       verbose(),
		Colorize:      Colorize,
		FullFilenames: FullSourceContextFilenames,
	}
}

// Report logs `summary` to `t` as a single block, prefixed with `name` (e.g.
// "assert.That").
//
// Report does not mark `t` as failed; that is up to the caller. Nothing is
// logged for a nil summary.
func Report(t TestingTB, name string, summary *failure.Summary) {
	if summary == nil {
		return
	}
	t.Helper()
	t.Log(Renderer().Summary(name, summary))
}
