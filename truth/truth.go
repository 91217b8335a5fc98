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

// Package truth implements an extensible, simple, assertion library for Go.
//
// # Quick Start
//
//	import (
//	  "testing"
//
//	  "go.chromium.org/assertor/truth/assert"
//	  "go.chromium.org/assertor/truth/check"
//	  "go.chromium.org/assertor/truth/should"
//	)
//
//	func TestSomething(t *testing.T) {
//	  // This check will fail, but the test will continue.
//	  check.That(t, 10, should.Equal(20))
//
//	  // This assert will fail, and the test will stop here.
//	  assert.That(t, []int{1, 2, 3}, should.ContainExactlyInOrder(1, 3, 2))
//	}
//
// The collection and map comparisons in `should` are built on the diff
// package, which reports missing elements, unexpected elements and order
// problems separately.
//
// # Configuration
//
// Rendering is controlled by the package variables Colorize, Verbose and
// FullSourceContextFilenames. Their defaults come from the environment:
//
//   - TRUTH_COLOR: "always", "never" or "auto" (the default). "auto" enables
//     color when stdout is a terminal, TERM is not "dumb" and NO_COLOR is
//     unset.
//   - TRUTH_VERBOSE: a boolean. If unset, verbosity follows `go test -v`.
package truth

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/mattn/go-isatty"
)

// Colorize, if true, adds ANSI color codes to diffs in reports.
var Colorize = colorizeFromEnv(os.Getenv)

// Verbose, if true, renders findings marked as verbose (e.g. long Actual and
// Expected values) in full.
//
// When false, reports still become verbose if TRUTH_VERBOSE is unset and the
// test binary runs with `-test.v`.
var Verbose, verboseFromEnv = verboseSetting(os.Getenv)

// FullSourceContextFilenames, if true, renders SourceContext frames with
// their full path rather than just the base filename.
var FullSourceContextFilenames = false

type getenvFn func(string) string

func colorizeFromEnv(getenv getenvFn) bool {
	switch strings.ToLower(getenv("TRUTH_COLOR")) {
	case "always":
		return true
	case "never":
		return false
	}
	if getenv("NO_COLOR") != "" || getenv("TERM") == "dumb" {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// verboseSetting returns the value of TRUTH_VERBOSE, and whether it was set
// to a valid boolean.
func verboseSetting(getenv getenvFn) (verbose, set bool) {
	v, err := strconv.ParseBool(getenv("TRUTH_VERBOSE"))
	if err != nil {
		return false, false
	}
	return v, true
}

// verbose resolves the effective verbosity for a report.
func verbose() bool {
	if Verbose || verboseFromEnv {
		return Verbose
	}
	// testing.Verbose panics before the testing flags are registered and
	// parsed.
	return flag.Parsed() && flag.Lookup("test.v") != nil && testing.Verbose()
}
