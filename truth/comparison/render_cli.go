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

package comparison

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mgutz/ansi"

	"go.chromium.org/assertor/truth/failure"
)

// RenderCLI renders failure.Summary objects for display via the `go test` CLI
// output.
type RenderCLI struct {
	// If true, will render all Verbose findings.
	//
	// Otherwise this will print an omission message which describes how long the
	// omitted value is and to pass `-v` to the test to see them.
	Verbose bool

	// If true, will add ANSI color codes to Findings with appropriate types
	// (per-line colorization for unified and cmp.Diff Findings, and inline
	// colorization for string diffs).
	Colorize bool

	// If true, SourceContext frames render with their full filename rather
	// than just the base name.
	FullFilenames bool
}

var (
	stringDiffDelete = regexp.MustCompile(`\[-(.*?)-\]`)
	stringDiffInsert = regexp.MustCompile(`\{\+(.*?)\+\}`)
)

func colorizeLines(value []string) {
	for i, line := range value {
		code := ""
		if strings.HasPrefix(line, "-") {
			code = ansi.Green
			if strings.HasPrefix(line, "--- ") {
				code = ansi.LightGreen
			}
		} else if strings.HasPrefix(line, "+") {
			code = ansi.Red
			if strings.HasPrefix(line, "+++ ") {
				code = ansi.LightRed
			}
		} else if strings.HasPrefix(line, "@@ ") {
			code = ansi.Red
		}
		if code != "" {
			value[i] = code + line + ansi.Reset
		}
	}
}

func colorizeInline(value []string) {
	for i, line := range value {
		line = stringDiffDelete.ReplaceAllString(line, ansi.Green+"[-$1-]"+ansi.Reset)
		value[i] = stringDiffInsert.ReplaceAllString(line, ansi.Red+"{+$1+}"+ansi.Reset)
	}
}

// Finding renders a Finding to a set of output lines which would be
// suitable for display as CLI output (e.g. to be logged with testing.T.Log
// calls).
func (r RenderCLI) Finding(prefix string, f *failure.Finding) string {
	if len(f.Value) == 0 {
		return fmt.Sprintf("%s%s [no value]", prefix, f.Name)
	}
	if len(f.Value) == 1 && len(strings.TrimSpace(f.Value[0])) == 0 {
		return fmt.Sprintf("%s%s [blank one-line value]", prefix, f.Name)
	}

	if f.Level > failure.FindingLogLevel_Error && !r.Verbose {
		valLen := len(f.Value) - 1 // one per newline
		for _, line := range f.Value {
			valLen += len(line)
		}
		return fmt.Sprintf("%s%s [verbose value len=%d (pass -v to see)]", prefix, f.Name, valLen)
	}

	value := make([]string, len(f.Value))
	copy(value, f.Value)
	if r.Colorize {
		switch f.Type {
		case failure.FindingTypeHint_CmpDiff, failure.FindingTypeHint_UnifiedDiff:
			colorizeLines(value)
		case failure.FindingTypeHint_StringDiff:
			colorizeInline(value)
		}
	}

	if len(value) == 1 {
		return fmt.Sprintf("%s%s: %s", prefix, f.Name, value[0])
	}

	for i, line := range value {
		value[i] = prefix + "    " + line
	}
	return fmt.Sprintf("%s%s: \\\n%s", prefix, f.Name, strings.Join(value, "\n"))
}

// SourceContext renders a single named Stack.
//
// A one-frame stack renders on a single line, e.g. `(at foo_test.go:12)`.
func (r RenderCLI) SourceContext(prefix string, s *failure.Stack) string {
	frames := s.GetFrames()
	render := func(fr *failure.Stack_Frame) string {
		name := fr.GetFilename()
		if !r.FullFilenames {
			name = filepath.Base(name)
		}
		return fmt.Sprintf("%s:%d", name, fr.GetLineno())
	}

	if len(frames) == 1 {
		return fmt.Sprintf("%s(%s %s)", prefix, s.GetName(), render(frames[0]))
	}

	lines := make([]string, 0, len(frames)+1)
	lines = append(lines, fmt.Sprintf("%s(%s)", prefix, s.GetName()))
	for _, fr := range frames {
		lines = append(lines, prefix+"    "+render(fr))
	}
	return strings.Join(lines, "\n")
}

// Comparison renders the name of the failed comparison with its type
// arguments, e.g. `should.Equal[int]`.
func (r RenderCLI) Comparison(s *failure.Summary) string {
	name := s.GetComparison().GetName()
	if name == "" {
		name = "UNKNOWN COMPARISON"
	}
	if args := s.GetComparison().GetTypeArguments(); len(args) > 0 {
		name = fmt.Sprintf("%s[%s]", name, strings.Join(args, ", "))
	}
	return name
}

// Summary pretty-prints `s` as a list of lines for display via the `go test`
// CLI output.
//
// `name` identifies the caller, e.g. `assert.That`. Returns "" for a nil
// Summary.
func (r RenderCLI) Summary(name string, s *failure.Summary) string {
	if s == nil {
		return ""
	}

	header := r.Comparison(s) + " FAILED"
	if name != "" {
		header = name + " " + header
	}

	lines := make([]string, 0, 1+len(s.SourceContext)+len(s.Findings))
	lines = append(lines, header)
	for _, ctx := range s.SourceContext {
		lines = append(lines, r.SourceContext("", ctx))
	}
	for _, finding := range s.Findings {
		lines = append(lines, r.Finding("", finding))
	}
	return strings.Join(lines, "\n")
}
