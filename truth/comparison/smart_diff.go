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
	"slices"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"

	"go.chromium.org/assertor/truth/failure"
	"go.chromium.org/assertor/typed"
)

// AddCmpDiff adds a 'Diff' finding which is type hinted to be the output of
// cmp.Diff.
//
// The diff is split into multiple lines, but is otherwise untouched. An empty
// diff adds nothing.
func (sb *SummaryBuilder) AddCmpDiff(diff string) *SummaryBuilder {
	sb.fixNilSummary()
	if diff == "" {
		return sb
	}
	sb.Findings = append(sb.Findings, &failure.Finding{
		Name:  "Diff",
		Value: splitLines(strings.TrimSuffix(diff, "\n")),
		Type:  failure.FindingTypeHint_CmpDiff,
	})
	return sb
}

// AddUnifiedDiff adds a 'Diff' finding with a line-based unified diff from
// `expected` to `actual`.
func (sb *SummaryBuilder) AddUnifiedDiff(actual, expected string) *SummaryBuilder {
	sb.fixNilSummary()
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        diffLines(expected),
		B:        diffLines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
		Eol:      "\n",
	})
	if err != nil {
		return sb.AddFindingf("Diff", "failed to compute diff: %s", err)
	}
	if diff == "" {
		return sb
	}
	sb.Findings = append(sb.Findings, &failure.Finding{
		Name:  "Diff",
		Value: splitLines(strings.TrimSuffix(diff, "\n")),
		Type:  failure.FindingTypeHint_UnifiedDiff,
	})
	return sb
}

// diffLines splits `s` into newline-terminated lines. Unlike
// difflib.SplitLines, a trailing newline does not add an empty last line.
func diffLines(s string) []string {
	lines := strings.SplitAfter(strings.TrimSuffix(s, "\n"), "\n")
	lines[len(lines)-1] += "\n"
	return lines
}

// AddStringDiff adds a 'Diff' finding with an inline character diff from
// `expected` to `actual`.
//
// Text only in `expected` renders as `[-text-]`, text only in `actual` as
// `{+text+}`.
func (sb *SummaryBuilder) AddStringDiff(actual, expected string) *SummaryBuilder {
	sb.fixNilSummary()
	if actual == expected {
		return sb
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(expected, actual, false))

	var buf strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			buf.WriteString(d.Text)
		case diffmatchpatch.DiffDelete:
			buf.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			buf.WriteString("{+" + d.Text + "+}")
		}
	}

	sb.Findings = append(sb.Findings, &failure.Finding{
		Name:  "Diff",
		Value: splitLines(buf.String()),
		Type:  failure.FindingTypeHint_StringDiff,
	})
	return sb
}

// SmartCmpDiff adds Actual and Expected findings (marked as Warn if they are
// long), and adds a Diff finding if either is long, if they render the same,
// or if they are strings and either has more than one line.
//
// Multi-line strings get a unified diff and other strings get an inline diff.
// Other values are diffed with typed.Diff, which includes the cmp.Options from
// the registry package plus `extraCmpOpts`.
func (sb *SummaryBuilder) SmartCmpDiff(actual, expected any, extraCmpOpts ...cmp.Option) *SummaryBuilder {
	sb.fixNilSummary()

	sb = sb.Actual(actual).WarnIfLong().
		Expected(expected).WarnIfLong()

	aStr, aOK := actual.(string)
	eStr, eOK := expected.(string)
	bothStrings := aOK && eOK
	if bothStrings && (strings.Contains(aStr, "\n") || strings.Contains(eStr, "\n")) {
		return sb.AddUnifiedDiff(aStr, eStr)
	}

	added := sb.Findings[len(sb.Findings)-2:]
	hasLong := false
	for _, finding := range added {
		if finding.Level == failure.FindingLogLevel_Warn {
			hasLong = true
			break
		}
	}

	if !hasLong && !slices.Equal(added[0].Value, added[1].Value) {
		return sb
	}

	if bothStrings {
		return sb.AddStringDiff(aStr, eStr)
	}
	return sb.AddCmpDiff(typed.Diff(expected, actual, extraCmpOpts...))
}
