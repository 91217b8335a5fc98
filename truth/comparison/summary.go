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
	"strings"

	"go.chromium.org/assertor/truth/failure"
)

// SummaryBuilder builds a failure.Summary with a fluent interface.
//
// The embedded Summary is the result; read it once all findings are added:
//
//	return comparison.NewSummaryBuilder("should.Equal", expected).
//	  Actual(actual).
//	  Expected(expected).
//	  Summary
type SummaryBuilder struct {
	*failure.Summary
}

// NewSummaryBuilder returns a SummaryBuilder for the comparison called
// `comparisonName`.
//
// The type of each of `typeArgs` (as with `%T`) is recorded as a type
// argument of the comparison, so that it renders as e.g. `should.Equal[int]`.
func NewSummaryBuilder(comparisonName string, typeArgs ...any) *SummaryBuilder {
	ret := &SummaryBuilder{&failure.Summary{
		Comparison: &failure.Comparison{Name: comparisonName},
	}}
	for _, arg := range typeArgs {
		ret.Comparison.TypeArguments = append(ret.Comparison.TypeArguments, fmt.Sprintf("%T", arg))
	}
	return ret
}

func (sb *SummaryBuilder) fixNilSummary() {
	if sb.Summary == nil {
		sb.Summary = &failure.Summary{}
	}
}

// lastFinding returns the most recently added Finding, or nil.
func (sb *SummaryBuilder) lastFinding() *failure.Finding {
	if len(sb.GetFindings()) == 0 {
		return nil
	}
	return sb.Findings[len(sb.Findings)-1]
}

// FormatValue renders `v` the way Actual and Expected do.
//
// Errors render as their quoted message, everything else uses `%#v`.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case error:
		return fmt.Sprintf("%q", x.Error())
	}
	return fmt.Sprintf("%#v", v)
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

// AddFinding adds a finding called `name` whose value is `value`, rendered
// with FormatValue.
func (sb *SummaryBuilder) AddFinding(name string, value any) *SummaryBuilder {
	sb.fixNilSummary()
	sb.Findings = append(sb.Findings, &failure.Finding{
		Name:  name,
		Value: splitLines(FormatValue(value)),
	})
	return sb
}

// AddFindingf adds a finding called `name` whose value is produced by
// fmt.Sprintf.
//
// A multi-line result is split into one Value entry per line.
func (sb *SummaryBuilder) AddFindingf(name, format string, args ...any) *SummaryBuilder {
	sb.fixNilSummary()
	sb.Findings = append(sb.Findings, &failure.Finding{
		Name:  name,
		Value: splitLines(fmt.Sprintf(format, args...)),
	})
	return sb
}

// Because adds a "Because" finding explaining why the comparison failed.
func (sb *SummaryBuilder) Because(format string, args ...any) *SummaryBuilder {
	return sb.AddFindingf("Because", format, args...)
}

// Actual adds an "Actual" finding.
func (sb *SummaryBuilder) Actual(actual any) *SummaryBuilder {
	return sb.AddFinding("Actual", actual)
}

// Expected adds an "Expected" finding.
func (sb *SummaryBuilder) Expected(expected any) *SummaryBuilder {
	return sb.AddFinding("Expected", expected)
}

// WarnIfLong marks the previously added finding as FindingLogLevel_Warn if
// it is long.
//
// "Long" is defined as a Value with multiple lines or which has > 30
// characters in one line.
func (sb *SummaryBuilder) WarnIfLong() *SummaryBuilder {
	f := sb.lastFinding()
	if f == nil {
		return sb
	}
	if len(f.Value) > 1 || (len(f.Value) == 1 && len(f.Value[0]) > 30) {
		f.Level = failure.FindingLogLevel_Warn
	}
	return sb
}

// valuesWrapLimit is the longest rendered element which is still listed on
// a single line by AddValuesFinding.
const valuesWrapLimit = 80

// AddValuesFinding adds a finding called `name` listing `values`.
//
// Short lists render on one line as `[ 1, 2, 3 ]`. If any element renders
// longer than 80 characters, every element gets its own `  - x` line
// between `[` and `]`.
func (sb *SummaryBuilder) AddValuesFinding(name string, values ...any) *SummaryBuilder {
	sb.fixNilSummary()

	rendered := make([]string, len(values))
	multiline := false
	for i, v := range values {
		rendered[i] = FormatValue(v)
		if len(rendered[i]) > valuesWrapLimit {
			multiline = true
		}
	}

	var lines []string
	switch {
	case len(rendered) == 0:
		lines = []string{"[]"}
	case multiline:
		lines = append(lines, "[")
		for _, r := range rendered {
			lines = append(lines, "  - "+r)
		}
		lines = append(lines, "]")
	default:
		lines = []string{"[ " + strings.Join(rendered, ", ") + " ]"}
	}

	sb.Findings = append(sb.Findings, &failure.Finding{
		Name:  name,
		Value: lines,
		Type:  failure.FindingTypeHint_List,
	})
	return sb
}

// Values converts a typed slice into the variadic form accepted by
// AddValuesFinding.
func Values[T any](s []T) []any {
	ret := make([]any, len(s))
	for i, v := range s {
		ret[i] = v
	}
	return ret
}
