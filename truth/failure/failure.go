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

// Package failure holds the data model of a failed comparison.
//
// A nil *Summary means that a comparison passed. All getters are safe to call
// on nil receivers.
package failure

import (
	"fmt"
)

// FindingLogLevel indicates how important a Finding is when rendering.
type FindingLogLevel int32

const (
	// FindingLogLevel_Unknown is treated the same as FindingLogLevel_Error.
	FindingLogLevel_Unknown FindingLogLevel = iota
	FindingLogLevel_Error
	// FindingLogLevel_Warn findings are elided by non-verbose renderers.
	FindingLogLevel_Warn
	// FindingLogLevel_Info findings are elided by non-verbose renderers.
	FindingLogLevel_Info
)

var findingLogLevelNames = map[FindingLogLevel]string{
	FindingLogLevel_Unknown: "UNKNOWN",
	FindingLogLevel_Error:   "ERROR",
	FindingLogLevel_Warn:    "WARN",
	FindingLogLevel_Info:    "INFO",
}

func (l FindingLogLevel) String() string {
	if name, ok := findingLogLevelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("FindingLogLevel(%d)", int32(l))
}

// FindingTypeHint tells renderers how a Finding's Value was produced, so that
// they can, for example, colorize diffs.
type FindingTypeHint int32

const (
	FindingTypeHint_Unknown FindingTypeHint = iota
	FindingTypeHint_Text
	// FindingTypeHint_CmpDiff is the output of cmp.Diff.
	FindingTypeHint_CmpDiff
	// FindingTypeHint_UnifiedDiff is a unified diff with "---", "+++" and "@@"
	// headers.
	FindingTypeHint_UnifiedDiff
	// FindingTypeHint_StringDiff is an inline diff, e.g. `ab[-c-]{+d+}`.
	FindingTypeHint_StringDiff
	// FindingTypeHint_List is a rendered list of values.
	FindingTypeHint_List
)

var findingTypeHintNames = map[FindingTypeHint]string{
	FindingTypeHint_Unknown:     "UNKNOWN",
	FindingTypeHint_Text:        "TEXT",
	FindingTypeHint_CmpDiff:     "CMP_DIFF",
	FindingTypeHint_UnifiedDiff: "UNIFIED_DIFF",
	FindingTypeHint_StringDiff:  "STRING_DIFF",
	FindingTypeHint_List:        "LIST",
}

func (h FindingTypeHint) String() string {
	if name, ok := findingTypeHintNames[h]; ok {
		return name
	}
	return fmt.Sprintf("FindingTypeHint(%d)", int32(h))
}

// Summary is the outcome of a failed comparison.
type Summary struct {
	// Comparison names the comparison which failed.
	Comparison *Comparison
	// Findings are the details of the failure, in rendering order.
	Findings []*Finding
	// SourceContext holds named stacks which give the location of the failure,
	// e.g. the "at" context added by LineContext.
	SourceContext []*Stack
}

// GetComparison returns Comparison, or nil.
func (s *Summary) GetComparison() *Comparison {
	if s == nil {
		return nil
	}
	return s.Comparison
}

// GetFindings returns Findings, or nil.
func (s *Summary) GetFindings() []*Finding {
	if s == nil {
		return nil
	}
	return s.Findings
}

// GetSourceContext returns SourceContext, or nil.
func (s *Summary) GetSourceContext() []*Stack {
	if s == nil {
		return nil
	}
	return s.SourceContext
}

// Finding returns the first Finding called `name`, or nil.
func (s *Summary) Finding(name string) *Finding {
	for _, f := range s.GetFindings() {
		if f.GetName() == name {
			return f
		}
	}
	return nil
}

// Comparison identifies a comparison, e.g. `should.Equal[int]`.
type Comparison struct {
	Name          string
	TypeArguments []string
}

// GetName returns Name, or "".
func (c *Comparison) GetName() string {
	if c == nil {
		return ""
	}
	return c.Name
}

// GetTypeArguments returns TypeArguments, or nil.
func (c *Comparison) GetTypeArguments() []string {
	if c == nil {
		return nil
	}
	return c.TypeArguments
}

// Finding is a single named fact about a failure.
//
// Value holds the rendered value, one entry per line.
type Finding struct {
	Name  string
	Value []string
	Level FindingLogLevel
	Type  FindingTypeHint
}

// GetName returns Name, or "".
func (f *Finding) GetName() string {
	if f == nil {
		return ""
	}
	return f.Name
}

// GetValue returns Value, or nil.
func (f *Finding) GetValue() []string {
	if f == nil {
		return nil
	}
	return f.Value
}

// GetLevel returns Level, or FindingLogLevel_Unknown.
func (f *Finding) GetLevel() FindingLogLevel {
	if f == nil {
		return FindingLogLevel_Unknown
	}
	return f.Level
}

// GetType returns Type, or FindingTypeHint_Unknown.
func (f *Finding) GetType() FindingTypeHint {
	if f == nil {
		return FindingTypeHint_Unknown
	}
	return f.Type
}

// Stack is a named list of source locations.
type Stack struct {
	Name   string
	Frames []*Stack_Frame
}

// GetName returns Name, or "".
func (s *Stack) GetName() string {
	if s == nil {
		return ""
	}
	return s.Name
}

// GetFrames returns Frames, or nil.
func (s *Stack) GetFrames() []*Stack_Frame {
	if s == nil {
		return nil
	}
	return s.Frames
}

// Stack_Frame is a single source location.
type Stack_Frame struct {
	Filename string
	Lineno   int64
}

// GetFilename returns Filename, or "".
func (f *Stack_Frame) GetFilename() string {
	if f == nil {
		return ""
	}
	return f.Filename
}

// GetLineno returns Lineno, or 0.
func (f *Stack_Frame) GetLineno() int64 {
	if f == nil {
		return 0
	}
	return f.Lineno
}
