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
	"fmt"
	"runtime"

	"go.chromium.org/assertor/truth/failure"
)

// Option is an optional argument to assert.That and friends, which adjusts
// the failure.Summary produced by a failing comparison.
type Option interface {
	truthOption()
}

// summaryModifier is an Option which edits a failing Summary in place.
type summaryModifier func(*failure.Summary)

func (summaryModifier) truthOption() {}

// ApplyAllOptions applies `opts` to `summary` and returns it.
//
// A nil summary (a passing comparison) is returned unchanged.
func ApplyAllOptions(summary *failure.Summary, opts []Option) *failure.Summary {
	if summary == nil {
		return nil
	}
	for _, opt := range opts {
		switch o := opt.(type) {
		case summaryModifier:
			o(summary)
		case nil:
		default:
			panic(fmt.Errorf("truth.ApplyAllOptions: unknown Option type %T", opt))
		}
	}
	return summary
}

// LineContext returns an Option which adds an "at" SourceContext with the
// filename and line number of the caller of LineContext, `skipFrames` frames
// further up the stack.
//
// This is the Option form of comparison.Func.WithLineContext:
//
//	func checkRow(t testing.TB, row, expected Row) {
//	  t.Helper()
//	  check.That(t, row.ID, should.Equal(expected.ID), truth.LineContext())
//	}
func LineContext(skipFrames ...int) Option {
	if len(skipFrames) > 1 {
		panic(fmt.Errorf(
			"truth.LineContext: skipFrames has more than one value: %v", skipFrames))
	}
	skip := 1
	if len(skipFrames) > 0 {
		skip += skipFrames[0]
	}

	_, filename, lineno, ok := runtime.Caller(skip)
	return summaryModifier(func(s *failure.Summary) {
		if !ok {
			return
		}
		s.SourceContext = append(s.SourceContext, &failure.Stack{
			Name:   "at",
			Frames: []*failure.Stack_Frame{{Filename: filename, Lineno: int64(lineno)}},
		})
	})
}

// Explain returns an Option which adds an "Explanation" finding, rendered
// with fmt.Sprintf, to the front of a failing Summary.
func Explain(format string, args ...any) Option {
	return summaryModifier(func(s *failure.Summary) {
		s.Findings = append([]*failure.Finding{{
			Name:  "Explanation",
			Value: []string{fmt.Sprintf(format, args...)},
		}}, s.Findings...)
	})
}
