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
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"go.chromium.org/assertor/truth/comparison"
	"go.chromium.org/assertor/truth/failure"
	"go.chromium.org/assertor/typed"
)

func mkFailure() *failure.Summary {
	return comparison.NewSummaryBuilder("option_test/mkFailure").Actual(1).Summary
}

func currentLine() int64 {
	_, _, line, _ := runtime.Caller(1)
	return int64(line)
}

func checkAtContext(t *testing.T, s *failure.Summary, line int64) {
	t.Helper()

	ctx := s.SourceContext
	if len(ctx) != 1 {
		t.Fatalf("failure.SourceContext len wrong: %d", len(ctx))
	}
	atCtx := ctx[0]
	if diff := typed.Diff(atCtx.Name, "at"); diff != "" {
		t.Fatal(diff)
	}
	if len(atCtx.Frames) != 1 {
		t.Fatalf("failure.SourceContext[0].Frames len wrong: %d", len(atCtx.Frames))
	}
	frame := atCtx.Frames[0]
	if diff := typed.Diff(filepath.Base(frame.Filename), "option_test.go"); diff != "" {
		t.Fatalf("unexpected filename: %s", diff)
	}
	if diff := typed.Diff(frame.Lineno, line); diff != "" {
		t.Fatalf("unexpected line number: %s", diff)
	}
}

func TestLineContext(t *testing.T) {
	t.Parallel()

	t.Run("direct", func(t *testing.T) {
		opt, line := LineContext(), currentLine()
		s := ApplyAllOptions(mkFailure(), []Option{opt})
		checkAtContext(t, s, line)
	})

	t.Run("helper", func(t *testing.T) {
		helper := func() Option {
			return LineContext(1)
		}
		opt, line := helper(), currentLine()
		s := ApplyAllOptions(mkFailure(), []Option{opt})
		checkAtContext(t, s, line)
	})

	t.Run("too many skips", func(t *testing.T) {
		defer func() {
			r := recover()
			if r == nil || !strings.Contains(r.(error).Error(), "more than one value") {
				t.Errorf("recover() = %v", r)
			}
		}()
		LineContext(1, 2)
	})
}

func TestExplain(t *testing.T) {
	t.Parallel()

	s := ApplyAllOptions(mkFailure(), []Option{Explain("row %d", 3)})
	if len(s.Findings) != 2 {
		t.Fatalf("findings = %v", s.Findings)
	}
	if diff := typed.Diff(s.Findings[0], &failure.Finding{Name: "Explanation", Value: []string{"row 3"}}); diff != "" {
		t.Errorf("unexpected explanation (-want +got): %s", diff)
	}
	if diff := typed.Diff(s.Findings[1].Name, "Actual"); diff != "" {
		t.Error(diff)
	}
}

type badOption struct{}

func (badOption) truthOption() {}

func TestApplyAllOptions(t *testing.T) {
	t.Parallel()

	t.Run("nil summary", func(t *testing.T) {
		if s := ApplyAllOptions(nil, []Option{Explain("x"), badOption{}}); s != nil {
			t.Errorf("got %v, want nil", s)
		}
	})

	t.Run("nil option", func(t *testing.T) {
		s := ApplyAllOptions(mkFailure(), []Option{nil, Explain("x")})
		if len(s.Findings) != 2 {
			t.Errorf("findings = %v", s.Findings)
		}
	})

	t.Run("unknown option", func(t *testing.T) {
		defer func() {
			r := recover()
			if r == nil || !strings.Contains(r.(error).Error(), "unknown Option type truth.badOption") {
				t.Errorf("recover() = %v", r)
			}
		}()
		ApplyAllOptions(mkFailure(), []Option{badOption{}})
	})
}
