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
	"strings"
	"testing"

	"go.chromium.org/assertor/truth/comparison"
)

func fakeEnv(vars map[string]string) getenvFn {
	return func(key string) string { return vars[key] }
}

func TestColorizeFromEnv(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{"always", map[string]string{"TRUTH_COLOR": "always", "NO_COLOR": "1"}, true},
		{"always (case)", map[string]string{"TRUTH_COLOR": "ALWAYS", "TERM": "dumb"}, true},
		{"never", map[string]string{"TRUTH_COLOR": "never"}, false},
		{"NO_COLOR", map[string]string{"NO_COLOR": "1"}, false},
		{"dumb terminal", map[string]string{"TRUTH_COLOR": "auto", "TERM": "dumb"}, false},
	}
	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := colorizeFromEnv(fakeEnv(tt.env)); got != tt.want {
				t.Errorf("colorizeFromEnv(%v) = %v, want %v", tt.env, got, tt.want)
			}
		})
	}
}

func TestVerboseSetting(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value       string
		wantVerbose bool
		wantSet     bool
	}{
		{"", false, false},
		{"nope", false, false},
		{"1", true, true},
		{"true", true, true},
		{"false", false, true},
	}
	for _, tt := range cases {
		verbose, set := verboseSetting(fakeEnv(map[string]string{"TRUTH_VERBOSE": tt.value}))
		if verbose != tt.wantVerbose || set != tt.wantSet {
			t.Errorf("verboseSetting(%q) = %v, %v; want %v, %v", tt.value, verbose, set, tt.wantVerbose, tt.wantSet)
		}
	}
}

type recordingTB struct {
	logs []string
}

func (*recordingTB) Helper()  {}
func (*recordingTB) Fail()    {}
func (*recordingTB) FailNow() {}
func (r *recordingTB) Log(args ...any) {
	for _, a := range args {
		r.logs = append(r.logs, a.(string))
	}
}

func TestReport(t *testing.T) {
	t.Parallel()

	t.Run("nil summary", func(t *testing.T) {
		tb := &recordingTB{}
		Report(tb, "assert.That", nil)
		if len(tb.logs) != 0 {
			t.Errorf("logs = %q", tb.logs)
		}
	})

	t.Run("single block", func(t *testing.T) {
		tb := &recordingTB{}
		s := comparison.NewSummaryBuilder("should.Equal", 1).
			Actual(1).
			Expected(2).
			Summary
		Report(tb, "assert.That", s)
		if len(tb.logs) != 1 {
			t.Fatalf("logs = %q", tb.logs)
		}
		want := strings.Join([]string{
			"assert.That should.Equal[int] FAILED",
			"Actual: 1",
			"Expected: 2",
		}, "\n")
		if tb.logs[0] != want {
			t.Errorf("got:\n%s\nwant:\n%s", tb.logs[0], want)
		}
	})
}
