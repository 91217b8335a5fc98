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

package should

import (
	"fmt"
	"strings"
	"testing"

	"go.chromium.org/assertor/truth/comparison"
	"go.chromium.org/assertor/truth/failure"
)

var renderer = comparison.RenderCLI{Verbose: true}

// shouldPass returns a test function which checks that `s` is nil.
func shouldPass(s *failure.Summary) func(t *testing.T) {
	return func(t *testing.T) {
		t.Helper()

		if s != nil {
			t.Errorf("expected pass, got:\n%s", renderer.Summary("", s))
		}
	}
}

// shouldFail returns a test function which checks that `s` is non-nil and
// that its rendering contains every one of `substrings`.
func shouldFail(s *failure.Summary, substrings ...string) func(t *testing.T) {
	return func(t *testing.T) {
		t.Helper()

		if s == nil {
			t.Fatal("expected failure, got pass")
		}
		rendered := renderer.Summary("", s)
		for _, sub := range substrings {
			if !strings.Contains(rendered, sub) {
				t.Errorf("rendered failure is missing %q:\n%s", sub, rendered)
			}
		}
	}
}

// findingValue returns the value lines of the finding `name` of `s`, joined
// with newlines.
func findingValue(t *testing.T, s *failure.Summary, name string) string {
	t.Helper()

	f := s.Finding(name)
	if f == nil {
		t.Fatalf("no %q finding in:\n%s", name, renderer.Summary("", s))
	}
	return strings.Join(f.Value, "\n")
}

// mustPanicLike checks that `fn` panics with a value whose rendering contains
// `substr`.
func mustPanicLike(t *testing.T, substr string, fn func()) {
	t.Helper()

	defer func() {
		t.Helper()

		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q, got none", substr)
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, substr) {
			t.Fatalf("panic %q does not contain %q", msg, substr)
		}
	}()
	fn()
}
