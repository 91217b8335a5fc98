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

// Package test_helper has a fake testing.TB for testing the assert and check
// packages.
package test_helper

import (
	"fmt"
	"strings"
	"testing"
)

// ExpectFailure wraps a *testing.T, recording Log calls and swallowing
// Fail/FailNow.
//
// Call Check at the end of the test case to verify that the code under test
// failed and logged the expected messages.
type ExpectFailure struct {
	*testing.T

	logCalls []string
	fail     bool
	failNow  bool
}

var _ testing.TB = (*ExpectFailure)(nil)

// NewExpectFailure returns an ExpectFailure wrapping `t`.
func NewExpectFailure(t *testing.T) *ExpectFailure {
	return &ExpectFailure{T: t}
}

// Log records a log line, joining `args` with spaces like testing.TB.Log.
func (e *ExpectFailure) Log(args ...any) {
	formatted := make([]string, len(args))
	for i, arg := range args {
		formatted[i] = fmt.Sprint(arg)
	}
	e.logCalls = append(e.logCalls, strings.Join(formatted, " "))
}

// Logf records a formatted log line.
func (e *ExpectFailure) Logf(format string, args ...any) {
	e.logCalls = append(e.logCalls, fmt.Sprintf(format, args...))
}

// Fail records a failure.
func (e *ExpectFailure) Fail() {
	e.fail = true
}

// FailNow records a failure, without stopping the test.
func (e *ExpectFailure) FailNow() {
	e.fail = true
	e.failNow = true
}

// Logs returns all recorded log lines.
func (e *ExpectFailure) Logs() []string {
	return e.logCalls
}

// CalledFailNow returns true if FailNow was called.
func (e *ExpectFailure) CalledFailNow() bool {
	return e.failNow
}

// Check fails the real test unless Fail or FailNow was called, and every one
// of `msgs` is a substring of some recorded log line.
func (e *ExpectFailure) Check(msgs ...string) {
	e.Helper()

	if !e.fail {
		e.T.Log("ExpectFailure: Test case did not call Fail/FailNow.")
		e.T.Fail()
	}

	var missingMsgs []string
	for _, msg := range msgs {
		var ok bool
		for _, logged := range e.logCalls {
			if strings.Contains(logged, msg) {
				ok = true
				break
			}
		}
		if !ok {
			missingMsgs = append(missingMsgs, msg)
		}
	}
	if len(missingMsgs) > 0 {
		e.T.Log("ExpectFailure: Missing Check messages:")
		for _, msg := range missingMsgs {
			e.T.Log(" *", msg)
		}

		e.T.Log("Actual logs:")
		for _, msg := range e.logCalls {
			e.T.Log(msg)
		}
		e.T.Fail()
	}
	if e.T.Failed() {
		e.T.FailNow()
	}
}
