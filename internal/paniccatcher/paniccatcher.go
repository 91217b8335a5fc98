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

// Package paniccatcher runs functions and captures the panics they raise.
package paniccatcher

import (
	"runtime/debug"
)

// Panic is a snapshot of a panic, containing both the panic's reason and the
// system stack.
type Panic struct {
	// Reason is the value supplied to the recover function.
	Reason any
	// Stack is a stack dump at the time of the panic.
	Stack string
}

// Catch recovers from panic. It should be used as a deferred call.
//
// If the surrounding function panics, `cb` is invoked with the captured
// panic. Otherwise `cb` is not called.
func Catch(cb func(p *Panic)) {
	if reason := recover(); reason != nil {
		cb(&Panic{
			Reason: reason,
			Stack:  string(debug.Stack()),
		})
	}
}

// PCall calls `f`. If `f` panics, the panic is captured and returned,
// otherwise PCall returns nil.
//
// A `panic(nil)` is reported with a *runtime.PanicNilError Reason.
func PCall(f func()) (caught *Panic) {
	defer Catch(func(p *Panic) {
		caught = p
	})
	f()
	return
}
