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
// Package should contains the comparison.Func implementations for use with
// assert.That and check.That.
//
// Matchers which need a value are constructors returning a comparison.Func:
//
//	assert.That(t, got, should.ContainExactlyInOrder("a", "b"))
//	check.That(t, m, should.ContainEntry("a", 1))
//
// Matchers which need nothing are comparison.Funcs themselves, and the ones
// taking `any` are normally used with Loosely:
//
//	assert.Loosely(t, got, should.BeEmpty)
//
// The collection and map matchers are built on the diff package. Their
// failures list missing and unexpected elements (and for maps, entries with
// different values) before they complain about order.
//
// Ordered map matchers take a diff.MapLike, so the type argument of
// assert.That must be given explicitly:
//
//	assert.That[diff.MapLike[string, int]](t, om,
//	  should.ContainExactlyEntriesInOrder[string, int](want))
package should
