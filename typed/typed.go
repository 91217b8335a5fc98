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

// Package typed has type-checked wrappers around go-cmp.
package typed

import (
	"github.com/google/go-cmp/cmp"

	"go.chromium.org/assertor/registry"
)

// Diff is cmp.Diff with both arguments required to have the same type.
//
// The options from the registry package are always applied first, followed
// by `opts`. An empty string means the values are equal.
func Diff[T any](want, got T, opts ...cmp.Option) string {
	return cmp.Diff(want, got, allOptions(opts)...)
}

// Equal is cmp.Equal with both arguments required to have the same type, and
// the registry options applied.
func Equal[T any](want, got T, opts ...cmp.Option) bool {
	return cmp.Equal(want, got, allOptions(opts)...)
}

func allOptions(opts []cmp.Option) []cmp.Option {
	return append(registry.GetCmpOptions(), opts...)
}
