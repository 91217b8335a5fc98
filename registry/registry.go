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

// Package registry holds the process-wide default cmp.Options used by
// typed.Diff and by the should.Match family of comparisons.
package registry

import (
	"reflect"
	"slices"
	"sync"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/testing/protocmp"
)

var mu sync.Mutex

// identityTypes are compared with `==` rather than being walked into.
var identityTypes = map[reflect.Type]bool{
	reflect.TypeFor[protoreflect.FileDescriptor]():      true,
	reflect.TypeFor[protoreflect.MessageDescriptor]():   true,
	reflect.TypeFor[protoreflect.FieldDescriptor]():     true,
	reflect.TypeFor[protoreflect.OneofDescriptor]():     true,
	reflect.TypeFor[protoreflect.EnumDescriptor]():      true,
	reflect.TypeFor[protoreflect.EnumValueDescriptor](): true,
	reflect.TypeFor[protoreflect.ServiceDescriptor]():   true,
	reflect.TypeFor[protoreflect.MethodDescriptor]():    true,

	reflect.TypeFor[reflect.Type](): true,
}

// IdentityComparer compares values of the descriptor and reflect.Type
// interfaces with `==`.
var IdentityComparer = cmp.FilterPath(func(p cmp.Path) bool {
	return identityTypes[p.Last().Type()]
}, cmp.Comparer(func(a, b any) bool {
	return a == b
}))

// FuncPointerTransformer makes func values comparable by their code pointer.
var FuncPointerTransformer = cmp.FilterPath(func(p cmp.Path) bool {
	return p.Last().Type().Kind() == reflect.Func
}, cmp.Transformer("func.pointer", func(f any) uintptr {
	if f == nil {
		return 0
	}
	return reflect.ValueOf(f).Pointer()
}))

var options = []cmp.Option{
	protocmp.Transform(),
	IdentityComparer,
	FuncPointerTransformer,
}

// RegisterCmpOption adds `opt` to the default options for all later
// comparisons in this process.
//
// This is meant to be called from init() or TestMain. Panics if `opt` is nil.
func RegisterCmpOption(opt cmp.Option) {
	if opt == nil {
		panic("registry.RegisterCmpOption: cannot register nil option")
	}
	mu.Lock()
	defer mu.Unlock()
	options = append(options, opt)
}

// GetCmpOptions returns a copy of the currently registered options.
func GetCmpOptions() []cmp.Option {
	mu.Lock()
	defer mu.Unlock()
	return slices.Clone(options)
}
