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
	"reflect"
	"sync"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/proto"

	"go.chromium.org/assertor/truth/comparison"
	"go.chromium.org/assertor/truth/failure"
	"go.chromium.org/assertor/typed"
)

func diffSummary[T any](cmpName string, expected, actual T, diff string) *failure.Summary {
	return comparison.NewSummaryBuilder(cmpName, expected).
		Actual(actual).WarnIfLong().
		Expected(expected).WarnIfLong().
		AddCmpDiff(diff).
		Summary
}

// Match returns a comparison.Func which checks if the actual value matches
// `expected`, as determined by typed.Diff.
//
// This includes the default options from the registry package, which make
// protobuf messages compare by content. Additional cmp.Options may be passed
// in `opts`.
//
// Structs with unexported fields make Match panic (as cmp.Diff does); use
// should.Resemble for those, or pass an explicit option.
func Match[T any](expected T, opts ...cmp.Option) comparison.Func[T] {
	const cmpName = "should.Match"

	return func(actual T) *failure.Summary {
		if diff := typed.Diff(expected, actual, opts...); diff != "" {
			return diffSummary(cmpName, expected, actual, diff)
		}
		return nil
	}
}

// Resemble is like Match, but it also compares unexported fields of any
// struct types reachable from T.
//
// Protobuf messages are still compared by content only.
func Resemble[T any](expected T, opts ...cmp.Option) comparison.Func[T] {
	const cmpName = "should.Resemble"

	return func(actual T) *failure.Summary {
		allOpts := append(extractAllowUnexportedFrom(reflect.TypeFor[T]()), opts...)
		if diff := typed.Diff(expected, actual, allOpts...); diff != "" {
			return diffSummary(cmpName, expected, actual, diff)
		}
		return nil
	}
}

var protoMessageType = reflect.TypeFor[proto.Message]()

var (
	resembleOptionCacheMu sync.Mutex
	// resembleOptionCache maps a struct type to the AllowUnexported option for
	// it, or to nil if it has no unexported fields.
	resembleOptionCache = map[reflect.Type]cmp.Option{}
)

func resetOptionCache() {
	resembleOptionCacheMu.Lock()
	defer resembleOptionCacheMu.Unlock()
	resembleOptionCache = map[reflect.Type]cmp.Option{}
}

// extractAllowUnexportedFrom walks the type graph rooted at `typ` and returns
// one cmp.AllowUnexported option for each struct type with unexported fields.
func extractAllowUnexportedFrom(typ reflect.Type) []cmp.Option {
	resembleOptionCacheMu.Lock()
	defer resembleOptionCacheMu.Unlock()

	var ret []cmp.Option
	visited := map[reflect.Type]bool{}

	var walk func(t reflect.Type)
	walk = func(t reflect.Type) {
		if t == nil || visited[t] {
			return
		}
		visited[t] = true

		if t.Implements(protoMessageType) || reflect.PointerTo(t).Implements(protoMessageType) {
			return
		}

		switch t.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Array, reflect.Chan:
			walk(t.Elem())
		case reflect.Map:
			walk(t.Key())
			walk(t.Elem())
		case reflect.Struct:
			opt, cached := resembleOptionCache[t]
			if !cached {
				for i := 0; i < t.NumField(); i++ {
					if !t.Field(i).IsExported() {
						opt = cmp.AllowUnexported(reflect.New(t).Elem().Interface())
						break
					}
				}
				resembleOptionCache[t] = opt
			}
			if opt != nil {
				ret = append(ret, opt)
			}
			for i := 0; i < t.NumField(); i++ {
				walk(t.Field(i).Type)
			}
		}
	}
	walk(typ)

	return ret
}
