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

// Package comparison defines comparison.Func, the building block of every
// matcher, and the helpers to build and render a failure.Summary.
package comparison

import (
	"fmt"
	"reflect"
	"runtime"

	"go.chromium.org/assertor/truth/failure"
)

// Func takes in a value-to-be-compared and returns a failure.Summary if the
// value does not meet the expectation of this comparison.Func.
//
// Example:
//
//	func BeTrue(value bool) *failure.Summary {
//	  if !value {
//	    return comparison.NewSummaryBuilder("should.BeTrue").Summary
//	  }
//	  return nil
//	}
//
// In this example, BeTrue is a comparison.Func.
type Func[T any] func(T) *failure.Summary

// WithLineContext returns a transformed Func to add an "at" SourceContext with
// one frame containing the filename and line number of the frame calling
// WithLineContext, plus skipFrames[0] (if provided).
//
// This is mostly useful inside of test helpers marked with t.Helper(), where
// the location reported by the testing package is the helper's caller:
//
//	check.That(t, actual.Field, should.Equal(expected.Field).WithLineContext())
func (cmp Func[T]) WithLineContext(skipFrames ...int) Func[T] {
	if len(skipFrames) > 1 {
		panic(fmt.Errorf(
			"comparison.Func.WithLineContext: skipFrames has more than one value: %v", skipFrames))
	}

	skip := 1
	if len(skipFrames) > 0 {
		skip = 1 + skipFrames[0]
	}
	_, filename, lineno, ok := runtime.Caller(skip)
	if !ok {
		return cmp
	}

	return func(actual T) *failure.Summary {
		ret := cmp(actual)
		if ret != nil {
			ret.SourceContext = append(ret.SourceContext, &failure.Stack{
				Name:   "at",
				Frames: []*failure.Stack_Frame{{Filename: filename, Lineno: int64(lineno)}},
			})
		}
		return ret
	}
}

// CastCompare runs this Func against an untyped `actual`.
//
// If `actual` is already a T it is used directly. An untyped nil becomes the
// zero T when T is nillable. Otherwise `actual` is converted to T with
// reflect, provided that every value of the type of `actual` would survive
// the conversion. This is decided by type, not by value: int8 converts to
// int16, but int(100) does not convert to int8.
//
// Numbers only widen within their own family (signed, unsigned, float or
// complex), except that an unsigned integer converts to a strictly wider
// signed one. Integers are never turned into strings.
//
// If no such conversion exists, a failing Summary is returned without
// running the comparison.
func (cmp Func[T]) CastCompare(actual any) *failure.Summary {
	if typed, ok := actual.(T); ok {
		return cmp(typed)
	}

	converted, ok := losslessConvert[T](actual)
	if !ok {
		var zero T
		return NewSummaryBuilder("comparison.CastCompare", zero).
			Because("Cannot losslessly convert `%T` to `%s`.", actual, reflect.TypeFor[T]()).
			Actual(actual).
			Summary
	}
	return cmp(converted)
}

func losslessConvert[T any](actual any) (ret T, ok bool) {
	target := reflect.TypeFor[T]()

	if actual == nil {
		switch target.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			return ret, true
		}
		return ret, false
	}

	val := reflect.ValueOf(actual)
	if !val.CanConvert(target) {
		return ret, false
	}

	src, dst := numberFamily(val.Kind()), numberFamily(target.Kind())
	switch {
	case src.isInteger() && target.Kind() == reflect.String:
		return ret, false
	case src == notNumber || dst == notNumber:
	case src == dst:
		if val.Type().Bits() > target.Bits() {
			return ret, false
		}
	case src == unsignedInt && dst == signedInt:
		if val.Type().Bits() >= target.Bits() {
			return ret, false
		}
	default:
		return ret, false
	}

	return val.Convert(target).Interface().(T), true
}

type family int

const (
	notNumber family = iota
	signedInt
	unsignedInt
	floating
	complexNum
)

func (f family) isInteger() bool { return f == signedInt || f == unsignedInt }

func numberFamily(k reflect.Kind) family {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signedInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return unsignedInt
	case reflect.Float32, reflect.Float64:
		return floating
	case reflect.Complex64, reflect.Complex128:
		return complexNum
	}
	return notNumber
}
