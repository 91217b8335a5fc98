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
	"math"
	"reflect"

	"golang.org/x/exp/constraints"

	"go.chromium.org/assertor/truth/comparison"
	"go.chromium.org/assertor/truth/failure"
)

func misuse[T any](cmpName, format string, args ...any) comparison.Func[T] {
	return func(t T) *failure.Summary {
		return comparison.NewSummaryBuilder(cmpName, t).
			Because(format, args...).
			Summary
	}
}

func almostEqualComputeEpsilon[T constraints.Float](cmpName string, bits int, epsilon ...T) (ep T, errFn comparison.Func[T]) {
	if len(epsilon) > 1 {
		return ep, misuse[T](cmpName, "%s: `epsilon` is a single optional value, got %d values", cmpName, len(epsilon))
	}

	if len(epsilon) == 1 {
		ep = epsilon[0]
	} else if bits == 32 {
		ep = T(math.Nextafter32(1, 2) - 1)
	} else {
		ep = T(math.Nextafter(1, 2) - 1)
	}
	if ep < 0 {
		return ep, misuse[T](cmpName, "%s: `epsilon` is negative: %v", cmpName, ep)
	}
	return ep, nil
}

func abs[T constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// AlmostEqual returns a comparison Func which checks if a floating point value
// is within `epsilon` of `target`.
//
// By default, this computes `epsilon` to be `math.Nextafter(1, 2) - 1` (or
// the 32 bit equivalent). You may optionally pass a (single, positive)
// explicit epsilon value.
func AlmostEqual[T constraints.Float](target T, epsilon ...T) comparison.Func[T] {
	const cmpName = "should.AlmostEqual"
	ep, errFn := almostEqualComputeEpsilon(cmpName, reflect.TypeFor[T]().Bits(), epsilon...)
	if errFn != nil {
		return errFn
	}

	return func(actual T) *failure.Summary {
		delta := actual - target
		if abs(delta) <= ep {
			return nil
		}

		return comparison.NewSummaryBuilder(cmpName, target).
			Because("Actual value was %g off of target.", delta).
			Actual(actual).
			AddFindingf("Expected", "%g ± %g", target, ep).
			Summary
	}
}

// ApproxOption adjusts the tolerance of BeApproximately.
type ApproxOption func(*approxTolerance)

type approxTolerance struct {
	rel float64
	abs float64
}

// Default tolerances of BeApproximately.
const (
	DefaultRelTol = 1e-5
	DefaultAbsTol = 1e-8
)

// RelTol sets the relative tolerance of BeApproximately.
func RelTol(tol float64) ApproxOption {
	return func(a *approxTolerance) { a.rel = tol }
}

// AbsTol sets the absolute tolerance of BeApproximately.
func AbsTol(tol float64) ApproxOption {
	return func(a *approxTolerance) { a.abs = tol }
}

// BeApproximately returns a comparison Func which checks that a floating
// point value is close to `expected`:
//
//	|actual - expected| <= abs + rel * |expected|
//
// The tolerances default to DefaultRelTol and DefaultAbsTol, and can be
// changed with RelTol and AbsTol. NaN is never approximately equal to
// anything.
func BeApproximately[T constraints.Float](expected T, opts ...ApproxOption) comparison.Func[T] {
	const cmpName = "should.BeApproximately"

	tol := approxTolerance{rel: DefaultRelTol, abs: DefaultAbsTol}
	for _, opt := range opts {
		opt(&tol)
	}
	if tol.rel < 0 || tol.abs < 0 {
		return misuse[T](cmpName, "%s: tolerances must not be negative: rel=%g abs=%g", cmpName, tol.rel, tol.abs)
	}
	if math.IsNaN(float64(expected)) {
		return misuse[T](cmpName, "Cannot compare to float(NaN), use should.BeNaN instead.")
	}

	allowed := tol.abs + tol.rel*math.Abs(float64(expected))

	return func(actual T) *failure.Summary {
		delta := float64(actual) - float64(expected)
		if math.IsInf(float64(expected), 0) {
			// Only the same infinity is close to an infinity.
			if float64(actual) == float64(expected) {
				return nil
			}
		} else if math.Abs(delta) <= allowed {
			return nil
		}

		return comparison.NewSummaryBuilder(cmpName, expected).
			Because("Actual value was %g off of target, allowed difference is %g.", delta, allowed).
			Actual(actual).
			AddFindingf("Expected", "%g ± %g (rel=%g, abs=%g)", expected, allowed, tol.rel, tol.abs).
			Summary
	}
}
