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
	"testing"
)

func TestBeNil(t *testing.T) {
	t.Parallel()

	var nilPtr *int
	var nilSlice []int
	var nilMap map[string]int
	var nilFunc func()
	x := 1

	t.Run("untyped nil", shouldPass(BeNil(nil)))
	t.Run("nil pointer", shouldPass(BeNil(nilPtr)))
	t.Run("nil slice", shouldPass(BeNil(nilSlice)))
	t.Run("nil map", shouldPass(BeNil(nilMap)))
	t.Run("nil func", shouldPass(BeNil(nilFunc)))

	t.Run("pointer", shouldFail(BeNil(&x), "should.BeNil", "Actual"))
	t.Run("empty slice", shouldFail(BeNil([]int{}), "Actual: []int{}"))
	t.Run("int", shouldFail(BeNil(1), "`int` cannot be checked for nil"))
	t.Run("error", shouldFail(BeNil(errTest), "Expected nil error."))
}

func TestNotBeNil(t *testing.T) {
	t.Parallel()

	var nilPtr *int
	x := 1

	t.Run("pointer", shouldPass(NotBeNil(&x)))
	t.Run("empty slice", shouldPass(NotBeNil([]int{})))

	t.Run("untyped nil", shouldFail(NotBeNil(nil), "should.NotBeNil"))
	t.Run("nil pointer", shouldFail(NotBeNil(nilPtr), "should.NotBeNil"))
	t.Run("int", shouldFail(NotBeNil(1), "cannot be checked for nil"))
}

func TestBeZero(t *testing.T) {
	t.Parallel()

	type record struct {
		Name string
		Age  int
	}

	t.Run("untyped nil", shouldPass(BeZero(nil)))
	t.Run("int", shouldPass(BeZero(0)))
	t.Run("string", shouldPass(BeZero("")))
	t.Run("struct", shouldPass(BeZero(record{})))

	t.Run("non-zero int", shouldFail(BeZero(1), "should.BeZero[int]", "Actual: 1"))
	t.Run("non-zero struct", shouldFail(BeZero(record{Age: 3}), "Age:3"))

	t.Run("not zero", shouldPass(NotBeZero("x")))
	t.Run("not zero fail", shouldFail(NotBeZero(record{}), "should.NotBeZero"))
	t.Run("not zero nil", shouldFail(NotBeZero(nil), "should.NotBeZero"))
}

func TestBeTrue(t *testing.T) {
	t.Parallel()

	t.Run("true", shouldPass(BeTrue(true)))
	t.Run("false", shouldFail(BeTrue(false), "should.BeTrue FAILED"))
	t.Run("be false", shouldPass(BeFalse(false)))
	t.Run("be false fail", shouldFail(BeFalse(true), "should.BeFalse FAILED"))
}
