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
	"errors"
	"fmt"
	"testing"
)

func TestPanic(t *testing.T) {
	t.Parallel()

	t.Run("panics", shouldPass(Panic(func() { panic("boom") })))
	t.Run("panics with nil", shouldPass(Panic(func() { panic(nil) })))
	t.Run("does not panic", shouldFail(Panic(func() {}), "function did not panic"))
}

func TestNotPanic(t *testing.T) {
	t.Parallel()

	t.Run("does not panic", shouldPass(NotPanic(func() {})))
	t.Run("panics", shouldFail(NotPanic(func() { panic("boom") }), "Panic: boom", "Stack"))
}

func TestPanicLikeString(t *testing.T) {
	t.Parallel()

	t.Run("string", shouldPass(PanicLikeString("oo")(func() { panic("boom") })))
	t.Run("error", shouldPass(PanicLikeString("oo")(func() { panic(errors.New("boom")) })))

	t.Run("missing substring", shouldFail(PanicLikeString("zap")(func() { panic("boom") }),
		"Panic is missing substring.", `Actual: "boom"`))
	t.Run("other type", shouldFail(PanicLikeString("zap")(func() { panic(5) }),
		"neither error nor string", "Panic: 5"))
	t.Run("no panic", shouldFail(PanicLikeString("zap")(func() {}), "function did not panic"))
}

func TestPanicLikeError(t *testing.T) {
	t.Parallel()

	t.Run("same", shouldPass(PanicLikeError(errTest)(func() { panic(errTest) })))
	t.Run("wrapped", shouldPass(PanicLikeError(errTest)(func() { panic(fmt.Errorf("oh no: %w", errTest)) })))

	t.Run("different", shouldFail(PanicLikeError(errTest)(func() { panic(errors.New("test error")) }),
		"error does not match target"))
	t.Run("not an error", shouldFail(PanicLikeError(errTest)(func() { panic("test error") }),
		"caught panic is not an error"))
	t.Run("no panic", shouldFail(PanicLikeError(errTest)(func() {}), "function did not panic"))
	t.Run("nil target", shouldFail(PanicLikeError(nil)(func() { panic(errTest) }), "use runtime.PanicNilError"))
}

func TestPanicLike(t *testing.T) {
	t.Parallel()

	t.Run("string", shouldPass(PanicLike("oo")(func() { panic("boom") })))
	t.Run("error", shouldPass(PanicLike(errTest)(func() { panic(errTest) })))

	t.Run("bad target type", func(t *testing.T) {
		mustPanicLike(t, "expects a string or an error, got int", func() {
			PanicLike(5)
		})
	})
}
