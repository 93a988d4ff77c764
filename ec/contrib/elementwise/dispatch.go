// Copyright 2025 go-eigenc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package elementwise

import (
	"github.com/ajroetker/go-eigenc/ec"
)

// Add computes c = a + b. All three matrices must share one shape.
// On error c is left untouched.
func Add[T ec.Floats](a, b, c ec.Matrix[T]) error {
	if err := checkSameShape("Add", a, b, c); err != nil {
		return err
	}
	BaseAdd(a.Data, b.Data, c.Data)
	return nil
}

// Sub computes c = a - b. All three matrices must share one shape.
// On error c is left untouched.
func Sub[T ec.Floats](a, b, c ec.Matrix[T]) error {
	if err := checkSameShape("Sub", a, b, c); err != nil {
		return err
	}
	BaseSub(a.Data, b.Data, c.Data)
	return nil
}

// Transpose writes aᵀ into t, which must be a.Cols×a.Rows. In-place
// transposition is not supported: t sharing a's storage is rejected when it
// can be detected and undefined otherwise.
func Transpose[T ec.Floats](a, t ec.Matrix[T]) error {
	if err := ec.ValidateAll("Transpose", []string{"a", "t"}, a, t); err != nil {
		return err
	}
	if t.Rows != a.Cols || t.Cols != a.Rows {
		return ec.ShapeError("Transpose", "input %dx%d, output %dx%d", a.Rows, a.Cols, t.Rows, t.Cols)
	}
	if ec.SameStorage(a, t) {
		return ec.OpError("Transpose", ec.ErrAliased)
	}
	BaseTranspose(a.Data, a.Rows, a.Cols, t.Data)
	return nil
}

func checkSameShape[T ec.Floats](op string, a, b, c ec.Matrix[T]) error {
	if err := ec.ValidateAll(op, []string{"a", "b", "c"}, a, b, c); err != nil {
		return err
	}
	if !a.SameShape(b) || !a.SameShape(c) {
		return ec.ShapeError(op, "a %dx%d, b %dx%d, c %dx%d", a.Rows, a.Cols, b.Rows, b.Cols, c.Rows, c.Cols)
	}
	return nil
}

// AddFloat32 is the non-generic version of Add for float32.
func AddFloat32(a, b, c ec.MatrixF32) error {
	return Add(a, b, c)
}

// AddFloat64 is the non-generic version of Add for float64.
func AddFloat64(a, b, c ec.MatrixF64) error {
	return Add(a, b, c)
}

// SubFloat32 is the non-generic version of Sub for float32.
func SubFloat32(a, b, c ec.MatrixF32) error {
	return Sub(a, b, c)
}

// SubFloat64 is the non-generic version of Sub for float64.
func SubFloat64(a, b, c ec.MatrixF64) error {
	return Sub(a, b, c)
}

// TransposeFloat32 is the non-generic version of Transpose for float32.
func TransposeFloat32(a, t ec.MatrixF32) error {
	return Transpose(a, t)
}

// TransposeFloat64 is the non-generic version of Transpose for float64.
func TransposeFloat64(a, t ec.MatrixF64) error {
	return Transpose(a, t)
}
