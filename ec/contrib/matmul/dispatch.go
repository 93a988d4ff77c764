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

package matmul

import "github.com/ajroetker/go-eigenc/ec"

// Backend returns the name of the multiply path compiled into this binary:
// "fallback" or "blas".
func Backend() string {
	return backendName
}

// GEMM computes c = a·b, overwriting c.
//
// a is M×K, b is K×N and c must be M×N. Shapes are checked before c is
// written. c must not share storage with a or b; aliasing is not detected
// and gives undefined results.
func GEMM[T ec.Floats](a, b, c ec.Matrix[T]) error {
	if err := checkShapes("GEMM", a, b, c); err != nil {
		return err
	}
	gemm(a, b, c)
	return nil
}

// GEMMReference computes c = a·b with BaseGEMM regardless of the compiled
// backend. It has the same checks as GEMM.
func GEMMReference[T ec.Floats](a, b, c ec.Matrix[T]) error {
	if err := checkShapes("GEMMReference", a, b, c); err != nil {
		return err
	}
	BaseGEMM(a.Data, b.Data, c.Data, a.Rows, b.Cols, a.Cols)
	return nil
}

func checkShapes[T ec.Floats](op string, a, b, c ec.Matrix[T]) error {
	if err := ec.ValidateAll(op, []string{"a", "b", "c"}, a, b, c); err != nil {
		return err
	}
	if a.Cols != b.Rows {
		return ec.ShapeError(op, "a is %dx%d, b is %dx%d", a.Rows, a.Cols, b.Rows, b.Cols)
	}
	if c.Rows != a.Rows || c.Cols != b.Cols {
		return ec.ShapeError(op, "c is %dx%d, want %dx%d", c.Rows, c.Cols, a.Rows, b.Cols)
	}
	return nil
}

// GEMMFloat32 is the non-generic version of GEMM for float32.
func GEMMFloat32(a, b, c ec.MatrixF32) error {
	return GEMM(a, b, c)
}

// GEMMFloat64 is the non-generic version of GEMM for float64.
func GEMMFloat64(a, b, c ec.MatrixF64) error {
	return GEMM(a, b, c)
}
