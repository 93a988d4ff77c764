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

package ops

import (
	"github.com/ajroetker/go-eigenc/ec"
	"github.com/ajroetker/go-eigenc/ec/contrib/decomp"
	"github.com/ajroetker/go-eigenc/ec/contrib/elementwise"
	"github.com/ajroetker/go-eigenc/ec/contrib/matmul"
)

// Add computes c = a + b.
func Add[T ec.Floats](a, b, c ec.Matrix[T]) error {
	return elementwise.Add(a, b, c)
}

// Sub computes c = a - b.
func Sub[T ec.Floats](a, b, c ec.Matrix[T]) error {
	return elementwise.Sub(a, b, c)
}

// Transpose writes aᵀ into t.
func Transpose[T ec.Floats](a, t ec.Matrix[T]) error {
	return elementwise.Transpose(a, t)
}

// Mul computes c = a·b on the compiled-in multiply backend.
func Mul[T ec.Floats](a, b, c ec.Matrix[T]) error {
	return matmul.GEMM(a, b, c)
}

// LU factors the square matrix a into unit lower-triangular l and upper
// triangular u, without pivoting.
func LU[T ec.Floats](a, l, u ec.Matrix[T]) error {
	return decomp.LU(a, l, u)
}

// QR factors a (rows >= cols) into q with orthonormal columns and upper
// triangular r, by classical Gram–Schmidt.
func QR[T ec.Floats](a, q, r ec.Matrix[T]) error {
	return decomp.QR(a, q, r)
}
