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

//go:build blas

package matmul

import (
	"github.com/ajroetker/go-eigenc/ec"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
)

const backendName = "blas"

// gemm delegates to the registered BLAS implementation (gonum's by default;
// callers may install a cgo one with blas32.Use / blas64.Use).
//
// Layout: row-major, no transpose, leading dimension = column count,
// alpha = 1, beta = 0.
func gemm[T ec.Floats](a, b, c ec.Matrix[T]) {
	m, n, k := a.Rows, b.Cols, a.Cols
	if m == 0 || n == 0 {
		return
	}
	if k == 0 {
		// BLAS rejects a zero leading dimension; the product is all zeros.
		clear(c.Data)
		return
	}

	switch cd := any(c.Data).(type) {
	case []float32:
		blas32.Gemm(blas.NoTrans, blas.NoTrans, 1,
			blas32.General{Rows: m, Cols: k, Stride: k, Data: any(a.Data).([]float32)},
			blas32.General{Rows: k, Cols: n, Stride: n, Data: any(b.Data).([]float32)},
			0,
			blas32.General{Rows: m, Cols: n, Stride: n, Data: cd})
	case []float64:
		blas64.Gemm(blas.NoTrans, blas.NoTrans, 1,
			blas64.General{Rows: m, Cols: k, Stride: k, Data: any(a.Data).([]float64)},
			blas64.General{Rows: k, Cols: n, Stride: n, Data: any(b.Data).([]float64)},
			0,
			blas64.General{Rows: m, Cols: n, Stride: n, Data: cd})
	}
}
