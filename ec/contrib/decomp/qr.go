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

package decomp

import (
	stdmath "math"

	"github.com/ajroetker/go-eigenc/ec"
)

// BaseQR factors the m×n row-major matrix a (m >= n) into q (m×n, orthonormal
// columns) and r (n×n, upper triangular) with classical Gram–Schmidt.
//
// For each column k:
//  1. q[:,k] = a[:,k] - sum_{j<k} r[j,k] q[:,j], where r[j,k] was filled in
//     when column j was finalized and projects the original a[:,k].
//  2. r[k,k] = ||q[:,k]||, then q[:,k] /= r[k,k].
//  3. r[k,j] = q[:,k] · a[:,j] for every j > k.
//
// The candidate column is built in place in q, so nothing is allocated.
// r's strictly lower part is zeroed. q and r must not share storage with a.
func BaseQR[T ec.Floats](a, q, r []T, m, n int) {
	if n == 0 {
		return
	}
	clear(r[:n*n])

	for k := range n {
		for i := range m {
			v := a[i*n+k]
			for j := range k {
				v -= r[j*n+k] * q[i*n+j]
			}
			q[i*n+k] = v
		}

		var ss T
		for i := range m {
			v := q[i*n+k]
			ss += v * v
		}
		norm := T(stdmath.Sqrt(float64(ss)))
		r[k*n+k] = norm
		for i := range m {
			q[i*n+k] /= norm
		}

		for j := k + 1; j < n; j++ {
			var dot T
			for i := range m {
				dot += q[i*n+k] * a[i*n+j]
			}
			r[k*n+j] = dot
		}
	}
}

// QR factors a into q·r. a is m×n with m >= n, q must be m×n and r n×n.
// Shape errors are returned before q or r is written. Rank deficiency is not
// an error and produces Inf/NaN entries.
func QR[T ec.Floats](a, q, r ec.Matrix[T]) error {
	if err := ec.ValidateAll("QR", []string{"a", "q", "r"}, a, q, r); err != nil {
		return err
	}
	if a.Rows < a.Cols {
		return ec.ShapeError("QR", "a is %dx%d, need rows >= cols", a.Rows, a.Cols)
	}
	if !q.SameShape(a) {
		return ec.ShapeError("QR", "q is %dx%d, want %dx%d", q.Rows, q.Cols, a.Rows, a.Cols)
	}
	if r.Rows != a.Cols || r.Cols != a.Cols {
		return ec.ShapeError("QR", "r is %dx%d, want %dx%d", r.Rows, r.Cols, a.Cols, a.Cols)
	}
	if ec.SameStorage(a, q) || ec.SameStorage(a, r) || ec.SameStorage(q, r) {
		return ec.OpError("QR", ec.ErrAliased)
	}
	BaseQR(a.Data, q.Data, r.Data, a.Rows, a.Cols)
	return nil
}

// QRFloat32 is the non-generic version of QR for float32.
func QRFloat32(a, q, r ec.MatrixF32) error {
	return QR(a, q, r)
}

// QRFloat64 is the non-generic version of QR for float64.
func QRFloat64(a, q, r ec.MatrixF64) error {
	return QR(a, q, r)
}
