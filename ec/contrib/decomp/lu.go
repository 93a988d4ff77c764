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

import "github.com/ajroetker/go-eigenc/ec"

// BaseLU factors the n×n row-major matrix a into unit lower-triangular l
// and upper-triangular u with a = l·u, Doolittle order, no pivoting.
//
// l and u are fully overwritten: zeros above l's diagonal, ones on it, zeros
// below u's diagonal. Neither may share storage with a.
func BaseLU[T ec.Floats](a, l, u []T, n int) {
	if n == 0 {
		return
	}
	_ = a[n*n-1]
	clear(l[:n*n])
	clear(u[:n*n])

	for i := range n {
		// Row i of U.
		for k := i; k < n; k++ {
			sum := a[i*n+k]
			for j := range i {
				sum -= l[i*n+j] * u[j*n+k]
			}
			u[i*n+k] = sum
		}

		// Column i of L.
		l[i*n+i] = 1
		pivot := u[i*n+i]
		for k := i + 1; k < n; k++ {
			sum := a[k*n+i]
			for j := range i {
				sum -= l[k*n+j] * u[j*n+i]
			}
			l[k*n+i] = sum / pivot
		}
	}
}

// LU factors the square matrix a into l·u. All three must be n×n.
// Shape errors are returned before l or u is written; a zero pivot is not an
// error and produces Inf/NaN entries.
func LU[T ec.Floats](a, l, u ec.Matrix[T]) error {
	if err := ec.ValidateAll("LU", []string{"a", "l", "u"}, a, l, u); err != nil {
		return err
	}
	if !a.IsSquare() {
		return ec.OpError("LU", ec.ErrNonSquare)
	}
	if !l.SameShape(a) || !u.SameShape(a) {
		return ec.ShapeError("LU", "a is %dx%d, l is %dx%d, u is %dx%d", a.Rows, a.Cols, l.Rows, l.Cols, u.Rows, u.Cols)
	}
	if ec.SameStorage(a, l) || ec.SameStorage(a, u) || ec.SameStorage(l, u) {
		return ec.OpError("LU", ec.ErrAliased)
	}
	BaseLU(a.Data, l.Data, u.Data, a.Rows)
	return nil
}

// LUFloat32 is the non-generic version of LU for float32.
func LUFloat32(a, l, u ec.MatrixF32) error {
	return LU(a, l, u)
}

// LUFloat64 is the non-generic version of LU for float64.
func LUFloat64(a, l, u ec.MatrixF64) error {
	return LU(a, l, u)
}
