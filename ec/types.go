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

// Package ec provides the matrix descriptor shared by the go-eigenc kernels.
//
// A Matrix is a plain view over caller-owned, row-major storage. Kernels in
// the contrib packages only read their inputs and write their declared
// output; they never allocate, reslice or free a Matrix's backing slice.
//
// Example usage:
//
//	a := ec.Matrix[float32]{Rows: 2, Cols: 2, Data: []float32{1, 2, 3, 4}}
//	b := ec.Matrix[float32]{Rows: 2, Cols: 2, Data: []float32{5, 6, 7, 8}}
//	c := ec.New[float32](2, 2)
//
//	err := ops.Mul(a, b, c) // c = [[19 22] [43 50]]
package ec

// Floats is the closed set of element types supported by the kernels.
//
// The set is deliberately not an approximation constraint (~float32): every
// []T handled by a kernel is exactly []float32 or []float64, which keeps the
// per-precision switches in accelerated backends exhaustive.
type Floats interface {
	float32 | float64
}

// Matrix is a rows×cols view over contiguous row-major storage.
// Element (i, j) lives at Data[i*Cols+j].
type Matrix[T Floats] struct {
	Rows int
	Cols int
	Data []T
}

// MatrixF32 is a single-precision matrix.
type MatrixF32 = Matrix[float32]

// MatrixF64 is a double-precision matrix.
type MatrixF64 = Matrix[float64]

// Len returns Rows*Cols, the number of elements the descriptor claims.
func (m Matrix[T]) Len() int {
	return m.Rows * m.Cols
}

// IsSquare reports whether the matrix has as many rows as columns.
func (m Matrix[T]) IsSquare() bool {
	return m.Rows == m.Cols
}

// At returns element (i, j). It panics on out-of-range indices like a slice
// index would.
func (m Matrix[T]) At(i, j int) T {
	if uint(i) >= uint(m.Rows) || uint(j) >= uint(m.Cols) {
		panic("ec: index out of range")
	}
	return m.Data[i*m.Cols+j]
}

// Set stores v at (i, j). It panics on out-of-range indices.
func (m Matrix[T]) Set(i, j int, v T) {
	if uint(i) >= uint(m.Rows) || uint(j) >= uint(m.Cols) {
		panic("ec: index out of range")
	}
	m.Data[i*m.Cols+j] = v
}

// Row returns row i as a subslice of Data (no copy).
func (m Matrix[T]) Row(i int) []T {
	if uint(i) >= uint(m.Rows) {
		panic("ec: row out of range")
	}
	return m.Data[i*m.Cols : (i+1)*m.Cols : (i+1)*m.Cols]
}

// SameShape reports whether m and o have identical dimensions.
func (m Matrix[T]) SameShape(o Matrix[T]) bool {
	return m.Rows == o.Rows && m.Cols == o.Cols
}
