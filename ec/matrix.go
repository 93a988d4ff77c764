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

package ec

import (
	"fmt"
	"strings"
)

// New allocates a zeroed rows×cols matrix. This is a caller-side helper;
// kernels never call it. Negative dimensions panic, as make would.
func New[T Floats](rows, cols int) Matrix[T] {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("ec.New: negative dimension %dx%d", rows, cols))
	}
	return Matrix[T]{Rows: rows, Cols: cols, Data: make([]T, rows*cols)}
}

// Wrap builds a descriptor over existing storage after checking that
// len(data) == rows*cols. The slice is not copied.
func Wrap[T Floats](rows, cols int, data []T) (Matrix[T], error) {
	m := Matrix[T]{Rows: rows, Cols: cols, Data: data}
	if err := m.Validate(); err != nil {
		return Matrix[T]{}, OpError("Wrap", err)
	}
	return m, nil
}

// FromRows copies a ragged-checked [][]T into a new row-major matrix.
func FromRows[T Floats](rows [][]T) (Matrix[T], error) {
	if len(rows) == 0 {
		return Matrix[T]{}, nil
	}
	cols := len(rows[0])
	m := New[T](len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return Matrix[T]{}, ShapeError("FromRows", "row %d has %d columns, want %d", i, len(row), cols)
		}
		copy(m.Data[i*cols:], row)
	}
	return m, nil
}

// Identity allocates the n×n identity matrix.
func Identity[T Floats](n int) Matrix[T] {
	m := New[T](n, n)
	for i := range n {
		m.Data[i*n+i] = 1
	}
	return m
}

// Clone returns a deep copy of m.
func (m Matrix[T]) Clone() Matrix[T] {
	data := make([]T, len(m.Data))
	copy(data, m.Data)
	return Matrix[T]{Rows: m.Rows, Cols: m.Cols, Data: data}
}

// String formats the matrix one row per line, for debugging.
func (m Matrix[T]) String() string {
	var sb strings.Builder
	for i := range m.Rows {
		sb.WriteByte('[')
		for j := range m.Cols {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.Data[i*m.Cols+j])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
