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
	"math"
	"unsafe"
)

// Validate checks the descriptor invariants: non-negative dimensions,
// Rows*Cols representable as an int, and len(Data) == Rows*Cols.
func (m Matrix[T]) Validate() error {
	if m.Rows < 0 || m.Cols < 0 {
		return fmt.Errorf("%dx%d: %w", m.Rows, m.Cols, ErrNegativeDim)
	}
	if m.Cols != 0 && m.Rows > math.MaxInt/m.Cols {
		return fmt.Errorf("%dx%d overflows int: %w", m.Rows, m.Cols, ErrBadStorage)
	}
	if len(m.Data) != m.Rows*m.Cols {
		return fmt.Errorf("%dx%d with %d elements: %w", m.Rows, m.Cols, len(m.Data), ErrBadStorage)
	}
	return nil
}

// ValidateAll validates every descriptor, tagging the first failure with op
// and the operand's entry in names.
func ValidateAll[T Floats](op string, names []string, ms ...Matrix[T]) error {
	for i, m := range ms {
		if err := m.Validate(); err != nil {
			name := "operand"
			if i < len(names) {
				name = names[i]
			}
			return fmt.Errorf("%s: %s: %w", op, name, err)
		}
	}
	return nil
}

// SameStorage reports whether a and b start at the same element. Empty
// matrices never alias.
func SameStorage[T Floats](a, b Matrix[T]) bool {
	if len(a.Data) == 0 || len(b.Data) == 0 {
		return false
	}
	return unsafe.SliceData(a.Data) == unsafe.SliceData(b.Data)
}
