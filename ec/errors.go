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
	"errors"
	"fmt"
)

// Sentinel errors returned by the kernels. They are always wrapped with the
// operation name (see OpError), so match them with errors.Is.
//
// Only shape problems are reported. Singular or rank-deficient inputs are not
// detected: they surface as Inf/NaN in the output.
var (
	// ErrNegativeDim is returned when Rows or Cols is negative.
	ErrNegativeDim = errors.New("ec: negative dimension")

	// ErrBadStorage is returned when len(Data) != Rows*Cols, or when
	// Rows*Cols does not fit in an int.
	ErrBadStorage = errors.New("ec: storage length does not match rows*cols")

	// ErrDimensionMismatch is returned when operand shapes are incompatible
	// with the operation (e.g. Add on different shapes, GEMM with a.Cols != b.Rows).
	ErrDimensionMismatch = errors.New("ec: dimension mismatch")

	// ErrNonSquare is returned when a square matrix is required.
	ErrNonSquare = errors.New("ec: matrix is not square")

	// ErrAliased is returned when an output is detectably the same storage
	// as an input for an operation that does not support in-place use.
	ErrAliased = errors.New("ec: output aliases input")
)

// OpError tags err with the operation that produced it. It returns nil when
// err is nil.
func OpError(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

// ShapeError builds an ErrDimensionMismatch with the offending shapes
// spelled out.
func ShapeError(op string, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), ErrDimensionMismatch)
}
