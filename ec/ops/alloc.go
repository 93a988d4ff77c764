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

import "github.com/ajroetker/go-eigenc/ec"

// Sum returns a new matrix holding a + b.
func Sum[T ec.Floats](a, b ec.Matrix[T]) (ec.Matrix[T], error) {
	if err := a.Validate(); err != nil {
		return ec.Matrix[T]{}, ec.OpError("Sum", err)
	}
	c := ec.New[T](a.Rows, a.Cols)
	if err := Add(a, b, c); err != nil {
		return ec.Matrix[T]{}, err
	}
	return c, nil
}

// Difference returns a new matrix holding a - b.
func Difference[T ec.Floats](a, b ec.Matrix[T]) (ec.Matrix[T], error) {
	if err := a.Validate(); err != nil {
		return ec.Matrix[T]{}, ec.OpError("Difference", err)
	}
	c := ec.New[T](a.Rows, a.Cols)
	if err := Sub(a, b, c); err != nil {
		return ec.Matrix[T]{}, err
	}
	return c, nil
}

// Transposed returns a new matrix holding aᵀ.
func Transposed[T ec.Floats](a ec.Matrix[T]) (ec.Matrix[T], error) {
	if err := a.Validate(); err != nil {
		return ec.Matrix[T]{}, ec.OpError("Transposed", err)
	}
	t := ec.New[T](a.Cols, a.Rows)
	if err := Transpose(a, t); err != nil {
		return ec.Matrix[T]{}, err
	}
	return t, nil
}

// Product returns a new matrix holding a·b.
func Product[T ec.Floats](a, b ec.Matrix[T]) (ec.Matrix[T], error) {
	if err := ec.ValidateAll("Product", []string{"a", "b"}, a, b); err != nil {
		return ec.Matrix[T]{}, err
	}
	c := ec.New[T](a.Rows, b.Cols)
	if err := Mul(a, b, c); err != nil {
		return ec.Matrix[T]{}, err
	}
	return c, nil
}

// FactorLU returns newly allocated l and u with a = l·u.
func FactorLU[T ec.Floats](a ec.Matrix[T]) (l, u ec.Matrix[T], err error) {
	if err := a.Validate(); err != nil {
		return l, u, ec.OpError("FactorLU", err)
	}
	if !a.IsSquare() {
		return l, u, ec.OpError("FactorLU", ec.ErrNonSquare)
	}
	l = ec.New[T](a.Rows, a.Rows)
	u = ec.New[T](a.Rows, a.Rows)
	if err := LU(a, l, u); err != nil {
		return ec.Matrix[T]{}, ec.Matrix[T]{}, err
	}
	return l, u, nil
}

// FactorQR returns newly allocated q (rows×cols) and r (cols×cols) with
// a = q·r.
func FactorQR[T ec.Floats](a ec.Matrix[T]) (q, r ec.Matrix[T], err error) {
	if err := a.Validate(); err != nil {
		return q, r, ec.OpError("FactorQR", err)
	}
	if a.Rows < a.Cols {
		return q, r, ec.ShapeError("FactorQR", "a is %dx%d, need rows >= cols", a.Rows, a.Cols)
	}
	q = ec.New[T](a.Rows, a.Cols)
	r = ec.New[T](a.Cols, a.Cols)
	if err := QR(a, q, r); err != nil {
		return ec.Matrix[T]{}, ec.Matrix[T]{}, err
	}
	return q, r, nil
}
