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

// HasNonFinite reports whether any element of m is NaN or ±Inf, which is how
// a singular LU pivot or a rank-deficient QR column shows up.
func HasNonFinite[T ec.Floats](m ec.Matrix[T]) bool {
	for _, v := range m.Data {
		f := float64(v)
		if stdmath.IsNaN(f) || stdmath.IsInf(f, 0) {
			return true
		}
	}
	return false
}
