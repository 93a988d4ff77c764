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

package elementwise

import "github.com/ajroetker/go-eigenc/ec"

// BaseAdd computes c[i] = a[i] + b[i] over the flat row-major buffers.
// Shapes are assumed valid; use Add for the checked entry point.
func BaseAdd[T ec.Floats](a, b, c []T) {
	n := len(c)
	a, b = a[:n], b[:n]
	for i := range n {
		c[i] = a[i] + b[i]
	}
}

// BaseSub computes c[i] = a[i] - b[i] over the flat row-major buffers.
func BaseSub[T ec.Floats](a, b, c []T) {
	n := len(c)
	a, b = a[:n], b[:n]
	for i := range n {
		c[i] = a[i] - b[i]
	}
}

// BaseTranspose writes the transpose of the rows×cols matrix src into dst,
// which is cols×rows. dst must not share storage with src.
//
// Source is accessed as src[i*cols + j], destination as dst[j*rows + i].
func BaseTranspose[T ec.Floats](src []T, rows, cols int, dst []T) {
	if rows == 0 || cols == 0 {
		return
	}
	_ = src[rows*cols-1]
	_ = dst[rows*cols-1]
	for i := range rows {
		row := src[i*cols : (i+1)*cols]
		for j, v := range row {
			dst[j*rows+i] = v
		}
	}
}
