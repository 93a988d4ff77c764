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

//go:build !blas

package matmul

import "github.com/ajroetker/go-eigenc/ec"

const backendName = "fallback"

func gemm[T ec.Floats](a, b, c ec.Matrix[T]) {
	BaseGEMM(a.Data, b.Data, c.Data, a.Rows, b.Cols, a.Cols)
}
