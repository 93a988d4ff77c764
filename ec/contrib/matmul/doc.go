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

// Package matmul provides the general matrix-matrix product C = A·B for
// row-major float32 and float64 matrices.
//
// Example usage:
//
//	// C = A * B where A is MxK, B is KxN, C is MxN
//	a := ec.New[float32](m, k)
//	b := ec.New[float32](k, n)
//	c := ec.New[float32](m, n)
//
//	err := matmul.GEMM(a, b, c)
//
// The implementation is chosen when the package is built, never at call time:
//   - default: BaseGEMM, a triple loop accumulating into a local scalar
//   - -tags blas: gonum's BLAS Sgemm/Dgemm (row-major, no transpose,
//     alpha=1, beta=0 so C is overwritten)
//
// Backend reports which one was compiled in. BaseGEMM stays exported in both
// builds and is the reference to compare the accelerated path against.
package matmul
