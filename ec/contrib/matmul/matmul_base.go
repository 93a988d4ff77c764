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

package matmul

import "github.com/ajroetker/go-eigenc/ec"

// BaseGEMM is the pure Go triple-loop product.
// C[i,j] = sum(A[i,p] * B[p,j]) for p in 0..K-1
//
// A is M×K, B is K×N and C is M×N, all row-major. Each output element is
// accumulated in a local before a single store, so C is written exactly once
// per element and never read. With K == 0 every element of C becomes zero.
func BaseGEMM[T ec.Floats](a, b, c []T, m, n, k int) {
	if m == 0 || n == 0 {
		return
	}
	_ = c[m*n-1]
	for i := range m {
		arow := a[i*k : i*k+k]
		crow := c[i*n : i*n+n]
		for j := range n {
			var sum T
			for p, aip := range arow {
				sum += aip * b[p*n+j]
			}
			crow[j] = sum
		}
	}
}
