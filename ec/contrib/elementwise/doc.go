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

// Package elementwise provides the element-by-element matrix kernels:
// Add, Sub and Transpose.
//
// All kernels write into a caller-supplied output of the right shape and
// check shapes before touching it:
//
//	c := ec.New[float64](a.Rows, a.Cols)
//	if err := elementwise.Add(a, b, c); err != nil {
//		// errors.Is(err, ec.ErrDimensionMismatch)
//	}
package elementwise
