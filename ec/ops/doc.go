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

// Package ops is the single entry point for every kernel: one name per
// operation, for both precisions.
//
// The precision is taken from the operands' static type, so
// ops.Mul(a, b, c) with ec.Matrix[float32] operands is bound at compile time
// to the float32 instantiation and can never run a float64 kernel on
// float32 storage. There is no runtime registry; supporting a new element
// type means widening ec.Floats and adding its arm to the accelerated GEMM.
//
// The non-allocating forms (Add, Sub, Transpose, Mul, LU, QR) write into
// caller-owned outputs. The allocating forms (Sum, Difference, Transposed,
// Product, FactorLU, FactorQR) size and allocate the outputs first, then call
// the same kernels.
package ops
