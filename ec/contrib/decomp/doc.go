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

// Package decomp provides the LU and QR factorizations.
//
// Both are the textbook unpivoted algorithms: LU is Doolittle without
// pivoting and QR is classical (not modified) Gram–Schmidt. They are kept
// that way so results are reproducible across versions. Neither detects
// degenerate input. A zero pivot in LU or a zero column norm in QR shows up
// as Inf or NaN in the outputs, and callers who care should check with
// HasNonFinite.
//
// Inputs that need row exchanges for stability (anything not diagonally
// dominant or similar), or that have nearly dependent columns, will factor
// poorly; use a pivoting/Householder library for those.
package decomp
