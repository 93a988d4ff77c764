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
	"os"
	"strconv"
)

// DispatchLevel describes the vector instruction set detected on the host.
//
// The kernels in this module are plain Go loops and do not branch on the
// level; it is reported so callers and benchmarks can record the hardware a
// result was produced on.
type DispatchLevel int

const (
	// DispatchScalar indicates no usable vector extension (or EC_NO_SIMD set).
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates the x86-64 baseline.
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 with FMA.
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512F.
	DispatchAVX512

	// DispatchNEON indicates ARM Advanced SIMD.
	DispatchNEON

	// DispatchSVE indicates ARM SVE.
	DispatchSVE
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	case DispatchSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// Width returns the vector register width in bytes for the level.
func (d DispatchLevel) Width() int {
	switch d {
	case DispatchAVX2:
		return 32
	case DispatchAVX512:
		return 64
	default:
		return 16
	}
}

// currentLevel is set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// CurrentLevel returns the detected vector instruction set.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns the detected level's name, e.g. "avx2" or "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// CurrentWidth returns the detected vector register width in bytes.
func CurrentWidth() int {
	return currentLevel.Width()
}

// NoSimdEnv checks the EC_NO_SIMD environment variable. When set, detection
// reports DispatchScalar regardless of the CPU.
func NoSimdEnv() bool {
	val := os.Getenv("EC_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
