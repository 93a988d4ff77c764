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

//go:build blas

package matmul

import (
	"math"
	"math/rand"
	"testing"

	"github.com/ajroetker/go-eigenc/ec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBLASBackendSelected(t *testing.T) {
	assert.Equal(t, "blas", Backend())
}

func TestBLASOverwritesOutput(t *testing.T) {
	// beta = 0: pre-existing NaNs in C must not leak into the result.
	rng := rand.New(rand.NewSource(8))
	a := randomMatrix[float64](rng, 5, 7)
	b := randomMatrix[float64](rng, 7, 3)
	c := ec.New[float64](5, 3)
	fillNaN(c)
	require.NoError(t, GEMM(a, b, c))
	for _, v := range c.Data {
		assert.False(t, math.IsNaN(v))
	}
}
