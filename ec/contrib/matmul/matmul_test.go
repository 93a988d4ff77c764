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

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/ajroetker/go-eigenc/ec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// matmulReference computes C = A * B in float64 regardless of T.
// Used as the oracle for correctness tests.
func matmulReference[T ec.Floats](a, b ec.Matrix[T]) []float64 {
	m, n, k := a.Rows, b.Cols, a.Cols
	out := make([]float64, m*n)
	for i := range m {
		for j := range n {
			var sum float64
			for p := range k {
				sum += float64(a.Data[i*k+p]) * float64(b.Data[p*n+j])
			}
			out[i*n+j] = sum
		}
	}
	return out
}

func randomMatrix[T ec.Floats](rng *rand.Rand, rows, cols int) ec.Matrix[T] {
	m := ec.New[T](rows, cols)
	for i := range m.Data {
		m.Data[i] = T(rng.Float64()*2 - 1)
	}
	return m
}

func fillNaN[T ec.Floats](m ec.Matrix[T]) {
	for i := range m.Data {
		m.Data[i] = T(math.NaN())
	}
}

func TestBackend(t *testing.T) {
	t.Logf("GEMM backend: %s, dispatch level: %s", Backend(), ec.CurrentName())
	assert.Contains(t, []string{"fallback", "blas"}, Backend())
}

func TestGEMMConcrete(t *testing.T) {
	a32, _ := ec.FromRows([][]float32{{1, 2}, {3, 4}})
	b32, _ := ec.FromRows([][]float32{{5, 6}, {7, 8}})
	c32 := ec.New[float32](2, 2)
	require.NoError(t, GEMMFloat32(a32, b32, c32))
	assert.Equal(t, []float32{19, 22, 43, 50}, c32.Data)

	a64, _ := ec.FromRows([][]float64{{1, 2}, {3, 4}})
	b64, _ := ec.FromRows([][]float64{{5, 6}, {7, 8}})
	c64 := ec.New[float64](2, 2)
	require.NoError(t, GEMMFloat64(a64, b64, c64))
	assert.Equal(t, []float64{19, 22, 43, 50}, c64.Data)
}

func TestGEMMNonSquare(t *testing.T) {
	// 2x3 * 3x2 = 2x2
	a, _ := ec.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	b, _ := ec.FromRows([][]float64{{7, 8}, {9, 10}, {11, 12}})
	c := ec.New[float64](2, 2)
	require.NoError(t, GEMM(a, b, c))
	assert.Equal(t, []float64{58, 64, 139, 154}, c.Data)
}

func TestGEMMIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := 9
	a := randomMatrix[float32](rng, n, n)
	c := ec.New[float32](n, n)
	require.NoError(t, GEMM(a, ec.Identity[float32](n), c))
	assert.Equal(t, a.Data, c.Data)
}

func TestGEMMShapes(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, dims := range [][3]int{{1, 1, 1}, {1, 5, 1}, {5, 1, 5}, {3, 4, 5}, {16, 16, 16}, {31, 7, 13}, {64, 33, 2}} {
		m, k, n := dims[0], dims[1], dims[2]
		a := randomMatrix[float64](rng, m, k)
		b := randomMatrix[float64](rng, k, n)
		c := ec.New[float64](m, n)
		fillNaN(c)

		require.NoError(t, GEMM(a, b, c))
		assert.Equal(t, m*n, len(c.Data))
		want := matmulReference(a, b)
		assert.True(t, floats.EqualApprox(c.Data, want, 1e-12), "m=%d k=%d n=%d", m, k, n)
	}
}

func TestGEMMFloat32Accuracy(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	m, k, n := 24, 40, 17
	a := randomMatrix[float32](rng, m, k)
	b := randomMatrix[float32](rng, k, n)
	c := ec.New[float32](m, n)
	require.NoError(t, GEMM(a, b, c))

	want := matmulReference(a, b)
	tol := float64(k) * 1e-6
	for i := range c.Data {
		assert.InDelta(t, want[i], float64(c.Data[i]), tol, "index %d", i)
	}
}

func TestGEMMMatchesReference(t *testing.T) {
	// Whatever backend is compiled in must agree with BaseGEMM up to a
	// rounding tolerance proportional to k and the element epsilon.
	rng := rand.New(rand.NewSource(4))
	for _, size := range []int{3, 17, 64, 100} {
		a := randomMatrix[float32](rng, size, size)
		b := randomMatrix[float32](rng, size, size)
		got := ec.New[float32](size, size)
		ref := ec.New[float32](size, size)
		require.NoError(t, GEMM(a, b, got))
		require.NoError(t, GEMMReference(a, b, ref))

		tol := float64(size) * 1.2e-7 * 4
		for i := range got.Data {
			assert.InDelta(t, ref.Data[i], got.Data[i], tol, "size %d index %d", size, i)
		}

		a64 := randomMatrix[float64](rng, size, size)
		b64 := randomMatrix[float64](rng, size, size)
		got64 := ec.New[float64](size, size)
		ref64 := ec.New[float64](size, size)
		require.NoError(t, GEMM(a64, b64, got64))
		require.NoError(t, GEMMReference(a64, b64, ref64))
		assert.True(t, floats.EqualApprox(got64.Data, ref64.Data, float64(size)*1e-15))
	}
}

func TestGEMMDegenerate(t *testing.T) {
	// K == 0: the product is the zero matrix and C is overwritten.
	a := ec.New[float64](3, 0)
	b := ec.New[float64](0, 2)
	c := ec.New[float64](3, 2)
	fillNaN(c)
	require.NoError(t, GEMM(a, b, c))
	assert.Equal(t, make([]float64, 6), c.Data)

	// M == 0 or N == 0: nothing to write.
	require.NoError(t, GEMM(ec.New[float32](0, 4), ec.New[float32](4, 3), ec.New[float32](0, 3)))
	require.NoError(t, GEMM(ec.New[float32](2, 4), ec.New[float32](4, 0), ec.New[float32](2, 0)))
}

func TestGEMMShapeErrors(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c ec.MatrixF32
	}{
		{"inner", ec.New[float32](2, 3), ec.New[float32](2, 2), ec.New[float32](2, 2)},
		{"c rows", ec.New[float32](2, 3), ec.New[float32](3, 4), ec.New[float32](3, 4)},
		{"c cols", ec.New[float32](2, 3), ec.New[float32](3, 4), ec.New[float32](2, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fillNaN(tt.c)
			require.ErrorIs(t, GEMM(tt.a, tt.b, tt.c), ec.ErrDimensionMismatch)
			require.ErrorIs(t, GEMMReference(tt.a, tt.b, tt.c), ec.ErrDimensionMismatch)
			for _, v := range tt.c.Data {
				assert.True(t, math.IsNaN(float64(v)), "output written despite shape error")
			}
		})
	}

	bad := ec.MatrixF32{Rows: 2, Cols: 2, Data: make([]float32, 5)}
	require.ErrorIs(t, GEMM(bad, ec.New[float32](2, 2), ec.New[float32](2, 2)), ec.ErrBadStorage)
}

func TestGEMMOverflowingDimensions(t *testing.T) {
	a := ec.MatrixF64{Rows: 4, Cols: math.MaxInt/2 + 1}
	b := ec.MatrixF64{Rows: math.MaxInt/2 + 1, Cols: 4}
	c := ec.New[float64](4, 4)
	require.ErrorIs(t, GEMM(a, b, c), ec.ErrBadStorage)
	require.ErrorIs(t, GEMMReference(a, b, c), ec.ErrBadStorage)
	assert.Equal(t, make([]float64, 16), c.Data)
}

func BenchmarkGEMM(b *testing.B) {
	rng := rand.New(rand.NewSource(5))
	for _, size := range []int{32, 128} {
		x := randomMatrix[float32](rng, size, size)
		y := randomMatrix[float32](rng, size, size)
		z := ec.New[float32](size, size)
		b.Run(Backend()+"/"+strconv.Itoa(size), func(b *testing.B) {
			for range b.N {
				_ = GEMM(x, y, z)
			}
		})
		b.Run("reference/"+strconv.Itoa(size), func(b *testing.B) {
			for range b.N {
				_ = GEMMReference(x, y, z)
			}
		})
	}
}
