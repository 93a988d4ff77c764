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

package main

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/ajroetker/go-eigenc/ec"
	"github.com/ajroetker/go-eigenc/ec/contrib/decomp"
	"github.com/ajroetker/go-eigenc/ec/contrib/matmul"
	"github.com/ajroetker/go-eigenc/ec/ops"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var (
		n    int
		seed int64
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the algebraic properties of every kernel on random inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if n <= 0 {
				return fmt.Errorf("--size must be positive, got %d", n)
			}
			rng := rand.New(rand.NewSource(seed))
			failures := append(runChecks[float32](rng, n, 1e-4), runChecks[float64](rng, n, 1e-10)...)
			for _, f := range failures {
				log.Error().Msg(f)
			}
			if len(failures) > 0 {
				return errors.New(strings.Join(failures, "; "))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "all checks passed (n=%d, seed=%d, backend=%s)\n", n, seed, matmul.Backend())
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "size", "n", 16, "matrix size")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	return cmd
}

// runChecks exercises every operation on random diagonally dominant n×n
// matrices and returns a description of each property that failed.
// tol is relative to the magnitude of the inputs.
func runChecks[T ec.Floats](rng *rand.Rand, n int, tol float64) []string {
	var failures []string
	fail := func(format string, args ...any) {
		var zero T
		failures = append(failures, fmt.Sprintf("%T: ", zero)+fmt.Sprintf(format, args...))
	}

	a := dominant[T](rng, n)
	b := dominant[T](rng, n)
	scale := float64(n) * 2
	logger := log.With().Str("type", fmt.Sprintf("%T", a.Data)).Int("n", n).Logger()

	// Additive inverse: A + (0 - A) == 0.
	neg, err := ops.Difference(ec.New[T](n, n), a)
	if err != nil {
		return []string{err.Error()}
	}
	if zero, err := ops.Sum(a, neg); err != nil || maxAbs(zero) > 0 {
		fail("additive inverse: max |A-A| = %g, err=%v", maxAbs(zero), err)
	}
	logger.Debug().Msg("additive inverse ok")

	// Transpose involution, exact.
	tt, err := ops.Transposed(a)
	if err == nil {
		tt, err = ops.Transposed(tt)
	}
	if err != nil || maxDiff(a, tt) != 0 {
		fail("transpose involution: diff %g, err=%v", maxDiff(a, tt), err)
	}
	logger.Debug().Msg("transpose involution ok")

	// Configured GEMM against the triple-loop reference.
	got, err := ops.Product(a, b)
	if err != nil {
		return append(failures, err.Error())
	}
	ref := ec.New[T](n, n)
	if err := matmul.GEMMReference(a, b, ref); err != nil {
		return append(failures, err.Error())
	}
	if d := maxDiff(got, ref); d > tol*scale*scale {
		fail("GEMM %s vs reference: diff %g", matmul.Backend(), d)
	}
	logger.Debug().Str("backend", matmul.Backend()).Msg("gemm equivalence ok")

	// LU round trip.
	l, u, err := ops.FactorLU(a)
	if err != nil {
		return append(failures, err.Error())
	}
	lu, err := ops.Product(l, u)
	if err != nil || decomp.HasNonFinite(lu) || maxDiff(a, lu) > tol*scale {
		fail("LU round trip: diff %g, err=%v", maxDiff(a, lu), err)
	}
	logger.Debug().Msg("lu round trip ok")

	// QR round trip and orthonormality.
	q, r, err := ops.FactorQR(a)
	if err != nil {
		return append(failures, err.Error())
	}
	qr, err := ops.Product(q, r)
	if err != nil || decomp.HasNonFinite(qr) || maxDiff(a, qr) > tol*scale {
		fail("QR round trip: diff %g, err=%v", maxDiff(a, qr), err)
	}
	qt, err := ops.Transposed(q)
	if err != nil {
		return append(failures, err.Error())
	}
	gram, err := ops.Product(qt, q)
	if err != nil || maxDiff(gram, ec.Identity[T](n)) > tol*float64(n) {
		fail("QR orthonormality: diff %g, err=%v", maxDiff(gram, ec.Identity[T](n)), err)
	}
	logger.Debug().Msg("qr ok")

	return failures
}

func dominant[T ec.Floats](rng *rand.Rand, n int) ec.Matrix[T] {
	m := ec.New[T](n, n)
	for i := range n {
		var rowSum float64
		for j := range n {
			if i != j {
				v := rng.Float64()*2 - 1
				m.Data[i*n+j] = T(v)
				rowSum += math.Abs(v)
			}
		}
		m.Data[i*n+i] = T(rowSum + 1)
	}
	return m
}

func maxAbs[T ec.Floats](m ec.Matrix[T]) float64 {
	var worst float64
	for _, v := range m.Data {
		worst = max(worst, math.Abs(float64(v)))
	}
	return worst
}

// maxDiff returns the largest elementwise difference, or +Inf when the
// shapes differ.
func maxDiff[T ec.Floats](a, b ec.Matrix[T]) float64 {
	if !a.SameShape(b) || len(a.Data) != len(b.Data) {
		return math.Inf(1)
	}
	var worst float64
	for i := range a.Data {
		d := math.Abs(float64(a.Data[i]) - float64(b.Data[i]))
		if math.IsNaN(d) {
			return math.Inf(1)
		}
		worst = max(worst, d)
	}
	return worst
}
