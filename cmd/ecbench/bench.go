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
	"fmt"
	"math/rand"
	"text/tabwriter"
	"time"

	"github.com/ajroetker/go-eigenc/ec"
	"github.com/ajroetker/go-eigenc/ec/contrib/matmul"
	"github.com/ajroetker/go-eigenc/ec/contrib/workerpool"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type benchConfig struct {
	sizes   []int
	batch   int
	workers int
	repeat  int
}

func newBenchCmd() *cobra.Command {
	var cfg benchConfig
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the compiled GEMM backend against the reference loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.batch < 1 || cfg.repeat < 1 {
				return fmt.Errorf("--batch and --repeat must be >= 1")
			}
			pool := workerpool.New(cfg.workers)
			defer pool.Close()
			log.Info().
				Str("backend", matmul.Backend()).
				Str("cpu", ec.CurrentName()).
				Int("workers", pool.NumWorkers()).
				Msg("starting benchmark")

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(w, "size\treference\t"+matmul.Backend()+"\tbatch/seq\tbatch/pool\tGFLOP/s\t")
			rng := rand.New(rand.NewSource(1))
			for _, n := range cfg.sizes {
				if n <= 0 {
					return fmt.Errorf("invalid size %d", n)
				}
				r, err := benchSize(rng, pool, n, cfg)
				if err != nil {
					return err
				}
				gflops := 2 * float64(n) * float64(n) * float64(n) / r.gemm.Seconds() / 1e9
				fmt.Fprintf(w, "%d\t%v\t%v\t%v\t%v\t%.2f\t\n", n, r.reference, r.gemm, r.batchSeq, r.batchPool, gflops)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntSliceVar(&cfg.sizes, "sizes", []int{32, 64, 128}, "square matrix sizes to time")
	cmd.Flags().IntVar(&cfg.batch, "batch", 16, "independent products per batch")
	cmd.Flags().IntVar(&cfg.workers, "workers", 0, "pool workers (0 = GOMAXPROCS)")
	cmd.Flags().IntVar(&cfg.repeat, "repeat", 3, "repetitions per measurement; the fastest is kept")
	return cmd
}

type benchResult struct {
	reference, gemm, batchSeq, batchPool time.Duration
}

func benchSize(rng *rand.Rand, pool *workerpool.Pool, n int, cfg benchConfig) (benchResult, error) {
	as := make([]ec.MatrixF32, cfg.batch)
	bs := make([]ec.MatrixF32, cfg.batch)
	cs := make([]ec.MatrixF32, cfg.batch)
	for i := range cfg.batch {
		as[i], bs[i], cs[i] = random32(rng, n), random32(rng, n), ec.New[float32](n, n)
	}

	var res benchResult
	var err error
	if res.reference, err = fastest(cfg.repeat, func() error { return matmul.GEMMReference(as[0], bs[0], cs[0]) }); err != nil {
		return res, err
	}
	if res.gemm, err = fastest(cfg.repeat, func() error { return matmul.GEMM(as[0], bs[0], cs[0]) }); err != nil {
		return res, err
	}
	if res.batchSeq, err = fastest(cfg.repeat, func() error { return matmul.GEMMBatch(nil, as, bs, cs) }); err != nil {
		return res, err
	}
	if res.batchPool, err = fastest(cfg.repeat, func() error { return matmul.GEMMBatch(pool, as, bs, cs) }); err != nil {
		return res, err
	}
	log.Debug().Int("n", n).Dur("gemm", res.gemm).Dur("pool", res.batchPool).Msg("size done")
	return res, nil
}

func fastest(repeat int, fn func() error) (time.Duration, error) {
	best := time.Duration(1<<63 - 1)
	for range repeat {
		start := time.Now()
		if err := fn(); err != nil {
			return 0, err
		}
		best = min(best, time.Since(start))
	}
	return best, nil
}

func random32(rng *rand.Rand, n int) ec.MatrixF32 {
	m := ec.New[float32](n, n)
	for i := range m.Data {
		m.Data[i] = rng.Float32()*2 - 1
	}
	return m
}
