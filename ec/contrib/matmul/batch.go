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
	"fmt"

	"github.com/ajroetker/go-eigenc/ec"
	"github.com/ajroetker/go-eigenc/ec/contrib/workerpool"
)

// chunkPerWorker is the batch-to-worker ratio at which GEMMBatch switches
// from handing out one product at a time to contiguous per-worker ranges.
const chunkPerWorker = 8

// GEMMBatch computes cs[i] = as[i]·bs[i] for every i, running the
// independent products on pool. Every triple is checked before any output
// is written. A nil pool runs the products sequentially on the caller's
// goroutine.
//
// Batches of at least chunkPerWorker items per worker are split into one
// contiguous range per worker; smaller batches are handed out item by item
// so a few large products still balance.
//
// The outputs must be pairwise disjoint and must not alias any input.
func GEMMBatch[T ec.Floats](pool *workerpool.Pool, as, bs, cs []ec.Matrix[T]) error {
	if len(as) != len(bs) || len(as) != len(cs) {
		return ec.ShapeError("GEMMBatch", "batch lengths %d, %d, %d", len(as), len(bs), len(cs))
	}
	for i := range as {
		if err := checkShapes(fmt.Sprintf("GEMMBatch[%d]", i), as[i], bs[i], cs[i]); err != nil {
			return err
		}
	}

	if pool == nil {
		for i := range as {
			gemm(as[i], bs[i], cs[i])
		}
		return nil
	}
	if len(as) >= chunkPerWorker*pool.NumWorkers() {
		pool.ParallelFor(len(as), func(start, end int) {
			for i := start; i < end; i++ {
				gemm(as[i], bs[i], cs[i])
			}
		})
		return nil
	}
	pool.ParallelForAtomic(len(as), func(i int) {
		gemm(as[i], bs[i], cs[i])
	})
	return nil
}

// GEMMBatchFloat32 is the non-generic version of GEMMBatch for float32.
func GEMMBatchFloat32(pool *workerpool.Pool, as, bs, cs []ec.MatrixF32) error {
	return GEMMBatch(pool, as, bs, cs)
}

// GEMMBatchFloat64 is the non-generic version of GEMMBatch for float64.
func GEMMBatchFloat64(pool *workerpool.Pool, as, bs, cs []ec.MatrixF64) error {
	return GEMMBatch(pool, as, bs, cs)
}
