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

// Package workerpool runs independent kernel calls concurrently on a fixed
// set of goroutines.
//
// The kernels themselves are single-threaded. A Pool is how a caller fans
// out many calls over disjoint buffers without spawning goroutines per call:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelForAtomic(len(jobs), func(i int) {
//	    _ = matmul.GEMM(jobs[i].a, jobs[i].b, jobs[i].c)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent set of workers. It is safe for concurrent use,
// including Close racing ParallelFor or ParallelForAtomic; its zero value is
// not usable, call New. The fn passed to a ParallelFor* call must not submit
// work to the same pool.
type Pool struct {
	numWorkers int
	tasks      chan task

	// mu guards closed and orders Close after in-flight submissions.
	mu     sync.RWMutex
	closed bool
}

type task struct {
	fn   func()
	done *sync.WaitGroup
}

// New starts numWorkers workers. If numWorkers <= 0, GOMAXPROCS is used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		tasks:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.work()
	}
	return p
}

func (p *Pool) work() {
	for t := range p.tasks {
		t.fn()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers after pending tasks finish. It is idempotent.
// A closed pool still accepts work but runs it on the calling goroutine.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.tasks)
}

// submit queues count tasks, task w calling body(w), and waits for all of
// them. It returns false without queueing anything once the pool is closed.
func (p *Pool) submit(count int, body func(w int)) bool {
	var wg sync.WaitGroup
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return false
	}
	wg.Add(count)
	for w := range count {
		p.tasks <- task{fn: func() { body(w) }, done: &wg}
	}
	p.mu.RUnlock()
	wg.Wait()
	return true
}

// ParallelFor splits [0, n) into one contiguous range per worker, sizes
// differing by at most one, and calls fn(start, end) for each. It blocks
// until every range is done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	parts := min(p.numWorkers, n)
	if parts > 1 && p.submit(parts, func(w int) { fn(w*n/parts, (w+1)*n/parts) }) {
		return
	}
	fn(0, n)
}

// ParallelForAtomic calls fn(i) for every i in [0, n), handing out indices
// one at a time so uneven items balance across workers. It blocks until all
// calls return.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	var next atomic.Int64
	drain := func(int) {
		for {
			i := int(next.Add(1)) - 1
			if i >= n {
				return
			}
			fn(i)
		}
	}
	if workers := min(p.numWorkers, n); workers > 1 && p.submit(workers, drain) {
		return
	}
	drain(0)
}
