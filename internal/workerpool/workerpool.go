// Copyright 2025 The go-ufxr Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for splitting a
// sample range across goroutines.
//
// Kernels are pure functions over caller-owned buffers, so disjoint slices
// of one batch can be evaluated concurrently. The verification harness uses
// this to sweep millions of inputs per kernel.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(len(xs), ops.Quantum, func(start, end int) {
//	    kernel(outs[start:end], xs[start:end])
//	})
//
// A Pool must not be used from inside one of its own work functions.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents a single parallel operation to execute.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor calls fn over contiguous ranges covering [0, n) and blocks
// until every call returns. Every range except the last starts and ends on
// a multiple of align; the last ends at n. align <= 0 is treated as 1.
func (p *Pool) ParallelFor(n, align int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if align <= 0 {
		align = 1
	}

	blocks := (n + align - 1) / align
	workers := min(p.numWorkers, blocks)

	if p.closed.Load() || workers == 1 {
		fn(0, n)
		return
	}

	chunk := (blocks + workers - 1) / workers * align

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		p.workC <- workItem{
			fn: func() {
				fn(start, end)
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}
