// Copyright 2025 The go-ufxr Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelFor(n, 1, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForAligned(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	tests := []struct {
		n, align int
	}{
		{64, 8},
		{72, 8},
		{8, 8},
		{1000, 8},
		{13, 4},
	}

	for _, tt := range tests {
		var mu sync.Mutex
		covered := make([]int, tt.n)
		pool.ParallelFor(tt.n, tt.align, func(start, end int) {
			if start%tt.align != 0 {
				t.Errorf("n=%d: start %d not aligned to %d", tt.n, start, tt.align)
			}
			if end != tt.n && end%tt.align != 0 {
				t.Errorf("n=%d: end %d not aligned to %d", tt.n, end, tt.align)
			}
			mu.Lock()
			for i := start; i < end; i++ {
				covered[i]++
			}
			mu.Unlock()
		})
		for i, c := range covered {
			if c != 1 {
				t.Errorf("n=%d align=%d: index %d covered %d times", tt.n, tt.align, i, c)
			}
		}
	}
}

func TestParallelForSmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	n := 3
	var count atomic.Int32

	pool.ParallelFor(n, 1, func(start, end int) {
		count.Add(int32(end - start))
	})

	if count.Load() != int32(n) {
		t.Errorf("count = %d, want %d", count.Load(), n)
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var called bool
	pool.ParallelFor(0, 8, func(start, end int) {
		called = true
	})

	if called {
		t.Error("ParallelFor with n=0 should not call fn")
	}
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()
}

func TestClosedPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelFor(n, 8, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	n := 1 << 16

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.ParallelFor(n, 8, func(start, end int) {
			for j := start; j < end; j++ {
				_ = j * j
			}
		})
	}
}
