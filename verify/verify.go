// Copyright 2025 go-ufxr Authors
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

// Package verify measures the kernels in package ops against float64
// references.
//
// A check sweeps a kernel over evenly spaced inputs, compares each output
// with the reference and reports the largest absolute or relative error and
// where it occurred. Sweeps are split into quantum aligned chunks and run on
// a worker pool.
package verify

import (
	"fmt"
	"math"
	"sync"

	"github.com/ufxr/go-ufxr/internal/workerpool"
	"github.com/ufxr/go-ufxr/ops"
)

// Reference is the exact function a kernel approximates.
type Reference func(x float64) float64

// Sine is sin(2πx) with x in cycles.
func Sine(x float64) float64 { return math.Sin(2 * math.Pi * x) }

// Triangle is the unit triangle wave with period 1 and Triangle(0.25) = 1.
func Triangle(x float64) float64 {
	r := x - math.Round(x)
	switch {
	case r > 0.25:
		r = 0.5 - r
	case r < -0.25:
		r = -0.5 - r
	}
	return 4 * r
}

// Exp2 is 2^x.
func Exp2(x float64) float64 { return math.Exp2(x) }

// Mode selects how errors are measured.
type Mode int

const (
	// Absolute error |got - want|.
	Absolute Mode = iota
	// Relative error |got - want| / |want|.
	Relative
)

func (m Mode) String() string {
	switch m {
	case Absolute:
		return "abs"
	case Relative:
		return "rel"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Report is the result of one check.
type Report struct {
	Name     string
	Mode     Mode
	MaxError float64 // +Inf if any output was NaN
	Worst    float32 // input with the largest error
	Samples  int
}

// Within reports whether the maximum error is at most bound.
func (r Report) Within(bound float64) bool {
	return r.MaxError <= bound
}

func (r Report) String() string {
	return fmt.Sprintf("%s: max %s error %.3g at x=%v over %d samples", r.Name, r.Mode, r.MaxError, r.Worst, r.Samples)
}

// Sweep returns n evenly spaced inputs from lo to hi inclusive, with n
// rounded up to a multiple of ops.Quantum.
func Sweep(lo, hi float32, n int) []float32 {
	n = max(ops.AlignedLen(n), ops.Quantum)
	xs := make([]float32, n)
	step := (float64(hi) - float64(lo)) / float64(n-1)
	for i := range xs {
		xs[i] = float32(float64(lo) + float64(i)*step)
	}
	xs[0], xs[n-1] = lo, hi
	return xs
}

// Periods returns xs shifted by k whole periods.
func Periods(k int, xs []float32) []float32 {
	out := make([]float32, len(xs))
	for i, x := range xs {
		out[i] = x + float32(k)
	}
	return out
}

// Checker runs checks, in parallel when Pool is set.
type Checker struct {
	Pool *workerpool.Pool
}

// Check evaluates kernel over xs and compares every output with ref.
// len(xs) must be a multiple of ops.Quantum.
func (c Checker) Check(name string, kernel ops.Kernel, ref Reference, xs []float32, mode Mode) Report {
	outs := make([]float32, len(xs))
	rep := Report{Name: name, Mode: mode, Samples: len(xs)}

	// Ties go to the lowest index so the report does not depend on
	// scheduling.
	var (
		mu      sync.Mutex
		best    = -1.0
		bestIdx = -1
	)
	chunk := func(start, end int) {
		kernel(outs[start:end], xs[start:end])
		localErr, localIdx := -1.0, -1
		for i := start; i < end; i++ {
			if err := sampleError(outs[i], ref(float64(xs[i])), mode); err > localErr {
				localErr, localIdx = err, i
			}
		}
		mu.Lock()
		if localErr > best || (localErr == best && localIdx < bestIdx) {
			best, bestIdx = localErr, localIdx
		}
		mu.Unlock()
	}

	if c.Pool == nil {
		chunk(0, len(xs))
	} else {
		c.Pool.ParallelFor(len(xs), ops.Quantum, chunk)
	}
	if bestIdx >= 0 {
		rep.MaxError, rep.Worst = best, xs[bestIdx]
	}
	return rep
}

func sampleError(got float32, want float64, mode Mode) float64 {
	if math.IsNaN(float64(got)) {
		return math.Inf(1)
	}
	err := math.Abs(float64(got) - want)
	if mode == Relative {
		err /= math.Abs(want)
	}
	return err
}

// Deterministic runs kernel twice over xs and returns an error describing
// the first output that differs bit for bit.
func Deterministic(kernel ops.Kernel, xs []float32) error {
	a := make([]float32, len(xs))
	b := make([]float32, len(xs))
	kernel(a, xs)
	kernel(b, xs)
	for i := range a {
		if math.Float32bits(a[i]) != math.Float32bits(b[i]) {
			return fmt.Errorf("x=%v: first run %v, second run %v", xs[i], a[i], b[i])
		}
	}
	return nil
}
