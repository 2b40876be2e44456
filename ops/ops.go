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

package ops

import (
	"fmt"
	"math"

	"github.com/ufxr/go-ufxr/errcode"
)

// Quantum is the batch granularity: every batch length is a multiple of it.
// It equals the number of float32 lanes in one AVX2 register.
const Quantum = 8

// MaxBatchLen is the largest batch NewBatch will allocate.
const MaxBatchLen = 1 << 24

// Kernel maps a batch of inputs to a batch of outputs. See the package
// documentation for the contract.
type Kernel func(outs, xs []float32)

// AlignedLen rounds n up to a multiple of Quantum.
func AlignedLen(n int) int {
	return (n + Quantum - 1) / Quantum * Quantum
}

// NewBatch allocates a zeroed batch of at least n samples, rounded up to a
// multiple of Quantum. It returns errcode.LargeText when n exceeds
// MaxBatchLen.
func NewBatch(n int) ([]float32, error) {
	if n < 0 {
		return nil, fmt.Errorf("batch length %d is negative", n)
	}
	if n > MaxBatchLen {
		return nil, fmt.Errorf("batch length %d exceeds %d: %w", n, MaxBatchLen, errcode.LargeText)
	}
	return make([]float32, AlignedLen(n)), nil
}

// batchError reports why a kernel call with these buffer lengths violates
// the batch contract, or nil if it does not.
func batchError(nOut, nIn int) error {
	if nIn%Quantum != 0 {
		return fmt.Errorf("ops: batch length %d is not a multiple of %d", nIn, Quantum)
	}
	if nOut < nIn {
		return fmt.Errorf("ops: output length %d is shorter than input length %d", nOut, nIn)
	}
	return nil
}

// checkBatch panics on a contract violation when built with ufxrdebug.
// Otherwise it compiles to nothing.
func checkBatch(outs, xs []float32) {
	if debugChecks {
		if err := batchError(len(outs), len(xs)); err != nil {
			panic(err)
		}
	}
}

// reduce maps a phase to [-0.5, 0.5] by subtracting the nearest integer.
func reduce(x float32) float32 {
	return x - float32(math.RoundToEven(float64(x)))
}

// foldQuarter mirrors r in [-0.5, 0.5] into the quarter wave [-0.25, 0.25],
// using sin(2π(0.5-r)) = sin(2πr).
func foldQuarter(r float32) float32 {
	if t := 0.5 - r; t < r {
		r = t
	}
	if t := -0.5 - r; t > r {
		r = t
	}
	return r
}

func abs32(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
}
