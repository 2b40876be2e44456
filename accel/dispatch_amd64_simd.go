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

//go:build amd64 && goexperiment.simd

package accel

import (
	"simd/archsimd"

	"golang.org/x/sys/cpu"
)

var (
	hasAVX2 bool

	// hasFMA gates the AVX2 level: the kernels evaluate polynomials with
	// MulAdd (VFMADD*).
	hasFMA bool
)

func init() {
	hasAVX2 = archsimd.X86.AVX2()
	hasFMA = cpu.X86.HasFMA

	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	switch {
	case archsimd.X86.AVX512() && hasFMA:
		currentLevel = LevelAVX512
		currentWidth = 64
	case hasAVX2 && hasFMA:
		currentLevel = LevelAVX2
		currentWidth = 32
	default:
		// SSE2 is baseline for amd64, but no kernel is written for it.
		currentLevel = LevelSSE2
		currentWidth = 16
	}
}

// HasAVX2 reports whether the CPU supports AVX2.
func HasAVX2() bool {
	return hasAVX2
}

// HasFMA reports whether the CPU supports fused multiply-add.
func HasFMA() bool {
	return hasFMA
}
