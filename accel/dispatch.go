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

// Package accel detects the SIMD capabilities of the running CPU and
// reports which kernel forms the ops package installs.
//
// The portable (scalar) kernels are always compiled. Accelerated forms are
// compiled only for targets whose build tags allow them, and installed only
// when the CPU confirms the required features at start-up. Setting
// UFXR_NO_SIMD forces the scalar forms regardless of the CPU.
package accel

import (
	"os"
	"strconv"
)

// Level represents the SIMD instruction set in use.
type Level int

const (
	// LevelScalar indicates no SIMD, pure Go kernels.
	LevelScalar Level = iota

	// LevelSSE2 indicates the x86-64 baseline.
	LevelSSE2

	// LevelAVX2 indicates AVX2 with FMA (256-bit).
	LevelAVX2

	// LevelAVX512 indicates AVX-512 (512-bit).
	LevelAVX512

	// LevelNEON indicates ARM NEON (128-bit).
	LevelNEON
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel Level

// currentWidth is the SIMD register width in bytes for the current level.
// Set by init() in dispatch_*.go files.
var currentWidth int

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns the name of the current level, e.g. "avx2".
func CurrentName() string {
	return currentLevel.String()
}

// NoSimdEnv reports whether the UFXR_NO_SIMD environment variable asks for
// scalar kernels. Any non-empty value other than a false boolean counts.
func NoSimdEnv() bool {
	val := os.Getenv("UFXR_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = LevelScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
}
