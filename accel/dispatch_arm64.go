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

//go:build arm64

package accel

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ASIMD is part of the ARMv8-A base architecture. No NEON kernels are
	// written yet, so ops keeps the portable forms at this level.
	if cpu.ARM64.HasASIMD {
		currentLevel = LevelNEON
		currentWidth = 16
	} else {
		setScalarMode()
	}
}

// HasAVX2 returns false on ARM.
func HasAVX2() bool {
	return false
}

// HasFMA reports whether the CPU supports fused multiply-add, which every
// ARMv8 floating-point unit does.
func HasFMA() bool {
	return cpu.ARM64.HasFP
}
