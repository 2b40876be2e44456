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

//go:build amd64 && !goexperiment.simd

package accel

import "golang.org/x/sys/cpu"

// Without GOEXPERIMENT=simd the archsimd kernels are not compiled, so the
// level stays scalar. The CPU flags are still recorded for diagnostics.

var (
	hasAVX2 bool
	hasFMA  bool
)

func init() {
	hasAVX2 = cpu.X86.HasAVX2
	hasFMA = cpu.X86.HasFMA
	setScalarMode()
}

// HasAVX2 reports whether the CPU supports AVX2, whether or not kernels
// using it were compiled in.
func HasAVX2() bool {
	return hasAVX2
}

// HasFMA reports whether the CPU supports fused multiply-add.
func HasFMA() bool {
	return hasFMA
}
