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

//go:build amd64 && goexperiment.simd && !purego

package ops

import "simd/archsimd"

// Shared AVX2 building blocks for the hand-written and generated kernels.
var (
	vZero    = archsimd.BroadcastFloat32x8(0)
	vOne     = archsimd.BroadcastFloat32x8(1)
	vHalf    = archsimd.BroadcastFloat32x8(0.5)
	vNegHalf = archsimd.BroadcastFloat32x8(-0.5)
	vFour    = archsimd.BroadcastFloat32x8(4)
	vEight   = archsimd.BroadcastFloat32x8(8)
	vSixteen = archsimd.BroadcastFloat32x8(16)
)

// reduceF32x8 subtracts the nearest integer from each lane, giving
// [-0.5, 0.5].
func reduceF32x8(x archsimd.Float32x8) archsimd.Float32x8 {
	return x.Sub(x.RoundToEven())
}

// foldF32x8 is the vector form of foldQuarter.
func foldF32x8(r archsimd.Float32x8) archsimd.Float32x8 {
	// a.Merge(b, mask) picks a where mask is set.
	t := vHalf.Sub(r)
	r = t.Merge(r, t.Less(r))
	t = vNegHalf.Sub(r)
	return t.Merge(r, t.Greater(r))
}

func absF32x8(x archsimd.Float32x8) archsimd.Float32x8 {
	return x.Max(vZero.Sub(x))
}

// floorF32x8 rounds each lane toward negative infinity.
func floorF32x8(x archsimd.Float32x8) archsimd.Float32x8 {
	xi := x.RoundToEven()
	return xi.Sub(vOne).Merge(xi, xi.Greater(x))
}
