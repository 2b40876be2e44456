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

import (
	"simd/archsimd"

	"github.com/ufxr/go-ufxr/accel"
)

func init() {
	if accel.CurrentLevel() >= accel.LevelAVX2 {
		SinDeg2 = SinDeg2_avx2
	}
}

// SinDeg2_avx2 is the AVX2 form of SinDeg2. It reduces with the nearest
// integer rather than truncation; both land on the same parabola.
func SinDeg2_avx2(outs, xs []float32) {
	checkBatch(outs, xs)
	outs = outs[:len(xs)]
	for i := 0; i+8 <= len(xs); i += 8 {
		x := archsimd.LoadFloat32x8Slice(xs[i:])
		r := foldF32x8(reduceF32x8(x))
		p := vEight.Sub(vSixteen.Mul(absF32x8(r)))
		r.Mul(p).StoreSlice(outs[i:])
	}
}
