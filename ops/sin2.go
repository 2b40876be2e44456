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

// SinDeg2 approximates sin(2πx), x in cycles, with the parabola
// x*(8 - 16|x|) on the reduced phase. Peak amplitude is exactly 1.
var SinDeg2 Kernel

// SinDeg2MaxError bounds the absolute error of SinDeg2.
const SinDeg2MaxError = 0.057

func init() {
	if SinDeg2 == nil {
		SinDeg2 = SinDeg2_fallback
	}
}

// SinDeg2_fallback is the portable form of SinDeg2.
func SinDeg2_fallback(outs, xs []float32) {
	checkBatch(outs, xs)
	outs = outs[:len(xs)]
	for i, x := range xs {
		// Drop whole cycles; x is now in (-1, 1).
		x -= float32(int32(x))
		if t := 0.5 - x; t < x {
			x = t
		}
		if t := -0.5 - x; t > x {
			x = t
		}
		outs[i] = x * (8 - 16*abs32(x))
	}
}
