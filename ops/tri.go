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

// Tri is the triangle wave with period 1 and peak amplitude 1:
// Tri(0) = 0, Tri(0.25) = 1, Tri(0.5) = 0, Tri(0.75) = -1.
var Tri Kernel

// TriMaxError is zero: the fold is exact in float32.
const TriMaxError = 0

func init() {
	if Tri == nil {
		Tri = Tri_fallback
	}
}

// Tri_fallback is the portable form of Tri.
func Tri_fallback(outs, xs []float32) {
	checkBatch(outs, xs)
	outs = outs[:len(xs)]
	for i, x := range xs {
		outs[i] = 4 * foldQuarter(reduce(x))
	}
}
