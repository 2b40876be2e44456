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

package verify

import "github.com/ufxr/go-ufxr/ops"

// Entry describes one shipped kernel and the domain it is checked over.
type Entry struct {
	Name     string
	Kernel   ops.Kernel
	Ref      Reference
	Mode     Mode
	Bound    float64 // documented maximum error
	Lo, Hi   float32 // one period for periodic kernels
	Periodic bool
}

// Kernels lists every kernel in package ops, lowest degree first within a
// family.
func Kernels() []Entry {
	return []Entry{
		{"Tri", ops.Tri, Triangle, Absolute, ops.TriMaxError, -0.5, 0.5, true},
		{"SinDeg2", ops.SinDeg2, Sine, Absolute, ops.SinDeg2MaxError, -0.5, 0.5, true},
		{"SinDeg3", ops.SinDeg3, Sine, Absolute, ops.SinDeg3MaxError, -0.5, 0.5, true},
		{"SinDeg4", ops.SinDeg4, Sine, Absolute, ops.SinDeg4MaxError, -0.5, 0.5, true},
		{"SinDeg5", ops.SinDeg5, Sine, Absolute, ops.SinDeg5MaxError, -0.5, 0.5, true},
		{"SinDeg6", ops.SinDeg6, Sine, Absolute, ops.SinDeg6MaxError, -0.5, 0.5, true},
		{"SinFullDeg3", ops.SinFullDeg3, Sine, Absolute, ops.SinFullDeg3MaxError, -0.5, 0.5, true},
		{"SinFullDeg4", ops.SinFullDeg4, Sine, Absolute, ops.SinFullDeg4MaxError, -0.5, 0.5, true},
		{"SinFullDeg5", ops.SinFullDeg5, Sine, Absolute, ops.SinFullDeg5MaxError, -0.5, 0.5, true},
		{"SinFullDeg6", ops.SinFullDeg6, Sine, Absolute, ops.SinFullDeg6MaxError, -0.5, 0.5, true},
		{"Exp2Deg2", ops.Exp2Deg2, Exp2, Relative, ops.Exp2Deg2MaxError, -126, 127, false},
		{"Exp2Deg3", ops.Exp2Deg3, Exp2, Relative, ops.Exp2Deg3MaxError, -126, 127, false},
		{"Exp2Deg4", ops.Exp2Deg4, Exp2, Relative, ops.Exp2Deg4MaxError, -126, 127, false},
		{"Exp2Deg5", ops.Exp2Deg5, Exp2, Relative, ops.Exp2Deg5MaxError, -126, 127, false},
		{"Exp2Deg6", ops.Exp2Deg6, Exp2, Relative, ops.Exp2Deg6MaxError, -126, 127, false},
	}
}

// Inputs returns the sweep for e: n samples over its domain, then for a
// periodic kernel the same samples shifted by 1 through periods-1 whole
// periods in both directions.
func (e Entry) Inputs(n, periods int) []float32 {
	base := Sweep(e.Lo, e.Hi, n)
	if !e.Periodic {
		return base
	}
	xs := append([]float32(nil), base...)
	for k := 1; k < periods; k++ {
		xs = append(xs, Periods(k, base)...)
		xs = append(xs, Periods(-k, base)...)
	}
	return xs
}

// Run checks e with c over e.Inputs(n, periods).
func (c Checker) Run(e Entry, n, periods int) Report {
	return c.Check(e.Name, e.Kernel, e.Ref, e.Inputs(n, periods), e.Mode)
}
