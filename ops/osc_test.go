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
	"math"
	"testing"
)

func testFreqs(n int) []float32 {
	freqs := make([]float32, n)
	for i := range freqs {
		// Sweep from 20 Hz to about 5 kHz at 48 kHz.
		freqs[i] = float32(20+float64(i)*5000/float64(n)) / 48000
	}
	return freqs
}

func TestAdvancePhase(t *testing.T) {
	freqs := []float32{0.25, 0.25, 0.25, 0.25, 0.5, 0.125, 0.125, 0.75}
	outs := make([]float32, len(freqs))
	next := AdvancePhase(0, outs, freqs)

	want := []float32{0, 0.25, 0.5, 0.75, 0, 0.5, 0.625, 0.75}
	for i := range want {
		if outs[i] != want[i] {
			t.Errorf("phase[%d] = %v, want %v", i, outs[i], want[i])
		}
	}
	if next != 0.5 {
		t.Errorf("next phase = %v, want 0.5", next)
	}
}

func TestAdvancePhaseWrapsInput(t *testing.T) {
	freqs := make([]float32, Quantum)
	outs := make([]float32, Quantum)
	for _, start := range []float32{3.25, -0.75, -2} {
		next := AdvancePhase(start, outs, freqs)
		want := start - float32(math.Floor(float64(start)))
		if outs[0] != want || next != want {
			t.Errorf("AdvancePhase(%v): first %v, next %v, want %v", start, outs[0], next, want)
		}
	}
}

func TestWrapPhase(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{0.5, 0.5},
		{1, 0},
		{1.25, 0.25},
		{-0.25, 0.75},
		{-1e-9, 0},
		{-3, 0},
	}
	for _, tt := range tests {
		if got := wrapPhase(tt.in); got != tt.want {
			t.Errorf("wrapPhase(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOscillatorPhaseStaysWrapped(t *testing.T) {
	var o Oscillator
	freqs := make([]float32, 256)
	for i := range freqs {
		freqs[i] = 0.37
	}
	outs := make([]float32, len(freqs))
	for range 100 {
		o.Render(outs, freqs)
		if o.Phase < 0 || o.Phase >= 1 {
			t.Fatalf("phase %v outside [0, 1)", o.Phase)
		}
	}
}

// Rendering in batches of any quantum multiple matches one long batch.
func TestOscillatorBatchSplit(t *testing.T) {
	const n = 4096
	freqs := testFreqs(n)

	for _, wave := range []struct {
		name string
		k    Kernel
	}{{"default", nil}, {"SinDeg5", SinDeg5}, {"Tri", Tri}} {
		whole := make([]float32, n)
		ref := Oscillator{Phase: 0.1, Wave: wave.k}
		ref.Render(whole, freqs)

		for _, sizes := range [][]int{{Quantum}, {64}, {8, 24, 512, 1000, 16}} {
			o := Oscillator{Phase: 0.1, Wave: wave.k}
			got := make([]float32, n)
			for i, k := 0, 0; i < n; k++ {
				size := sizes[k%len(sizes)]
				if i+size > n {
					size = n - i
				}
				o.Render(got[i:i+size], freqs[i:i+size])
				i += size
			}
			for i := range got {
				if math.Float32bits(got[i]) != math.Float32bits(whole[i]) {
					t.Errorf("%s split %v: sample %d = %v, want %v", wave.name, sizes, i, got[i], whole[i])
					break
				}
			}
			if o.Phase != ref.Phase {
				t.Errorf("%s split %v: phase %v, want %v", wave.name, sizes, o.Phase, ref.Phase)
			}
		}
	}
}

func TestRenderConstMatchesRender(t *testing.T) {
	const freq = float32(440.0 / 48000)
	freqs := make([]float32, 512)
	for i := range freqs {
		freqs[i] = freq
	}

	a := Oscillator{Wave: SinDeg4}
	b := Oscillator{Wave: SinDeg4}
	got := make([]float32, len(freqs))
	want := make([]float32, len(freqs))
	for range 3 {
		a.RenderConst(got, freq)
		b.Render(want, freqs)
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("sample %d: RenderConst %v, Render %v", i, got[i], want[i])
			}
		}
	}
	if a.Phase != b.Phase {
		t.Errorf("phase %v, want %v", a.Phase, b.Phase)
	}
}

func TestOscillatorDefaultWave(t *testing.T) {
	freqs := make([]float32, Quantum)
	for i := range freqs {
		freqs[i] = 0.25
	}
	outs := make([]float32, Quantum)
	var o Oscillator
	o.Render(outs, freqs)

	want := []float32{0, 1, 0, -1, 0, 1, 0, -1}
	for i := range want {
		if outs[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, outs[i], want[i])
		}
	}
}

func TestOscillatorContinuity(t *testing.T) {
	// A 100 Hz sine at 48 kHz moves at most 2π·100/48000 per sample.
	const freq = float32(100.0 / 48000)
	o := Oscillator{Wave: SinDeg6}
	outs := make([]float32, 64)
	maxStep := 2*math.Pi*float64(freq) + 2*SinDeg6MaxError

	prev := float32(0)
	first := true
	for range 200 {
		o.RenderConst(outs, freq)
		for _, y := range outs {
			if !first && math.Abs(float64(y-prev)) > maxStep {
				t.Fatalf("step %v exceeds %v", y-prev, maxStep)
			}
			prev, first = y, false
		}
	}
}

// With an identity wave the output is the phase itself, so the increment
// between any two samples, batch boundaries included, is the frequency.
func TestPhaseIncrementAcrossBatches(t *testing.T) {
	const freq = float32(0.0137)
	o := Oscillator{Wave: func(outs, xs []float32) { copy(outs, xs) }}
	outs := make([]float32, 24)

	prev := float32(-1)
	for range 50 {
		o.RenderConst(outs, freq)
		for _, p := range outs {
			if prev >= 0 {
				step := p - prev
				if step < 0 {
					step++
				}
				if math.Abs(float64(step-freq)) > 1e-6 {
					t.Fatalf("phase step %v, want %v", step, freq)
				}
			}
			prev = p
		}
	}
}

func BenchmarkOscillator(b *testing.B) {
	freqs := testFreqs(1024)
	outs := make([]float32, len(freqs))
	o := Oscillator{Wave: SinDeg4}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		o.Render(outs, freqs)
	}
}
