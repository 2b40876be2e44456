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

import "math"

// Oscillator renders a periodic wave from a phase accumulator.
//
// The phase is in cycles and stays in [0, 1). An Oscillator must not be
// used from two goroutines at once.
type Oscillator struct {
	Phase float32 // phase of the next sample
	Wave  Kernel  // nil means SinDeg2
}

// Render fills outs[:len(freqs)] with the wave, where freqs[i] is the phase
// increment (frequency / sample rate) after sample i. len(freqs) must be a
// multiple of Quantum.
//
// Rendering a run in several batches gives the same samples as rendering it
// in one.
func (o *Oscillator) Render(outs, freqs []float32) {
	o.Phase = AdvancePhase(o.Phase, outs, freqs)
	o.wave()(outs[:len(freqs)], outs[:len(freqs)])
}

// RenderConst fills outs with a constant frequency. len(outs) must be a
// multiple of Quantum.
func (o *Oscillator) RenderConst(outs []float32, freq float32) {
	checkBatch(outs, outs)
	phase := wrapPhase(o.Phase)
	for i := range outs {
		outs[i] = phase
		phase = wrapPhase(phase + freq)
	}
	o.Phase = phase
	o.wave()(outs, outs)
}

func (o *Oscillator) wave() Kernel {
	if o.Wave == nil {
		return SinDeg2
	}
	return o.Wave
}

// AdvancePhase writes the phase of each sample to outs and returns the
// phase following the last one. outs[i] is phase plus the sum of
// freqs[:i], wrapped into [0, 1).
func AdvancePhase(phase float32, outs, freqs []float32) float32 {
	checkBatch(outs, freqs)
	outs = outs[:len(freqs)]
	phase = wrapPhase(phase)
	for i, f := range freqs {
		outs[i] = phase
		phase = wrapPhase(phase + f)
	}
	return phase
}

// wrapPhase maps p into [0, 1).
func wrapPhase(p float32) float32 {
	p -= float32(math.Floor(float64(p)))
	if p >= 1 {
		// p was a tiny negative value that rounded up.
		p = 0
	}
	return p
}
