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

//go:build ufxrdebug

package ops

import "testing"

func TestCheckBatchPanics(t *testing.T) {
	for _, c := range allCases() {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: no panic for a short batch", c.name)
				}
			}()
			c.kernel(make([]float32, Quantum), make([]float32, Quantum-1))
		}()
	}
}

func TestOscillatorChecksBatch(t *testing.T) {
	// A wave that never checks its batch leaves the check to the oscillator.
	plain := func(outs, xs []float32) { copy(outs, xs) }
	for _, render := range []struct {
		name string
		fn   func(o *Oscillator)
	}{
		{"Render", func(o *Oscillator) { o.Render(make([]float32, Quantum), make([]float32, Quantum-1)) }},
		{"RenderConst", func(o *Oscillator) { o.RenderConst(make([]float32, Quantum-1), 0.01) }},
	} {
		func() {
			o := &Oscillator{Phase: 0.25, Wave: plain}
			defer func() {
				if recover() == nil {
					t.Errorf("%s: no panic for a short batch", render.name)
				}
				if o.Phase != 0.25 {
					t.Errorf("%s: phase moved to %v on a rejected batch", render.name, o.Phase)
				}
			}()
			render.fn(o)
		}()
	}
}
