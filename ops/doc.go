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

// Package ops provides batch kernels that approximate periodic and
// exponential functions for audio oscillators.
//
// # Kernels
//
// Every kernel has the form
//
//	func(outs, xs []float32)
//
// and writes f(xs[i]) to outs[i] for every i < len(xs). len(xs) must be a
// multiple of Quantum and outs must be at least as long as xs. Kernels do
// not allocate, keep no state, and may be called in place (outs and xs may
// be the same slice).
//
// Periodic kernels take a phase in cycles, so their period is 1:
//
//	Tri            exact triangle wave
//	SinDeg2        quadratic sine, peak amplitude 1
//	SinDeg3-6      generated sine approximations of increasing degree
//	SinFullDeg3-6  generated sine fits over the full period, no quarter fold
//
// The exponential kernels Exp2Deg2 through Exp2Deg6 compute 2^x for x in
// [-126, 127].
//
// Higher degree means lower error and more arithmetic per sample. The
// degree is chosen by which kernel the caller uses; each kernel documents
// its maximum error in a <Name>MaxError constant (absolute for sine and
// triangle, relative for exp2).
//
// # Dispatch
//
// Each kernel is a package-level variable set during init. The portable
// form (<Name>_fallback) is always compiled. When built with
// GOEXPERIMENT=simd on amd64 (and without the purego tag), the AVX2 form
// (<Name>_avx2) replaces it if the CPU has AVX2 and FMA and UFXR_NO_SIMD
// is unset. See package accel.
//
// # Debug checks
//
// Building with -tags ufxrdebug makes every kernel panic when len(xs) is
// not a multiple of Quantum or outs is too short. Without the tag such
// calls are not checked and their results are unspecified.
//
// # Generated code
//
// The z_*.gen.go files are produced by cmd/exp2gen and cmd/singen from the
// coefficient tables in ops/tables. Run go generate after editing a table.
package ops
