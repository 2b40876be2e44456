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

package polygen

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCoeff(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1"},
		{0.5, "0.5"},
		{0.1, "0.1"},
		{-41.10559599695835, "-41.105595"},
		{6.283296563433519, "6.2832966"},
		{5.0131464813226536e-15, "5.0131463e-15"},
		{1e6, "1e+06"},
	}
	for _, tt := range tests {
		got := FormatCoeff(tt.in)
		assert.Equal(t, tt.want, got, "FormatCoeff(%v)", tt.in)
		back, err := strconv.ParseFloat(got, 32)
		require.NoError(t, err)
		assert.Equal(t, float32(tt.in), float32(back))
	}
}

func TestKernelNames(t *testing.T) {
	full := mustSine(t, ModeFull)
	folded := mustSine(t, ModeFolded)
	tests := []struct {
		f        Family
		degree   int
		name     string
		fallback string
		avx2     string
	}{
		{Exp2(), 4, "Exp2Deg4", "z_exp2_deg4.gen.go", "z_exp2_deg4_avx2.gen.go"},
		{folded, 5, "SinDeg5", "z_sin_deg5.gen.go", "z_sin_deg5_avx2.gen.go"},
		{full, 6, "SinFullDeg6", "z_sinfull_deg6.gen.go", "z_sinfull_deg6_avx2.gen.go"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.f.KernelName(tt.degree))
		assert.Equal(t, tt.fallback, tt.f.FileName(tt.degree, FallbackTarget()))
		assert.Equal(t, tt.avx2, tt.f.FileName(tt.degree, AVX2Target()))
	}
	assert.Equal(t, "sinFullDeg6", full.constPrefix(6))
}

func TestSineUnknownMode(t *testing.T) {
	_, err := Sine("half")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown sine mode "half"`)
}

func TestNumCoeffs(t *testing.T) {
	assert.Equal(t, 5, Exp2().NumCoeffs(4))
	assert.Equal(t, 4, mustSine(t, ModeFolded).NumCoeffs(4))
}

func TestParseTargets(t *testing.T) {
	names := func(ts []Target) []string {
		var out []string
		for _, t := range ts {
			out = append(out, t.Name)
		}
		return out
	}
	tests := []struct {
		in   string
		want []string
	}{
		{"fallback", []string{"fallback"}},
		{"avx2", []string{"avx2"}},
		{"avx2,fallback", []string{"fallback", "avx2"}},
		{"all", []string{"fallback", "avx2"}},
		{" AVX2 , avx2 ", []string{"avx2"}},
	}
	for _, tt := range tests {
		got, err := ParseTargets(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, names(got), tt.in)
	}

	for _, bad := range []string{"", ",", "neon", "fallback,sse"} {
		_, err := ParseTargets(bad)
		assert.Error(t, err, bad)
	}
}

func TestEmitFallbackExp2(t *testing.T) {
	row := Row{Degree: 2, Bound: 0.0035, Coeffs: []float64{1, 0.6602339716119382, 0.3397660283880618}}
	file, err := Emitter{Package: "ops"}.Emit(Exp2(), row, FallbackTarget())
	require.NoError(t, err)
	src := string(file.Source)

	assert.Equal(t, "z_exp2_deg2.gen.go", file.Name)
	assert.True(t, strings.HasPrefix(src, License+"\n// Code generated by exp2gen. DO NOT EDIT.\n\npackage ops\n"))
	assert.Contains(t, src, "var Exp2Deg2 Kernel\n")
	assert.Contains(t, src, "const Exp2Deg2MaxError = 0.0035\n")
	assert.Contains(t, src, "\t\tp := float32(0.33976603)\n\t\tp = p*f + 0.660234\n\t\tp = p*f + 1\n")
	assert.NotContains(t, src, "go:build")
}

func TestEmitAVX2Sine(t *testing.T) {
	row := Row{Mode: "full", Degree: 3, Bound: 0.05, Coeffs: []float64{7.694737348781665, -15.389474697563328, -5.0131464813226536e-15}}
	file, err := Emitter{Package: "wave", AccelImport: "example.com/accel"}.Emit(mustSine(t, ModeFull), row, AVX2Target())
	require.NoError(t, err)
	src := string(file.Source)

	assert.Equal(t, "z_sinfull_deg3_avx2.gen.go", file.Name)
	assert.Contains(t, src, "//go:build amd64 && goexperiment.simd && !purego\n\npackage wave\n")
	assert.Contains(t, src, "\"example.com/accel\"")
	assert.Contains(t, src, "sinFullDeg3_c2 = archsimd.BroadcastFloat32x8(-5.0131463e-15)")
	assert.Contains(t, src, "\t\tr := reduceF32x8(x)\n")
	assert.NotContains(t, src, "foldF32x8")
	assert.Contains(t, src, "\t\tp := sinFullDeg3_c2.MulAdd(a, sinFullDeg3_c1)\n\t\tp = p.MulAdd(a, sinFullDeg3_c0)\n")
}

func TestEmitNegativeCoefficients(t *testing.T) {
	row := Row{Mode: "folded", Degree: 3, Bound: 0.0021, Coeffs: []float64{6.396919444775267, -2.4286367536081173, -28.73636178022907}}
	file, err := Emitter{Package: "ops"}.Emit(mustSine(t, ModeFolded), row, FallbackTarget())
	require.NoError(t, err)
	src := string(file.Source)
	assert.Contains(t, src, "\t\tr := foldQuarter(reduce(x))\n")
	assert.Contains(t, src, "\t\tp := float32(-28.736362)\n\t\tp = p*a - 2.4286368\n\t\tp = p*a + 6.3969193\n")
}

// The kernels checked into package ops must be exactly what the generators
// produce from the tables there.
func TestOpsUpToDate(t *testing.T) {
	const opsDir = "../../ops"
	folded := mustSine(t, ModeFolded)
	runs := []*Generator{
		{Family: Exp2(), MaxDegree: 6, TablePath: filepath.Join(opsDir, "tables/exp2.csv")},
		{Family: folded, MaxDegree: 6, TablePath: filepath.Join(opsDir, "tables/sin.csv")},
		{Family: mustSine(t, ModeFull), MaxDegree: 6, TablePath: filepath.Join(opsDir, "tables/sin.csv")},
	}
	for _, g := range runs {
		g.Targets = []Target{FallbackTarget(), AVX2Target()}
		files, err := g.Files()
		require.NoError(t, err)
		for _, file := range files {
			have, err := os.ReadFile(filepath.Join(opsDir, file.Name))
			require.NoError(t, err)
			if diff := cmp.Diff(string(have), string(file.Source)); diff != "" {
				t.Errorf("%s is stale; run go generate ./ops (-have +want):\n%s", file.Name, diff)
			}
		}
	}
}
