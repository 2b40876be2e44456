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
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ufxr/go-ufxr/errcode"
)

func mustSine(t *testing.T, mode string) Family {
	t.Helper()
	f, err := Sine(mode)
	require.NoError(t, err)
	return f
}

func TestReadTableExp2(t *testing.T) {
	src := "# comment\n\n2, 0.5, 1, 2, 3\n3,0.25,1,2,3,4\n"
	rows, err := ReadTable(strings.NewReader(src), Exp2())
	require.NoError(t, err)

	want := []Row{
		{Degree: 2, Bound: 0.5, Coeffs: []float64{1, 2, 3}, Line: 3},
		{Degree: 3, Bound: 0.25, Coeffs: []float64{1, 2, 3, 4}, Line: 4},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestReadTableSine(t *testing.T) {
	rows, err := ReadTableFile("testdata/sin_small.csv", mustSine(t, ModeFolded))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "folded", rows[0].Mode)
	assert.Equal(t, "full", rows[1].Mode)
	assert.Equal(t, 3, rows[1].Degree)
	assert.Len(t, rows[1].Coeffs, 3)
}

func TestReadTableErrors(t *testing.T) {
	tests := []struct {
		name string
		f    Family
		src  string
		want string
	}{
		{"bad degree", Exp2(), "two,0.1,1,2,3\n", `bad degree "two"`},
		{"bad bound", Exp2(), "2,x,1,2,3\n", "bad bound"},
		{"negative bound", Exp2(), "2,-1,1,2,3\n", "bad bound"},
		{"bad coefficient", Exp2(), "2,0.1,1,zz,3\n", "bad coefficient c1"},
		{"NaN bound", Exp2(), "2,NaN,1,2,3\n", "bad bound"},
		{"infinite bound", Exp2(), "2,+Inf,1,2,3\n", "bad bound"},
		{"NaN coefficient", Exp2(), "2,0.01,1,NaN,1e300\n", "bad coefficient c1"},
		{"infinite coefficient", Exp2(), "2,0.01,-Inf,1,1\n", "bad coefficient c0"},
		{"float32 overflow", Exp2(), "# big\n2,0.01,1,1,1e300\n", "line 2: degree 2: bad coefficient c2"},
		{"too few fields", Exp2(), "2\n", "want degree and bound"},
		{"empty table", Exp2(), "", ""},
		{"empty mode", Family{HasModeColumn: true}, ",3,0.1,1,2,3\n", "missing mode"},
		{"line number", Exp2(), "# c\n2,0.1,1,2,3\n3,0.1,1,2,x,4\n", "line 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadTable(strings.NewReader(tt.src), tt.f)
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestReadTableFileTooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.csv")
	data := []byte(strings.Repeat("#", MaxTableSize) + "\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	_, err := ReadTableFile(path, Exp2())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errcode.LargeText), "got %v", err)
}

func TestReadTableFileMissing(t *testing.T) {
	_, err := ReadTableFile(filepath.Join(t.TempDir(), "nope.csv"), Exp2())
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSelect(t *testing.T) {
	rows := []Row{
		{Degree: 3, Bound: 1, Coeffs: []float64{1, 2, 3, 4}, Line: 2},
		{Degree: 2, Bound: 1, Coeffs: []float64{1, 2, 3}, Line: 1},
		{Degree: 9, Bound: 1, Coeffs: []float64{1}, Line: 3},
	}
	got, err := Select(rows, Exp2(), 3)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].Degree)
	assert.Equal(t, 3, got[1].Degree)
}

func TestSelectByMode(t *testing.T) {
	rows, err := ReadTableFile("testdata/sin_small.csv", mustSine(t, ModeFull))
	require.NoError(t, err)

	full, err := Select(rows, mustSine(t, ModeFull), 3)
	require.NoError(t, err)
	require.Len(t, full, 1)
	assert.Equal(t, "full", full[0].Mode)

	folded, err := Select(rows, mustSine(t, ModeFolded), 3)
	require.NoError(t, err)
	assert.Equal(t, "folded", folded[0].Mode)
}

func TestSelectErrors(t *testing.T) {
	row := func(deg, n, line int) Row {
		return Row{Degree: deg, Bound: 1, Coeffs: make([]float64, n), Line: line}
	}
	tests := []struct {
		name string
		rows []Row
		max  int
		want string
	}{
		{"missing", []Row{row(2, 3, 1), row(4, 5, 2)}, 4, "no coefficients for degree [3]"},
		{"duplicate", []Row{row(2, 3, 1), row(2, 3, 7)}, 2, "degree 2 appears on lines [1 7]"},
		{"short", []Row{row(2, 2, 5)}, 2, "line 5: degree 2 needs 3 coefficients, got 2"},
		{"long", []Row{row(2, 4, 5)}, 2, "needs 3 coefficients, got 4"},
		{"below minimum", nil, 1, "below the minimum degree 2"},
		{"above maximum", nil, 17, "above the maximum degree"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Select(tt.rows, Exp2(), tt.max)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSelectGapFile(t *testing.T) {
	rows, err := ReadTableFile("testdata/exp2_gap.csv", Exp2())
	require.NoError(t, err)
	_, err = Select(rows, Exp2(), 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "degree [3]")
}
