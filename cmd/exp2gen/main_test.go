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

package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const table = "../../ops/tables/exp2.csv"

func TestMain(m *testing.M) {
	if os.Getenv("EXP2GEN_RUN_MAIN") == "1" {
		main()
		os.Exit(0)
	}
	os.Exit(m.Run())
}

func runMain(t *testing.T, args ...string) (stderr string, code int) {
	t.Helper()
	cmd := exec.Command(os.Args[0], args...)
	cmd.Env = append(os.Environ(), "EXP2GEN_RUN_MAIN=1")
	var buf bytes.Buffer
	cmd.Stderr = &buf
	err := cmd.Run()
	if exitErr, ok := err.(*exec.ExitError); ok {
		return buf.String(), exitErr.ExitCode()
	}
	require.NoError(t, err)
	return buf.String(), 0
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func TestFiveFiles(t *testing.T) {
	dir := t.TempDir()
	stderr, code := runMain(t, "6", table, dir)
	require.Equal(t, 0, code, stderr)
	assert.Empty(t, stderr)
	assert.Equal(t, []string{
		"z_exp2_deg2.gen.go",
		"z_exp2_deg3.gen.go",
		"z_exp2_deg4.gen.go",
		"z_exp2_deg5.gen.go",
		"z_exp2_deg6.gen.go",
	}, listDir(t, dir))
}

func TestAllTargetsVerbose(t *testing.T) {
	dir := t.TempDir()
	var logs bytes.Buffer
	cmd := newRootCmd(&logs)
	cmd.SetArgs([]string{"--targets", "all", "-v", "3", table, dir})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, []string{
		"z_exp2_deg2.gen.go",
		"z_exp2_deg2_avx2.gen.go",
		"z_exp2_deg3.gen.go",
		"z_exp2_deg3_avx2.gen.go",
	}, listDir(t, dir))
	assert.Contains(t, logs.String(), "exp2gen: wrote "+filepath.Join(dir, "z_exp2_deg3_avx2.gen.go"))
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no args", nil, "accepts 3 arg(s)"},
		{"bad degree", []string{"six", table, dir}, `bad max degree "six"`},
		{"degree too low", []string{"1", table, dir}, "below the minimum degree 2"},
		{"degree missing from table", []string{"7", table, dir}, "no coefficients for degree [7]"},
		{"missing table", []string{"6", filepath.Join(dir, "none.csv"), dir}, "open table"},
		{"bad target", []string{"--targets", "neon", "6", table, dir}, "unknown target: neon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stderr, code := runMain(t, tt.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr, "Error: ")
			assert.Contains(t, stderr, tt.want)
		})
	}
	assert.Empty(t, listDir(t, dir))
}
