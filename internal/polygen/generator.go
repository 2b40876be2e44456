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
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Generator orchestrates one generator run.
type Generator struct {
	Family      Family
	MaxDegree   int
	TablePath   string
	OutputDir   string
	Targets     []Target // defaults to fallback only
	Package     string   // defaults to "ops"
	AccelImport string   // defaults to DefaultAccelImport
	Verbose     bool
	Log         *log.Logger // progress under Verbose; defaults to stderr
}

// Files reads and validates the table and renders every file without
// writing anything. Files are ordered by degree, then by target.
func (g *Generator) Files() ([]File, error) {
	rows, err := ReadTableFile(g.TablePath, g.Family)
	if err != nil {
		return nil, err
	}
	rows, err = Select(rows, g.Family, g.MaxDegree)
	if err != nil {
		return nil, err
	}

	targets := g.Targets
	if len(targets) == 0 {
		targets = []Target{FallbackTarget()}
	}
	pkg := g.Package
	if pkg == "" {
		pkg = "ops"
	}
	em := Emitter{Package: pkg, AccelImport: g.AccelImport}

	var files []File
	for _, row := range rows {
		for _, t := range targets {
			file, err := em.Emit(g.Family, row, t)
			if err != nil {
				return nil, err
			}
			files = append(files, file)
		}
	}
	return files, nil
}

// Run generates and writes every file, returning their paths. Nothing is
// written when the table fails validation.
func (g *Generator) Run() ([]string, error) {
	files, err := g.Files()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	logger := g.Log
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
		if g.Verbose {
			logger = log.New(os.Stderr, g.Family.Tool+": ", 0)
		}
	} else if !g.Verbose {
		logger = log.New(io.Discard, "", 0)
	}

	var paths []string
	for _, file := range files {
		path := filepath.Join(g.OutputDir, file.Name)
		if err := os.WriteFile(path, file.Source, 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		logger.Printf("wrote %s (%d bytes)", path, len(file.Source))
		paths = append(paths, path)
	}
	return paths, nil
}
