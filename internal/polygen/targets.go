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
	"strings"
)

// Target is one code generation target.
type Target struct {
	Name     string // "fallback", "avx2"
	BuildTag string // "" when the file builds everywhere
	Suffix   string // file name suffix before ".gen.go"
	Lanes    int    // float32 lanes per iteration, 1 for scalar
}

// FallbackTarget is the portable scalar form.
func FallbackTarget() Target {
	return Target{Name: "fallback", Lanes: 1}
}

// AVX2Target is the 256-bit archsimd form. The purego tag excludes it.
func AVX2Target() Target {
	return Target{
		Name:     "avx2",
		BuildTag: "amd64 && goexperiment.simd && !purego",
		Suffix:   "_avx2",
		Lanes:    8,
	}
}

// GetTarget returns the target with the given name.
func GetTarget(name string) (Target, error) {
	switch name {
	case "fallback":
		return FallbackTarget(), nil
	case "avx2":
		return AVX2Target(), nil
	default:
		return Target{}, fmt.Errorf("unknown target: %s (valid: fallback, avx2, all)", name)
	}
}

// ParseTargets parses a comma separated target list. "all" selects every
// target. Duplicates are dropped and the result is in canonical order
// (fallback before avx2) so output does not depend on flag order.
func ParseTargets(list string) ([]Target, error) {
	want := map[string]bool{}
	for _, name := range strings.Split(list, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if name == "all" {
			want["fallback"] = true
			want["avx2"] = true
			continue
		}
		if _, err := GetTarget(name); err != nil {
			return nil, err
		}
		want[name] = true
	}
	if len(want) == 0 {
		return nil, fmt.Errorf("no targets in %q", list)
	}

	var out []Target
	for _, t := range []Target{FallbackTarget(), AVX2Target()} {
		if want[t.Name] {
			out = append(out, t)
		}
	}
	return out, nil
}
