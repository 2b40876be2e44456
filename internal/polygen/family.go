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

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind selects how a family's kernel turns an input into a polynomial
// argument and the polynomial value into an output.
type Kind int

const (
	// KindExp2 splits x into floor(x) and the fraction f, evaluates P(f)
	// and adds floor(x) to the float32 exponent field.
	KindExp2 Kind = iota

	// KindSine reduces x by its nearest integer to r and returns r*P(|r|).
	KindSine
)

// Family describes one generator pipeline.
type Family struct {
	Kind Kind
	Base string // lower-case function name: "exp2", "sin"
	Mode string // fit mode, "" when the table has no mode column
	Tool string // generator binary named in the file header

	HasModeColumn bool
	Fold          bool // fold the reduced phase into the quarter wave
	MinDegree     int
	MaxDegree     int
}

// Fit modes of the sine table.
const (
	ModeFolded = "folded"
	ModeFull   = "full"
)

var title = cases.Title(language.English)

// Exp2 returns the exp2 family.
func Exp2() Family {
	return Family{
		Kind:      KindExp2,
		Base:      "exp2",
		Tool:      "exp2gen",
		MinDegree: 2,
		MaxDegree: 16,
	}
}

// Sine returns the sine family for a fit mode, either ModeFolded or
// ModeFull.
func Sine(mode string) (Family, error) {
	f := Family{
		Kind:          KindSine,
		Base:          "sin",
		Mode:          mode,
		Tool:          "singen",
		HasModeColumn: true,
		MinDegree:     3,
		MaxDegree:     16,
	}
	switch mode {
	case ModeFolded:
		f.Fold = true
	case ModeFull:
	default:
		return Family{}, fmt.Errorf("unknown sine mode %q (valid: %s, %s)", mode, ModeFolded, ModeFull)
	}
	return f, nil
}

// NumCoeffs is the number of table coefficients a degree needs. An exp2
// polynomial of degree d has d+1 terms; a sine kernel of degree d is r times
// a polynomial of degree d-1.
func (f Family) NumCoeffs(degree int) int {
	if f.Kind == KindSine {
		return degree
	}
	return degree + 1
}

// Tag names the family in messages, e.g. "exp2" or "sin/full".
func (f Family) Tag() string {
	if f.Mode == "" {
		return f.Base
	}
	return f.Base + "/" + f.Mode
}

// stem is the lower-case name used in file names: "exp2", "sin", "sinfull".
func (f Family) stem() string {
	if f.Mode == "" || f.Fold {
		return f.Base
	}
	return f.Base + f.Mode
}

// KernelName is the exported dispatch variable for a degree, e.g.
// "Exp2Deg4", "SinDeg5" or "SinFullDeg5".
func (f Family) KernelName(degree int) string {
	name := title.String(f.Base)
	if f.Mode != "" && !f.Fold {
		name += title.String(f.Mode)
	}
	return fmt.Sprintf("%sDeg%d", name, degree)
}

// constPrefix is the unexported prefix of the broadcast coefficient vectors.
func (f Family) constPrefix(degree int) string {
	name := f.KernelName(degree)
	return strings.ToLower(name[:1]) + name[1:]
}

// FileName is the output file for a degree and target.
func (f Family) FileName(degree int, t Target) string {
	return fmt.Sprintf("z_%s_deg%d%s.gen.go", f.stem(), degree, t.Suffix)
}
