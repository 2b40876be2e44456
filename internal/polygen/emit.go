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
	"bytes"
	"fmt"
	"math"
	"strconv"

	"golang.org/x/tools/imports"
)

// DefaultAccelImport is the package whose CurrentLevel gates SIMD kernels.
const DefaultAccelImport = "github.com/ufxr/go-ufxr/accel"

// File is one emitted source file.
type File struct {
	Name   string
	Source []byte
}

// Emitter renders kernels for a package.
type Emitter struct {
	Package     string // package clause of emitted files
	AccelImport string // import path of the dispatch level package
}

// Emit renders the source of row's kernel for target t.
func (e Emitter) Emit(f Family, row Row, t Target) (File, error) {
	var buf bytes.Buffer
	switch t.Name {
	case "fallback":
		e.emitFallback(&buf, f, row)
	case "avx2":
		e.emitAVX2(&buf, f, row)
	default:
		return File{}, fmt.Errorf("emit %s: unsupported target %s", f.KernelName(row.Degree), t.Name)
	}

	name := f.FileName(row.Degree, t)
	src, err := imports.Process(name, buf.Bytes(), &imports.Options{
		FormatOnly: true,
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
	})
	if err != nil {
		return File{}, fmt.Errorf("format %s: %w", name, err)
	}
	return File{Name: name, Source: src}, nil
}

// License is written at the top of every emitted file.
const License = `// Copyright 2025 go-ufxr Authors
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
`

func (e Emitter) header(buf *bytes.Buffer, f Family, t Target) {
	fmt.Fprintf(buf, "%s\n", License)
	fmt.Fprintf(buf, "// Code generated by %s. DO NOT EDIT.\n\n", f.Tool)
	if t.BuildTag != "" {
		fmt.Fprintf(buf, "//go:build %s\n\n", t.BuildTag)
	}
	fmt.Fprintf(buf, "package %s\n\n", e.Package)
}

// FormatCoeff prints c as the shortest literal that reads back as the same
// float32.
func FormatCoeff(c float64) string {
	return strconv.FormatFloat(float64(float32(c)), 'g', -1, 32)
}

func formatBound(b float64) string {
	return strconv.FormatFloat(b, 'g', -1, 64)
}

func (e Emitter) emitFallback(buf *bytes.Buffer, f Family, row Row) {
	name := f.KernelName(row.Degree)
	e.header(buf, f, FallbackTarget())
	if f.Kind == KindExp2 {
		fmt.Fprintf(buf, "import \"math\"\n\n")
	}

	kernelDoc(buf, f, row)
	fmt.Fprintf(buf, "var %s Kernel\n\n", name)
	fmt.Fprintf(buf, "// %sMaxError bounds the %s error of %s.\n", name, errorKind(f), name)
	fmt.Fprintf(buf, "const %sMaxError = %s\n\n", name, formatBound(row.Bound))

	fmt.Fprintf(buf, "func init() {\n")
	fmt.Fprintf(buf, "\tif %s == nil {\n", name)
	fmt.Fprintf(buf, "\t\t%s = %s_fallback\n", name, name)
	fmt.Fprintf(buf, "\t}\n")
	fmt.Fprintf(buf, "}\n\n")

	fmt.Fprintf(buf, "// %s_fallback is the portable form of %s.\n", name, name)
	fmt.Fprintf(buf, "func %s_fallback(outs, xs []float32) {\n", name)
	fmt.Fprintf(buf, "\tcheckBatch(outs, xs)\n")
	fmt.Fprintf(buf, "\touts = outs[:len(xs)]\n")
	fmt.Fprintf(buf, "\tfor i, x := range xs {\n")

	var arg string
	switch f.Kind {
	case KindExp2:
		arg = "f"
		fmt.Fprintf(buf, "\t\txi := float32(math.Floor(float64(x)))\n")
		fmt.Fprintf(buf, "\t\tf := x - xi\n")
	case KindSine:
		arg = "a"
		if f.Fold {
			fmt.Fprintf(buf, "\t\tr := foldQuarter(reduce(x))\n")
		} else {
			fmt.Fprintf(buf, "\t\tr := reduce(x)\n")
		}
		fmt.Fprintf(buf, "\t\ta := abs32(r)\n")
	}

	// Horner, highest coefficient first.
	cs := row.Coeffs
	fmt.Fprintf(buf, "\t\tp := float32(%s)\n", FormatCoeff(cs[len(cs)-1]))
	for k := len(cs) - 2; k >= 0; k-- {
		op, c := "+", cs[k]
		if math.Signbit(c) {
			op, c = "-", -c
		}
		fmt.Fprintf(buf, "\t\tp = p*%s %s %s\n", arg, op, FormatCoeff(c))
	}

	switch f.Kind {
	case KindExp2:
		fmt.Fprintf(buf, "\t\touts[i] = math.Float32frombits(math.Float32bits(p) + uint32(int32(xi))<<23)\n")
	case KindSine:
		fmt.Fprintf(buf, "\t\touts[i] = r * p\n")
	}
	fmt.Fprintf(buf, "\t}\n")
	fmt.Fprintf(buf, "}\n")
}

func (e Emitter) emitAVX2(buf *bytes.Buffer, f Family, row Row) {
	name := f.KernelName(row.Degree)
	prefix := f.constPrefix(row.Degree)
	e.header(buf, f, AVX2Target())

	accelImport := e.AccelImport
	if accelImport == "" {
		accelImport = DefaultAccelImport
	}
	fmt.Fprintf(buf, "import (\n")
	fmt.Fprintf(buf, "\t\"simd/archsimd\"\n\n")
	fmt.Fprintf(buf, "\t%q\n", accelImport)
	fmt.Fprintf(buf, ")\n\n")

	cs := row.Coeffs
	fmt.Fprintf(buf, "var (\n")
	for k, c := range cs {
		fmt.Fprintf(buf, "\t%s_c%d = archsimd.BroadcastFloat32x8(%s)\n", prefix, k, FormatCoeff(c))
	}
	fmt.Fprintf(buf, ")\n\n")

	fmt.Fprintf(buf, "func init() {\n")
	fmt.Fprintf(buf, "\tif accel.CurrentLevel() >= accel.LevelAVX2 {\n")
	fmt.Fprintf(buf, "\t\t%s = %s_avx2\n", name, name)
	fmt.Fprintf(buf, "\t}\n")
	fmt.Fprintf(buf, "}\n\n")

	fmt.Fprintf(buf, "// %s_avx2 is the AVX2 form of %s.\n", name, name)
	fmt.Fprintf(buf, "func %s_avx2(outs, xs []float32) {\n", name)
	fmt.Fprintf(buf, "\tcheckBatch(outs, xs)\n")
	fmt.Fprintf(buf, "\touts = outs[:len(xs)]\n")
	fmt.Fprintf(buf, "\tfor i := 0; i+8 <= len(xs); i += 8 {\n")
	fmt.Fprintf(buf, "\t\tx := archsimd.LoadFloat32x8Slice(xs[i:])\n")

	var arg string
	switch f.Kind {
	case KindExp2:
		arg = "f"
		fmt.Fprintf(buf, "\t\txi := floorF32x8(x)\n")
		fmt.Fprintf(buf, "\t\tf := x.Sub(xi)\n")
	case KindSine:
		arg = "a"
		if f.Fold {
			fmt.Fprintf(buf, "\t\tr := foldF32x8(reduceF32x8(x))\n")
		} else {
			fmt.Fprintf(buf, "\t\tr := reduceF32x8(x)\n")
		}
		fmt.Fprintf(buf, "\t\ta := absF32x8(r)\n")
	}

	top := len(cs) - 1
	fmt.Fprintf(buf, "\t\tp := %s_c%d.MulAdd(%s, %s_c%d)\n", prefix, top, arg, prefix, top-1)
	for k := top - 2; k >= 0; k-- {
		fmt.Fprintf(buf, "\t\tp = p.MulAdd(%s, %s_c%d)\n", arg, prefix, k)
	}

	switch f.Kind {
	case KindExp2:
		fmt.Fprintf(buf, "\t\tbits := p.AsInt32x8().Add(xi.ConvertToInt32().ShiftAllLeft(23))\n")
		fmt.Fprintf(buf, "\t\tbits.AsFloat32x8().StoreSlice(outs[i:])\n")
	case KindSine:
		fmt.Fprintf(buf, "\t\tr.Mul(p).StoreSlice(outs[i:])\n")
	}
	fmt.Fprintf(buf, "\t}\n")
	fmt.Fprintf(buf, "}\n")
}

func kernelDoc(buf *bytes.Buffer, f Family, row Row) {
	name := f.KernelName(row.Degree)
	switch f.Kind {
	case KindExp2:
		fmt.Fprintf(buf, "// %s computes 2^x for x in [-126, 127] with a degree %d polynomial.\n", name, row.Degree)
	case KindSine:
		span := "the full period"
		if f.Fold {
			span = "the quarter wave"
		}
		fmt.Fprintf(buf, "// %s approximates sin(2πx), x in cycles, with a degree %d polynomial\n", name, row.Degree)
		fmt.Fprintf(buf, "// fitted over %s.\n", span)
	}
	fmt.Fprintf(buf, "// Its %s error is at most %sMaxError.\n", errorKind(f), name)
}

func errorKind(f Family) string {
	if f.Kind == KindExp2 {
		return "relative"
	}
	return "absolute"
}
