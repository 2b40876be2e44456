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
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/ufxr/go-ufxr/errcode"
)

// MaxTableSize is the largest coefficient table accepted, in bytes.
const MaxTableSize = 1 << 20

// Row is one parsed table line.
type Row struct {
	Mode   string    // fit mode; empty for tables without a mode column
	Degree int       // kernel degree
	Bound  float64   // documented maximum error
	Coeffs []float64 // c0 first
	Line   int       // 1-based line in the table, for diagnostics
}

// ReadTableFile reads the table at path for family f. Files larger than
// MaxTableSize are rejected with errcode.LargeText.
func ReadTableFile(path string, f Family) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxTableSize+1))
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", path, err)
	}
	if len(data) > MaxTableSize {
		return nil, fmt.Errorf("table %s is larger than %d bytes: %w", path, MaxTableSize, errcode.LargeText)
	}
	rows, err := ReadTable(bytes.NewReader(data), f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// ReadTable parses every row of a table for family f. Lines starting with
// '#' and blank lines are ignored. Rows belonging to other fit modes are
// parsed and returned as well; Select picks the ones a run needs.
func ReadTable(r io.Reader, f Family) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var rows []Row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse table: %w", err)
		}
		line, _ := cr.FieldPos(0)
		row, err := parseRow(rec, f)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		row.Line = line
		rows = append(rows, row)
	}
	return rows, nil
}

// parseRow decodes "[mode,]degree,bound,c0,...".
func parseRow(rec []string, f Family) (Row, error) {
	var row Row
	fields := lo.Map(rec, func(s string, _ int) string { return strings.TrimSpace(s) })
	if f.HasModeColumn {
		if len(fields) == 0 || fields[0] == "" {
			return row, errors.New("missing mode")
		}
		row.Mode, fields = fields[0], fields[1:]
	}
	if len(fields) < 2 {
		return row, fmt.Errorf("want degree and bound, got %d fields", len(fields))
	}

	deg, err := strconv.Atoi(fields[0])
	if err != nil {
		return row, fmt.Errorf("bad degree %q", fields[0])
	}
	row.Degree = deg

	row.Bound, err = strconv.ParseFloat(fields[1], 64)
	if err != nil || !(row.Bound > 0) || math.IsInf(row.Bound, 0) {
		return row, fmt.Errorf("degree %d: bad bound %q", deg, fields[1])
	}

	for i, s := range fields[2:] {
		c, err := strconv.ParseFloat(s, 64)
		if err != nil || !finite32(c) {
			return row, fmt.Errorf("degree %d: bad coefficient c%d %q", deg, i, s)
		}
		row.Coeffs = append(row.Coeffs, c)
	}
	return row, nil
}

// finite32 reports whether v is a number that stays finite as a float32.
func finite32(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(float64(float32(v)), 0)
}

// Select returns the rows of f for degrees f.MinDegree through maxDegree in
// ascending order. Each degree must appear exactly once with
// f.NumCoeffs(degree) coefficients.
func Select(rows []Row, f Family, maxDegree int) ([]Row, error) {
	if maxDegree < f.MinDegree {
		return nil, fmt.Errorf("max degree %d is below the minimum degree %d for %s", maxDegree, f.MinDegree, f.Tag())
	}
	if maxDegree > f.MaxDegree {
		return nil, fmt.Errorf("max degree %d is above the maximum degree %d for %s", maxDegree, f.MaxDegree, f.Tag())
	}

	mine := lo.Filter(rows, func(r Row, _ int) bool { return r.Mode == f.Mode })
	byDegree := lo.GroupBy(mine, func(r Row) int { return r.Degree })

	degrees := lo.RangeFrom(f.MinDegree, maxDegree-f.MinDegree+1)
	missing := lo.Filter(degrees, func(d int, _ int) bool { return len(byDegree[d]) == 0 })
	if len(missing) > 0 {
		return nil, fmt.Errorf("%s: no coefficients for degree %v", f.Tag(), missing)
	}

	out := make([]Row, 0, len(degrees))
	for _, d := range degrees {
		rs := byDegree[d]
		if len(rs) > 1 {
			return nil, fmt.Errorf("%s: degree %d appears on lines %v", f.Tag(), d,
				lo.Map(rs, func(r Row, _ int) int { return r.Line }))
		}
		r := rs[0]
		if want := f.NumCoeffs(d); len(r.Coeffs) != want {
			return nil, fmt.Errorf("%s: line %d: degree %d needs %d coefficients, got %d",
				f.Tag(), r.Line, d, want, len(r.Coeffs))
		}
		out = append(out, r)
	}
	return out, nil
}
