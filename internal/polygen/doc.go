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

// Package polygen turns tabulated polynomial coefficients into Go source
// for the batch kernels in package ops.
//
// A Family describes one pipeline (exp2, or sine in one fit mode): how its
// table rows are laid out, which degrees it covers and how a kernel of that
// family evaluates its polynomial. Generator reads a table, validates the
// rows for every requested degree and writes one file per degree and target.
package polygen
