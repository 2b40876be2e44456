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

// Package errcode is the registry of error codes shared by the code
// generators and by callers that own sample buffers.
//
// Kernels never return these; they do not allocate and cannot fail.
package errcode

import "fmt"

// Code is an error code. The zero value is OK.
type Code int

const (
	// OK means no error.
	OK Code = iota

	// NoMem means an allocation could not be satisfied.
	NoMem

	// LargeText means an input (a table file or a requested buffer) is
	// larger than the limit for that input.
	LargeText
)

var names = [...]string{
	OK:        "OK",
	NoMem:     "NOMEM",
	LargeText: "LARGETEXT",
}

var texts = [...]string{
	OK:        "no error",
	NoMem:     "out of memory",
	LargeText: "input too large",
}

// Name returns the symbolic name of the code.
//
//	LargeText.Name() == "LARGETEXT"
func (c Code) Name() string {
	if c < 0 || int(c) >= len(names) {
		return fmt.Sprintf("ERR%d", int(c))
	}
	return names[c]
}

// Text returns a human readable description of the code.
func (c Code) Text() string {
	if c < 0 || int(c) >= len(texts) {
		return fmt.Sprintf("unknown error %d", int(c))
	}
	return texts[c]
}

// Error implements the error interface, so codes can be wrapped with %w and
// matched with errors.Is.
func (c Code) Error() string {
	return c.Text()
}

// String returns the symbolic name.
func (c Code) String() string {
	return c.Name()
}
