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

// Command exp2gen writes the exp2 kernels for package ops from a
// coefficient table.
//
// Usage:
//
//	exp2gen [--targets fallback|avx2|all] [--package ops] [--verbose] <max-degree> <table> <outdir>
//
// One file is written per degree from 2 through max-degree and per target.
// Table rows are "degree,bound,c0,...,cD".
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ufxr/go-ufxr/internal/polygen"
)

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	var (
		targets string
		pkg     string
		verbose bool
	)
	cmd := &cobra.Command{
		Use:           "exp2gen <max-degree> <table> <outdir>",
		Short:         "Generate exp2 approximation kernels from a coefficient table",
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			maxDegree, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("bad max degree %q", args[0])
			}
			ts, err := polygen.ParseTargets(targets)
			if err != nil {
				return err
			}
			g := &polygen.Generator{
				Family:    polygen.Exp2(),
				MaxDegree: maxDegree,
				TablePath: args[1],
				OutputDir: args[2],
				Targets:   ts,
				Package:   pkg,
				Verbose:   verbose,
				Log:       log.New(logOut, "exp2gen: ", 0),
			}
			_, err = g.Run()
			return err
		},
	}
	cmd.Flags().StringVar(&targets, "targets", "fallback", "comma separated targets: fallback, avx2 or all")
	cmd.Flags().StringVar(&pkg, "package", "ops", "package clause of the generated files")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log each file written")
	return cmd
}
