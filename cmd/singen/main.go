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

// Command singen writes the sine kernels for package ops from a
// coefficient table.
//
// Usage:
//
//	singen [--targets fallback|avx2|all] [--package ops] [--verbose] <mode> <max-degree> <table> <outdir>
//
// mode is "folded" (kernels SinDeg<D>, fitted on the quarter wave) or
// "full" (kernels SinFullDeg<D>, fitted on the whole period). One file is
// written per degree from 3 through max-degree and per target. Table rows
// are "mode,degree,bound,c0,...,c(D-1)".
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
		Use:           "singen <mode> <max-degree> <table> <outdir>",
		Short:         "Generate sine approximation kernels from a coefficient table",
		Args:          cobra.ExactArgs(4),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			family, err := polygen.Sine(args[0])
			if err != nil {
				return err
			}
			maxDegree, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("bad max degree %q", args[1])
			}
			ts, err := polygen.ParseTargets(targets)
			if err != nil {
				return err
			}
			g := &polygen.Generator{
				Family:    family,
				MaxDegree: maxDegree,
				TablePath: args[2],
				OutputDir: args[3],
				Targets:   ts,
				Package:   pkg,
				Verbose:   verbose,
				Log:       log.New(logOut, "singen: ", 0),
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
