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

// Command kernelcheck measures every kernel in package ops against its
// float64 reference and compares the result with the documented bound.
//
// Usage:
//
//	kernelcheck [--samples N] [--workers N] [--periods N]
//
// The report goes to stdout as aligned columns on a terminal and as tab
// separated values otherwise. The exit status is 1 if any kernel exceeds
// its bound.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ufxr/go-ufxr/accel"
	"github.com/ufxr/go-ufxr/internal/workerpool"
	"github.com/ufxr/go-ufxr/verify"
)

var errBoundExceeded = errors.New("kernel error exceeds its documented bound")

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	samples int
	workers int
	periods int
	aligned bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := options{aligned: isTerminal(out)}
	cmd := &cobra.Command{
		Use:           "kernelcheck",
		Short:         "Check the approximation kernels against their error bounds",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.samples <= 0 {
				return fmt.Errorf("--samples must be positive, got %d", opts.samples)
			}
			if opts.periods <= 0 {
				return fmt.Errorf("--periods must be positive, got %d", opts.periods)
			}
			return run(out, opts)
		},
	}
	cmd.Flags().IntVar(&opts.samples, "samples", 1<<20, "inputs per kernel and period")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "worker goroutines (0 means GOMAXPROCS)")
	cmd.Flags().IntVar(&opts.periods, "periods", 4, "periods swept in each direction for periodic kernels")
	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func run(out io.Writer, opts options) error {
	pool := workerpool.New(opts.workers)
	defer pool.Close()
	checker := verify.Checker{Pool: pool}

	// Tab separated output needs no padding, so only the terminal view
	// goes through tabwriter, which only aligns tab terminated cells.
	w, eol := out, "\n"
	var tw *tabwriter.Writer
	if opts.aligned {
		tw = tabwriter.NewWriter(out, 0, 8, 2, ' ', tabwriter.AlignRight)
		w, eol = tw, "\t\n"
	}
	fmt.Fprint(w, "kernel\tlevel\tmode\tsamples\tmax error\tworst x\tbound\tok"+eol)

	failed := 0
	level := accel.CurrentName()
	for _, e := range verify.Kernels() {
		rep := checker.Run(e, opts.samples, opts.periods)
		ok := "ok"
		if !rep.Within(e.Bound) {
			ok = "FAIL"
			failed++
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.3g\t%g\t%.3g\t%s%s",
			rep.Name, level, rep.Mode, rep.Samples, rep.MaxError, rep.Worst, e.Bound, ok, eol)
	}
	if tw != nil {
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d kernels: %w", failed, len(verify.Kernels()), errBoundExceeded)
	}
	return nil
}
