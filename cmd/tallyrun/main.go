//  Copyright (c) 2024 Uber Technologies, Inc.
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

// main package builds the standalone tallyrun binary. Without flags it runs
// the fixed invocation once over its argument list; with -scenario it
// executes every run of a YAML scenario document against the same process
// state. The process always exits with status zero: a top-level failure is
// printed as an Unhandled line instead of a non-zero exit.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/tallyrun/tallyrun"
	"github.com/tallyrun/tallyrun/config"
	"github.com/tallyrun/tallyrun/runlog"
	"github.com/tallyrun/tallyrun/scenario"
	"github.com/tallyrun/tallyrun/state"
)

var (
	// _scenarioPath is the optional YAML scenario document to execute
	// instead of the fixed invocation.
	_scenarioPath string
	// _verbose enables the archived-run trace after all runs complete.
	_verbose bool
)

func main() {
	flag.StringVar(&_scenarioPath, "scenario", "", "Path to a YAML scenario document; replaces the fixed invocation.")
	flag.BoolVar(&_verbose, "verbose", false, "Print the archived run records after all runs complete.")
	flag.Parse()

	run(flag.Args(), os.Stdout)
}

// run executes the requested runs and prints their summaries. Any failure,
// including a panic, is reported as a single Unhandled line; the caller
// still exits normally.
func run(args []string, out io.Writer) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(out, "Unhandled: Panic: %v\n", r)
		}
	}()

	reqs, err := requests(args)
	if err != nil {
		fmt.Fprintf(out, "Unhandled: Error: %v\n", err)
		return
	}

	proc := tallyrun.NewProcess()
	log := runlog.NewLog()
	c := tallyrun.New(proc, log)
	for _, req := range reqs {
		printSummary(out, c.Run(req))
	}

	if _verbose {
		printArchive(out, log)
	}
}

// requests resolves the runs to execute: the single fixed invocation over
// the argument list, or every run of the scenario document.
func requests(args []string) ([]tallyrun.Request, error) {
	if _scenarioPath == "" {
		return []tallyrun.Request{{
			Inputs: tallyrun.Inputs(args),
			Seed:   config.DefaultSeed,
			Flag:   config.DefaultFlag,
			Name:   config.DefaultName,
			Items:  config.DefaultItems(),
			When:   time.Now(),
		}}, nil
	}

	f, err := scenario.Load(_scenarioPath)
	if err != nil {
		return nil, err
	}

	reqs := make([]tallyrun.Request, 0, len(f.Runs))
	for _, r := range f.Runs {
		when := r.When
		if when.IsZero() {
			when = time.Now()
		}
		reqs = append(reqs, tallyrun.Request{
			Inputs: r.Inputs,
			Seed:   r.Seed,
			Flag:   r.Flag,
			Name:   r.Name,
			Items:  r.Items,
			When:   when,
		})
	}
	return reqs, nil
}

// printSummary writes the summary line followed by at most StateSampleLimit
// state entries in insertion order.
func printSummary(w io.Writer, s tallyrun.Summary) {
	fmt.Fprintf(w, "Final:%d R:%d G:%d M:%s\n", s.Final, s.Result, s.Counter, s.Mode)

	n := 0
	s.State.OrderedRange(func(k string, v state.Value) bool {
		fmt.Fprintf(w, "%s=%s\n", k, v)
		n++
		return n < config.StateSampleLimit
	})
}

// printArchive writes the archived run records. The heading is colored for
// interactive use; color degrades to plain text when the output is not a
// terminal, so piped output stays byte-stable.
func printArchive(w io.Writer, log *runlog.Log) {
	heading := color.New(color.FgCyan, color.Bold)
	_, _ = heading.Fprintln(w, "archived runs:")
	for _, rec := range log.Records() {
		fmt.Fprintf(w, "  %s mode=%s b=%d when=%s\n", rec.ID, rec.Mode, rec.B, rec.When.UTC().Format(time.RFC3339))
	}
}
