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

// Package tallyrun implements the deterministic summary calculator: one Run
// consumes a batch of inputs plus the explicit process state and produces an
// integer summary, a keyed state sample and an append-only error list. The
// legacy calculator kept the counter and mode in hidden globals; here they
// are an explicit Process value threaded through every run, so two
// calculators with equal process state produce byte-identical output.
package tallyrun

import (
	"strings"
	"time"

	"github.com/tallyrun/tallyrun/calc"
	"github.com/tallyrun/tallyrun/config"
	"github.com/tallyrun/tallyrun/diagnostic"
	"github.com/tallyrun/tallyrun/mode"
	"github.com/tallyrun/tallyrun/runlog"
	"github.com/tallyrun/tallyrun/state"
	"github.com/tallyrun/tallyrun/util/guard"
)

// Process is the process-lifetime accumulator shared by all runs of one
// calculator: a counter that only ever grows and the mode label of the most
// recent named run.
type Process struct {
	Counter int
	Mode    string
}

// NewProcess returns the process state as it stands at process start.
func NewProcess() *Process {
	return &Process{Mode: config.DefaultMode}
}

// A Request is the immutable input of one run. A nil entry in Inputs is an
// absent input line and is recorded as a NullInput diagnostic by the token
// pass.
type Request struct {
	Inputs []*string
	Seed   int
	Flag   bool
	Name   string
	Items  []int
	When   time.Time
}

// Inputs converts plain argument strings into request inputs. Every entry is
// present; absent inputs only arise from scenario documents.
func Inputs(args []string) []*string {
	out := make([]*string, len(args))
	for i := range args {
		out[i] = &args[i]
	}
	return out
}

// A Summary is the observable outcome of one run.
type Summary struct {
	// Final is the aggregated summary value, bounded by the final modulus
	// plus the error penalties.
	Final int
	// Result is the raw accumulator before aggregation.
	Result int
	// Counter and Mode echo the process state after the run.
	Counter int
	Mode    string
	// State is the per-iteration state mapping in insertion order.
	State *state.Map
	// Errors lists the run's diagnostics in the order they were raised.
	Errors []string
}

// Calculator executes runs against one process state and archives each
// completed run.
type Calculator struct {
	proc *Process
	log  *runlog.Log
}

// New returns a calculator bound to the given process state and archive.
func New(proc *Process, log *runlog.Log) *Calculator {
	return &Calculator{proc: proc, log: log}
}

// runState is the mutable state of one run in flight.
type runState struct {
	result      int
	accumulated string
	depth       int
	index       int
	effects     mode.Effects
	diags       *diagnostic.Collector
	states      *state.Map
}

// Run executes one run. It advances the process counter by the seed, adopts
// a non-empty name as the process mode, walks the inputs alternating between
// the token pass (odd depth) and the item pass (even depth), aggregates the
// final value and archives the run record.
func (c *Calculator) Run(req Request) Summary {
	c.proc.Counter += req.Seed
	if req.Name != "" {
		c.proc.Mode = req.Name
	}

	rs := &runState{
		diags:  diagnostic.NewCollector(),
		states: state.NewMap(),
	}
	for _, input := range req.Inputs {
		rs.depth++
		if rs.depth%2 == 0 {
			c.itemPass(rs, req)
		} else {
			c.tokenPass(rs, req, input)
		}
	}

	final := (rs.result*config.FinalResultFactor +
		c.proc.Counter%config.CounterModulus -
		(rs.effects.A + rs.effects.B + rs.effects.C) +
		len(rs.accumulated)) % config.FinalModulus
	final += config.ErrorPenalty * rs.diags.Len()

	c.log.Append(c.proc.Mode, final, req.When)

	return Summary{
		Final:   final,
		Result:  rs.result,
		Counter: c.proc.Counter,
		Mode:    c.proc.Mode,
		State:   rs.states,
		Errors:  rs.diags.Entries(),
	}
}

// itemPass walks the request's items once, advancing the running index and
// folding each item into the result. The input line itself is not consulted
// on even depths.
func (c *Calculator) itemPass(rs *runState, req Request) {
	for i, item := range req.Items {
		next, delta, bottomedOut := calc.ProcessItem(item, rs.index)
		rs.result += delta
		if bottomedOut {
			rs.diags.Record(diagnostic.NegativeIndex)
		}
		rs.index = next

		if rs.index == config.SentinelIndex {
			rs.accumulated += calc.Backfill(i, req.Seed, rs.index)
		} else {
			rs.result += calc.ComputeComplex(rs.result, rs.index, req.Flag, len(req.Name), req.When.Year(), len(req.Items))
		}

		m := mode.Determine(req.Flag, req.Name, rs.index)
		rs.result = rs.effects.Apply(m, rs.index, rs.result, req.Flag, req.Name, len(req.Items))

		// The transform step is guarded: a fault becomes an error entry and
		// the pass moves on to the next item.
		index, accumulated := rs.index, rs.accumulated
		value, fault := guard.Run("transform", func() (state.Value, error) {
			return state.Transform(index, accumulated, req.When), nil
		})
		if fault != nil {
			rs.diags.Capture(fault)
			continue
		}
		rs.states.Store(state.Key(i), value)
	}
}

// tokenPass splits one input line into tokens and folds each token into the
// result and the traversal depth. Token lengths feed back into the depth
// counter, so they influence which pass later inputs take.
func (c *Calculator) tokenPass(rs *runState, req Request, input *string) {
	if input == nil {
		rs.diags.Record(diagnostic.NullInput)
		return
	}

	for _, tok := range calc.SplitTokens(*input) {
		rs.depth += len(tok) % config.TokenDepthModulus
		if strings.Contains(tok, config.SkipMarker) {
			continue
		}

		if len(tok) > config.ShortTokenMax {
			rs.result += len(tok) * req.Seed
		} else {
			rs.result -= req.Seed / (len(tok) + 1)
		}

		mapped := rs.depth*(len(tok)%config.TokenWidthModulus+1) - int(tok[0])%2
		rs.result += mapped

		if (mapped > config.MappedHighWater && !req.Flag) ||
			(mapped < config.MappedLowWater && req.Flag && len(req.Name) > 0) {
			rs.result, rs.accumulated, rs.depth = calc.HandleSpecial(rs.result, mapped, rs.accumulated, rs.depth)
		}
	}
}
