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

// Package diagnostic collects the non-fatal faults of one run. The
// collection is append-only: entries are recorded in the order the pipeline
// hit them and every entry lengthens the final value by the error penalty.
package diagnostic

import (
	"github.com/tallyrun/tallyrun/util/guard"
)

// Kind labels the signal conditions raised by the pipeline itself, as
// opposed to faults captured from a failing step.
type Kind string

// The pipeline's own signal conditions.
const (
	// NegativeIndex is raised when the item pass drives the running index
	// below the index floor.
	NegativeIndex Kind = "NegativeIndex"
	// NullInput is raised when the token pass meets an absent input line.
	NullInput Kind = "NullInput"
)

// Collector accumulates the error entries of one run.
type Collector struct {
	entries []string
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Record appends a pipeline signal condition.
func (c *Collector) Record(k Kind) {
	c.entries = append(c.entries, string(k))
}

// Capture appends a fault from a guarded step as "<kind>:<message>". A nil
// fault is ignored.
func (c *Collector) Capture(f *guard.Fault) {
	if f == nil {
		return
	}
	c.entries = append(c.entries, f.Error())
}

// Len returns the number of recorded entries.
func (c *Collector) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the recorded entries in order.
func (c *Collector) Entries() []string {
	out := make([]string, len(c.entries))
	copy(out, c.entries)
	return out
}
