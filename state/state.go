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

// Package state defines the per-iteration auxiliary output of a run: a
// mapping from synthetic "key_<i>" labels to one of two value shapes. The
// legacy calculator stored heterogeneous values under the same key space;
// here the two shapes are an explicit tagged variant.
package state

import (
	"encoding/gob"
	"fmt"
	"time"

	"github.com/tallyrun/tallyrun/config"
	"github.com/tallyrun/tallyrun/util/orderedmap"
)

func init() {
	gob.Register(&Empty{})
	gob.Register(&Snippet{})
}

// A Value is one entry of the state mapping: either an Empty marker recorded
// while the accumulator was still empty, or a Snippet of the accumulator.
type Value interface {
	fmt.Stringer

	// isValue restricts implementations to this package.
	isValue()
}

// Empty records an iteration that ran before anything was accumulated.
type Empty struct {
	Index int
	When  time.Time
	Note  string
}

func (*Empty) isValue() {}

// String renders the entry for the summary's key=value lines.
func (e *Empty) String() string {
	return fmt.Sprintf("{index:%d note:%s when:%s}", e.Index, e.Note, e.When.UTC().Format(time.RFC3339))
}

// Snippet records the accumulator's length and leading characters at the
// time of the iteration.
type Snippet struct {
	Index   int
	Length  int
	Snippet string
	When    time.Time
}

func (*Snippet) isValue() {}

// String renders the entry for the summary's key=value lines.
func (s *Snippet) String() string {
	return fmt.Sprintf("{index:%d len:%d snippet:%q when:%s}", s.Index, s.Length, s.Snippet, s.When.UTC().Format(time.RFC3339))
}

// Map is the insertion-ordered state mapping of one run.
type Map = orderedmap.OrderedMap[string, Value]

// NewMap returns an empty state mapping.
func NewMap() *Map {
	return orderedmap.New[string, Value]()
}

// Key returns the synthetic label for item position i.
func Key(i int) string {
	return fmt.Sprintf("key_%d", i)
}

// Transform builds the state value for one iteration. An empty accumulator
// yields an Empty marker; otherwise the value captures the accumulator's
// length and its first SnippetLen characters.
func Transform(index int, accumulated string, when time.Time) Value {
	if accumulated == "" {
		return &Empty{Index: index, When: when, Note: "empty"}
	}
	n := config.SnippetLen
	if len(accumulated) < n {
		n = len(accumulated)
	}
	return &Snippet{Index: index, Length: len(accumulated), Snippet: accumulated[:n], When: when}
}
