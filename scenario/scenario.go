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

// Package scenario loads YAML scenario files describing a sequence of runs.
// A scenario replaces the fixed invocation: each listed run executes in
// order against the same process state, which is how the counter's
// cross-run accumulation is exercised end to end.
package scenario

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// A Run is one invocation of the calculator. Inputs entries may be null in
// the YAML document; a null entry reaches the pipeline as an absent input.
type Run struct {
	Inputs []*string `yaml:"inputs"`
	Seed   int       `yaml:"seed"`
	Flag   bool      `yaml:"flag"`
	Name   string    `yaml:"name"`
	Items  []int     `yaml:"items"`
	When   time.Time `yaml:"when"`
}

// A File is a parsed scenario document.
type File struct {
	Runs []Run `yaml:"runs"`
}

// Parse decodes a scenario document.
func Parse(b []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if len(f.Runs) == 0 {
		return nil, fmt.Errorf("parse scenario: no runs defined")
	}
	return &f, nil
}

// Load reads and parses the scenario file at path.
func Load(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %q: %w", path, err)
	}
	return Parse(b)
}
