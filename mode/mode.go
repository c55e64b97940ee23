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

// Package mode resolves the per-item mode of the item pass and applies its
// effect on the run accumulators.
package mode

import (
	"strings"

	"github.com/tallyrun/tallyrun/config"
)

// Mode is the per-item classification of the item pass.
type Mode uint8

// The modes, in resolution order. Delta is never produced by Determine but
// remains a valid mode with no effect.
const (
	Unknown Mode = iota
	Alpha
	Beta
	Gamma
	Delta
)

// String returns the mode's name.
func (m Mode) String() string {
	switch m {
	case Alpha:
		return "Alpha"
	case Beta:
		return "Beta"
	case Gamma:
		return "Gamma"
	case Delta:
		return "Delta"
	default:
		return "Unknown"
	}
}

// Determine resolves the mode for one item. The checks are ordered and the
// first match wins: Beta strictly before Alpha, Alpha before Gamma, Gamma
// before Unknown.
func Determine(flag bool, name string, index int) Mode {
	switch {
	case flag && index%config.BetaIndexModulus == 0:
		return Beta
	case !flag && name != "" && len(name) > config.AlphaNameLen:
		return Alpha
	case index < 0:
		return Gamma
	default:
		return Unknown
	}
}

// Effects holds the three accumulator cells written by mode effects. They
// enter the final aggregation as the sum A+B+C.
type Effects struct {
	A, B, C int
}

// Apply executes the effect of m on the accumulator cells and returns the
// possibly-adjusted result. Beta intentionally executes the Gamma effect as
// well: the two assignments below replace a legacy fall-through case and
// both must run.
func (e *Effects) Apply(m Mode, index, result int, flag bool, name string, itemCount int) int {
	switch m {
	case Alpha:
		e.A = index + 1
	case Beta:
		e.B = index * 2
		e.C = index - 3
	case Gamma:
		e.C = index - 3
	case Delta:
		// No effect.
	default:
		switch {
		case (flag && index > 0) || (!flag && strings.HasPrefix(name, "a") && itemCount > 0):
			result += 7
		case index == 0 && name != "":
			result--
		default:
			result ^= index
		}
	}
	return result
}
