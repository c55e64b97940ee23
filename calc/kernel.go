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

// Package calc holds the pure arithmetic kernel of the summary pipeline.
// Every function here is deterministic in its arguments; all run state is
// passed in and returned explicitly. The formulas are preserved verbatim
// for output compatibility, including their behavior on negative operands
// (Go's truncated division and remainder).
package calc

import (
	"strconv"
	"strings"

	"github.com/tallyrun/tallyrun/config"
)

// ProcessItem advances the running index by one item and reports the item's
// unconditional result contribution. The new index is the prior index plus
// item mod 7, negated when the item is even. An index strictly below the
// floor is reported as bottomedOut and replaced by the sentinel.
func ProcessItem(item, prior int) (next, delta int, bottomedOut bool) {
	next = prior + item%config.IndexModulus
	if item%2 == 0 {
		next = -next
	}
	delta = (item * config.ItemDeltaFactor) % config.ItemDeltaModulus
	if next < config.IndexFloor {
		return config.SentinelIndex, delta, true
	}
	return next, delta, false
}

// ComputeComplex folds the current result, index, flag, name length,
// calendar year and item count into a single half-step:
//
//	t = 3r + 7i - bias + (L*Y mod 100) - 9n
//
// returning t/2 when t is even and (3t+1)/2 when odd.
func ComputeComplex(result, index int, flag bool, nameLen, year, itemCount int) int {
	bias := config.NoFlagBias
	if flag {
		bias = config.FlagBias
	}
	t := 3*result + 7*index - bias + (nameLen*year)%config.NameYearModulus - config.ItemCountWeight*itemCount
	if t%2 == 0 {
		return t / 2
	}
	return (3*t + 1) / 2
}

// Backfill renders the accumulator suffix appended when the item pass
// bottoms out at position pos: it walks pos down to zero, appending j*seed,
// "-j" or ":j+index" by j mod 3.
func Backfill(pos, seed, index int) string {
	var b strings.Builder
	for j := pos; j >= 0; j-- {
		switch j % 3 {
		case 0:
			b.WriteString(strconv.Itoa(j * seed))
		case 1:
			b.WriteString("-")
			b.WriteString(strconv.Itoa(j))
		default:
			b.WriteString(":")
			b.WriteString(strconv.Itoa(j + index))
		}
	}
	return b.String()
}

// SplitTokens splits an input line on the ',', ';' and '|' separators,
// dropping empty tokens.
func SplitTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == '|'
	})
}

// HandleSpecial diverts an out-of-band mapped value. The depth adjustment
// happens before the result is recomputed, so a non-negative mapped value is
// charged against the already-adjusted depth. A negative mapped value is
// appended to the accumulator as "!<mapped>"; a non-negative one is
// prepended as-is.
func HandleSpecial(result, mapped int, accumulated string, depth int) (newResult int, newAccumulated string, newDepth int) {
	depth += mapped % config.SpecialDepthModulus
	if mapped < 0 {
		accumulated += "!" + strconv.Itoa(mapped)
		return result - 2*mapped, accumulated, depth
	}
	accumulated = strconv.Itoa(mapped) + accumulated
	return result + config.SpecialResultFactor*mapped - depth, accumulated, depth
}
