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

// Package config names every constant of the summary pipeline. The values
// are load-bearing: the printed summary is defined by this exact arithmetic,
// so changing any of them changes the observable output of every run.
package config

// IndexModulus bounds the per-item contribution to the running index: each
// item advances the index by item mod IndexModulus before the even-item
// negation is applied.
const IndexModulus = 7

// IndexFloor is the lowest running index tolerated by the item pass. An
// index that falls strictly below it raises a NegativeIndex diagnostic and
// resets the index to SentinelIndex.
const IndexFloor = -10

// SentinelIndex is the index value signalling that the item pass bottomed
// out. It routes the current item into the backfill branch instead of the
// complexity accumulation.
const SentinelIndex = -1

// ItemDeltaFactor and ItemDeltaModulus define the unconditional result
// contribution of every processed item: (item * ItemDeltaFactor) mod
// ItemDeltaModulus.
const (
	ItemDeltaFactor  = 3
	ItemDeltaModulus = 11
)

// Complexity step parameters. The step folds the current result, index,
// flag, name length, calendar year and item count into
//
//	t = 3r + 7i - bias + (L*Y mod NameYearModulus) - ItemCountWeight*n
//
// and then halves t (even) or applies the (3t+1)/2 collatz-style step (odd).
const (
	// FlagBias is subtracted from t when the run flag is set.
	FlagBias = 13
	// NoFlagBias is subtracted from t when the run flag is clear.
	NoFlagBias = 5
	// NameYearModulus bounds the name-length-times-year term.
	NameYearModulus = 100
	// ItemCountWeight scales the item-count penalty in t.
	ItemCountWeight = 9
)

// BetaIndexModulus gates the Beta mode: a flagged run with index divisible
// by it resolves to Beta before any other mode is considered.
const BetaIndexModulus = 5

// AlphaNameLen is the exclusive lower bound on the name length required for
// Alpha mode.
const AlphaNameLen = 3

// Token pass parameters.
const (
	// TokenDepthModulus bounds how much a single token deepens the
	// traversal counter (len(token) mod TokenDepthModulus).
	TokenDepthModulus = 5
	// ShortTokenMax is the inclusive length up to which a token is charged
	// against the seed instead of multiplying it.
	ShortTokenMax = 2
	// TokenWidthModulus bounds the width factor of the mapped value
	// (len(token) mod TokenWidthModulus + 1).
	TokenWidthModulus = 3
	// SkipMarker excludes a token from the pass entirely when it appears
	// anywhere in the token.
	SkipMarker = "skip"
)

// Special-handling thresholds. A mapped value above MappedHighWater on an
// unflagged run, or below MappedLowWater on a flagged named run, diverts
// through the special handler.
const (
	MappedHighWater = 10
	MappedLowWater  = -5
	// SpecialDepthModulus bounds the depth adjustment applied by the
	// special handler before it recomputes the result.
	SpecialDepthModulus = 4
	// SpecialResultFactor scales a non-negative mapped value in the special
	// handler's result.
	SpecialResultFactor = 5
)

// SnippetLen is the number of leading accumulator characters recorded in a
// snippet state value.
const SnippetLen = 10

// Final aggregation parameters: final = ((result*FinalResultFactor) +
// (counter mod CounterModulus) - (A+B+C) + len(accumulated)) mod
// FinalModulus, plus ErrorPenalty per recorded diagnostic.
const (
	FinalResultFactor = 31
	CounterModulus    = 97
	FinalModulus      = 1000
	ErrorPenalty      = 13
)

// StateSampleLimit caps how many state entries the summary prints.
const StateSampleLimit = 5

// DefaultMode is the process mode before any named run has executed.
const DefaultMode = "default"

// ProcessedSuffix is appended to the process mode in every persisted run
// record.
const ProcessedSuffix = "-processed"
