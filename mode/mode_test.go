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

package mode_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/tallyrun/tallyrun/mode"
)

func TestDetermineFirstMatchWins(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name  string
		flag  bool
		run   string
		index int
		want  mode.Mode
	}{
		// Beta wins whenever the flag is set and the index divides evenly,
		// even when the index is negative (which would satisfy Gamma).
		{"BetaBeforeGamma", true, "alpha", -5, mode.Beta},
		{"BetaAtZeroIndex", true, "alpha", 0, mode.Beta},
		// Alpha requires the flag clear and a name longer than three runes;
		// it wins over Gamma on a negative index.
		{"AlphaBeforeGamma", false, "alpha", -3, mode.Alpha},
		// Gamma is the fallback for negative indices once Alpha is out.
		{"GammaShortName", false, "ab", -3, mode.Gamma},
		{"GammaNoName", false, "", -1, mode.Gamma},
		// Everything else is Unknown.
		{"UnknownFlagOddIndex", true, "alpha", 3, mode.Unknown},
		{"UnknownNoConditions", false, "ab", 2, mode.Unknown},
	}
	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, mode.Determine(tc.flag, tc.run, tc.index))
		})
	}
}

func TestApplyAlpha(t *testing.T) {
	t.Parallel()

	var e mode.Effects
	result := e.Apply(mode.Alpha, 4, 10, false, "alpha", 1)
	require.Equal(t, 10, result)
	require.Equal(t, mode.Effects{A: 5}, e)
}

func TestApplyBetaRunsGammaEffectToo(t *testing.T) {
	t.Parallel()

	var e mode.Effects
	result := e.Apply(mode.Beta, 5, 10, true, "alpha", 1)
	require.Equal(t, 10, result)
	require.Equal(t, mode.Effects{B: 10, C: 2}, e)
}

func TestApplyGamma(t *testing.T) {
	t.Parallel()

	var e mode.Effects
	_ = e.Apply(mode.Gamma, -2, 0, false, "", 0)
	require.Equal(t, mode.Effects{C: -5}, e)
}

func TestApplyDeltaIsInert(t *testing.T) {
	t.Parallel()

	var e mode.Effects
	result := e.Apply(mode.Delta, 9, 42, true, "alpha", 3)
	require.Equal(t, 42, result)
	require.Equal(t, mode.Effects{}, e)
}

func TestApplyUnknown(t *testing.T) {
	t.Parallel()

	var e mode.Effects

	// Flagged with positive index: +7.
	require.Equal(t, 17, e.Apply(mode.Unknown, 1, 10, true, "x", 0))

	// Unflagged, name starts with "a" and items present: +7.
	require.Equal(t, 17, e.Apply(mode.Unknown, -1, 10, false, "ab", 2))

	// Zero index with a non-empty name: -1.
	require.Equal(t, 9, e.Apply(mode.Unknown, 0, 10, false, "bb", 0))

	// Otherwise the index is folded in by XOR.
	require.Equal(t, 5^6, e.Apply(mode.Unknown, 6, 5, false, "", 0))

	// Unknown never touches the accumulator cells.
	require.Equal(t, mode.Effects{}, e)
}

func TestModeString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Alpha", mode.Alpha.String())
	require.Equal(t, "Beta", mode.Beta.String())
	require.Equal(t, "Gamma", mode.Gamma.String())
	require.Equal(t, "Delta", mode.Delta.String())
	require.Equal(t, "Unknown", mode.Unknown.String())
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
