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

package diagnostic_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/tallyrun/tallyrun/diagnostic"
	"github.com/tallyrun/tallyrun/util/guard"
)

func TestCollectorOnlyGrows(t *testing.T) {
	t.Parallel()

	c := diagnostic.NewCollector()
	require.Zero(t, c.Len())

	c.Record(diagnostic.NullInput)
	c.Record(diagnostic.NegativeIndex)
	c.Record(diagnostic.NullInput)
	require.Equal(t, 3, c.Len())
	require.Equal(t, []string{"NullInput", "NegativeIndex", "NullInput"}, c.Entries())
}

func TestCollectorCapturesFaults(t *testing.T) {
	t.Parallel()

	c := diagnostic.NewCollector()
	c.Capture(&guard.Fault{Kind: "Panic", Message: "transform: boom"})
	require.Equal(t, []string{"Panic:transform: boom"}, c.Entries())

	// A nil fault records nothing.
	c.Capture(nil)
	require.Equal(t, 1, c.Len())
}

func TestEntriesIsACopy(t *testing.T) {
	t.Parallel()

	c := diagnostic.NewCollector()
	c.Record(diagnostic.NullInput)

	got := c.Entries()
	got[0] = "mutated"
	require.Equal(t, []string{"NullInput"}, c.Entries())
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
