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

package config

// This file hosts the constants of the fixed CLI invocation: when no
// scenario file is given, the binary runs once over its argument list with
// these values.

// DefaultSeed is the seed of the fixed invocation.
const DefaultSeed = 42

// DefaultFlag is the flag of the fixed invocation.
const DefaultFlag = true

// DefaultName is the run name of the fixed invocation.
const DefaultName = "alpha"

// DefaultItems returns the item list of the fixed invocation. A fresh slice
// is returned on every call so that callers cannot alias the defaults.
func DefaultItems() []int {
	return []int{1, 2, 3}
}
