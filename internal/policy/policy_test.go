// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package policy_test

import (
	"slices"
	"testing"

	. "fillmore-labs.com/accessguard/internal/policy"
)

func TestSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		paths    []string
		contains []string
		missing  []string
		empty    bool
	}{
		{
			name:    "Empty",
			paths:   nil,
			missing: []string{"process.env", ""},
			empty:   true,
		},
		{
			name:     "Single",
			paths:    []string{"process.env"},
			contains: []string{"process.env"},
			missing:  []string{"process", "process.env.API_KEY", "PROCESS.ENV"},
		},
		{
			name:     "Duplicates",
			paths:    []string{"process.env", "process.env", "import.meta.env"},
			contains: []string{"process.env", "import.meta.env"},
			missing:  []string{"import.meta"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := New(tt.paths)

			if got := s.Empty(); got != tt.empty {
				t.Errorf("Empty() = %v, want %v", got, tt.empty)
			}

			for _, p := range tt.contains {
				if !s.Contains(p) {
					t.Errorf("Contains(%q) = false, want true", p)
				}
			}

			for _, p := range tt.missing {
				if s.Contains(p) {
					t.Errorf("Contains(%q) = true, want false", p)
				}
			}
		})
	}
}

func TestSetPaths(t *testing.T) {
	t.Parallel()

	s := New([]string{"process.env", "import.meta.env", "process.env"})

	want := []string{"import.meta.env", "process.env"}
	if got := s.Paths(); !slices.Equal(got, want) {
		t.Errorf("Paths() = %v, want %v", got, want)
	}
}

func TestZeroValue(t *testing.T) {
	t.Parallel()

	var s Set

	if !s.Empty() {
		t.Error("zero Set should be empty")
	}

	if s.Contains("process.env") {
		t.Error("zero Set should contain nothing")
	}
}
