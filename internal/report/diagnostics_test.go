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

package report_test

import (
	"strings"
	"testing"

	. "fillmore-labs.com/accessguard/internal/report"
)

func TestKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{OptionalChaining, "optional-chaining"},
		{Destructuring, "destructuring"},
		{DestructuringOptional, "destructuring-optional"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		kind Kind
		want string
	}{
		{
			name: "OptionalChaining",
			kind: OptionalChaining,
			want: "optional chaining is not allowed on 'process.env'",
		},
		{
			name: "Destructuring",
			kind: Destructuring,
			want: "destructuring 'process.env' is not allowed",
		},
		{
			name: "DestructuringOptional",
			kind: DestructuringOptional,
			want: "destructuring from optional-chained 'process.env' is not allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := Diagnostic{Kind: tt.kind, Path: "process.env"}
			if got := d.Message(); !strings.Contains(got, tt.want) {
				t.Errorf("Message() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}
