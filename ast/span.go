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

package ast

import "fmt"

// Pos is a position in the original UTF-8 source.
// Line is 1-based, Column is a 0-based byte column within the line.
type Pos struct {
	Offset int // byte offset, 0-based
	Line   int
	Column int
}

// Span is the half-open byte interval [Start.Offset, End.Offset) a node
// covers in the original source. Spans are taken verbatim from the parser
// and carried through to diagnostics unchanged.
type Span struct {
	Start Pos
	End   Pos
}

// String renders the span's start as "line:col" with a 1-based column,
// the form expected by editors and CI annotations.
func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Start.Line, s.Start.Column+1)
}
