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

// Package report defines the diagnostic records accessguard hands to its host.
//
// Diagnostics are plain data: a kind, the protected path that matched and
// the source span of the triggering node. Rendering them as compiler errors,
// editor annotations or terminal output is the host's concern; the only
// formatting done here is selecting a message template per kind.
package report

import (
	"fmt"

	"fillmore-labs.com/accessguard/ast"
)

// Kind identifies which rule produced a diagnostic.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// OptionalChaining reports direct access violated by optional chaining,
	// as in process.env?.API_KEY or process?.env.
	OptionalChaining Kind = iota // optional-chaining

	// Destructuring reports a destructuring binding that bypasses direct
	// access, as in const { env } = process.
	Destructuring // destructuring

	// DestructuringOptional reports destructuring from a protected path that
	// was itself reached through optional chaining, as in
	// const { API_KEY } = process?.env.
	DestructuringOptional // destructuring-optional
)

// Diagnostic is one policy violation. Diagnostics never alter the tree and
// never abort a walk; they are appended in visit order.
type Diagnostic struct {
	Kind Kind
	Path string // the matched protected path
	Span ast.Span
}

// Message renders the user-facing message for the diagnostic's kind.
func (d Diagnostic) Message() string {
	switch d.Kind {
	case OptionalChaining:
		return fmt.Sprintf("optional chaining is not allowed on '%s', use direct member access", d.Path)

	case Destructuring:
		return fmt.Sprintf("destructuring '%s' is not allowed, use direct member access", d.Path)

	case DestructuringOptional:
		return fmt.Sprintf("destructuring from optional-chained '%s' is not allowed, use direct member access", d.Path)

	default:
		return fmt.Sprintf("access to '%s' violates the direct-access policy", d.Path)
	}
}

// Reporter receives diagnostics as they are produced.
type Reporter interface {
	Report(d Diagnostic)
}
