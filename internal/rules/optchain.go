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

// Package rules implements the two direct-access detection rules.
//
// Both rules are stateless per call: they consult the path resolver and the
// policy set, and emit at most the diagnostics described on each function.
// A resolution failure silently ends the check for that node, it is never
// escalated (cannot determine means assume compliant).
package rules

import (
	"fillmore-labs.com/accessguard/ast"
	"fillmore-labs.com/accessguard/internal/policy"
	"fillmore-labs.com/accessguard/internal/report"
	"fillmore-labs.com/accessguard/internal/resolve"
)

// OptionalChain checks an optional-chaining expression against the
// protected set.
//
// The object sub-expression (the part before the ?. operator) is resolved;
// a match on either the object path (process.env?.API_KEY) or the object
// path extended by the member's property name (process?.env) emits one
// OptionalChaining diagnostic at the chain's span. Matching is exact
// equality only: chaining one level deeper than a protected path, as in
// process.env.API_KEY?.toLowerCase(), stays silent. At most one diagnostic
// is emitted per chain expression.
func OptionalChain(set policy.Set, chain *ast.OptChain, r report.Reporter) {
	if set.Empty() {
		return
	}

	member, ok := chain.Base.(*ast.OptMember)
	if !ok {
		// Optional calls carry no member to check.
		return
	}

	objPath, ok := resolve.Expression(member.Obj)
	if !ok {
		return
	}

	if set.Contains(objPath.Dotted) {
		r.Report(report.Diagnostic{Kind: report.OptionalChaining, Path: objPath.Dotted, Span: chain.Span()})

		return
	}

	if prop, ok := member.Prop.(*ast.IdentProp); ok {
		if fullPath := objPath.Dotted + "." + prop.Name; set.Contains(fullPath) {
			r.Report(report.Diagnostic{Kind: report.OptionalChaining, Path: fullPath, Span: chain.Span()})
		}
	}
}
