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

package rules

import (
	"fillmore-labs.com/accessguard/ast"
	"fillmore-labs.com/accessguard/internal/policy"
	"fillmore-labs.com/accessguard/internal/report"
	"fillmore-labs.com/accessguard/internal/resolve"
)

// Destructuring checks an object-pattern variable declarator against the
// protected set.
//
// The initializer is resolved first. When it was reached through optional
// chaining and is itself a protected path (const { X } = process?.env), one
// DestructuringOptional diagnostic is emitted and the declarator is done:
// per-property checks never run after that match. When it was reached
// through optional chaining but is not protected, the chain already guards
// the access and the declarator stays silent.
//
// Otherwise each destructured property extends the initializer path by its
// name; every extension that equals a protected path emits its own
// Destructuring diagnostic (const { env } = process). String-literal keys
// and rest elements are skipped without a diagnostic.
func Destructuring(set policy.Set, decl *ast.VarDeclarator, r report.Reporter) {
	if set.Empty() {
		return
	}

	pat, ok := decl.Name.(*ast.ObjectPat)
	if !ok || decl.Init == nil {
		return
	}

	initPath, ok := resolve.Expression(decl.Init)
	if !ok {
		return
	}

	if initPath.HasOptional {
		if set.Contains(initPath.Dotted) {
			r.Report(report.Diagnostic{Kind: report.DestructuringOptional, Path: initPath.Dotted, Span: decl.Span()})
		}

		return
	}

	for _, prop := range pat.Props {
		var name string

		switch p := prop.(type) {
		case *ast.KeyValueProp:
			key, ok := p.Key.(*ast.IdentKey)
			if !ok {
				continue
			}

			name = key.Name

		case *ast.ShorthandProp:
			name = p.Key

		default:
			continue
		}

		if candidate := initPath.Dotted + "." + name; set.Contains(candidate) {
			r.Report(report.Diagnostic{Kind: report.Destructuring, Path: candidate, Span: decl.Span()})
		}
	}
}
