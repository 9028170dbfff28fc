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

package walk_test

import (
	"context"
	"slices"
	"testing"

	"fillmore-labs.com/accessguard/ast"
	"fillmore-labs.com/accessguard/internal/asttest"
	"fillmore-labs.com/accessguard/internal/policy"
	"fillmore-labs.com/accessguard/internal/report"
	. "fillmore-labs.com/accessguard/internal/walk"
)

func kinds(diagnostics []report.Diagnostic) []report.Kind {
	ks := make([]report.Kind, 0, len(diagnostics))
	for _, d := range diagnostics {
		ks = append(ks, d.Kind)
	}

	return ks
}

func TestFileVisitOrder(t *testing.T) {
	t.Parallel()

	process := func() ast.Expr { return asttest.Ident("process") }

	// const { env } = process;
	// const key = process.env?.API_KEY;
	file := asttest.File(
		asttest.Const(asttest.Declarator(asttest.ObjectPat(asttest.Shorthand("env")), process())),
		asttest.Const(asttest.Declarator(
			&ast.IdentPat{Name: "key"},
			asttest.OptMember(asttest.Member(process(), "env"), "API_KEY"),
		)),
	)

	got := File(context.Background(), policy.New([]string{"process.env"}), file)

	want := []report.Kind{report.Destructuring, report.OptionalChaining}
	if !slices.Equal(kinds(got), want) {
		t.Errorf("kinds = %v, want %v", kinds(got), want)
	}
}

func TestFileEmptyPolicy(t *testing.T) {
	t.Parallel()

	file := asttest.File(
		asttest.Const(asttest.Declarator(
			asttest.ObjectPat(asttest.Shorthand("env")),
			asttest.Ident("process"),
		)),
		asttest.ExprStmt(asttest.OptMember(asttest.Ident("process"), "env")),
	)

	if got := File(context.Background(), policy.New(nil), file); len(got) != 0 {
		t.Errorf("got %d diagnostics with an empty policy, want 0", len(got))
	}
}

func TestFileNestedFunction(t *testing.T) {
	t.Parallel()

	// function f() { if (ready) { const { env } = process; } }
	inner := asttest.Const(asttest.Declarator(
		asttest.ObjectPat(asttest.Shorthand("env")),
		asttest.Ident("process"),
	))

	file := asttest.File(&ast.FuncDecl{
		Fn: &ast.FuncLit{
			Name: "f",
			Body: &ast.Block{Stmts: []ast.Stmt{
				&ast.If{
					Cond: asttest.Ident("ready"),
					Then: &ast.Block{Stmts: []ast.Stmt{inner}},
				},
			}},
		},
	})

	got := File(context.Background(), policy.New([]string{"process.env"}), file)

	if len(got) != 1 || got[0].Kind != report.Destructuring {
		t.Errorf("got %v, want one destructuring diagnostic", got)
	}
}

func TestFileDescendsAfterMatch(t *testing.T) {
	t.Parallel()

	// const { API_KEY } = process?.env; both rules apply: the declarator
	// reports the optional-chained initializer, then the walk still
	// descends into the initializer where the chain itself matches.
	file := asttest.File(
		asttest.Const(asttest.Declarator(
			asttest.ObjectPat(asttest.Shorthand("API_KEY")),
			asttest.OptMember(asttest.Ident("process"), "env"),
		)),
	)

	got := File(context.Background(), policy.New([]string{"process.env"}), file)

	want := []report.Kind{report.DestructuringOptional, report.OptionalChaining}
	if !slices.Equal(kinds(got), want) {
		t.Errorf("kinds = %v, want %v", kinds(got), want)
	}
}

func TestFileUnsupportedChildren(t *testing.T) {
	t.Parallel()

	// Violations nested in unmodelled syntax are still found.
	file := asttest.File(asttest.ExprStmt(&ast.Unsupported{
		Kind: "object",
		Children: []ast.Expr{
			asttest.OptMember(asttest.Member(asttest.Ident("process"), "env"), "API_KEY"),
		},
	}))

	got := File(context.Background(), policy.New([]string{"process.env"}), file)

	if len(got) != 1 || got[0].Kind != report.OptionalChaining {
		t.Errorf("got %v, want one optional-chaining diagnostic", got)
	}
}

func TestFileIdempotent(t *testing.T) {
	t.Parallel()

	file := asttest.File(
		asttest.Const(asttest.Declarator(asttest.ObjectPat(asttest.Shorthand("env")), asttest.Ident("process"))),
		asttest.ExprStmt(asttest.OptMember(asttest.Member(asttest.Ident("process"), "env"), "API_KEY")),
	)

	set := policy.New([]string{"process.env"})

	first := File(context.Background(), set, file)
	second := File(context.Background(), set, file)

	if !slices.Equal(first, second) {
		t.Errorf("two walks differ: %v vs %v", first, second)
	}
}
