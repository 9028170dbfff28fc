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

// Package walk drives a single checking pass over a syntax tree.
package walk

import (
	"context"
	"runtime/trace"

	"fillmore-labs.com/accessguard/ast"
	"fillmore-labs.com/accessguard/internal/policy"
	"fillmore-labs.com/accessguard/internal/report"
	"fillmore-labs.com/accessguard/internal/rules"
)

// File runs one pre-order pass over the tree and returns the diagnostics in
// visit order.
//
// Every expression and every variable declarator is visited exactly once.
// The optional-chain rule fires at optional-chain expressions and the
// destructuring rule at object-pattern declarators, in both cases before
// descending into children; descent always continues regardless of whether
// a rule fired, so nested violations are still found. The tree is never
// mutated, and two passes over the same tree yield identical output.
func File(ctx context.Context, set policy.Set, file *ast.File) []report.Diagnostic {
	defer trace.StartRegion(ctx, "CheckTree").End()

	w := &walker{set: set}
	for _, s := range file.Stmts {
		w.stmt(s)
	}

	return w.diagnostics
}

type walker struct {
	set         policy.Set
	diagnostics []report.Diagnostic
}

// Report implements [report.Reporter] by appending in visit order.
func (w *walker) Report(d report.Diagnostic) {
	w.diagnostics = append(w.diagnostics, d)
}

func (w *walker) stmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.VarDecl:
		for _, d := range n.Decls {
			w.declarator(d)
		}

	case *ast.ExprStmt:
		w.expr(n.X)

	case *ast.Block:
		for _, s := range n.Stmts {
			w.stmt(s)
		}

	case *ast.If:
		w.expr(n.Cond)
		w.stmt(n.Then)

		if n.Else != nil {
			w.stmt(n.Else)
		}

	case *ast.Return:
		if n.Arg != nil {
			w.expr(n.Arg)
		}

	case *ast.FuncDecl:
		w.funcLit(n.Fn)
	}
}

func (w *walker) declarator(d *ast.VarDeclarator) {
	if _, ok := d.Name.(*ast.ObjectPat); ok && d.Init != nil {
		rules.Destructuring(w.set, d, w)
	}

	w.pat(d.Name)

	if d.Init != nil {
		w.expr(d.Init)
	}
}

func (w *walker) expr(e ast.Expr) {
	if e == nil {
		return
	}

	switch n := e.(type) {
	case *ast.OptChain:
		rules.OptionalChain(w.set, n, w)

		switch base := n.Base.(type) {
		case *ast.OptMember:
			w.expr(base.Obj)
			w.prop(base.Prop)

		case *ast.OptCall:
			w.expr(base.Callee)

			for _, a := range base.Args {
				w.expr(a)
			}
		}

	case *ast.Member:
		w.expr(n.Obj)
		w.prop(n.Prop)

	case *ast.Call:
		w.expr(n.Callee)

		for _, a := range n.Args {
			w.expr(a)
		}

	case *ast.Assign:
		w.expr(n.Target)
		w.expr(n.Value)

	case *ast.Binary:
		w.expr(n.Lhs)
		w.expr(n.Rhs)

	case *ast.FuncLit:
		w.funcLit(n)

	case *ast.Unsupported:
		for _, c := range n.Children {
			w.expr(c)
		}
	}
}

func (w *walker) funcLit(fn *ast.FuncLit) {
	for _, p := range fn.Params {
		w.pat(p)
	}

	if fn.Body != nil {
		w.stmt(fn.Body)
	}

	if fn.Expr != nil {
		w.expr(fn.Expr)
	}
}

func (w *walker) prop(p ast.Prop) {
	if computed, ok := p.(*ast.ComputedProp); ok {
		w.expr(computed.Index)
	}
}

func (w *walker) pat(p ast.Pat) {
	switch n := p.(type) {
	case *ast.ObjectPat:
		for _, prop := range n.Props {
			switch pp := prop.(type) {
			case *ast.KeyValueProp:
				w.pat(pp.Value)

			case *ast.ShorthandProp:
				if pp.Default != nil {
					w.expr(pp.Default)
				}

			case *ast.RestProp:
				w.pat(pp.Arg)
			}
		}

	case *ast.ArrayPat:
		for _, el := range n.Elems {
			if el != nil {
				w.pat(el)
			}
		}
	}
}
