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

package parse

import (
	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/accessguard/ast"
)

// stmt converts a CST node in statement position. Unknown statement forms
// become a block holding their converted named children, so traversal
// continues through loops, classes, try blocks and anything else the node
// set does not model. Comments convert to nil and are dropped.
func (c *converter) stmt(n *sitter.Node) ast.Stmt {
	switch n.Type() {
	case "comment":
		return nil

	case "expression_statement":
		if child := n.NamedChild(0); child != nil {
			return &ast.ExprStmt{X: c.expr(child), Loc: c.span(n)}
		}

		return nil

	case "lexical_declaration", "variable_declaration":
		return c.varDecl(n)

	case "statement_block":
		return c.block(n)

	case "if_statement":
		stmt := &ast.If{Loc: c.span(n)}

		if cond := n.ChildByFieldName("condition"); cond != nil {
			stmt.Cond = c.expr(c.unparenthesize(cond))
		}

		if cons := n.ChildByFieldName("consequence"); cons != nil {
			stmt.Then = c.stmt(cons)
		}

		if alt := n.ChildByFieldName("alternative"); alt != nil {
			// The alternative is an else_clause wrapping the statement.
			if body := alt.NamedChild(0); body != nil {
				stmt.Else = c.stmt(body)
			}
		}

		if stmt.Then == nil {
			stmt.Then = &ast.Block{Loc: c.span(n)}
		}

		return stmt

	case "return_statement":
		stmt := &ast.Return{Loc: c.span(n)}
		if arg := n.NamedChild(0); arg != nil {
			stmt.Arg = c.expr(arg)
		}

		return stmt

	case "function_declaration", "generator_function_declaration":
		return &ast.FuncDecl{Fn: c.funcLit(n), Loc: c.span(n)}

	default:
		// Expression forms in statement position.
		if e := c.expr(n); e != nil {
			if _, ok := e.(*ast.Unsupported); !ok {
				return &ast.ExprStmt{X: e, Loc: c.span(n)}
			}
		}

		return c.block(n)
	}
}

// block converts n's named children as statements.
func (c *converter) block(n *sitter.Node) *ast.Block {
	b := &ast.Block{Loc: c.span(n)}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		if stmt := c.stmt(n.NamedChild(i)); stmt != nil {
			b.Stmts = append(b.Stmts, stmt)
		}
	}

	return b
}

func (c *converter) varDecl(n *sitter.Node) *ast.VarDecl {
	decl := &ast.VarDecl{Kind: "var", Loc: c.span(n)}

	if kind := n.Child(0); kind != nil && !kind.IsNamed() {
		decl.Kind = c.text(kind)
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() != "variable_declarator" {
			continue
		}

		d := &ast.VarDeclarator{Loc: c.span(child)}

		if name := child.ChildByFieldName("name"); name != nil {
			d.Name = c.pat(name)
		}

		if value := child.ChildByFieldName("value"); value != nil {
			d.Init = c.expr(value)
		}

		if d.Name != nil {
			decl.Decls = append(decl.Decls, d)
		}
	}

	return decl
}

// unparenthesize unwraps parenthesized_expression nodes.
func (c *converter) unparenthesize(n *sitter.Node) *sitter.Node {
	for n.Type() == "parenthesized_expression" {
		inner := n.NamedChild(0)
		if inner == nil {
			return n
		}

		n = inner
	}

	return n
}

func (c *converter) expr(n *sitter.Node) ast.Expr {
	switch n.Type() {
	case "identifier":
		return &ast.Ident{Name: c.text(n), Loc: c.span(n)}

	case "member_expression":
		return c.member(n)

	case "subscript_expression":
		return c.subscript(n)

	case "call_expression":
		return c.call(n)

	case "parenthesized_expression":
		if inner := n.NamedChild(0); inner != nil {
			return c.expr(inner)
		}

		return c.unsupported(n)

	case "meta_property":
		// new.target; import.meta arrives as a member_expression.
		return &ast.MetaProp{Kind: ast.NewTarget, Loc: c.span(n)}

	case "assignment_expression", "augmented_assignment_expression":
		e := &ast.Assign{Loc: c.span(n)}

		if left := n.ChildByFieldName("left"); left != nil {
			e.Target = c.expr(left)
		}

		if right := n.ChildByFieldName("right"); right != nil {
			e.Value = c.expr(right)
		}

		return e

	case "binary_expression":
		e := &ast.Binary{Loc: c.span(n)}

		if op := n.ChildByFieldName("operator"); op != nil {
			e.Op = c.text(op)
		}

		if left := n.ChildByFieldName("left"); left != nil {
			e.Lhs = c.expr(left)
		}

		if right := n.ChildByFieldName("right"); right != nil {
			e.Rhs = c.expr(right)
		}

		return e

	case "arrow_function", "function", "function_expression", "generator_function":
		return c.funcLit(n)

	case "string", "template_string":
		return &ast.BasicLit{Kind: ast.StringLit, Value: c.text(n), Loc: c.span(n)}

	case "number":
		return &ast.BasicLit{Kind: ast.NumberLit, Value: c.text(n), Loc: c.span(n)}

	case "true", "false":
		return &ast.BasicLit{Kind: ast.BoolLit, Value: c.text(n), Loc: c.span(n)}

	case "null", "undefined":
		return &ast.BasicLit{Kind: ast.NullLit, Value: c.text(n), Loc: c.span(n)}

	default:
		return c.unsupported(n)
	}
}

// member converts a member_expression, normalizing import.meta to the
// meta-property node and wrapping ?. links and their continuations in
// [ast.OptChain].
func (c *converter) member(n *sitter.Node) ast.Expr {
	obj := n.ChildByFieldName("object")
	prop := n.ChildByFieldName("property")

	if obj == nil || prop == nil {
		return c.unsupported(n)
	}

	// import.meta has no dedicated CST node; the object is the bare
	// import keyword.
	if obj.Type() == "import" && prop.Type() == "property_identifier" && c.text(prop) == "meta" {
		return &ast.MetaProp{Kind: ast.ImportMeta, Loc: c.span(n)}
	}

	if prop.Type() != "property_identifier" {
		// Private fields and other exotic properties are outside the
		// resolvable set; keep the object reachable for the walker.
		return &ast.Unsupported{Kind: n.Type(), Children: []ast.Expr{c.expr(obj)}, Loc: c.span(n)}
	}

	object := c.expr(obj)
	property := &ast.IdentProp{Name: c.text(prop), Loc: c.span(prop)}

	if c.hasOptionalChain(n) || continuesChain(obj, object) {
		return &ast.OptChain{
			Base: &ast.OptMember{Obj: object, Prop: property, Loc: c.span(n)},
			Loc:  c.span(n),
		}
	}

	return &ast.Member{Obj: object, Prop: property, Loc: c.span(n)}
}

// continuesChain reports whether an access extends an optional chain
// started further down: a?.b.c short-circuits as a whole, so every link
// after the ?. belongs to the chain. Parentheses terminate a chain,
// (a?.b).c starts fresh.
func continuesChain(raw *sitter.Node, converted ast.Expr) bool {
	if raw.Type() == "parenthesized_expression" {
		return false
	}

	_, ok := converted.(*ast.OptChain)

	return ok
}

// subscript converts a subscript_expression, obj[expr], to a member with a
// computed property. Path resolution always fails on these.
func (c *converter) subscript(n *sitter.Node) ast.Expr {
	obj := n.ChildByFieldName("object")
	index := n.ChildByFieldName("index")

	if obj == nil || index == nil {
		return c.unsupported(n)
	}

	object := c.expr(obj)
	property := &ast.ComputedProp{Index: c.expr(index), Loc: c.span(index)}

	if c.hasOptionalChain(n) || continuesChain(obj, object) {
		return &ast.OptChain{
			Base: &ast.OptMember{Obj: object, Prop: property, Loc: c.span(n)},
			Loc:  c.span(n),
		}
	}

	return &ast.Member{Obj: object, Prop: property, Loc: c.span(n)}
}

func (c *converter) call(n *sitter.Node) ast.Expr {
	callee := n.ChildByFieldName("function")
	if callee == nil {
		return c.unsupported(n)
	}

	var args []ast.Expr

	if arguments := n.ChildByFieldName("arguments"); arguments != nil {
		for i := 0; i < int(arguments.NamedChildCount()); i++ {
			args = append(args, c.expr(arguments.NamedChild(i)))
		}
	}

	calleeExpr := c.expr(callee)

	if c.hasOptionalChain(n) || continuesChain(callee, calleeExpr) {
		return &ast.OptChain{
			Base: &ast.OptCall{Callee: calleeExpr, Args: args, Loc: c.span(n)},
			Loc:  c.span(n),
		}
	}

	return &ast.Call{Callee: calleeExpr, Args: args, Loc: c.span(n)}
}

func (c *converter) funcLit(n *sitter.Node) *ast.FuncLit {
	fn := &ast.FuncLit{Loc: c.span(n)}

	if name := n.ChildByFieldName("name"); name != nil {
		fn.Name = c.text(name)
	}

	if param := n.ChildByFieldName("parameter"); param != nil {
		// Single-parameter arrow without parentheses.
		fn.Params = append(fn.Params, c.pat(param))
	}

	if params := n.ChildByFieldName("parameters"); params != nil {
		for i := 0; i < int(params.NamedChildCount()); i++ {
			fn.Params = append(fn.Params, c.pat(params.NamedChild(i)))
		}
	}

	if body := n.ChildByFieldName("body"); body != nil {
		if body.Type() == "statement_block" {
			fn.Body = c.block(body)
		} else {
			fn.Expr = c.expr(body)
		}
	}

	return fn
}

// unsupported wraps an unmodelled expression, keeping convertible children
// so nested accesses stay visible to the walker.
func (c *converter) unsupported(n *sitter.Node) *ast.Unsupported {
	u := &ast.Unsupported{Kind: n.Type(), Loc: c.span(n)}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() == "comment" {
			continue
		}

		u.Children = append(u.Children, c.expr(child))
	}

	return u
}
