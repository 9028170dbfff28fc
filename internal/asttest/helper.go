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

// Package asttest provides builders for syntax tree fragments in tests.
//
// The builders construct nodes with zero spans; tests that assert on
// locations set Loc explicitly.
package asttest

import "fillmore-labs.com/accessguard/ast"

// Ident builds an identifier expression.
func Ident(name string) *ast.Ident {
	return &ast.Ident{Name: name}
}

// Member builds a chain of plain member accesses over obj, one link per
// property name: Member(Ident("process"), "env", "API_KEY") is
// process.env.API_KEY.
func Member(obj ast.Expr, props ...string) ast.Expr {
	for _, p := range props {
		obj = &ast.Member{Obj: obj, Prop: &ast.IdentProp{Name: p}}
	}

	return obj
}

// Computed builds a computed member access, obj[index].
func Computed(obj, index ast.Expr) *ast.Member {
	return &ast.Member{Obj: obj, Prop: &ast.ComputedProp{Index: index}}
}

// OptMember builds an optional member access, obj?.prop.
func OptMember(obj ast.Expr, prop string) *ast.OptChain {
	return &ast.OptChain{Base: &ast.OptMember{Obj: obj, Prop: &ast.IdentProp{Name: prop}}}
}

// OptComputed builds an optional computed member access, obj?.[index].
func OptComputed(obj, index ast.Expr) *ast.OptChain {
	return &ast.OptChain{Base: &ast.OptMember{Obj: obj, Prop: &ast.ComputedProp{Index: index}}}
}

// OptCall builds an optional call, callee?.(args).
func OptCall(callee ast.Expr, args ...ast.Expr) *ast.OptChain {
	return &ast.OptChain{Base: &ast.OptCall{Callee: callee, Args: args}}
}

// Meta builds a meta-property expression.
func Meta(kind ast.MetaPropKind) *ast.MetaProp {
	return &ast.MetaProp{Kind: kind}
}

// Call builds a plain call expression.
func Call(callee ast.Expr, args ...ast.Expr) *ast.Call {
	return &ast.Call{Callee: callee, Args: args}
}

// ObjectPat builds an object pattern from its properties.
func ObjectPat(props ...ast.ObjectPatProp) *ast.ObjectPat {
	return &ast.ObjectPat{Props: props}
}

// Shorthand builds a shorthand property, { key }.
func Shorthand(key string) *ast.ShorthandProp {
	return &ast.ShorthandProp{Key: key}
}

// KeyValue builds a key/value property with an identifier key, { key: name }.
func KeyValue(key, name string) *ast.KeyValueProp {
	return &ast.KeyValueProp{Key: &ast.IdentKey{Name: key}, Value: &ast.IdentPat{Name: name}}
}

// StringKey builds a key/value property with a string-literal key.
func StringKey(key, name string) *ast.KeyValueProp {
	return &ast.KeyValueProp{Key: &ast.StringKey{Value: key}, Value: &ast.IdentPat{Name: name}}
}

// Declarator builds a variable declarator.
func Declarator(name ast.Pat, init ast.Expr) *ast.VarDeclarator {
	return &ast.VarDeclarator{Name: name, Init: init}
}

// Const builds a const declaration statement.
func Const(decls ...*ast.VarDeclarator) *ast.VarDecl {
	return &ast.VarDecl{Kind: "const", Decls: decls}
}

// ExprStmt builds an expression statement.
func ExprStmt(x ast.Expr) *ast.ExprStmt {
	return &ast.ExprStmt{X: x}
}

// File builds a file from statements.
func File(stmts ...ast.Stmt) *ast.File {
	return &ast.File{Name: "test.js", Stmts: stmts}
}
