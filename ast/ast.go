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

// Node is implemented by every syntax tree node.
type Node interface {
	Span() Span
}

// Expr is the sealed interface over expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is the sealed interface over statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Pat is the sealed interface over binding patterns.
type Pat interface {
	Node
	patNode()
}

// File is the root of a parsed compilation unit.
type File struct {
	Name  string // file name as given to the parser, informational
	Stmts []Stmt
	Loc   Span
}

func (f *File) Span() Span { return f.Loc }

// ----------------------------------------------------------------------------
// Expressions

// Ident is a bare identifier reference.
type Ident struct {
	Name string
	Loc  Span
}

// Member is a plain (non-optional) member access, obj.prop or obj[expr].
type Member struct {
	Obj  Expr
	Prop Prop
	Loc  Span
}

// OptChain is an optional-chaining expression, obj?.prop or fn?.(args).
// Accesses continuing a chain nest: a?.b.c is an OptChain whose base
// member's object is the OptChain for a?.b, and the whole expression
// short-circuits together.
type OptChain struct {
	Base OptBase
	Loc  Span
}

// MetaProp is one of the two-segment pseudo-properties import.meta and
// new.target. It terminates a member chain like an identifier does.
type MetaProp struct {
	Kind MetaPropKind
	Loc  Span
}

// MetaPropKind discriminates the meta-property variants.
type MetaPropKind uint8

const (
	// ImportMeta is the module metadata object, import.meta.
	ImportMeta MetaPropKind = iota

	// NewTarget is the constructor target, new.target.
	NewTarget
)

// Call is a plain function or method call.
type Call struct {
	Callee Expr
	Args   []Expr
	Loc    Span
}

// Assign is an assignment expression; Target covers both expression and
// pattern left-hand sides.
type Assign struct {
	Target Expr
	Value  Expr
	Loc    Span
}

// Binary is a binary or logical operator expression. The operator text is
// kept verbatim; the checker never interprets it.
type Binary struct {
	Op  string
	Lhs Expr
	Rhs Expr
	Loc Span
}

// FuncLit is a function or arrow-function expression. Only the pieces the
// walker needs are modelled: parameter patterns and the body.
type FuncLit struct {
	Name   string // empty for anonymous and arrow functions
	Params []Pat
	Body   *Block // nil for expression-bodied arrows
	Expr   Expr   // expression body of a concise arrow, nil otherwise
	Loc    Span
}

// BasicLit is a literal value. Value holds the source text.
type BasicLit struct {
	Kind  LitKind
	Value string
	Loc   Span
}

// LitKind discriminates literal variants.
type LitKind uint8

const (
	StringLit LitKind = iota
	NumberLit
	BoolLit
	NullLit
)

// Unsupported stands in for any expression shape the frontend does not
// model (object literals, template strings, classes, ...). Path resolution
// fails on it; the walker still descends into Children so nested accesses
// are not lost.
type Unsupported struct {
	Kind     string // producer's node kind, informational
	Children []Expr
	Loc      Span
}

func (e *Ident) Span() Span       { return e.Loc }
func (e *Member) Span() Span      { return e.Loc }
func (e *OptChain) Span() Span    { return e.Loc }
func (e *MetaProp) Span() Span    { return e.Loc }
func (e *Call) Span() Span        { return e.Loc }
func (e *Assign) Span() Span      { return e.Loc }
func (e *Binary) Span() Span      { return e.Loc }
func (e *FuncLit) Span() Span     { return e.Loc }
func (e *BasicLit) Span() Span    { return e.Loc }
func (e *Unsupported) Span() Span { return e.Loc }

func (*Ident) exprNode()       {}
func (*Member) exprNode()      {}
func (*OptChain) exprNode()    {}
func (*MetaProp) exprNode()    {}
func (*Call) exprNode()        {}
func (*Assign) exprNode()      {}
func (*Binary) exprNode()      {}
func (*FuncLit) exprNode()     {}
func (*BasicLit) exprNode()    {}
func (*Unsupported) exprNode() {}

// ----------------------------------------------------------------------------
// Member properties

// Prop is the property part of a member access.
type Prop interface {
	Node
	propNode()
}

// IdentProp is an identifier property, the prop in obj.prop.
type IdentProp struct {
	Name string
	Loc  Span
}

// ComputedProp is a computed property, the expr in obj[expr].
type ComputedProp struct {
	Index Expr
	Loc   Span
}

func (p *IdentProp) Span() Span    { return p.Loc }
func (p *ComputedProp) Span() Span { return p.Loc }

func (*IdentProp) propNode()    {}
func (*ComputedProp) propNode() {}

// ----------------------------------------------------------------------------
// Optional-chain bases

// OptBase is the shape behind the ?. operator.
type OptBase interface {
	Node
	optBaseNode()
}

// OptMember is a member access within an optional chain: the ?. link
// itself, obj?.prop, or a plain access continuing the chain.
type OptMember struct {
	Obj  Expr
	Prop Prop
	Loc  Span
}

// OptCall is a call within an optional chain, fn?.(args) or a plain
// call continuing the chain.
type OptCall struct {
	Callee Expr
	Args   []Expr
	Loc    Span
}

func (b *OptMember) Span() Span { return b.Loc }
func (b *OptCall) Span() Span   { return b.Loc }

func (*OptMember) optBaseNode() {}
func (*OptCall) optBaseNode()   {}

// ----------------------------------------------------------------------------
// Patterns

// IdentPat binds a single name.
type IdentPat struct {
	Name string
	Loc  Span
}

// ObjectPat is an object destructuring pattern, { a, b: c, ...rest }.
type ObjectPat struct {
	Props []ObjectPatProp
	Loc   Span
}

// ArrayPat is an array destructuring pattern, [a, b].
type ArrayPat struct {
	Elems []Pat // nil entries for holes
	Loc   Span
}

func (p *IdentPat) Span() Span  { return p.Loc }
func (p *ObjectPat) Span() Span { return p.Loc }
func (p *ArrayPat) Span() Span  { return p.Loc }

func (*IdentPat) patNode()  {}
func (*ObjectPat) patNode() {}
func (*ArrayPat) patNode()  {}

// ObjectPatProp is one entry of an object pattern.
type ObjectPatProp interface {
	Node
	objectPatPropNode()
}

// KeyValueProp is the { key: value } form.
type KeyValueProp struct {
	Key   PropKey
	Value Pat
	Loc   Span
}

// ShorthandProp is the { key } form, optionally with a default value.
type ShorthandProp struct {
	Key     string
	Default Expr // nil without a default
	Loc     Span
}

// RestProp is the { ...rest } form.
type RestProp struct {
	Arg Pat
	Loc Span
}

func (p *KeyValueProp) Span() Span  { return p.Loc }
func (p *ShorthandProp) Span() Span { return p.Loc }
func (p *RestProp) Span() Span      { return p.Loc }

func (*KeyValueProp) objectPatPropNode()  {}
func (*ShorthandProp) objectPatPropNode() {}
func (*RestProp) objectPatPropNode()      {}

// PropKey is the key of a KeyValueProp.
type PropKey interface {
	Node
	propKeyNode()
}

// IdentKey is an identifier key, { a: b }.
type IdentKey struct {
	Name string
	Loc  Span
}

// StringKey is a string-literal key, { "a": b }. The destructuring rule
// skips these.
type StringKey struct {
	Value string
	Loc   Span
}

func (k *IdentKey) Span() Span  { return k.Loc }
func (k *StringKey) Span() Span { return k.Loc }

func (*IdentKey) propKeyNode()  {}
func (*StringKey) propKeyNode() {}

// ----------------------------------------------------------------------------
// Statements

// VarDecl is a variable declaration statement, possibly with several
// declarators: const { a } = x, b = y;
type VarDecl struct {
	Kind  string // "var", "let" or "const"
	Decls []*VarDeclarator
	Loc   Span
}

// VarDeclarator is one name/initializer pair of a VarDecl.
type VarDeclarator struct {
	Name Pat
	Init Expr // nil without an initializer
	Loc  Span
}

// ExprStmt is an expression used as a statement.
type ExprStmt struct {
	X   Expr
	Loc Span
}

// Block is a braced statement list.
type Block struct {
	Stmts []Stmt
	Loc   Span
}

// If is an if statement with an optional else branch.
type If struct {
	Cond Expr
	Then Stmt
	Else Stmt // nil without else
	Loc  Span
}

// Return is a return statement with an optional argument.
type Return struct {
	Arg Expr // nil for a bare return
	Loc Span
}

// FuncDecl is a function declaration statement.
type FuncDecl struct {
	Fn  *FuncLit
	Loc Span
}

func (s *VarDecl) Span() Span       { return s.Loc }
func (s *VarDeclarator) Span() Span { return s.Loc }
func (s *ExprStmt) Span() Span      { return s.Loc }
func (s *Block) Span() Span         { return s.Loc }
func (s *If) Span() Span            { return s.Loc }
func (s *Return) Span() Span        { return s.Loc }
func (s *FuncDecl) Span() Span      { return s.Loc }

func (*VarDecl) stmtNode()  {}
func (*ExprStmt) stmtNode() {}
func (*Block) stmtNode()    {}
func (*If) stmtNode()       {}
func (*Return) stmtNode()   {}
func (*FuncDecl) stmtNode() {}
