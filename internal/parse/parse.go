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

// Package parse converts JavaScript source into accessguard syntax trees.
//
// The frontend parses with tree-sitter and maps the concrete syntax tree
// onto the node set in [fillmore-labs.com/accessguard/ast]. Constructs
// outside that set become [ast.Unsupported] nodes that keep their
// convertible children, so the checker still reaches accesses nested in
// unmodelled syntax while path resolution fails on the unmodelled parts
// themselves.
//
// File is safe for concurrent use; every call creates its own parser.
package parse

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"fillmore-labs.com/accessguard/ast"
)

// File parses source as JavaScript and returns the converted tree. The
// name is informational and carried into [ast.File].
//
// Parse errors inside the source do not fail the call: tree-sitter
// produces a partial tree and the unparseable regions convert to
// [ast.Unsupported]. Only a cancelled context or an internal parser
// failure returns an error.
func File(ctx context.Context, source []byte, name string) (*ast.File, error) {
	// tree-sitter only polls the context during long parses.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}

	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	defer tree.Close()

	c := &converter{source: source}
	root := tree.RootNode()

	file := &ast.File{
		Name: name,
		Loc:  c.span(root),
	}

	for i := 0; i < int(root.NamedChildCount()); i++ {
		if stmt := c.stmt(root.NamedChild(i)); stmt != nil {
			file.Stmts = append(file.Stmts, stmt)
		}
	}

	return file, nil
}

type converter struct {
	source []byte
}

func (c *converter) text(n *sitter.Node) string {
	return string(c.source[n.StartByte():n.EndByte()])
}

func (c *converter) span(n *sitter.Node) ast.Span {
	return ast.Span{
		Start: ast.Pos{
			Offset: int(n.StartByte()),
			Line:   int(n.StartPoint().Row) + 1,
			Column: int(n.StartPoint().Column),
		},
		End: ast.Pos{
			Offset: int(n.EndByte()),
			Line:   int(n.EndPoint().Row) + 1,
			Column: int(n.EndPoint().Column),
		},
	}
}

// hasOptionalChain reports whether the member, subscript or call node
// carries a ?. link. tree-sitter marks the link on the node itself instead
// of wrapping the chain the way the checker's tree does.
func (c *converter) hasOptionalChain(n *sitter.Node) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		if n.Child(i).Type() == "optional_chain" {
			return true
		}
	}

	return false
}
