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

// pat converts a CST node in binding-pattern position. Anything that is
// not an identifier, object pattern or array pattern binds no name the
// checker cares about and collapses to an identifier pattern over its
// source text.
func (c *converter) pat(n *sitter.Node) ast.Pat {
	switch n.Type() {
	case "identifier", "shorthand_property_identifier_pattern":
		return &ast.IdentPat{Name: c.text(n), Loc: c.span(n)}

	case "object_pattern":
		return c.objectPat(n)

	case "array_pattern":
		p := &ast.ArrayPat{Loc: c.span(n)}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			p.Elems = append(p.Elems, c.pat(n.NamedChild(i)))
		}

		return p

	case "assignment_pattern":
		// A default value, pattern = expr; the binding is the left side.
		if left := n.ChildByFieldName("left"); left != nil {
			return c.pat(left)
		}

		return &ast.IdentPat{Name: c.text(n), Loc: c.span(n)}

	case "rest_pattern":
		if arg := n.NamedChild(0); arg != nil {
			return c.pat(arg)
		}

		return &ast.IdentPat{Name: c.text(n), Loc: c.span(n)}

	default:
		return &ast.IdentPat{Name: c.text(n), Loc: c.span(n)}
	}
}

func (c *converter) objectPat(n *sitter.Node) *ast.ObjectPat {
	p := &ast.ObjectPat{Loc: c.span(n)}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)

		switch child.Type() {
		case "shorthand_property_identifier_pattern":
			p.Props = append(p.Props, &ast.ShorthandProp{Key: c.text(child), Loc: c.span(child)})

		case "object_assignment_pattern":
			// Shorthand with a default, { key = expr }.
			prop := &ast.ShorthandProp{Loc: c.span(child)}

			if left := child.ChildByFieldName("left"); left != nil {
				prop.Key = c.text(left)
			}

			if right := child.ChildByFieldName("right"); right != nil {
				prop.Default = c.expr(right)
			}

			p.Props = append(p.Props, prop)

		case "pair_pattern":
			prop := &ast.KeyValueProp{Loc: c.span(child)}

			if key := child.ChildByFieldName("key"); key != nil {
				prop.Key = c.propKey(key)
			}

			if value := child.ChildByFieldName("value"); value != nil {
				prop.Value = c.pat(value)
			}

			if prop.Key != nil && prop.Value != nil {
				p.Props = append(p.Props, prop)
			}

		case "rest_pattern":
			prop := &ast.RestProp{Loc: c.span(child)}
			if arg := child.NamedChild(0); arg != nil {
				prop.Arg = c.pat(arg)
			} else {
				prop.Arg = &ast.IdentPat{Name: c.text(child), Loc: c.span(child)}
			}

			p.Props = append(p.Props, prop)

		case "comment":
			continue
		}
	}

	return p
}

// propKey converts a pair_pattern key. Computed keys are rare in patterns
// and fold into string keys, which the destructuring rule skips anyway.
func (c *converter) propKey(n *sitter.Node) ast.PropKey {
	if n.Type() == "property_identifier" {
		return &ast.IdentKey{Name: c.text(n), Loc: c.span(n)}
	}

	return &ast.StringKey{Value: c.text(n), Loc: c.span(n)}
}
