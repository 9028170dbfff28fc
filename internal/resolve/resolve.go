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

// Package resolve reconstructs canonical dotted paths from member chains.
package resolve

import (
	"slices"
	"strings"

	"fillmore-labs.com/accessguard/ast"
)

// Path is the result of resolving one expression: the "."-joined segment
// sequence from the innermost object outward, and whether any
// optional-chaining operator appeared along the chain.
type Path struct {
	Dotted      string
	HasOptional bool
}

// Expression resolves expr to a dotted path.
//
// The walk follows the member chain inward. Identifier properties
// contribute a segment; a bare identifier terminates the chain, and the
// meta-properties import.meta and new.target terminate it with their two
// fixed segments. Any other shape anywhere in the chain, including computed
// properties and optional calls, fails the whole resolution: failure is
// total, partial paths are never surfaced.
//
// Resolution is deterministic and side-effect free.
func Expression(expr ast.Expr) (Path, bool) {
	var segments []string

	hasOptional := false
	cur := expr

walk:
	for {
		switch e := cur.(type) {
		case *ast.Member:
			prop, ok := e.Prop.(*ast.IdentProp)
			if !ok {
				// Computed access is never resolvable, even partially.
				return Path{}, false
			}

			segments = append(segments, prop.Name)
			cur = e.Obj

		case *ast.OptChain:
			member, ok := e.Base.(*ast.OptMember)
			if !ok {
				// Optional calls have no property to name.
				return Path{}, false
			}

			prop, ok := member.Prop.(*ast.IdentProp)
			if !ok {
				return Path{}, false
			}

			hasOptional = true
			segments = append(segments, prop.Name)
			cur = member.Obj

		case *ast.Ident:
			segments = append(segments, e.Name)

			break walk

		case *ast.MetaProp:
			switch e.Kind {
			case ast.ImportMeta:
				segments = append(segments, "meta", "import")
			case ast.NewTarget:
				segments = append(segments, "target", "new")
			}

			break walk

		default:
			return Path{}, false
		}
	}

	if len(segments) == 0 {
		return Path{}, false
	}

	// Segments were collected walking inward; the path reads outward.
	slices.Reverse(segments)

	return Path{Dotted: strings.Join(segments, "."), HasOptional: hasOptional}, true
}
