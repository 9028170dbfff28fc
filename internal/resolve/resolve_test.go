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

package resolve_test

import (
	"testing"

	"fillmore-labs.com/accessguard/ast"
	"fillmore-labs.com/accessguard/internal/asttest"
	. "fillmore-labs.com/accessguard/internal/resolve"
)

func TestExpression(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		expr        ast.Expr
		want        string
		hasOptional bool
		ok          bool
	}{
		{
			name: "Identifier",
			expr: asttest.Ident("process"),
			want: "process",
			ok:   true,
		},
		{
			name: "MemberChain",
			expr: asttest.Member(asttest.Ident("process"), "env", "API_KEY"),
			want: "process.env.API_KEY",
			ok:   true,
		},
		{
			name:        "OptionalMember",
			expr:        asttest.OptMember(asttest.Ident("process"), "env"),
			want:        "process.env",
			hasOptional: true,
			ok:          true,
		},
		{
			name:        "OptionalInsideChain",
			expr:        asttest.Member(asttest.OptMember(asttest.Ident("process"), "env"), "API_KEY"),
			want:        "process.env.API_KEY",
			hasOptional: true,
			ok:          true,
		},
		{
			name:        "ContinuationChain",
			expr:        asttest.OptMember(asttest.OptMember(asttest.Ident("a"), "b"), "c"),
			want:        "a.b.c",
			hasOptional: true,
			ok:          true,
		},
		{
			name: "ImportMeta",
			expr: asttest.Meta(ast.ImportMeta),
			want: "import.meta",
			ok:   true,
		},
		{
			name: "ImportMetaEnv",
			expr: asttest.Member(asttest.Meta(ast.ImportMeta), "env"),
			want: "import.meta.env",
			ok:   true,
		},
		{
			name: "NewTarget",
			expr: asttest.Meta(ast.NewTarget),
			want: "new.target",
			ok:   true,
		},
		{
			name: "ComputedMember",
			expr: asttest.Computed(asttest.Ident("process"), asttest.Ident("key")),
		},
		{
			name: "ComputedInsideChain",
			expr: asttest.Member(asttest.Computed(asttest.Ident("process"), asttest.Ident("key")), "API_KEY"),
		},
		{
			name: "OptionalComputed",
			expr: asttest.OptComputed(asttest.Ident("process"), asttest.Ident("key")),
		},
		{
			name: "OptionalCall",
			expr: asttest.OptCall(asttest.Ident("fn")),
		},
		{
			name: "OptionalCallInsideChain",
			expr: asttest.Member(asttest.OptCall(asttest.Ident("fn")), "result"),
		},
		{
			name: "CallExpression",
			expr: asttest.Call(asttest.Ident("getEnv")),
		},
		{
			name: "CallInsideChain",
			expr: asttest.Member(asttest.Call(asttest.Ident("getConfig")), "env"),
		},
		{
			name: "Literal",
			expr: &ast.BasicLit{Kind: ast.StringLit, Value: `"process.env"`},
		},
		{
			name: "Unsupported",
			expr: &ast.Unsupported{Kind: "object"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path, ok := Expression(tt.expr)
			if ok != tt.ok {
				t.Fatalf("Expression() ok = %v, want %v", ok, tt.ok)
			}

			if !tt.ok {
				if path != (Path{}) {
					t.Errorf("Expression() = %+v, want zero Path on failure", path)
				}

				return
			}

			if path.Dotted != tt.want {
				t.Errorf("Expression() path = %q, want %q", path.Dotted, tt.want)
			}

			if path.HasOptional != tt.hasOptional {
				t.Errorf("Expression() hasOptional = %v, want %v", path.HasOptional, tt.hasOptional)
			}
		})
	}
}

func TestExpressionDeterministic(t *testing.T) {
	t.Parallel()

	expr := asttest.Member(asttest.OptMember(asttest.Ident("process"), "env"), "API_KEY")

	first, ok1 := Expression(expr)
	second, ok2 := Expression(expr)

	if ok1 != ok2 || first != second {
		t.Errorf("Expression() not deterministic: (%+v, %v) vs (%+v, %v)", first, ok1, second, ok2)
	}
}
