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

package analyzer

import (
	"context"
	"fmt"
	"runtime/trace"

	"fillmore-labs.com/accessguard/ast"
	"fillmore-labs.com/accessguard/internal/parse"
	"fillmore-labs.com/accessguard/internal/report"
	"fillmore-labs.com/accessguard/internal/walk"
)

// Public API constants for the accessguard analyzer.
const (
	name = "accessguard"
	doc  = `accessguard flags optional chaining and destructuring on protected value paths`
	url  = "https://pkg.go.dev/fillmore-labs.com/accessguard"
)

// Diagnostic is one reported policy violation. See [report.Diagnostic].
type Diagnostic = report.Diagnostic

// Kind identifies which rule produced a [Diagnostic].
type Kind = report.Kind

// Diagnostic kinds.
const (
	OptionalChaining      = report.OptionalChaining
	Destructuring         = report.Destructuring
	DestructuringOptional = report.DestructuringOptional
)

// Analyzer checks syntax trees against a fixed set of protected paths.
//
// An Analyzer is immutable after [New] and safe for concurrent use. The
// intended lifecycle is one instance per configuration, shared across the
// compilation units it checks.
type Analyzer struct {
	opts *runOptions
}

// New creates a new accessguard analyzer, configured with [Option] values.
// Without [WithPaths] or [WithPath] the analyzer has an empty policy and
// reports nothing.
func New(opts ...Option) *Analyzer {
	r := defaultRunOptions()
	Options(opts).apply(r)

	return &Analyzer{opts: r}
}

// Name returns the analyzer's name.
func (*Analyzer) Name() string { return name }

// Doc returns the analyzer's one-line documentation string.
func (*Analyzer) Doc() string { return doc }

// URL returns the analyzer's documentation URL.
func (*Analyzer) URL() string { return url }

// Enabled reports whether any protected path is configured. A disabled
// analyzer is valid and checks nothing.
func (a *Analyzer) Enabled() bool { return !a.opts.policy.Empty() }

// Check runs one pass over file and returns the diagnostics in visit
// order. The tree is only read, never modified, and a finite traversal
// always terminates; running Check twice over the same tree yields
// identical results.
func (a *Analyzer) Check(ctx context.Context, file *ast.File) []Diagnostic {
	if file == nil || !a.Enabled() {
		return nil
	}

	ctx, task := trace.NewTask(ctx, "AccessGuard")
	defer task.End()

	trace.Log(ctx, "file", file.Name)

	a.opts.logger.DebugContext(ctx, "checking file", "file", file.Name, "paths", a.opts.policy.Paths())

	return walk.File(ctx, a.opts.policy, file)
}

// CheckSource parses JavaScript source with the bundled frontend and checks
// the resulting tree. The name is used in trace output and diagnostics
// rendering only.
func (a *Analyzer) CheckSource(ctx context.Context, source []byte, name string) ([]Diagnostic, error) {
	file, err := parse.File(ctx, source, name)
	if err != nil {
		return nil, fmt.Errorf("accessguard: %w", err)
	}

	return a.Check(ctx, file), nil
}
