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

// Package analyzer implements the accessguard policy check.
//
// # Overview
//
// AccessGuard flags accesses to configured protected dotted paths, such as
// process.env or import.meta.env, that are made through optional chaining
// or object destructuring instead of plain member access. Downstream
// tooling, typically a build-time value substitution pass, can then rely on
// literal textual matches of those paths.
//
// Flagged:
//
//	const key = process.env?.API_KEY;  // optional chaining on process.env
//	const key = process?.env.API_KEY;  // chain resolves to process.env
//	const { env } = process;           // destructuring binds process.env
//	const { API_KEY } = process?.env;  // destructuring via optional chain
//
// Allowed:
//
//	const key = process.env.API_KEY;             // direct access
//	const key = process.env.API_KEY?.trim();     // one level past the boundary
//	const { API_KEY } = process.env;             // binds one level deeper
//
// # Usage
//
//	a := analyzer.New(analyzer.WithPaths([]string{"process.env", "import.meta.env"}))
//	diagnostics, err := a.CheckSource(ctx, source, "app.js")
//
// With no configured paths the analyzer is a no-op. Each analyzer instance
// is independent and safe for concurrent use; compilation units can be
// checked in parallel without coordination.
package analyzer
