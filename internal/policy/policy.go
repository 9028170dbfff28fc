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

// Package policy holds the configured set of protected paths.
package policy

import "slices"

// Set is an immutable set of protected dotted paths, built once from user
// configuration. Matching is exact string equality, case-sensitive, no
// wildcards. The zero value is an empty set, which disables all checks.
type Set struct {
	paths map[string]struct{}
}

// New builds a Set from an ordered path list. Duplicates collapse; order is
// not significant after construction. Empty strings are kept as given, they
// simply never match a resolved path.
func New(paths []string) Set {
	if len(paths) == 0 {
		return Set{}
	}

	m := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		m[p] = struct{}{}
	}

	return Set{paths: m}
}

// Empty reports whether no path is configured. An empty set puts the
// checker into its supported "disabled" mode.
func (s Set) Empty() bool { return len(s.paths) == 0 }

// Contains reports whether path is exactly one of the protected paths.
func (s Set) Contains(path string) bool {
	_, ok := s.paths[path]

	return ok
}

// Paths returns the protected paths in sorted order, for logging.
func (s Set) Paths() []string {
	paths := make([]string, 0, len(s.paths))
	for p := range s.paths {
		paths = append(paths, p)
	}

	slices.Sort(paths)

	return paths
}
