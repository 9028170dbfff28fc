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

// Package ast declares the JavaScript syntax tree accessguard operates on.
//
// The tree is a plain sum type: expressions, statements, patterns and
// destructuring properties are sealed interfaces with one struct per node
// shape. Hosts that embed the checker construct these nodes from their own
// parser's output; the bundled tree-sitter frontend does the same.
//
// Trees are read-only once built. Nothing in this module mutates a node
// after construction, and the same tree can be checked concurrently by
// independent analyzer instances.
package ast
