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
	"log/slog"

	"fillmore-labs.com/accessguard/internal/policy"
)

// runOptions represent the applied configuration of an accessguard analyzer.
type runOptions struct {
	// paths is the configured path list in option order, before deduplication.
	paths []string

	// policy is the protected-path set built from paths.
	policy policy.Set

	// logger receives debug output.
	logger *slog.Logger
}

// defaultRunOptions initializes a runOptions instance with default values:
// an empty policy and a discarding logger.
func defaultRunOptions() *runOptions {
	return &runOptions{
		logger: slog.New(slog.DiscardHandler),
	}
}
