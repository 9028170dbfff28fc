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

// Option configures specific behavior of a [New] accessguard analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithPaths is an [Option] adding protected paths to the analyzer's policy.
// Paths accumulate over multiple options and are deduplicated; with no path
// configured at all the analyzer is disabled.
func WithPaths(paths []string) Option { return pathsOption{paths: paths} }

type pathsOption struct{ paths []string }

func (o pathsOption) apply(r *runOptions) {
	r.paths = append(r.paths, o.paths...)
	r.policy = policy.New(r.paths)
}

func (o pathsOption) LogAttr() slog.Attr {
	return slog.Any("paths", o.paths)
}

// WithPath is an [Option] adding a single protected path.
func WithPath(path string) Option { return pathOption{path: path} }

type pathOption struct{ path string }

func (o pathOption) apply(r *runOptions) {
	r.paths = append(r.paths, o.path)
	r.policy = policy.New(r.paths)
}

func (o pathOption) LogAttr() slog.Attr {
	return slog.String("path", o.path)
}

// WithLogger is an [Option] to configure the logger used for debug output.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *runOptions) {
	if o.logger != nil {
		r.logger = o.logger
	}
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
