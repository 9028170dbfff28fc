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

// Accessguard checks JavaScript sources for indirect access to protected
// value paths.
//
// Usage:
//
//	accessguard [-paths process.env,import.meta.env] [-config accessguard.yaml] [-v] files...
//
// Diagnostics are written to standard output as file:line:col: message.
// The exit code is 1 when any diagnostic was emitted, 2 on usage or I/O
// errors and 0 otherwise. Without configured paths the run is a no-op
// success.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/accessguard/analyzer"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// fileConfig is the YAML configuration file format.
type fileConfig struct {
	Paths []string `yaml:"paths"`
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("accessguard", flag.ContinueOnError)
	flags.SetOutput(stderr)

	pathList := flags.String("paths", "", "comma-separated protected paths (overrides the configuration file)")
	configFile := flags.String("config", "", "YAML configuration file with a paths list")
	verbose := flags.Bool("v", false, "verbose logging")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	paths, err := protectedPaths(*pathList, *configFile)
	if err != nil {
		logger.Error("invalid configuration", "err", err)

		return 2
	}

	a := analyzer.New(analyzer.WithPaths(paths), analyzer.WithLogger(logger))
	if !a.Enabled() {
		logger.Debug("no protected paths configured, nothing to check")

		return 0
	}

	failed := false

	for _, name := range flags.Args() {
		source, err := os.ReadFile(name)
		if err != nil {
			logger.Error("can't read file", "file", name, "err", err)

			return 2
		}

		diagnostics, err := a.CheckSource(ctx, source, name)
		if err != nil {
			logger.Error("can't check file", "file", name, "err", err)

			return 2
		}

		logger.Debug("checked file", "file", name, "diagnostics", len(diagnostics))

		for _, d := range diagnostics {
			fmt.Fprintf(stdout, "%s:%s: %s\n", name, d.Span, d.Message())

			failed = true
		}
	}

	if failed {
		return 1
	}

	return 0
}

// protectedPaths merges the -paths flag with the configuration file; the
// flag wins when both are given.
func protectedPaths(pathList, configFile string) ([]string, error) {
	if pathList != "" {
		var paths []string

		for _, p := range strings.Split(pathList, ",") {
			if p = strings.TrimSpace(p); p != "" {
				paths = append(paths, p)
			}
		}

		return paths, nil
	}

	if configFile == "" {
		return nil, nil
	}

	buf, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", configFile, err)
	}

	var config fileConfig
	if err := yaml.Unmarshal(buf, &config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", configFile, err)
	}

	return config.Paths, nil
}
