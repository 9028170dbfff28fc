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

package hostplugin

import (
	"fmt"

	"github.com/golangci/plugin-module-register/register"

	accessguard "fillmore-labs.com/accessguard/analyzer"
)

// Settings represents the recognized configuration options for an instance
// of the analyzer.
type Settings struct {
	// Paths lists the protected dotted paths. Empty disables all checks.
	Paths []string `json:"paths"`
}

// New creates an [accessguard.Analyzer] from a host-supplied raw settings
// value. rawSettings may be nil, a JSON-decoded map or any value that
// round-trips through JSON; keys other than "paths" are ignored.
func New(rawSettings any) (*accessguard.Analyzer, error) {
	settings, err := DecodeSettings(rawSettings)
	if err != nil {
		return nil, err
	}

	return accessguard.New(settings.Options()...), nil
}

// DecodeSettings converts a raw settings value into [Settings] via
// [register.DecodeSettings]. Unknown keys are dropped silently; a value
// that does not encode to a JSON object is an error.
func DecodeSettings(rawSettings any) (Settings, error) {
	settings, err := register.DecodeSettings[Settings](rawSettings)
	if err != nil {
		return Settings{}, fmt.Errorf("hostplugin: can't decode settings: %w", err)
	}

	return settings, nil
}

// Options converts [Settings] into a list of [accessguard.Option] values.
func (s Settings) Options() []accessguard.Option {
	var opts []accessguard.Option

	if len(s.Paths) > 0 {
		opts = append(opts, accessguard.WithPaths(s.Paths))
	}

	return opts
}
