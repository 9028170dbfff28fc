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

/*
Package hostplugin adapts host-supplied plugin options for the [accessguard] analyzer.

Build hosts configure the checker through an untyped options channel, one
JSON-shaped value per compilation pipeline:

	{
	    "paths": ["process.env", "import.meta.env"]
	}

Only the paths key is recognized; unknown keys are ignored so permissive
host configuration channels keep working. A missing or empty list yields a
disabled analyzer, which is a supported mode rather than an error.

	a, err := hostplugin.New(rawSettings)
	if err != nil {
	    return err
	}
	diagnostics := a.Check(ctx, file)

[accessguard]: https://pkg.go.dev/fillmore-labs.com/accessguard
*/
package hostplugin
