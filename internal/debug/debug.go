// Copyright 2026 The go-hwmock Contributors.
// SPDX-License-Identifier: Apache-2.0
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

// Package debug provides the shared debug logging used by the mock packages.
// Output is disabled by default so mocks stay silent under normal test runs.
package debug

import (
	"fmt"
	"os"
)

// enabled controls whether debug logging is active.
var enabled = false

func init() {
	// Enable debug logging if the environment asks for it
	if os.Getenv("HWMOCK_DEBUG") != "" || os.Getenv("DEBUG") != "" {
		enabled = true
	}
}

// SetEnabled allows programmatic control of debug logging.
// Useful for testing or application-controlled debug modes.
func SetEnabled(on bool) {
	enabled = on
}

// Enabled reports whether debug logging is active.
func Enabled() bool {
	return enabled
}

// Printf prints debug information when debug mode is enabled.
func Printf(format string, args ...any) {
	if enabled {
		_, _ = fmt.Printf("DEBUG: "+format+"\n", args...)
	}
}

// Println prints debug information when debug mode is enabled.
func Println(args ...any) {
	if enabled {
		_, _ = fmt.Print("DEBUG: ")
		_, _ = fmt.Println(args...)
	}
}
