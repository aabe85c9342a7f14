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

package hwmock

import "github.com/hostboard/go-hwmock/internal/debug"

// SetDebugEnabled allows programmatic control of debug logging across all
// mock packages. Debug output is also enabled when the HWMOCK_DEBUG or
// DEBUG environment variable is set.
func SetDebugEnabled(enabled bool) {
	debug.SetEnabled(enabled)
}

// Debugf prints debug information when debug mode is enabled.
func Debugf(format string, args ...any) {
	debug.Printf(format, args...)
}

// Debugln prints debug information when debug mode is enabled.
func Debugln(args ...any) {
	debug.Println(args...)
}
