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

// Package hwmock holds the process-wide peripheral instances that firmware
// code expects as ambient globals, one per mocked subsystem, matching a
// single physical board.
//
// Each global carries its own Reset; ResetAll resets the lot and is meant
// to be called explicitly in every test's setup phase. Isolation between
// tests comes from that call, not from any implicit teardown.
package hwmock

import (
	"github.com/hostboard/go-hwmock/board"
	"github.com/hostboard/go-hwmock/nvs"
	"github.com/hostboard/go-hwmock/serialmon"
	"github.com/hostboard/go-hwmock/update"
	"github.com/hostboard/go-hwmock/wifi"
)

// Global peripheral instances, default-constructed at process start.
var (
	// WiFi is the one radio on the board.
	WiFi = wifi.New()

	// Storage is the persistent settings store.
	Storage = nvs.New()

	// Serial is the console output stub.
	Serial = serialmon.New()

	// Update is the firmware-update manager placeholder.
	Update = update.New()
)

// ResetAll restores every global peripheral and the board stubs to their
// canonical baseline. Per-instance mocks (card readers, web servers) are
// reset by whoever constructed them.
func ResetAll() {
	WiFi.Reset()
	Storage.Reset()
	Serial.Reset()
	Update.Reset()
	board.Reset()
}
