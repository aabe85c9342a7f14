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

// Package update provides the firmware-update manager placeholder.
// Firmware code expects the global instance to exist and link; beyond
// presence, no update flow is simulated.
package update

import "github.com/hostboard/go-hwmock/internal/syncutil"

// Manager stands in for the firmware update manager.
type Manager struct {
	mu          syncutil.Mutex
	abortCalled bool
}

// New creates a Manager.
func New() *Manager {
	return &Manager{}
}

// IsRunning reports whether an update is in progress. The mock never runs
// one.
func (*Manager) IsRunning() bool {
	return false
}

// Abort records that an abort was requested. There is nothing to abort.
func (m *Manager) Abort() {
	m.mu.Lock()
	m.abortCalled = true
	m.mu.Unlock()
}

// AbortCalled reports whether Abort has been called since the last Reset.
func (m *Manager) AbortCalled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.abortCalled
}

// Reset clears the recorded state.
func (m *Manager) Reset() {
	m.mu.Lock()
	m.abortCalled = false
	m.mu.Unlock()
}
