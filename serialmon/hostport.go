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

package serialmon

import (
	"fmt"

	"go.bug.st/serial"
)

// AttachPort opens a real host serial port and mirrors all subsequent
// console output to it, so a run against the mocks can still be watched on
// an attached terminal. The default, detached state performs no I/O.
func (m *Monitor) AttachPort(device string, baud int) error {
	port, err := serial.Open(device, &serial.Mode{
		BaudRate: baud,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
		DataBits: 8,
	})
	if err != nil {
		return fmt.Errorf("failed to open serial port %s: %w", device, err)
	}
	m.mu.Lock()
	old := m.port
	m.port = port
	m.mu.Unlock()
	if old != nil {
		_ = old.Close()
	}
	return nil
}

// DetachPort closes and detaches the mirrored host serial port, if any.
func (m *Monitor) DetachPort() error {
	m.mu.Lock()
	port := m.port
	m.port = nil
	m.mu.Unlock()
	if port == nil {
		return nil
	}
	if err := port.Close(); err != nil {
		return fmt.Errorf("failed to close serial port: %w", err)
	}
	return nil
}

// Ports lists the serial ports available on the host.
func Ports() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to list serial ports: %w", err)
	}
	return ports, nil
}
