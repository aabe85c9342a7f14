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

// Package serialmon stubs the firmware serial console.
//
// Printed output goes nowhere by default, preserving only call signatures.
// Everything printed is still recorded so tests can assert on console
// traffic, and output can optionally be mirrored to any io.Writer or to a
// real host serial port (see AttachPort) when watching a run live.
package serialmon

import (
	"bytes"
	"fmt"
	"io"

	"github.com/hostboard/go-hwmock/internal/syncutil"
)

// Monitor stubs one serial console. The zero value is not usable; call New.
type Monitor struct {
	sink  io.Writer
	port  io.WriteCloser
	buf   bytes.Buffer
	mu    syncutil.Mutex
	baud  int
	begun bool
}

// New creates a Monitor with no sink attached.
func New() *Monitor {
	return &Monitor{}
}

// Begin records the configured baud rate. Nothing is opened.
func (m *Monitor) Begin(baud int) {
	m.mu.Lock()
	m.baud = baud
	m.begun = true
	m.mu.Unlock()
}

// Print formats its arguments like fmt.Sprint and records them.
func (m *Monitor) Print(args ...any) {
	m.write(fmt.Sprint(args...))
}

// Println formats its arguments like fmt.Sprintln and records them.
func (m *Monitor) Println(args ...any) {
	m.write(fmt.Sprintln(args...))
}

// Printf formats like fmt.Sprintf and records the result.
func (m *Monitor) Printf(format string, args ...any) {
	m.write(fmt.Sprintf(format, args...))
}

func (m *Monitor) write(s string) {
	m.mu.Lock()
	m.buf.WriteString(s)
	sink := m.sink
	port := m.port
	m.mu.Unlock()
	if sink != nil {
		_, _ = io.WriteString(sink, s)
	}
	if port != nil {
		_, _ = io.WriteString(port, s)
	}
}

// Test control and inspection surface.

// Output returns everything printed since the last Reset, in order.
func (m *Monitor) Output() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.buf.String()
}

// Baud returns the rate recorded by the last Begin.
func (m *Monitor) Baud() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.baud
}

// BeginCalled reports whether Begin has been called since the last Reset.
func (m *Monitor) BeginCalled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.begun
}

// SetSink mirrors all subsequent output to w in addition to recording it.
// Pass nil to stop mirroring.
func (m *Monitor) SetSink(w io.Writer) {
	m.mu.Lock()
	m.sink = w
	m.mu.Unlock()
}

// Reset clears the recorded output and the begin state. An attached port
// stays attached.
func (m *Monitor) Reset() {
	m.mu.Lock()
	m.buf.Reset()
	m.baud = 0
	m.begun = false
	m.mu.Unlock()
}
