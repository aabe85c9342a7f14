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

// Package wifi mocks the station-mode wireless network interface.
//
// Status never changes on its own: Begin records the request and nothing
// else, because real association is asynchronous and outside this layer.
// Test code drives the status explicitly through the control surface.
package wifi

import (
	"errors"
	"fmt"

	"github.com/hostboard/go-hwmock/internal/debug"
	"github.com/hostboard/go-hwmock/internal/syncutil"
	"github.com/hostboard/go-hwmock/pkg/str"
)

// Status represents the station association state. Values match the
// standard wl_status_t codes so recorded firmware expectations carry over.
type Status uint8

// Station states.
const (
	StatusIdle           Status = 0
	StatusNoSSIDAvail    Status = 1
	StatusScanCompleted  Status = 2
	StatusConnected      Status = 3
	StatusConnectFailed  Status = 4
	StatusConnectionLost Status = 5
	StatusDisconnected   Status = 6
	StatusNoShield       Status = 255
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusNoSSIDAvail:
		return "no-ssid-available"
	case StatusScanCompleted:
		return "scan-completed"
	case StatusConnected:
		return "connected"
	case StatusConnectFailed:
		return "connect-failed"
	case StatusConnectionLost:
		return "connection-lost"
	case StatusDisconnected:
		return "disconnected"
	case StatusNoShield:
		return "no-shield"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// ErrUnknownStatus is returned by ParseStatus for unrecognized names.
var ErrUnknownStatus = errors.New("unknown wifi status")

// ParseStatus maps a status name (as produced by Status.String) back to its
// code. Used by board profiles.
func ParseStatus(name string) (Status, error) {
	for _, s := range []Status{
		StatusIdle, StatusNoSSIDAvail, StatusScanCompleted, StatusConnected,
		StatusConnectFailed, StatusConnectionLost, StatusDisconnected, StatusNoShield,
	} {
		if s.String() == name {
			return s, nil
		}
	}
	return StatusDisconnected, fmt.Errorf("%w: %q", ErrUnknownStatus, name)
}

// DefaultLocalIP is the address reported before test code assigns one.
const DefaultLocalIP = "0.0.0.0"

// Radio mocks the one radio on the board. Firmware code sees the standard
// surface (Status, Begin, LocalIP); test code drives everything else.
type Radio struct {
	localIP     string
	ssid        string
	passphrase  string
	mu          syncutil.RWMutex
	status      Status
	beginCalled bool
}

// New creates a Radio in the canonical baseline: disconnected, default
// address, no association request recorded.
func New() *Radio {
	return &Radio{
		status:  StatusDisconnected,
		localIP: DefaultLocalIP,
	}
}

// Status returns the current association state.
func (r *Radio) Status() Status {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.status
}

// Begin records an association request for ssid with an optional
// passphrase. It never changes the status; it returns the status unchanged,
// as the real call does before association completes.
func (r *Radio) Begin(ssid string, passphrase ...string) Status {
	r.mu.Lock()
	r.ssid = ssid
	if len(passphrase) > 0 {
		r.passphrase = passphrase[0]
	} else {
		r.passphrase = ""
	}
	r.beginCalled = true
	status := r.status
	r.mu.Unlock()
	debug.Printf("wifi: begin ssid=%q status=%v", ssid, status)
	return status
}

// LocalIP returns the currently assigned address.
func (r *Radio) LocalIP() str.String {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return str.Of(r.localIP)
}

// Test control and inspection surface.

// SetStatus sets the association state. This is the only way status
// changes.
func (r *Radio) SetStatus(status Status) {
	r.mu.Lock()
	r.status = status
	r.mu.Unlock()
	debug.Printf("wifi: status -> %v", status)
}

// SetLocalIP assigns the address reported by LocalIP.
func (r *Radio) SetLocalIP(ip string) {
	r.mu.Lock()
	r.localIP = ip
	r.mu.Unlock()
}

// BeginCalled reports whether Begin has been called since the last Reset.
func (r *Radio) BeginCalled() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.beginCalled
}

// LastSSID returns the network name from the most recent Begin.
func (r *Radio) LastSSID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ssid
}

// LastPassphrase returns the credential from the most recent Begin.
func (r *Radio) LastPassphrase() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.passphrase
}

// Reset restores the canonical baseline: disconnected, call flag cleared,
// default address, no recorded ssid or passphrase.
func (r *Radio) Reset() {
	r.mu.Lock()
	r.status = StatusDisconnected
	r.localIP = DefaultLocalIP
	r.ssid = ""
	r.passphrase = ""
	r.beginCalled = false
	r.mu.Unlock()
}
