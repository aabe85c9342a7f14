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

package wifi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsDisconnectedBaseline(t *testing.T) {
	t.Parallel()
	r := New()
	assert.Equal(t, StatusDisconnected, r.Status())
	assert.Equal(t, DefaultLocalIP, r.LocalIP().Str())
	assert.False(t, r.BeginCalled())
	assert.Empty(t, r.LastSSID())
	assert.Empty(t, r.LastPassphrase())
}

func TestBeginRecordsRequestWithoutChangingStatus(t *testing.T) {
	t.Parallel()
	r := New()

	got := r.Begin("homenet", "hunter2")
	assert.Equal(t, StatusDisconnected, got)
	assert.Equal(t, StatusDisconnected, r.Status())
	assert.True(t, r.BeginCalled())
	assert.Equal(t, "homenet", r.LastSSID())
	assert.Equal(t, "hunter2", r.LastPassphrase())

	// Status is whatever the harness last set, regardless of Begin
	r.SetStatus(StatusConnectFailed)
	got = r.Begin("othernet")
	assert.Equal(t, StatusConnectFailed, got)
	assert.Equal(t, StatusConnectFailed, r.Status())
	assert.Equal(t, "othernet", r.LastSSID())
	assert.Empty(t, r.LastPassphrase(), "open network begin clears prior passphrase")
}

func TestOnlySetStatusChangesStatus(t *testing.T) {
	t.Parallel()
	r := New()
	r.SetStatus(StatusConnected)
	assert.Equal(t, StatusConnected, r.Status())

	r.Begin("net", "pw")
	assert.Equal(t, StatusConnected, r.Status())
}

func TestSetLocalIP(t *testing.T) {
	t.Parallel()
	r := New()
	r.SetLocalIP("192.168.4.20")
	assert.Equal(t, "192.168.4.20", r.LocalIP().Str())
}

func TestReset(t *testing.T) {
	t.Parallel()
	r := New()
	r.SetStatus(StatusConnected)
	r.SetLocalIP("10.0.0.9")
	r.Begin("net", "pw")

	r.Reset()
	assert.Equal(t, StatusDisconnected, r.Status())
	assert.Equal(t, DefaultLocalIP, r.LocalIP().Str())
	assert.False(t, r.BeginCalled())
	assert.Empty(t, r.LastSSID())
	assert.Empty(t, r.LastPassphrase())
}

func TestStatusCodes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		status   Status
		expected uint8
	}{
		{"idle", StatusIdle, 0},
		{"no-ssid-available", StatusNoSSIDAvail, 1},
		{"scan-completed", StatusScanCompleted, 2},
		{"connected", StatusConnected, 3},
		{"connect-failed", StatusConnectFailed, 4},
		{"connection-lost", StatusConnectionLost, 5},
		{"disconnected", StatusDisconnected, 6},
		{"no-shield", StatusNoShield, 255},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if uint8(tt.status) != tt.expected {
				t.Errorf("%s = %d, want %d", tt.name, uint8(tt.status), tt.expected)
			}
			if tt.status.String() != tt.name {
				t.Errorf("String() = %q, want %q", tt.status.String(), tt.name)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	t.Parallel()
	status, err := ParseStatus("connected")
	require.NoError(t, err)
	assert.Equal(t, StatusConnected, status)

	_, err = ParseStatus("bogus")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownStatus)
}
