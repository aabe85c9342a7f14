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

package board

// The board state is process-wide like the real board's, so these tests
// run sequentially and reset explicitly instead of using t.Parallel.

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"periph.io/x/conn/v3/gpio"
)

func TestMillisStartsAtZero(t *testing.T) {
	Reset()
	assert.Equal(t, uint32(0), Millis())
}

func TestDelayAdvancesWithoutBlocking(t *testing.T) {
	Reset()
	start := time.Now()
	Delay(60000)
	assert.Less(t, time.Since(start), time.Second, "Delay must not sleep")
	assert.Equal(t, uint32(60000), Millis())

	Delay(250)
	assert.Equal(t, uint32(60250), Millis())
}

func TestSetAndAdvanceMillis(t *testing.T) {
	Reset()
	SetMillis(1000)
	assert.Equal(t, uint32(1000), Millis())
	AdvanceMillis(500)
	assert.Equal(t, uint32(1500), Millis())
}

func TestUnsetPinReadsLow(t *testing.T) {
	Reset()
	assert.Equal(t, Low, DigitalRead(13))
	mode, level := PinState(13)
	assert.Equal(t, ModeUnset, mode)
	assert.Equal(t, Low, level)
}

func TestDigitalWriteThenRead(t *testing.T) {
	Reset()
	PinMode(13, ModeOutput)
	DigitalWrite(13, High)
	assert.Equal(t, High, DigitalRead(13))

	mode, level := PinState(13)
	assert.Equal(t, ModeOutput, mode)
	assert.Equal(t, High, level)

	DigitalWrite(13, Low)
	assert.Equal(t, Low, DigitalRead(13))
}

func TestSetPinLevelSimulatesExternalSignal(t *testing.T) {
	Reset()
	PinMode(34, ModeInput)
	assert.Equal(t, Low, DigitalRead(34))

	SetPinLevel(34, High)
	assert.Equal(t, High, DigitalRead(34))
}

func TestPinsAreIndependent(t *testing.T) {
	Reset()
	DigitalWrite(1, High)
	assert.Equal(t, High, DigitalRead(1))
	assert.Equal(t, Low, DigitalRead(2))
}

func TestReset(t *testing.T) {
	Reset()
	SetMillis(5000)
	PinMode(13, ModeOutput)
	DigitalWrite(13, High)

	Reset()
	assert.Equal(t, uint32(0), Millis())
	assert.Equal(t, Low, DigitalRead(13))
	mode, _ := PinState(13)
	assert.Equal(t, ModeUnset, mode)
}

func TestSimPinImplementsPinIO(t *testing.T) {
	Reset()
	var p gpio.PinIO = Pin(13)

	assert.Equal(t, "SIM13", p.Name())
	assert.Equal(t, 13, p.Number())

	assert.NoError(t, p.Out(gpio.High))
	assert.Equal(t, gpio.High, p.Read())
	assert.Equal(t, High, DigitalRead(13))

	mode, _ := PinState(13)
	assert.Equal(t, ModeOutput, mode)
}

func TestSimPinIn(t *testing.T) {
	Reset()
	p := Pin(34)

	assert.NoError(t, p.In(gpio.PullUp, gpio.NoEdge))
	mode, _ := PinState(34)
	assert.Equal(t, ModeInputPullup, mode)
	assert.Equal(t, gpio.PullUp, p.Pull())

	assert.NoError(t, p.In(gpio.Float, gpio.NoEdge))
	mode, _ = PinState(34)
	assert.Equal(t, ModeInput, mode)
	assert.Equal(t, gpio.Float, p.Pull())
}

func TestSimPinWaitForEdgeNeverBlocks(t *testing.T) {
	Reset()
	p := Pin(34)
	start := time.Now()
	assert.False(t, p.WaitForEdge(10*time.Second))
	assert.Less(t, time.Since(start), time.Second)
}

func TestSimPinPWM(t *testing.T) {
	Reset()
	p := Pin(25)
	assert.NoError(t, p.PWM(gpio.DutyMax, 0))
	assert.Equal(t, High, DigitalRead(25))

	assert.NoError(t, p.PWM(0, 0))
	assert.Equal(t, Low, DigitalRead(25))
}

func TestModeString(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
	}{
		{"unset", ModeUnset},
		{"input", ModeInput},
		{"output", ModeOutput},
		{"input-pullup", ModeInputPullup},
	}
	for _, tt := range tests {
		if tt.mode.String() != tt.name {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, tt.mode.String(), tt.name)
		}
	}
}
