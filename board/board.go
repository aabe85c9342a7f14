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

// Package board stubs the time and digital pin I/O primitives of the
// target board.
//
// Time is a fake millisecond counter: Delay advances it instead of
// sleeping, so firmware busy-wait loops finish instantly and tests control
// elapsed time exactly. Pins live in a process-wide table the way they do
// on a single physical board; test code sets input levels and inspects
// written ones. Individual pins can optionally be bound to real host GPIO
// through periph.io (see BindHostPin).
package board

import (
	"periph.io/x/conn/v3/gpio"

	"github.com/hostboard/go-hwmock/internal/syncutil"
)

// Level is a digital pin level, aliased from periph.io so mock pins and
// real host pins share a vocabulary.
type Level = gpio.Level

// Pin levels.
const (
	Low  = gpio.Low
	High = gpio.High
)

// Mode is a pin direction configuration.
type Mode uint8

// Pin modes.
const (
	ModeUnset Mode = iota
	ModeInput
	ModeOutput
	ModeInputPullup
)

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeInput:
		return "input"
	case ModeOutput:
		return "output"
	case ModeInputPullup:
		return "input-pullup"
	default:
		return "unset"
	}
}

type pinState struct {
	host  gpio.PinIO
	mode  Mode
	level Level
}

type simBoard struct {
	pins   map[int]*pinState
	mu     syncutil.RWMutex
	millis uint32
}

// sim is the one simulated board per process, matching the one physical
// board firmware code assumes.
var sim = &simBoard{pins: make(map[int]*pinState)}

// pin returns the state entry for a pin number, creating it on first use.
// Caller holds sim.mu.
func (b *simBoard) pin(num int) *pinState {
	ps, ok := b.pins[num]
	if !ok {
		ps = &pinState{}
		b.pins[num] = ps
	}
	return ps
}

// Millis returns the fake elapsed-milliseconds counter.
func Millis() uint32 {
	sim.mu.RLock()
	defer sim.mu.RUnlock()
	return sim.millis
}

// Delay advances the fake clock by ms. It never blocks.
func Delay(ms uint32) {
	AdvanceMillis(ms)
}

// PinMode configures the direction of a pin.
func PinMode(pin int, mode Mode) {
	sim.mu.Lock()
	sim.pin(pin).mode = mode
	sim.mu.Unlock()
}

// DigitalWrite drives a pin to level. If the pin is bound to a host pin
// the level is forwarded there as well; forwarding errors are ignored, the
// simulated level is authoritative.
func DigitalWrite(pin int, level Level) {
	sim.mu.Lock()
	ps := sim.pin(pin)
	ps.level = level
	host := ps.host
	sim.mu.Unlock()
	if host != nil {
		_ = host.Out(level)
	}
}

// DigitalRead returns the current level of a pin. Bound pins read from the
// host; unbound, unset pins read Low.
func DigitalRead(pin int) Level {
	sim.mu.RLock()
	ps, ok := sim.pins[pin]
	var host gpio.PinIO
	var level Level
	if ok {
		host = ps.host
		level = ps.level
	}
	sim.mu.RUnlock()
	if host != nil {
		return host.Read()
	}
	return level
}

// Test control and inspection surface.

// SetMillis sets the fake clock to an absolute value.
func SetMillis(ms uint32) {
	sim.mu.Lock()
	sim.millis = ms
	sim.mu.Unlock()
}

// AdvanceMillis moves the fake clock forward by ms.
func AdvanceMillis(ms uint32) {
	sim.mu.Lock()
	sim.millis += ms
	sim.mu.Unlock()
}

// SetPinLevel sets the level a pin reads at, simulating an external signal
// on an input pin.
func SetPinLevel(pin int, level Level) {
	sim.mu.Lock()
	sim.pin(pin).level = level
	sim.mu.Unlock()
}

// PinState returns the configured mode and current level of a pin.
func PinState(pin int) (Mode, Level) {
	sim.mu.RLock()
	defer sim.mu.RUnlock()
	ps, ok := sim.pins[pin]
	if !ok {
		return ModeUnset, Low
	}
	return ps.mode, ps.level
}

// Reset clears the pin table, host bindings and the fake clock.
func Reset() {
	sim.mu.Lock()
	sim.pins = make(map[int]*pinState)
	sim.millis = 0
	sim.mu.Unlock()
}
