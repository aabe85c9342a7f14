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

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// SimPin is a periph.io view of one simulated pin, so host-side tooling
// written against gpio.PinIO can drive and observe the mock pin table.
type SimPin struct {
	num int
}

// Pin returns the periph.io view of pin number num.
func Pin(num int) *SimPin {
	return &SimPin{num: num}
}

// Name returns the simulated pin name.
func (p *SimPin) Name() string {
	return fmt.Sprintf("SIM%d", p.num)
}

// String implements conn.Resource.
func (p *SimPin) String() string {
	return p.Name()
}

// Number returns the pin number.
func (p *SimPin) Number() int {
	return p.num
}

// Function returns the current direction as a descriptive string.
func (p *SimPin) Function() string {
	mode, level := PinState(p.num)
	switch mode {
	case ModeOutput:
		return "Out/" + level.String()
	case ModeInput, ModeInputPullup:
		return "In/" + level.String()
	default:
		return "unset"
	}
}

// Halt implements conn.Resource. There is nothing to stop.
func (*SimPin) Halt() error {
	return nil
}

// In configures the pin as an input. Edge detection is accepted but
// ignored; WaitForEdge never fires on a simulated pin.
func (p *SimPin) In(pull gpio.Pull, _ gpio.Edge) error {
	if pull == gpio.PullUp {
		PinMode(p.num, ModeInputPullup)
	} else {
		PinMode(p.num, ModeInput)
	}
	return nil
}

// Read returns the current simulated level.
func (p *SimPin) Read() gpio.Level {
	return DigitalRead(p.num)
}

// WaitForEdge returns immediately: the mock layer has no blocking calls,
// so no edge is ever delivered.
func (*SimPin) WaitForEdge(_ time.Duration) bool {
	return false
}

// Pull returns the configured pull resistor state.
func (p *SimPin) Pull() gpio.Pull {
	mode, _ := PinState(p.num)
	if mode == ModeInputPullup {
		return gpio.PullUp
	}
	return gpio.Float
}

// DefaultPull returns the reset-time pull state.
func (*SimPin) DefaultPull() gpio.Pull {
	return gpio.Float
}

// Out drives the pin to level.
func (p *SimPin) Out(level gpio.Level) error {
	PinMode(p.num, ModeOutput)
	DigitalWrite(p.num, level)
	return nil
}

// PWM configures the pin as an output at the duty-cycle midpoint level.
// Duty and frequency are not modeled.
func (p *SimPin) PWM(duty gpio.Duty, _ physic.Frequency) error {
	return p.Out(duty >= gpio.DutyHalf)
}

var _ gpio.PinIO = (*SimPin)(nil)
