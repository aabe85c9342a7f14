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
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/hostboard/go-hwmock/internal/debug"
)

// ErrHostPinNotFound is returned when the named pin does not exist on the
// host.
var ErrHostPinNotFound = errors.New("host pin not found")

// BindHostPin maps a simulated pin onto a real host GPIO, for
// hardware-in-the-loop runs: DigitalWrite forwards levels to the host pin
// and DigitalRead reads from it. The default, unbound state touches no
// hardware.
func BindHostPin(pin int, name string) error {
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("host init failed: %w", err)
	}
	hostPin := gpioreg.ByName(name)
	if hostPin == nil {
		return fmt.Errorf("%w: %q", ErrHostPinNotFound, name)
	}
	sim.mu.Lock()
	sim.pin(pin).host = hostPin
	sim.mu.Unlock()
	debug.Printf("board: pin %d bound to host pin %s", pin, name)
	return nil
}

// UnbindHostPin disconnects a simulated pin from its host pin, if any.
func UnbindHostPin(pin int) {
	sim.mu.Lock()
	if ps, ok := sim.pins[pin]; ok {
		ps.host = nil
	}
	sim.mu.Unlock()
}
