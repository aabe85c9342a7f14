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

// Package rc522 mocks the MFRC522 contactless card reader.
//
// The state machine is {uninitialized, initialized} x {no-card,
// card-present}. Card presence and a successful serial read are
// independent test-control signals, mirroring real polling: both must be
// set for PICCReadCardSerial to succeed. Register access is simulated at
// the value level only; the version register answers with a recognized
// chip revision and everything else reads as zero.
package rc522

import (
	"github.com/hostboard/go-hwmock/internal/debug"
	"github.com/hostboard/go-hwmock/internal/syncutil"
)

// Register is an MFRC522 register address.
// Addresses from the MFRC522 datasheet section 9.2 (Table 20).
type Register byte

// MFRC522 registers.
const (
	RegCommand      Register = 0x01 // starts and stops command execution
	RegComIEn       Register = 0x02 // interrupt request enable bits
	RegComIrq       Register = 0x04 // interrupt request bits
	RegError        Register = 0x06 // error status of the last command
	RegStatus1      Register = 0x07 // communication status bits
	RegStatus2      Register = 0x08 // receiver and transmitter status bits
	RegFIFOData     Register = 0x09 // input and output of the 64-byte FIFO
	RegFIFOLevel    Register = 0x0A // number of bytes stored in the FIFO
	RegControl      Register = 0x0C // miscellaneous control
	RegBitFraming   Register = 0x0D // adjustments for bit-oriented frames
	RegMode         Register = 0x11 // general transmit and receive mode
	RegTxMode       Register = 0x12 // transmission data rate and framing
	RegRxMode       Register = 0x13 // reception data rate and framing
	RegTxControl    Register = 0x14 // antenna driver control
	RegTxASK        Register = 0x15 // transmission modulation
	RegCRCResultH   Register = 0x21 // CRC calculation result, high byte
	RegCRCResultL   Register = 0x22 // CRC calculation result, low byte
	RegTMode        Register = 0x2A // timer settings
	RegTPrescaler   Register = 0x2B // timer prescaler
	RegTReloadH     Register = 0x2C // timer reload value, high byte
	RegTReloadL     Register = 0x2D // timer reload value, low byte
	RegVersion      Register = 0x37 // chip version
)

// ChipVersion is the value the mock answers for the version register: the
// MFRC522 datasheet 9.3.4.8 value for a version 2.0 chip.
const ChipVersion byte = 0x92

// MaxUIDSize is the capacity of a card identifier in bytes, per
// ISO/IEC 14443-3 triple-size UIDs.
const MaxUIDSize = 10

// UID holds a card identifier: up to MaxUIDSize bytes plus the declared
// length.
type UID struct {
	Bytes [MaxUIDSize]byte
	Size  int
}

// Reader mocks one MFRC522 attached over SPI. Firmware code sees the
// driver surface (PCDInit, register access, PICC polling); test code
// arranges card presence and read outcomes.
//
// Thread Safety: guarded internally, but each Reader is meant to be driven
// from a single goroutine.
type Reader struct {
	// UID exposes the identifier of the last successfully read card, as
	// the real driver does through its uid field. Untouched by failed
	// reads.
	UID UID

	mu           syncutil.Mutex
	simUID       UID
	csPin        int
	resetPin     int
	lastWriteReg Register
	lastWriteVal byte
	initialized  bool
	cardPresent  bool
	readSucceeds bool
	haltCalled   bool
}

// New creates a Reader wired to the given chip-select and reset pins. The
// pins are recorded only; no hardware is touched.
func New(csPin, resetPin int) *Reader {
	return &Reader{
		csPin:    csPin,
		resetPin: resetPin,
	}
}

// PCDInit initializes the reader. It always succeeds and has no side
// effect beyond marking the reader initialized.
func (r *Reader) PCDInit() {
	r.mu.Lock()
	r.initialized = true
	r.mu.Unlock()
	debug.Println("rc522: PCD init")
}

// PCDReadRegister simulates a register read. The version register answers
// with ChipVersion so firmware self-tests recognize the chip; every other
// register reads as zero.
func (r *Reader) PCDReadRegister(reg Register) byte {
	if reg == RegVersion {
		return ChipVersion
	}
	return 0
}

// PCDWriteRegister simulates a register write. The write is recorded (see
// LastWrite) but otherwise inert.
func (r *Reader) PCDWriteRegister(reg Register, value byte) {
	r.mu.Lock()
	r.lastWriteReg = reg
	r.lastWriteVal = value
	r.mu.Unlock()
}

// PICCIsNewCardPresent reports whether a card is in the field. It returns
// the present flag verbatim and mutates nothing, so repeated polls agree.
func (r *Reader) PICCIsNewCardPresent() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cardPresent
}

// PICCReadCardSerial attempts to read the serial of the card in the field.
// It succeeds only when a card is present AND the read-succeeds signal is
// set; presence and a clean read are independent on real hardware and both
// are required. On success the simulated identifier is copied into the
// exposed UID field; on failure the field is left untouched.
func (r *Reader) PICCReadCardSerial() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.cardPresent || !r.readSucceeds {
		return false
	}
	r.UID = r.simUID
	return true
}

// PICCHaltA records that the halt command was issued. It does not clear
// the present flag: managing the next poll cycle is the firmware's job.
func (r *Reader) PICCHaltA() {
	r.mu.Lock()
	r.haltCalled = true
	r.mu.Unlock()
}

// Test control and inspection surface.

// SetCardPresent arranges whether a card is in the field.
func (r *Reader) SetCardPresent(present bool) {
	r.mu.Lock()
	r.cardPresent = present
	r.mu.Unlock()
	debug.Printf("rc522: card present -> %v", present)
}

// SetReadSucceeds arranges whether the next serial read goes through.
func (r *Reader) SetReadSucceeds(ok bool) {
	r.mu.Lock()
	r.readSucceeds = ok
	r.mu.Unlock()
}

// SetUID sets the simulated card identifier. Input longer than MaxUIDSize
// is clamped: only the first MaxUIDSize bytes are stored and the recorded
// length is capped.
func (r *Reader) SetUID(bytes []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.simUID = UID{}
	n := len(bytes)
	if n > MaxUIDSize {
		n = MaxUIDSize
	}
	copy(r.simUID.Bytes[:], bytes[:n])
	r.simUID.Size = n
}

// SimulatedUID returns the identifier the next successful read will report.
func (r *Reader) SimulatedUID() UID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.simUID
}

// Initialized reports whether PCDInit has been called.
func (r *Reader) Initialized() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.initialized
}

// HaltCalled reports whether PICCHaltA has been called.
func (r *Reader) HaltCalled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.haltCalled
}

// LastWrite returns the register and value of the most recent
// PCDWriteRegister call.
func (r *Reader) LastWrite() (Register, byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastWriteReg, r.lastWriteVal
}

// Pins returns the chip-select and reset pins given at construction.
func (r *Reader) Pins() (csPin, resetPin int) {
	return r.csPin, r.resetPin
}

// Reset clears all flags and identifiers back to the constructed state.
// The wiring pins survive.
func (r *Reader) Reset() {
	r.mu.Lock()
	r.UID = UID{}
	r.simUID = UID{}
	r.lastWriteReg = 0
	r.lastWriteVal = 0
	r.initialized = false
	r.cardPresent = false
	r.readSucceeds = false
	r.haltCalled = false
	r.mu.Unlock()
}
