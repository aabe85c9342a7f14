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

// Package nvs mocks the on-device persistent key-value settings store.
//
// The mock keeps one flat mapping from key to text-encoded value for the
// whole process, regardless of which namespace was opened. Namespacing is
// recorded for inspection but does not partition data; firmware under test
// only ever opens one namespace at a time, so a flat map keeps the state
// model small without losing fidelity where it matters: defaults on miss,
// last-write-wins, idempotent delete.
package nvs

import (
	"strconv"

	"github.com/hostboard/go-hwmock/internal/debug"
	"github.com/hostboard/go-hwmock/internal/syncutil"
	"github.com/hostboard/go-hwmock/pkg/str"
)

// Preferences mocks the persistent settings store API. All writes succeed,
// all reads fall back to the caller-supplied default when the key is absent
// or the stored text does not decode to the requested type.
//
// Thread Safety: guarded internally, but the intended usage is a single
// test goroutine driving one test at a time.
type Preferences struct {
	entries   map[string]string
	namespace string
	mu        syncutil.RWMutex
	readOnly  bool
	open      bool
}

// New creates an empty Preferences mock.
func New() *Preferences {
	return &Preferences{
		entries: make(map[string]string),
	}
}

// Begin opens the store under the given namespace. It always succeeds.
// The read-only flag is recorded but never enforced: writes still land,
// since test code controls every write anyway.
func (p *Preferences) Begin(namespace string, readOnly bool) bool {
	p.mu.Lock()
	p.namespace = namespace
	p.readOnly = readOnly
	p.open = true
	p.mu.Unlock()
	debug.Printf("nvs: begin namespace=%q readOnly=%v", namespace, readOnly)
	return true
}

// End closes the store. Stored entries survive; only the open-namespace
// record is cleared, matching flash contents surviving a handle close.
func (p *Preferences) End() {
	p.mu.Lock()
	p.open = false
	p.mu.Unlock()
}

// PutString stores a text value. Returns the number of bytes written.
func (p *Preferences) PutString(key string, value str.String) int {
	p.put(key, value.Str())
	return value.Len()
}

// PutInt stores a 32-bit integer value. Returns the number of bytes written.
func (p *Preferences) PutInt(key string, value int32) int {
	p.put(key, strconv.FormatInt(int64(value), 10))
	return 4
}

// PutFloat stores a 32-bit float value. Returns the number of bytes written.
func (p *Preferences) PutFloat(key string, value float32) int {
	p.put(key, strconv.FormatFloat(float64(value), 'g', -1, 32))
	return 4
}

// PutBool stores a boolean value. Returns the number of bytes written.
func (p *Preferences) PutBool(key string, value bool) int {
	p.put(key, strconv.FormatBool(value))
	return 1
}

// GetString returns the stored text for key, or def when absent.
func (p *Preferences) GetString(key string, def str.String) str.String {
	raw, ok := p.get(key)
	if !ok {
		return def
	}
	return str.Of(raw)
}

// GetInt returns the stored 32-bit integer for key, or def when absent or
// not decodable as an integer.
func (p *Preferences) GetInt(key string, def int32) int32 {
	raw, ok := p.get(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return def
	}
	return int32(v)
}

// GetFloat returns the stored 32-bit float for key, or def when absent or
// not decodable as a float.
func (p *Preferences) GetFloat(key string, def float32) float32 {
	raw, ok := p.get(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(raw, 32)
	if err != nil {
		return def
	}
	return float32(v)
}

// GetBool returns the stored boolean for key, or def when absent or not
// decodable as a boolean.
func (p *Preferences) GetBool(key string, def bool) bool {
	raw, ok := p.get(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

// Remove deletes key from the store. Removing an absent key is still a
// success, matching idempotent-delete semantics.
func (p *Preferences) Remove(key string) bool {
	p.mu.Lock()
	delete(p.entries, key)
	p.mu.Unlock()
	return true
}

// Clear empties the whole mapping.
func (p *Preferences) Clear() bool {
	p.mu.Lock()
	p.entries = make(map[string]string)
	p.mu.Unlock()
	return true
}

func (p *Preferences) put(key, encoded string) {
	p.mu.Lock()
	p.entries[key] = encoded
	p.mu.Unlock()
}

func (p *Preferences) get(key string) (string, bool) {
	p.mu.RLock()
	raw, ok := p.entries[key]
	p.mu.RUnlock()
	return raw, ok
}

// Test control and inspection surface.

// Snapshot returns a copy of the entire current mapping, text-encoded as
// stored. Mutating the returned map does not affect the store.
func (p *Preferences) Snapshot() map[string]string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(map[string]string, len(p.entries))
	for k, v := range p.entries {
		out[k] = v
	}
	return out
}

// Namespace returns the namespace recorded by the last Begin.
func (p *Preferences) Namespace() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.namespace
}

// ReadOnly returns the read-only flag recorded by the last Begin.
func (p *Preferences) ReadOnly() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.readOnly
}

// IsOpen reports whether Begin has been called without a matching End.
func (p *Preferences) IsOpen() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.open
}

// Reset restores the mock to its initial state: empty mapping, no
// namespace, flags cleared. Call between test cases to guarantee isolation.
func (p *Preferences) Reset() {
	p.mu.Lock()
	p.entries = make(map[string]string)
	p.namespace = ""
	p.readOnly = false
	p.open = false
	p.mu.Unlock()
}
