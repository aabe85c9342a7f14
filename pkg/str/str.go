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

// Package str provides the minimal mutable text value used across the mock
// peripherals. It mirrors the semantics of firmware string types: value
// semantics, no panics, out-of-range access degrades to a no-op or a zero
// sentinel instead of aborting.
package str

import "strings"

// String is a minimal text value. The zero value is the empty string, so an
// absent or "null" source always normalizes to empty.
type String struct {
	s string
}

// New returns an empty String.
func New() String {
	return String{}
}

// Of constructs a String from a raw Go string.
func Of(raw string) String {
	return String{s: raw}
}

// Set assigns a raw string value, replacing the current content.
func (s *String) Set(raw string) {
	s.s = raw
}

// Str returns the underlying character sequence. It is never "null": an
// unset String yields "".
func (s String) Str() string {
	return s.s
}

// String implements fmt.Stringer.
func (s String) String() string {
	return s.s
}

// Len returns the number of bytes in the value.
func (s String) Len() int {
	return len(s.s)
}

// Empty reports whether the value has zero length.
func (s String) Empty() bool {
	return len(s.s) == 0
}

// Concat returns a new String holding the concatenation of s and other.
// Neither operand is modified.
func (s String) Concat(other String) String {
	return String{s: s.s + other.s}
}

// ConcatStr returns a new String holding the concatenation of s and a raw
// string operand.
func (s String) ConcatStr(raw string) String {
	return String{s: s.s + raw}
}

// Equals reports whether both values hold identical content.
func (s String) Equals(other String) bool {
	return s.s == other.s
}

// EqualsStr reports whether the value equals a raw string.
func (s String) EqualsStr(raw string) bool {
	return s.s == raw
}

// EndsWith reports whether the value ends with suffix. A suffix longer than
// the value is never a match.
func (s String) EndsWith(suffix String) bool {
	return strings.HasSuffix(s.s, suffix.s)
}

// EndsWithStr reports whether the value ends with a raw string suffix.
func (s String) EndsWithStr(suffix string) bool {
	return strings.HasSuffix(s.s, suffix)
}

// Remove deletes exactly one character at index. Indexes outside
// [0, Len) leave the value unchanged.
func (s *String) Remove(index int) {
	if index < 0 || index >= len(s.s) {
		return
	}
	s.s = s.s[:index] + s.s[index+1:]
}

// CharAt returns the byte at index, or 0 when index is out of range.
func (s String) CharAt(index int) byte {
	if index < 0 || index >= len(s.s) {
		return 0
	}
	return s.s[index]
}

// SetCharAt overwrites the byte at index. Indexes outside [0, Len) leave the
// value unchanged; firmware string types leave this to the caller and so
// does this one, minus the crash.
func (s *String) SetCharAt(index int, c byte) {
	if index < 0 || index >= len(s.s) {
		return
	}
	b := []byte(s.s)
	b[index] = c
	s.s = string(b)
}
