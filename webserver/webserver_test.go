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

package webserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostboard/go-hwmock/pkg/str"
)

func TestNewStoresPortWithoutListening(t *testing.T) {
	t.Parallel()
	s := New(8080)
	assert.Equal(t, 8080, s.Port())
	assert.False(t, s.BeginCalled())
}

func TestBegin(t *testing.T) {
	t.Parallel()
	s := New(80)
	s.Begin()
	assert.True(t, s.BeginCalled())
}

func TestOnRegistersAndReplacesHandlers(t *testing.T) {
	t.Parallel()
	s := New(80)
	firstCalled := false
	secondCalled := false

	s.On("/scan", func() { firstCalled = true })
	s.On("/status", func() {})
	assert.Len(t, s.Routes(), 2)

	// Same URI replaces, key count unchanged
	s.On("/scan", func() { secondCalled = true })
	assert.Len(t, s.Routes(), 2)

	handler := s.Handler("/scan")
	require.NotNil(t, handler)
	handler()
	assert.False(t, firstCalled)
	assert.True(t, secondCalled)
}

func TestHandlerIsExactMatchOnly(t *testing.T) {
	t.Parallel()
	s := New(80)
	s.On("/scan", func() {})
	assert.NotNil(t, s.Handler("/scan"))
	assert.Nil(t, s.Handler("/scan/"))
	assert.Nil(t, s.Handler("/sca"))
	assert.Nil(t, s.Handler("/nope"))
}

func TestHandleClientIsANoOp(t *testing.T) {
	t.Parallel()
	s := New(80)
	called := false
	s.On("/scan", func() { called = true })

	// No dispatch loop: registered handlers only run when invoked directly
	s.HandleClient()
	assert.False(t, called)
	assert.False(t, s.Responded())
}

func TestSendReplacesResponse(t *testing.T) {
	t.Parallel()
	s := New(80)
	s.Send(200, "text/plain", str.Of("first"))
	s.Send(404, "text/html", str.Of("second"))

	resp := s.Response()
	assert.Equal(t, 404, resp.Code)
	assert.Equal(t, "text/html", resp.ContentType)
	assert.Equal(t, "second", resp.Body.Str())
	assert.True(t, s.Responded())
}

func TestSendContentAppendsWhileSendReplaces(t *testing.T) {
	t.Parallel()
	s := New(80)
	s.Send(200, "text/plain", str.Of("A"))
	s.SendContent(str.Of("B"))
	assert.Equal(t, "AB", s.Response().Body.Str())

	s.Send(404, "text/plain", str.Of("C"))
	assert.Equal(t, "C", s.Response().Body.Str())
	assert.Equal(t, 404, s.Response().Code)
}

func TestSendContentOnEmptyResponse(t *testing.T) {
	t.Parallel()
	s := New(80)
	s.SendContent(str.Of("chunk"))
	resp := s.Response()
	assert.Equal(t, "chunk", resp.Body.Str())
	assert.Equal(t, 0, resp.Code)
	assert.True(t, s.Responded())
}

func TestSendHeaderOverwritesByName(t *testing.T) {
	t.Parallel()
	s := New(80)
	s.SendHeader("Cache-Control", "no-cache")
	s.SendHeader("Connection", "close", true)
	s.SendHeader("Cache-Control", "max-age=60")

	value, ok := s.Header("Cache-Control")
	require.True(t, ok)
	assert.Equal(t, "max-age=60", value)

	value, ok = s.Header("Connection")
	require.True(t, ok)
	assert.Equal(t, "close", value)

	_, ok = s.Header("X-Missing")
	assert.False(t, ok)
}

func TestHandlerDrivenResponseCapture(t *testing.T) {
	t.Parallel()
	s := New(80)
	s.On("/scan", func() {
		s.SendHeader("Cache-Control", "no-cache")
		s.Send(200, "application/json", str.Of(`{"ok":true}`))
	})

	handler := s.Handler("/scan")
	require.NotNil(t, handler)
	handler()

	resp := s.Response()
	assert.Equal(t, 200, resp.Code)
	assert.Equal(t, "application/json", resp.ContentType)
	assert.Equal(t, `{"ok":true}`, resp.Body.Str())
}

func TestReset(t *testing.T) {
	t.Parallel()
	s := New(8080)
	s.Begin()
	s.On("/scan", func() {})
	s.SendHeader("Connection", "close")
	s.Send(200, "text/plain", str.Of("body"))

	s.Reset()
	assert.False(t, s.BeginCalled())
	assert.False(t, s.Responded())
	assert.Empty(t, s.Routes())
	assert.Nil(t, s.Handler("/scan"))
	_, ok := s.Header("Connection")
	assert.False(t, ok)
	assert.Equal(t, Response{}, s.Response())

	// Bound port survives reset
	assert.Equal(t, 8080, s.Port())
}

func TestInstancesDoNotInterfere(t *testing.T) {
	t.Parallel()
	a := New(80)
	b := New(8080)
	a.Send(200, "text/plain", str.Of("a"))
	b.Send(500, "text/plain", str.Of("b"))

	assert.Equal(t, "a", a.Response().Body.Str())
	assert.Equal(t, "b", b.Response().Body.Str())
}
