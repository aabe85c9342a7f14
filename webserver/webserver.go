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

// Package webserver mocks the embedded HTTP server.
//
// Nothing listens: the port is recorded, handlers are registered under
// exact URI keys, and responses are captured instead of sent. There is no
// dispatch loop; tests fetch a registered handler with Handler and invoke
// it directly to simulate an incoming request, then assert on the recorded
// response.
package webserver

import (
	"github.com/hostboard/go-hwmock/internal/debug"
	"github.com/hostboard/go-hwmock/internal/syncutil"
	"github.com/hostboard/go-hwmock/pkg/str"
)

// HandlerFunc is a registered route handler. Handlers take no arguments;
// the firmware style is to read request state off the server object.
type HandlerFunc func()

// Response is the most recent response recorded by Send/SendContent.
type Response struct {
	ContentType string
	Body        str.String
	Code        int
}

// Server mocks one embedded HTTP server instance bound to a port it never
// actually listens on.
//
// Thread Safety: guarded internally; intended to be driven from a single
// goroutine per instance.
type Server struct {
	routes      map[string]HandlerFunc
	headers     map[string]string
	response    Response
	mu          syncutil.RWMutex
	port        int
	beginCalled bool
	responded   bool
}

// New creates a Server bound to port. The port is stored, not listened on.
func New(port int) *Server {
	return &Server{
		port:    port,
		routes:  make(map[string]HandlerFunc),
		headers: make(map[string]string),
	}
}

// Begin marks the server started.
func (s *Server) Begin() {
	s.mu.Lock()
	s.beginCalled = true
	s.mu.Unlock()
	debug.Printf("webserver: begin port=%d", s.port)
}

// On registers handler under uri. Keys are exact strings, no pattern
// matching; registering the same uri again replaces the prior handler.
func (s *Server) On(uri string, handler HandlerFunc) {
	s.mu.Lock()
	s.routes[uri] = handler
	s.mu.Unlock()
}

// HandleClient is a no-op. The mock never dispatches on its own; tests
// invoke handlers directly.
func (*Server) HandleClient() {}

// Send records a response, replacing any previously recorded one.
func (s *Server) Send(code int, contentType string, body str.String) {
	s.mu.Lock()
	s.response = Response{
		Code:        code,
		ContentType: contentType,
		Body:        body,
	}
	s.responded = true
	s.mu.Unlock()
}

// SendHeader records an outgoing header, replacing any prior value for the
// same name. The first flag exists for signature compatibility and does
// not affect storage.
func (s *Server) SendHeader(name, value string, _ ...bool) {
	s.mu.Lock()
	s.headers[name] = value
	s.mu.Unlock()
}

// SendContent appends body to the currently recorded response body. Unlike
// Send it never replaces, matching chunked body assembly.
func (s *Server) SendContent(body str.String) {
	s.mu.Lock()
	s.response.Body = s.response.Body.Concat(body)
	s.responded = true
	s.mu.Unlock()
}

// Test control and inspection surface.

// Port returns the port given at construction.
func (s *Server) Port() int {
	return s.port
}

// BeginCalled reports whether Begin has been called since the last Reset.
func (s *Server) BeginCalled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.beginCalled
}

// Handler returns the handler registered under uri, or nil. Tests call the
// returned function to simulate a request hitting that route.
func (s *Server) Handler(uri string) HandlerFunc {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.routes[uri]
}

// Routes returns the registered URIs.
func (s *Server) Routes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	uris := make([]string, 0, len(s.routes))
	for uri := range s.routes {
		uris = append(uris, uri)
	}
	return uris
}

// Responded reports whether any response has been recorded since the last
// Reset.
func (s *Server) Responded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.responded
}

// Response returns the most recent recorded response.
func (s *Server) Response() Response {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.response
}

// Header returns the recorded value for an outgoing header name.
func (s *Server) Header(name string) (value string, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok = s.headers[name]
	return value, ok
}

// Reset clears every recorded flag, route, header and response. The bound
// port survives.
func (s *Server) Reset() {
	s.mu.Lock()
	s.routes = make(map[string]HandlerFunc)
	s.headers = make(map[string]string)
	s.response = Response{}
	s.beginCalled = false
	s.responded = false
	s.mu.Unlock()
}
