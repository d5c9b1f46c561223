// Copyright 2020 DataStax
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package client

import "fmt"

// HandshakeError is fatal: it means the handshake did not reach READY. ConnectAndHandshake closes
// the connection when this happens; Handshake itself leaves closing to its caller.
type HandshakeError struct {
	Message string
}

func (e *HandshakeError) Error() string { return "handshake failed: " + e.Message }

// CqlError wraps a server ERROR response, preserving its numeric code and message text.
type CqlError struct {
	Code int32
	Text string
}

func (e *CqlError) Error() string { return fmt.Sprintf("server error %d: %s", e.Code, e.Text) }

// BackpressureError is returned by Call when the stream-id ring has no free id: the connection
// already has the maximum number of requests in flight. It is recoverable — retry later — and is
// never raised as a panic.
type BackpressureError struct {
	MaxInFlight int
}

func (e *BackpressureError) Error() string {
	return fmt.Sprintf("too many in-flight requests: limit is %d", e.MaxInFlight)
}

// ConnectionClosedError is delivered to every pending call when the connection is closed, whether
// by the caller or because of a fatal I/O error.
type ConnectionClosedError struct {
	Cause error
}

func (e *ConnectionClosedError) Error() string {
	if e.Cause == nil {
		return "connection closed"
	}
	return fmt.Sprintf("connection closed: %v", e.Cause)
}

func (e *ConnectionClosedError) Unwrap() error { return e.Cause }
