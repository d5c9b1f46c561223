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

import (
	"context"
	"fmt"

	"github.com/cassandra-proto/cqlproto/frame"
	"github.com/cassandra-proto/cqlproto/message"
)

// RowChunk is one lazily-delivered piece of a streamable RESULT's row payload. Since this core does
// not decode column specs or row contents (see package message's doc comment on RowsResult), a
// ROWS result streams as exactly one chunk holding the entire undecoded payload, then closes.
type RowChunk struct {
	Data []byte
	Err  error
}

// Response is either a complete message delivered in one unit (WithoutBody) or a streamable RESULT
// whose row payload arrives as a lazy sequence of chunks (WithBody).
type Response struct {
	// Message is set for WithoutBody responses; nil for WithBody ones.
	Message message.Message
	// Header and Body are set for WithBody responses (a streamable ROWS result); Header is nil
	// otherwise.
	Header message.ResultHeader
	Body   <-chan RowChunk
}

func withoutBody(msg message.Message) Response {
	return Response{Message: msg}
}

func withBody(header message.ResultHeader, payload []byte) Response {
	body := make(chan RowChunk, 1)
	body <- RowChunk{Data: payload}
	close(body)
	return Response{Header: header, Body: body}
}

// toResponse classifies a raw reply frame: a ROWS result streams its body, anything else (including
// the other RESULT variants) is delivered whole.
func toResponse(f *frame.Frame) Response {
	if result, ok := f.Message.(*message.Result); ok {
		if rows, ok := result.Header.(*message.RowsResult); ok {
			return withBody(rows, rows.RowPayload)
		}
	}
	return withoutBody(f.Message)
}

// CallResponse sends req and returns its classified Response. A server ERROR reply is returned as a
// *CqlError instead of a Response.
func (c *Connection) CallResponse(ctx context.Context, req *frame.Frame) (Response, error) {
	f, err := c.Call(ctx, req)
	if err != nil {
		return Response{}, err
	}
	if errMsg, ok := f.Message.(*message.Error); ok {
		return Response{}, &CqlError{Code: errMsg.Code, Text: errMsg.Text}
	}
	return toResponse(f), nil
}

// Simple collapses every response into a single, fully collected Response: a WithBody result's chunks
// are read to completion and concatenated before returning, trading the streaming benefit for a
// synchronous-looking API.
type Simple struct {
	conn *Connection
}

// NewSimple wraps conn with the collapsing facade.
func NewSimple(conn *Connection) *Simple {
	return &Simple{conn: conn}
}

// Call sends req and waits for its response in full, including the entire row payload of a
// streamable RESULT.
func (s *Simple) Call(ctx context.Context, req *frame.Frame) (message.Message, error) {
	resp, err := s.conn.CallResponse(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.Body == nil {
		return resp.Message, nil
	}
	var collected []byte
	for chunk := range resp.Body {
		if chunk.Err != nil {
			return nil, fmt.Errorf("streaming result body failed: %w", chunk.Err)
		}
		collected = append(collected, chunk.Data...)
	}
	rows := resp.Header.(*message.RowsResult)
	rows.RowPayload = collected
	return &message.Result{Header: rows}, nil
}
