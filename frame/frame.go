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

// Package frame implements the length-prefixed binary framing that wraps every protocol message: a
// fixed 9-byte Header followed by a body whose bytes are interpreted by package message.
package frame

import (
	"fmt"

	"github.com/cassandra-proto/cqlproto/message"
	"github.com/cassandra-proto/cqlproto/primitive"
)

// Frame is a fully decoded frame: header plus typed message body. TracingId is set only when the
// header's tracing flag is set; this core carries it through without interpreting the trace session
// it names.
type Frame struct {
	Header    *Header
	Message   message.Message
	TracingId *primitive.UUID
}

// NewRequestFrame builds a request Frame for msg, with the given stream id, at protocol version 3.
func NewRequestFrame(streamId int16, msg message.Message) *Frame {
	return &Frame{
		Header: &Header{
			IsResponse: false,
			Version:    primitive.ProtocolVersion3,
			StreamId:   streamId,
			OpCode:     msg.GetOpCode(),
		},
		Message: msg,
	}
}

func (f *Frame) String() string {
	return fmt.Sprintf("{header: %v, message: %v}", f.Header, f.Message)
}
