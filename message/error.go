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

package message

import (
	"fmt"

	"github.com/cassandra-proto/cqlproto/primitive"
)

// Error is the response a server sends instead of the expected reply when a request fails. A server
// ERROR is a normal, recoverable completion of a call, not a connection-level failure.
type Error struct {
	Code int32
	Text string
}

func (m *Error) IsResponse() bool            { return true }
func (m *Error) GetOpCode() primitive.OpCode { return primitive.OpCodeError }
func (m *Error) String() string              { return fmt.Sprintf("ERROR %#.4x: %s", m.Code, m.Text) }

func (m *Error) Error() string { return m.String() }

type errorCodec struct{}

func (c *errorCodec) Encode(msg Message, dest []byte) ([]byte, error) {
	e, ok := msg.(*Error)
	if !ok {
		return dest, fmt.Errorf("expected *message.Error, got %T", msg)
	}
	dest = primitive.WriteInt(e.Code, dest)
	return primitive.WriteString(e.Text, dest), nil
}

func (c *errorCodec) EncodedLength(msg Message) (int, error) {
	e, ok := msg.(*Error)
	if !ok {
		return -1, fmt.Errorf("expected *message.Error, got %T", msg)
	}
	return primitive.LengthOfInt + primitive.LengthOfString(e.Text), nil
}

func (c *errorCodec) Decode(body []byte) (Message, int, error) {
	code, remaining, err := primitive.ReadInt(body)
	if err != nil {
		return nil, 0, err
	}
	text, remaining, err := primitive.ReadString(remaining)
	if err != nil {
		return nil, 0, err
	}
	return &Error{Code: code, Text: text}, len(body) - len(remaining), nil
}

func (c *errorCodec) GetOpCode() primitive.OpCode { return primitive.OpCodeError }

func init() { register(&errorCodec{}) }
