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

// Register asks the server to push EVENT messages for the given types on the broadcast stream id.
// At least one event type is required.
type Register struct {
	EventTypes []EventType
}

func (m *Register) IsResponse() bool            { return false }
func (m *Register) GetOpCode() primitive.OpCode { return primitive.OpCodeRegister }
func (m *Register) String() string              { return fmt.Sprintf("REGISTER %v", m.EventTypes) }

func (m *Register) asStringList() primitive.StringList {
	values := make(primitive.StringList, len(m.EventTypes))
	for i, t := range m.EventTypes {
		values[i] = string(t)
	}
	return values
}

type registerCodec struct{}

func (c *registerCodec) Encode(msg Message, dest []byte) ([]byte, error) {
	register, ok := msg.(*Register)
	if !ok {
		return dest, fmt.Errorf("expected *message.Register, got %T", msg)
	}
	if len(register.EventTypes) == 0 {
		return dest, fmt.Errorf("REGISTER requires at least one event type")
	}
	return primitive.WriteStringList(register.asStringList(), dest), nil
}

func (c *registerCodec) EncodedLength(msg Message) (int, error) {
	register, ok := msg.(*Register)
	if !ok {
		return -1, fmt.Errorf("expected *message.Register, got %T", msg)
	}
	return primitive.LengthOfStringList(register.asStringList()), nil
}

func (c *registerCodec) Decode(body []byte) (Message, int, error) {
	values, remaining, err := primitive.ReadStringList(body)
	if err != nil {
		return nil, 0, err
	}
	eventTypes := make([]EventType, len(values))
	for i, v := range values {
		eventTypes[i] = EventType(v)
	}
	return &Register{EventTypes: eventTypes}, len(body) - len(remaining), nil
}

func (c *registerCodec) GetOpCode() primitive.OpCode { return primitive.OpCodeRegister }

func init() { register(&registerCodec{}) }
