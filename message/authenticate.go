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

// Authenticate is the response that requests SASL authentication, naming the authenticator class.
type Authenticate struct {
	Authenticator string
}

func (m *Authenticate) IsResponse() bool            { return true }
func (m *Authenticate) GetOpCode() primitive.OpCode { return primitive.OpCodeAuthenticate }
func (m *Authenticate) String() string              { return fmt.Sprintf("AUTHENTICATE %s", m.Authenticator) }

type authenticateCodec struct{}

func (c *authenticateCodec) Encode(msg Message, dest []byte) ([]byte, error) {
	authenticate, ok := msg.(*Authenticate)
	if !ok {
		return dest, fmt.Errorf("expected *message.Authenticate, got %T", msg)
	}
	return primitive.WriteString(authenticate.Authenticator, dest), nil
}

func (c *authenticateCodec) EncodedLength(msg Message) (int, error) {
	authenticate, ok := msg.(*Authenticate)
	if !ok {
		return -1, fmt.Errorf("expected *message.Authenticate, got %T", msg)
	}
	return primitive.LengthOfString(authenticate.Authenticator), nil
}

func (c *authenticateCodec) Decode(body []byte) (Message, int, error) {
	name, remaining, err := primitive.ReadString(body)
	if err != nil {
		return nil, 0, err
	}
	return &Authenticate{Authenticator: name}, len(body) - len(remaining), nil
}

func (c *authenticateCodec) GetOpCode() primitive.OpCode { return primitive.OpCodeAuthenticate }

func init() { register(&authenticateCodec{}) }
