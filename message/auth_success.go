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

// AuthSuccess is the response that concludes a successful authentication exchange.
type AuthSuccess struct {
	Token []byte
}

func (m *AuthSuccess) IsResponse() bool            { return true }
func (m *AuthSuccess) GetOpCode() primitive.OpCode { return primitive.OpCodeAuthSuccess }
func (m *AuthSuccess) String() string              { return "AUTH_SUCCESS" }

type authSuccessCodec struct{}

func (c *authSuccessCodec) Encode(msg Message, dest []byte) ([]byte, error) {
	authSuccess, ok := msg.(*AuthSuccess)
	if !ok {
		return dest, fmt.Errorf("expected *message.AuthSuccess, got %T", msg)
	}
	return primitive.WriteBytes(authSuccess.Token, dest), nil
}

func (c *authSuccessCodec) EncodedLength(msg Message) (int, error) {
	authSuccess, ok := msg.(*AuthSuccess)
	if !ok {
		return -1, fmt.Errorf("expected *message.AuthSuccess, got %T", msg)
	}
	return primitive.LengthOfBytes(authSuccess.Token), nil
}

func (c *authSuccessCodec) Decode(body []byte) (Message, int, error) {
	token, remaining, err := primitive.ReadBytes(body)
	if err != nil {
		return nil, 0, err
	}
	return &AuthSuccess{Token: token}, len(body) - len(remaining), nil
}

func (c *authSuccessCodec) GetOpCode() primitive.OpCode { return primitive.OpCodeAuthSuccess }

func init() { register(&authSuccessCodec{}) }
