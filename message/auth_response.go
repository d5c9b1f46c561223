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

// AuthResponse carries a SASL token in reply to an AUTHENTICATE or AUTH_CHALLENGE.
type AuthResponse struct {
	Token []byte
}

func (m *AuthResponse) IsResponse() bool            { return false }
func (m *AuthResponse) GetOpCode() primitive.OpCode { return primitive.OpCodeAuthResponse }
func (m *AuthResponse) String() string              { return "AUTH_RESPONSE" }

type authResponseCodec struct{}

func (c *authResponseCodec) Encode(msg Message, dest []byte) ([]byte, error) {
	authResponse, ok := msg.(*AuthResponse)
	if !ok {
		return dest, fmt.Errorf("expected *message.AuthResponse, got %T", msg)
	}
	return primitive.WriteBytes(authResponse.Token, dest), nil
}

func (c *authResponseCodec) EncodedLength(msg Message) (int, error) {
	authResponse, ok := msg.(*AuthResponse)
	if !ok {
		return -1, fmt.Errorf("expected *message.AuthResponse, got %T", msg)
	}
	return primitive.LengthOfBytes(authResponse.Token), nil
}

func (c *authResponseCodec) Decode(body []byte) (Message, int, error) {
	token, remaining, err := primitive.ReadBytes(body)
	if err != nil {
		return nil, 0, err
	}
	return &AuthResponse{Token: token}, len(body) - len(remaining), nil
}

func (c *authResponseCodec) GetOpCode() primitive.OpCode { return primitive.OpCodeAuthResponse }

func init() { register(&authResponseCodec{}) }
