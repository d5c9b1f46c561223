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

// AuthChallenge is the response a SASL authenticator may send instead of AUTH_SUCCESS, asking the
// client for another round of AUTH_RESPONSE. PasswordAuthenticator never sends it, but the driver
// recognises it so a future multi-round mechanism can be added without changing the handshake shape.
type AuthChallenge struct {
	Token []byte
}

func (m *AuthChallenge) IsResponse() bool            { return true }
func (m *AuthChallenge) GetOpCode() primitive.OpCode { return primitive.OpCodeAuthChallenge }
func (m *AuthChallenge) String() string              { return "AUTH_CHALLENGE" }

type authChallengeCodec struct{}

func (c *authChallengeCodec) Encode(msg Message, dest []byte) ([]byte, error) {
	challenge, ok := msg.(*AuthChallenge)
	if !ok {
		return dest, fmt.Errorf("expected *message.AuthChallenge, got %T", msg)
	}
	return primitive.WriteBytes(challenge.Token, dest), nil
}

func (c *authChallengeCodec) EncodedLength(msg Message) (int, error) {
	challenge, ok := msg.(*AuthChallenge)
	if !ok {
		return -1, fmt.Errorf("expected *message.AuthChallenge, got %T", msg)
	}
	return primitive.LengthOfBytes(challenge.Token), nil
}

func (c *authChallengeCodec) Decode(body []byte) (Message, int, error) {
	token, remaining, err := primitive.ReadBytes(body)
	if err != nil {
		return nil, 0, err
	}
	return &AuthChallenge{Token: token}, len(body) - len(remaining), nil
}

func (c *authChallengeCodec) GetOpCode() primitive.OpCode { return primitive.OpCodeAuthChallenge }

func init() { register(&authChallengeCodec{}) }
