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

// Package message implements the request and response message variants carried by frame bodies, and
// the per-opcode codecs that encode/decode them.
package message

import "github.com/cassandra-proto/cqlproto/primitive"

// Message is implemented by every request and response variant.
type Message interface {
	IsResponse() bool
	GetOpCode() primitive.OpCode
	String() string
}

// Codec encodes and decodes one Message variant, identified by a fixed opcode.
type Codec interface {
	// Encode writes the wire encoding of msg's body into the front of dest, which must already be at
	// least EncodedLength(msg) bytes long, and returns the unwritten remainder of dest.
	Encode(msg Message, dest []byte) ([]byte, error)
	// EncodedLength returns the exact number of body bytes Encode will append for msg.
	EncodedLength(msg Message) (int, error)
	// Decode consumes the entirety of body and returns the decoded Message. Implementations that
	// leave bytes unconsumed must say so via the returned int (bytes actually consumed).
	Decode(body []byte) (Message, int, error)
	GetOpCode() primitive.OpCode
}

// DefaultCodecs maps every opcode this core understands to its Codec.
var DefaultCodecs = map[primitive.OpCode]Codec{}

func register(c Codec) {
	DefaultCodecs[c.GetOpCode()] = c
}
