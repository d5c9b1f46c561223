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

import "github.com/cassandra-proto/cqlproto/primitive"

// Options is the request that asks the server to advertise its SUPPORTED options. It has an empty body.
type Options struct{}

func (m *Options) IsResponse() bool              { return false }
func (m *Options) GetOpCode() primitive.OpCode   { return primitive.OpCodeOptions }
func (m *Options) String() string                { return "OPTIONS" }

type optionsCodec struct{}

func (c *optionsCodec) Encode(msg Message, dest []byte) ([]byte, error) {
	return dest, nil
}

func (c *optionsCodec) EncodedLength(msg Message) (int, error) {
	return 0, nil
}

func (c *optionsCodec) Decode(body []byte) (Message, int, error) {
	return &Options{}, 0, nil
}

func (c *optionsCodec) GetOpCode() primitive.OpCode { return primitive.OpCodeOptions }

func init() { register(&optionsCodec{}) }
