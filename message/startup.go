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

// Startup is the request that begins a session once the client has picked a CQL_VERSION from SUPPORTED.
type Startup struct {
	CqlVersion  string
	Compression string // empty means no compression was negotiated
}

func (m *Startup) IsResponse() bool            { return false }
func (m *Startup) GetOpCode() primitive.OpCode { return primitive.OpCodeStartup }
func (m *Startup) String() string {
	return fmt.Sprintf("STARTUP {CQL_VERSION=%s, COMPRESSION=%s}", m.CqlVersion, m.Compression)
}

const (
	startupKeyCqlVersion = "CQL_VERSION"
	startupKeyCompression = "COMPRESSION"
)

type startupCodec struct{}

func (c *startupCodec) toStringMap(m *Startup) *primitive.StringMap {
	keys := []string{startupKeyCqlVersion}
	values := map[string]string{startupKeyCqlVersion: m.CqlVersion}
	if m.Compression != "" {
		keys = append(keys, startupKeyCompression)
		values[startupKeyCompression] = m.Compression
	}
	return primitive.NewStringMapUnchecked(keys, values)
}

func (c *startupCodec) Encode(msg Message, dest []byte) ([]byte, error) {
	startup, ok := msg.(*Startup)
	if !ok {
		return dest, fmt.Errorf("expected *message.Startup, got %T", msg)
	}
	return primitive.WriteStringMap(c.toStringMap(startup), dest), nil
}

func (c *startupCodec) EncodedLength(msg Message) (int, error) {
	startup, ok := msg.(*Startup)
	if !ok {
		return -1, fmt.Errorf("expected *message.Startup, got %T", msg)
	}
	return primitive.LengthOfStringMap(c.toStringMap(startup)), nil
}

func (c *startupCodec) Decode(body []byte) (Message, int, error) {
	options, remaining, err := primitive.ReadStringMap(body)
	if err != nil {
		return nil, 0, err
	}
	cqlVersion, _ := options.Get(startupKeyCqlVersion)
	compression, _ := options.Get(startupKeyCompression)
	return &Startup{CqlVersion: cqlVersion, Compression: compression}, len(body) - len(remaining), nil
}

func (c *startupCodec) GetOpCode() primitive.OpCode { return primitive.OpCodeStartup }

func init() { register(&startupCodec{}) }
