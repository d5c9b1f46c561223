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

// Query is the request that executes a CQL statement. The query text is treated as an opaque long
// string: this core does not parse CQL.
type Query struct {
	Query   string
	Options *QueryOptions
}

func (m *Query) IsResponse() bool            { return false }
func (m *Query) GetOpCode() primitive.OpCode { return primitive.OpCodeQuery }
func (m *Query) String() string              { return fmt.Sprintf("QUERY %s", m.Query) }

type queryCodec struct{}

func (c *queryCodec) Encode(msg Message, dest []byte) ([]byte, error) {
	query, ok := msg.(*Query)
	if !ok {
		return dest, fmt.Errorf("expected *message.Query, got %T", msg)
	}
	dest = primitive.WriteLongString(query.Query, dest)
	return EncodeQueryOptions(defaultedOptions(query.Options), dest), nil
}

func (c *queryCodec) EncodedLength(msg Message) (int, error) {
	query, ok := msg.(*Query)
	if !ok {
		return -1, fmt.Errorf("expected *message.Query, got %T", msg)
	}
	return primitive.LengthOfLongString(query.Query) + LengthOfQueryOptions(defaultedOptions(query.Options)), nil
}

// defaultedOptions substitutes an empty QueryOptions (consistency ONE, no values) for a nil one, so
// a caller can build a Query with Options left unset and still get a valid encoding.
func defaultedOptions(o *QueryOptions) *QueryOptions {
	if o == nil {
		return &QueryOptions{Consistency: primitive.ConsistencyLevelOne}
	}
	return o
}

func (c *queryCodec) Decode(body []byte) (Message, int, error) {
	query, remaining, err := primitive.ReadLongString(body)
	if err != nil {
		return nil, 0, err
	}
	options, remaining, err := DecodeQueryOptions(remaining)
	if err != nil {
		return nil, 0, err
	}
	return &Query{Query: query, Options: options}, len(body) - len(remaining), nil
}

func (c *queryCodec) GetOpCode() primitive.OpCode { return primitive.OpCodeQuery }

func init() { register(&queryCodec{}) }
