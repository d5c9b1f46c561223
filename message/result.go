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

// ResultKind is the 4-byte discriminant that selects a RESULT message's header variant.
type ResultKind int32

const (
	ResultKindVoid         = ResultKind(0x0001)
	ResultKindRows         = ResultKind(0x0002)
	ResultKindSetKeyspace  = ResultKind(0x0003)
	ResultKindPrepared     = ResultKind(0x0004)
	ResultKindSchemaChange = ResultKind(0x0005)
)

// ResultHeader is implemented by every RESULT header variant.
type ResultHeader interface {
	Kind() ResultKind
}

type VoidResult struct{}

func (*VoidResult) Kind() ResultKind { return ResultKindVoid }

type SetKeyspaceResult struct {
	Keyspace string
}

func (*SetKeyspaceResult) Kind() ResultKind { return ResultKindSetKeyspace }

type SchemaChangeResult struct {
	ChangeType string
	Target     string
	Options    string
}

func (*SchemaChangeResult) Kind() ResultKind { return ResultKindSchemaChange }

type RowsResult struct {
	Metadata *RowsMetadata
	// RowPayload holds whatever body bytes remain after the metadata header; this core does not
	// decode column specs or row contents (see the streaming facade in package client).
	RowPayload []byte
}

func (*RowsResult) Kind() ResultKind { return ResultKindRows }

// Result is the response carrying the outcome of a QUERY.
type Result struct {
	Header ResultHeader
}

func (m *Result) IsResponse() bool            { return true }
func (m *Result) GetOpCode() primitive.OpCode { return primitive.OpCodeResult }
func (m *Result) String() string              { return fmt.Sprintf("RESULT %v", m.Header.Kind()) }

type resultCodec struct{}

// decodeResultHeader reads the 4-byte discriminant and then the fixed shape of the variant it
// selects. If body holds the discriminant but not enough bytes for that variant's fixed fields, it
// returns an *primitive.IncompleteError ("not yet" in spec terms) rather than a structural error.
func decodeResultHeader(body []byte) (ResultHeader, []byte, error) {
	kindRaw, remaining, err := primitive.ReadInt(body)
	if err != nil {
		return nil, body, err
	}
	kind := ResultKind(kindRaw)
	switch kind {
	case ResultKindVoid:
		return &VoidResult{}, remaining, nil
	case ResultKindSetKeyspace:
		keyspace, rest, err := primitive.ReadString(remaining)
		if err != nil {
			return nil, body, err
		}
		return &SetKeyspaceResult{Keyspace: keyspace}, rest, nil
	case ResultKindSchemaChange:
		changeType, rest, err := primitive.ReadString(remaining)
		if err != nil {
			return nil, body, err
		}
		target, rest, err := primitive.ReadString(rest)
		if err != nil {
			return nil, body, err
		}
		options, rest, err := primitive.ReadString(rest)
		if err != nil {
			return nil, body, err
		}
		return &SchemaChangeResult{ChangeType: changeType, Target: target, Options: options}, rest, nil
	case ResultKindRows:
		metadata, rest, err := decodeRowsMetadata(remaining)
		if err != nil {
			return nil, body, err
		}
		return &RowsResult{Metadata: metadata, RowPayload: rest}, nil, nil
	default:
		return nil, body, &primitive.InvalidError{What: "[result kind]", Reason: fmt.Sprintf("unknown discriminant %#.8x", kindRaw)}
	}
}

func encodeResultHeader(h ResultHeader, dest []byte) ([]byte, error) {
	dest = primitive.WriteInt(int32(h.Kind()), dest)
	switch v := h.(type) {
	case *VoidResult:
		return dest, nil
	case *SetKeyspaceResult:
		return primitive.WriteString(v.Keyspace, dest), nil
	case *SchemaChangeResult:
		dest = primitive.WriteString(v.ChangeType, dest)
		dest = primitive.WriteString(v.Target, dest)
		return primitive.WriteString(v.Options, dest), nil
	case *RowsResult:
		dest = encodeRowsMetadata(v.Metadata, dest)
		n := copy(dest, v.RowPayload)
		return dest[n:], nil
	default:
		return dest, fmt.Errorf("unknown ResultHeader variant %T", h)
	}
}

func lengthOfResultHeader(h ResultHeader) (int, error) {
	length := primitive.LengthOfInt
	switch v := h.(type) {
	case *VoidResult:
		return length, nil
	case *SetKeyspaceResult:
		return length + primitive.LengthOfString(v.Keyspace), nil
	case *SchemaChangeResult:
		return length + primitive.LengthOfString(v.ChangeType) + primitive.LengthOfString(v.Target) + primitive.LengthOfString(v.Options), nil
	case *RowsResult:
		return length + lengthOfRowsMetadata(v.Metadata) + len(v.RowPayload), nil
	default:
		return -1, fmt.Errorf("unknown ResultHeader variant %T", h)
	}
}

func (c *resultCodec) Encode(msg Message, dest []byte) ([]byte, error) {
	result, ok := msg.(*Result)
	if !ok {
		return dest, fmt.Errorf("expected *message.Result, got %T", msg)
	}
	return encodeResultHeader(result.Header, dest)
}

func (c *resultCodec) EncodedLength(msg Message) (int, error) {
	result, ok := msg.(*Result)
	if !ok {
		return -1, fmt.Errorf("expected *message.Result, got %T", msg)
	}
	return lengthOfResultHeader(result.Header)
}

func (c *resultCodec) Decode(body []byte) (Message, int, error) {
	header, remaining, err := decodeResultHeader(body)
	if err != nil {
		return nil, 0, err
	}
	return &Result{Header: header}, len(body) - len(remaining), nil
}

func (c *resultCodec) GetOpCode() primitive.OpCode { return primitive.OpCodeResult }

func init() { register(&resultCodec{}) }
