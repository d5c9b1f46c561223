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

package frame

import (
	"fmt"

	"github.com/cassandra-proto/cqlproto/primitive"
)

// HeaderEncodedLength is the fixed wire size of a frame header: it never varies.
const HeaderEncodedLength = 9

// Header is the 9-byte fixed header that precedes every frame body.
type Header struct {
	IsResponse bool
	Version    primitive.ProtocolVersion
	Flags      primitive.HeaderFlag
	// StreamId correlates a request with its response. Requests assign it; responses echo it.
	// The broadcast event stream id is -1.
	StreamId int16
	OpCode   primitive.OpCode
	// BodyLength is the number of body bytes that follow. EncodeHeader writes it as given; Encode
	// recomputes it from the actual body first. On decode it is always set to the declared length.
	BodyLength int32
}

// EncodeHeader writes exactly HeaderEncodedLength bytes to dest[0:9].
func EncodeHeader(h *Header, dest []byte) {
	versionByte := uint8(h.Version)
	if h.IsResponse {
		versionByte |= 0x80
	}
	dest[0] = versionByte
	dest[1] = uint8(h.Flags)
	primitive.WriteShort(uint16(h.StreamId), dest[2:4])
	dest[4] = uint8(h.OpCode)
	primitive.WriteInt(h.BodyLength, dest[5:9])
}

// DecodeHeader decodes a Header from the first HeaderEncodedLength bytes of source.
func DecodeHeader(source []byte) (*Header, error) {
	if len(source) < HeaderEncodedLength {
		return nil, &InvalidDataLengthError{Got: len(source)}
	}
	versionByte := source[0]
	version := primitive.ProtocolVersion(versionByte & 0x7F)
	if !version.IsSupported() {
		return nil, &UnsupportedVersionError{Got: versionByte}
	}
	isResponse := versionByte&0x80 != 0
	flags := primitive.HeaderFlag(source[1])
	streamIdRaw, _, _ := primitive.ReadShort(source[2:4])
	opCode := primitive.OpCode(source[4])
	if !opCode.IsValid() {
		return nil, &InvalidOpCodeError{Got: source[4]}
	}
	length, _, _ := primitive.ReadInt(source[5:9])
	return &Header{
		IsResponse: isResponse,
		Version:    version,
		Flags:      flags,
		StreamId:   int16(streamIdRaw),
		OpCode:     opCode,
		BodyLength: length,
	}, nil
}

func (h *Header) IsCompressed() bool {
	return h.Flags.Has(primitive.HeaderFlagCompressed)
}

func (h *Header) IsTraced() bool {
	return h.Flags.Has(primitive.HeaderFlagTracing)
}

func (h *Header) String() string {
	return fmt.Sprintf("{response: %v, version: %v, flags: %08b, stream id: %v, opcode: %v, length: %v}",
		h.IsResponse, h.Version, h.Flags, h.StreamId, h.OpCode, h.BodyLength)
}
