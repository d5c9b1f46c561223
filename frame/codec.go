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
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/cassandra-proto/cqlproto/message"
	"github.com/cassandra-proto/cqlproto/primitive"
)

// ErrNeedMoreData is returned by Decoder.Next when the accumulated buffer does not yet hold a
// complete header or body. It is not a failure: the caller should append more bytes and retry.
var ErrNeedMoreData = errors.New("need more data")

type decoderState int

const (
	stateNeedHeader decoderState = iota
	stateWithHeader
)

// Decoder is the two-state incremental frame decoder described by the protocol driver: it consumes
// bytes as they arrive from the transport and yields complete Frames, one Next() call at a time.
// After any error other than ErrNeedMoreData, the decoder remains usable for the next frame: bytes
// already drained for the failed frame are gone, but nothing beyond them is touched.
type Decoder struct {
	buf    []byte
	state  decoderState
	header *Header
	dump   DumpSink
	frames int
}

func NewDecoder() *Decoder {
	return &Decoder{state: stateNeedHeader}
}

// SetDumpSink installs an optional sink that receives a copy of every frame successfully decoded.
func (d *Decoder) SetDumpSink(sink DumpSink) {
	d.dump = sink
}

// Append adds newly-read transport bytes to the decoder's internal buffer.
func (d *Decoder) Append(data []byte) {
	d.buf = append(d.buf, data...)
}

// Next advances the state machine as far as the buffered bytes allow and returns the next complete
// Frame, or ErrNeedMoreData if no complete frame is available yet.
func (d *Decoder) Next() (*Frame, error) {
	if d.state == stateNeedHeader {
		if len(d.buf) < HeaderEncodedLength {
			return nil, ErrNeedMoreData
		}
		header, err := DecodeHeader(d.buf[:HeaderEncodedLength])
		if err != nil {
			// structural header error: the 9 bytes are consumed because there is no way to resynchronize
			// without them, but the rest of the buffer is preserved for the caller to decide what to do.
			d.buf = d.buf[HeaderEncodedLength:]
			return nil, err
		}
		d.buf = d.buf[HeaderEncodedLength:]
		d.header = header
		d.state = stateWithHeader
	}
	header := d.header
	if len(d.buf) < int(header.BodyLength) {
		return nil, ErrNeedMoreData
	}
	body := d.buf[:header.BodyLength]
	d.buf = d.buf[header.BodyLength:]
	d.state = stateNeedHeader
	d.header = nil

	var tracingId *primitive.UUID
	if header.IsTraced() {
		id, rest, err := primitive.ReadUuid(body)
		if err != nil {
			return nil, err
		}
		tracingId = &id
		body = rest
	}

	codec, found := message.DefaultCodecs[header.OpCode]
	if !found {
		return nil, fmt.Errorf("no message codec registered for opcode %v", header.OpCode)
	}
	msg, consumed, err := codec.Decode(body)
	if err != nil {
		return nil, err
	}
	if consumed != len(body) {
		// excess bytes are tolerated per protocol note but recorded, never fatal
		mismatch := &BodyLengthMismatchError{Declared: len(body), Consumed: consumed}
		log.Warn().Err(mismatch).Msgf("opcode %v: %v", header.OpCode, mismatch)
	}
	frame := &Frame{Header: header, Message: msg, TracingId: tracingId}
	d.frames++
	if d.dump != nil {
		_ = d.dump.Dump(d.frames, header.OpCode, mustEncode(frame))
	}
	return frame, nil
}

func mustEncode(f *Frame) []byte {
	encoded, err := Encode(f)
	if err != nil {
		return nil
	}
	return encoded
}

// Encode renders a Frame to its exact wire bytes: a 9-byte header followed by the message body. The
// header's BodyLength, Version, OpCode and IsResponse fields are (re)computed from the message, and the
// tracing flag is set when TracingId is present; callers only need to set StreamId and any other
// Flags (NewRequestFrame does this for requests).
func Encode(f *Frame) ([]byte, error) {
	codec, found := message.DefaultCodecs[f.Message.GetOpCode()]
	if !found {
		return nil, fmt.Errorf("no message codec registered for opcode %v", f.Message.GetOpCode())
	}
	bodyLength, err := codec.EncodedLength(f.Message)
	if err != nil {
		return nil, err
	}
	tracingLength := 0
	if f.TracingId != nil {
		tracingLength = primitive.LengthOfUuid
	}
	dest := make([]byte, HeaderEncodedLength+tracingLength+bodyLength)
	header := *f.Header
	header.Version = primitive.ProtocolVersion3
	header.OpCode = f.Message.GetOpCode()
	header.IsResponse = f.Message.IsResponse()
	header.BodyLength = int32(tracingLength + bodyLength)
	if f.TracingId != nil {
		header.Flags |= primitive.HeaderFlagTracing
	}
	EncodeHeader(&header, dest[:HeaderEncodedLength])
	rest := dest[HeaderEncodedLength:]
	if f.TracingId != nil {
		rest = primitive.WriteUuid(*f.TracingId, rest)
	}
	if _, err := codec.Encode(f.Message, rest); err != nil {
		return nil, err
	}
	return dest, nil
}
