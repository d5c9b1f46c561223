package frame_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cassandra-proto/cqlproto/frame"
	"github.com/cassandra-proto/cqlproto/message"
	"github.com/cassandra-proto/cqlproto/primitive"
)

func TestHeaderRoundTrip(t *testing.T) {
	cases := []*frame.Header{
		{IsResponse: false, Version: primitive.ProtocolVersion3, Flags: 0, StreamId: 0, OpCode: primitive.OpCodeOptions, BodyLength: 0},
		{IsResponse: true, Version: primitive.ProtocolVersion3, Flags: primitive.HeaderFlagCompressed, StreamId: 270, OpCode: primitive.OpCodeSupported, BodyLength: 42},
		{IsResponse: true, Version: primitive.ProtocolVersion3, Flags: primitive.HeaderFlagTracing, StreamId: -1, OpCode: primitive.OpCodeEvent, BodyLength: 0},
		{IsResponse: false, Version: primitive.ProtocolVersion3, Flags: primitive.HeaderFlagCompressed | primitive.HeaderFlagTracing, StreamId: 32767, OpCode: primitive.OpCodeQuery, BodyLength: 1 << 20},
	}
	for _, h := range cases {
		dest := make([]byte, frame.HeaderEncodedLength)
		frame.EncodeHeader(h, dest)
		decoded, err := frame.DecodeHeader(dest)
		require.NoError(t, err)
		assert.Equal(t, h, decoded)
	}
}

func TestDecodeHeaderUnsupportedVersion(t *testing.T) {
	dest := make([]byte, frame.HeaderEncodedLength)
	frame.EncodeHeader(&frame.Header{Version: primitive.ProtocolVersion3, OpCode: primitive.OpCodeOptions}, dest)
	dest[0] = 0x04
	_, err := frame.DecodeHeader(dest)
	require.Error(t, err)
	var unsupported *frame.UnsupportedVersionError
	require.ErrorAs(t, err, &unsupported)
}

func TestDecodeHeaderInvalidOpCode(t *testing.T) {
	dest := make([]byte, frame.HeaderEncodedLength)
	frame.EncodeHeader(&frame.Header{Version: primitive.ProtocolVersion3, OpCode: primitive.OpCodeOptions}, dest)
	dest[4] = 0xFF
	_, err := frame.DecodeHeader(dest)
	require.Error(t, err)
	var invalidOpCode *frame.InvalidOpCodeError
	require.ErrorAs(t, err, &invalidOpCode)
}

func TestDecodeHeaderTooShort(t *testing.T) {
	_, err := frame.DecodeHeader(make([]byte, 8))
	require.Error(t, err)
	var invalidLength *frame.InvalidDataLengthError
	require.ErrorAs(t, err, &invalidLength)
}

// TestOptionsFrameSeed exercises the literal OPTIONS fixture: version 3 request, no flags,
// stream id 270, opcode OPTIONS, zero-length body.
func TestOptionsFrameSeed(t *testing.T) {
	expected := []byte{0x03, 0x00, 0x01, 0x0e, 0x05, 0x00, 0x00, 0x00, 0x00}
	f := frame.NewRequestFrame(270, &message.Options{})
	encoded, err := frame.Encode(f)
	require.NoError(t, err)
	assert.Equal(t, expected, encoded)
}
