package primitive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cassandra-proto/cqlproto/primitive"
)

func TestShortRoundTrip(t *testing.T) {
	for _, value := range []uint16{0, 1, 270, 65535} {
		buf := make([]byte, primitive.LengthOfShort)
		rest := primitive.WriteShort(value, buf)
		assert.Empty(t, rest)
		decoded, remaining, err := primitive.ReadShort(buf)
		require.NoError(t, err)
		assert.Empty(t, remaining)
		assert.Equal(t, value, decoded)
	}
}

func TestIntRoundTrip(t *testing.T) {
	for _, value := range []int32{0, 1, -1, 2147483647, -2147483648} {
		buf := make([]byte, primitive.LengthOfInt)
		primitive.WriteInt(value, buf)
		decoded, remaining, err := primitive.ReadInt(buf)
		require.NoError(t, err)
		assert.Empty(t, remaining)
		assert.Equal(t, value, decoded)
	}
}

func TestLongRoundTrip(t *testing.T) {
	for _, value := range []int64{0, 1, -1, 9223372036854775807} {
		buf := make([]byte, primitive.LengthOfLong)
		primitive.WriteLong(value, buf)
		decoded, remaining, err := primitive.ReadLong(buf)
		require.NoError(t, err)
		assert.Empty(t, remaining)
		assert.Equal(t, value, decoded)
	}
}

func TestReadShortIncomplete(t *testing.T) {
	_, _, err := primitive.ReadShort([]byte{0x01})
	require.Error(t, err)
	incompleteErr, ok := err.(*primitive.IncompleteError)
	require.True(t, ok)
	assert.Equal(t, 1, incompleteErr.ExpectedMin)
}
