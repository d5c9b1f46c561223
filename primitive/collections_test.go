package primitive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cassandra-proto/cqlproto/primitive"
)

func TestStringRoundTrip(t *testing.T) {
	for _, value := range []string{"", "hello", "3.2.1"} {
		buf := make([]byte, primitive.LengthOfString(value))
		primitive.WriteString(value, buf)
		decoded, remaining, err := primitive.ReadString(buf)
		require.NoError(t, err)
		assert.Empty(t, remaining)
		assert.Equal(t, value, decoded)
	}
}

func TestBytesNullVsEmpty(t *testing.T) {
	buf := make([]byte, primitive.LengthOfBytes(nil))
	primitive.WriteBytes(nil, buf)
	decoded, _, err := primitive.ReadBytes(buf)
	require.NoError(t, err)
	assert.Nil(t, decoded)

	empty := []byte{}
	buf = make([]byte, primitive.LengthOfBytes(empty))
	primitive.WriteBytes(empty, buf)
	decoded, _, err = primitive.ReadBytes(buf)
	require.NoError(t, err)
	assert.NotNil(t, decoded)
	assert.Len(t, decoded, 0)
}

func TestStringListRoundTrip(t *testing.T) {
	list, err := primitive.NewStringList([]string{"3.2.1", "3.1.2", "4.0.1"})
	require.NoError(t, err)
	buf := make([]byte, primitive.LengthOfStringList(list))
	primitive.WriteStringList(list, buf)
	decoded, remaining, err := primitive.ReadStringList(buf)
	require.NoError(t, err)
	assert.Empty(t, remaining)
	assert.Equal(t, list, decoded)
}

func TestStringListMaximumLengthExceeded(t *testing.T) {
	values := make([]string, primitive.MaxElementCount+1)
	_, err := primitive.NewStringList(values)
	require.Error(t, err)
	var maxErr *primitive.MaximumLengthExceededError
	require.ErrorAs(t, err, &maxErr)
	assert.Equal(t, primitive.MaxElementCount+1, maxErr.Got)
}

func TestConsistencyLevelInvalid(t *testing.T) {
	buf := make([]byte, primitive.LengthOfShort)
	primitive.WriteShort(0xFFFF, buf)
	_, _, err := primitive.ReadConsistencyLevel(buf)
	require.Error(t, err)
}
