package message_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cassandra-proto/cqlproto/message"
	"github.com/cassandra-proto/cqlproto/primitive"
)

func encodeDecodeQuery(t *testing.T, q *message.Query) *message.Query {
	t.Helper()
	length, err := message.DefaultCodecs[primitive.OpCodeQuery].EncodedLength(q)
	require.NoError(t, err)
	dest := make([]byte, length)
	rest, err := message.DefaultCodecs[primitive.OpCodeQuery].Encode(q, dest)
	require.NoError(t, err)
	assert.Empty(t, rest)
	decoded, consumed, err := message.DefaultCodecs[primitive.OpCodeQuery].Decode(dest)
	require.NoError(t, err)
	assert.Equal(t, length, consumed)
	return decoded.(*message.Query)
}

func TestQueryFlagsRoundTrip(t *testing.T) {
	pageSize := int32(100)
	serial := primitive.ConsistencyLevelSerial
	ts := int64(1234567890)
	cases := []*message.Query{
		{Query: "SELECT * FROM t", Options: &message.QueryOptions{Consistency: primitive.ConsistencyLevelOne}},
		{Query: "SELECT * FROM t", Options: &message.QueryOptions{
			Consistency:      primitive.ConsistencyLevelQuorum,
			PositionalValues: [][]byte{[]byte("a"), nil},
			SkipMetadata:     true,
			PageSize:         &pageSize,
			PagingState:      []byte("state"),
			SerialConsistency: &serial,
			DefaultTimestamp:  &ts,
		}},
		{Query: "INSERT INTO t (a,b) VALUES (:a,:b)", Options: &message.QueryOptions{
			Consistency: primitive.ConsistencyLevelOne,
			NamedValues: []message.NamedValue{{Name: "a", Value: []byte{1}}, {Name: "b", Value: nil}},
		}},
	}
	for _, original := range cases {
		decoded := encodeDecodeQuery(t, original)
		assert.Equal(t, original.Query, decoded.Query)
		assert.Equal(t, original.Options.Consistency, decoded.Options.Consistency)
		assert.Equal(t, original.Options.SkipMetadata, decoded.Options.SkipMetadata)
		assert.Equal(t, original.Options.PositionalValues, decoded.Options.PositionalValues)
		assert.Equal(t, original.Options.NamedValues, decoded.Options.NamedValues)
		assert.Equal(t, original.Options.PagingState, decoded.Options.PagingState)
		if original.Options.PageSize != nil {
			require.NotNil(t, decoded.Options.PageSize)
			assert.Equal(t, *original.Options.PageSize, *decoded.Options.PageSize)
		}
	}
}

// TestQueryEmptyPositionalValuesPreservesFlag guards against re-encoding dropping the values flag
// for a QUERY whose positional values section is present but empty (count 0).
func TestQueryEmptyPositionalValuesPreservesFlag(t *testing.T) {
	original := &message.Query{Query: "SELECT * FROM t", Options: &message.QueryOptions{
		Consistency:      primitive.ConsistencyLevelOne,
		PositionalValues: [][]byte{},
	}}
	length, err := message.DefaultCodecs[primitive.OpCodeQuery].EncodedLength(original)
	require.NoError(t, err)

	decoded := encodeDecodeQuery(t, original)
	assert.NotNil(t, decoded.Options.PositionalValues)
	assert.Empty(t, decoded.Options.PositionalValues)

	reEncodedLength, err := message.DefaultCodecs[primitive.OpCodeQuery].EncodedLength(decoded)
	require.NoError(t, err)
	assert.Equal(t, length, reEncodedLength)
}
