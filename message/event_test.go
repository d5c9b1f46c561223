package message_test

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cassandra-proto/cqlproto/message"
	"github.com/cassandra-proto/cqlproto/primitive"
)

func encodeDecodeEvent(t *testing.T, e message.Message) message.Message {
	t.Helper()
	codec := message.DefaultCodecs[primitive.OpCodeEvent]
	length, err := codec.EncodedLength(e)
	require.NoError(t, err)
	dest := make([]byte, length)
	rest, err := codec.Encode(e, dest)
	require.NoError(t, err)
	assert.Empty(t, rest)
	decoded, consumed, err := codec.Decode(dest)
	require.NoError(t, err)
	assert.Equal(t, length, consumed)
	return decoded
}

func TestStatusChangeEventRoundTrip(t *testing.T) {
	original := &message.StatusChangeEvent{
		ChangeType: "UP",
		Address:    &primitive.Inet{Addr: net.IPv4(10, 0, 0, 5), Port: 9042},
	}
	decoded := encodeDecodeEvent(t, original).(*message.StatusChangeEvent)
	assert.Equal(t, original.ChangeType, decoded.ChangeType)
	assert.True(t, decoded.Address.Addr.Equal(original.Address.Addr))
	assert.Equal(t, original.Address.Port, decoded.Address.Port)
}

func TestTopologyChangeEventRoundTrip(t *testing.T) {
	original := &message.TopologyChangeEvent{
		ChangeType: "NEW_NODE",
		Address:    &primitive.Inet{Addr: net.ParseIP("2001:db8::5"), Port: 9042},
	}
	decoded := encodeDecodeEvent(t, original).(*message.TopologyChangeEvent)
	assert.Equal(t, original.ChangeType, decoded.ChangeType)
	assert.True(t, decoded.Address.Addr.Equal(original.Address.Addr))
	assert.Equal(t, original.Address.Port, decoded.Address.Port)
}

func TestSchemaChangeEventRoundTrip(t *testing.T) {
	cases := []*message.SchemaChangeEvent{
		{ChangeType: "CREATED", Target: "KEYSPACE", Keyspace: "ks"},
		{ChangeType: "UPDATED", Target: "TABLE", Keyspace: "ks", Object: "t"},
		{ChangeType: "DROPPED", Target: "FUNCTION", Keyspace: "ks", Object: "f", Arguments: primitive.StringList{"int", "text"}},
	}
	for _, original := range cases {
		decoded := encodeDecodeEvent(t, original).(*message.SchemaChangeEvent)
		assert.Equal(t, original, decoded)
	}
}

func TestRegisterRoundTrip(t *testing.T) {
	original := &message.Register{EventTypes: []message.EventType{message.EventTypeStatusChange, message.EventTypeSchemaChange}}
	codec := message.DefaultCodecs[primitive.OpCodeRegister]
	length, err := codec.EncodedLength(original)
	require.NoError(t, err)
	dest := make([]byte, length)
	rest, err := codec.Encode(original, dest)
	require.NoError(t, err)
	assert.Empty(t, rest)
	decoded, consumed, err := codec.Decode(dest)
	require.NoError(t, err)
	assert.Equal(t, length, consumed)
	assert.Equal(t, original.EventTypes, decoded.(*message.Register).EventTypes)
}
