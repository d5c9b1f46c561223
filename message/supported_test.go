package message_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cassandra-proto/cqlproto/message"
	"github.com/cassandra-proto/cqlproto/primitive"
)

func TestSupportedLatestCqlVersion(t *testing.T) {
	list, err := primitive.NewStringList([]string{"3.2.1"})
	require.NoError(t, err)
	multimap, err := primitive.NewStringMultimap([]string{"CQL_VERSION"}, map[string]primitive.StringList{"CQL_VERSION": list})
	require.NoError(t, err)
	supported := &message.Supported{Options: multimap}
	latest, err := supported.LatestCqlVersion()
	require.NoError(t, err)
	assert.Equal(t, "3.2.1", latest)

	list, err = primitive.NewStringList([]string{"3.2.1", "3.1.2", "4.0.1"})
	require.NoError(t, err)
	multimap, err = primitive.NewStringMultimap([]string{"CQL_VERSION"}, map[string]primitive.StringList{"CQL_VERSION": list})
	require.NoError(t, err)
	supported = &message.Supported{Options: multimap}
	latest, err = supported.LatestCqlVersion()
	require.NoError(t, err)
	assert.Equal(t, "4.0.1", latest)
}

func TestErrorDecode(t *testing.T) {
	text := "Username and/or password are incorrect"
	full := make([]byte, primitive.LengthOfInt+primitive.LengthOfString(text))
	rest := primitive.WriteInt(256, full)
	primitive.WriteString(text, rest)
	decoded, consumed, err := message.DefaultCodecs[primitive.OpCodeError].Decode(full)
	require.NoError(t, err)
	assert.Equal(t, len(full), consumed)
	errMsg := decoded.(*message.Error)
	assert.Equal(t, int32(256), errMsg.Code)
	assert.Equal(t, text, errMsg.Text)
}

func TestResultSchemaChangeNotYet(t *testing.T) {
	discriminantOnly := make([]byte, primitive.LengthOfInt)
	primitive.WriteInt(int32(message.ResultKindSchemaChange), discriminantOnly)
	_, _, err := message.DefaultCodecs[primitive.OpCodeResult].Decode(discriminantOnly)
	require.Error(t, err)
	var incomplete *primitive.IncompleteError
	require.ErrorAs(t, err, &incomplete)
}

func TestResultSchemaChangeDecode(t *testing.T) {
	changeType, target, options := "change_type", "target", "options"
	length := primitive.LengthOfInt + primitive.LengthOfString(changeType) + primitive.LengthOfString(target) + primitive.LengthOfString(options)
	body := make([]byte, length)
	rest := primitive.WriteInt(int32(message.ResultKindSchemaChange), body)
	rest = primitive.WriteString(changeType, rest)
	rest = primitive.WriteString(target, rest)
	primitive.WriteString(options, rest)
	decoded, consumed, err := message.DefaultCodecs[primitive.OpCodeResult].Decode(body)
	require.NoError(t, err)
	assert.Equal(t, length, consumed)
	result := decoded.(*message.Result).Header.(*message.SchemaChangeResult)
	assert.Equal(t, changeType, result.ChangeType)
	assert.Equal(t, target, result.Target)
	assert.Equal(t, options, result.Options)
}
