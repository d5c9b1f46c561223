package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cassandra-proto/cqlproto/auth"
)

func TestSelectPasswordAuthenticator(t *testing.T) {
	a, err := auth.Select("org.apache.cassandra.auth.PasswordAuthenticator", "alice", "s3cr3t")
	require.NoError(t, err)
	token, err := a.InitialResponse("org.apache.cassandra.auth.PasswordAuthenticator")
	require.NoError(t, err)
	assert.Equal(t, append(append([]byte{0}, "alice"...), append([]byte{0}, "s3cr3t"...)...), token)
}

func TestSelectUnknownAuthenticator(t *testing.T) {
	_, err := auth.Select("com.example.CustomAuthenticator", "alice", "s3cr3t")
	require.Error(t, err)
	var unknown *auth.UnknownAuthenticatorError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "com.example.CustomAuthenticator", unknown.ClassName)
}

func TestPasswordAuthenticatorRejectsChallenge(t *testing.T) {
	a := &auth.PasswordAuthenticator{Username: "alice", Password: "s3cr3t"}
	_, err := a.EvaluateChallenge([]byte("whatever"))
	require.Error(t, err)
}
