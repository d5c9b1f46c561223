package client_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cassandra-proto/cqlproto/client"
	"github.com/cassandra-proto/cqlproto/frame"
	"github.com/cassandra-proto/cqlproto/message"
	"github.com/cassandra-proto/cqlproto/primitive"
)

// fakeServer drives the server side of net.Pipe by hand, encoding and decoding frames with the
// same codec the client uses, so these tests never need a real Cassandra-compatible listener.
type fakeServer struct {
	conn    net.Conn
	decoder *frame.Decoder
}

func newFakeServer(conn net.Conn) *fakeServer {
	return &fakeServer{conn: conn, decoder: frame.NewDecoder()}
}

func (s *fakeServer) receive(t *testing.T) *frame.Frame {
	t.Helper()
	for {
		f, err := s.decoder.Next()
		if err == nil {
			return f
		}
		require.ErrorIs(t, err, frame.ErrNeedMoreData)
		buf := make([]byte, 4096)
		n, readErr := s.conn.Read(buf)
		require.NoError(t, readErr)
		s.decoder.Append(buf[:n])
	}
}

func (s *fakeServer) send(t *testing.T, streamId int16, msg message.Message) {
	t.Helper()
	f := frame.NewRequestFrame(streamId, msg)
	f.Header.IsResponse = true
	encoded, err := frame.Encode(f)
	require.NoError(t, err)
	_, err = s.conn.Write(encoded)
	require.NoError(t, err)
}

func newTestConnection(t *testing.T, conn net.Conn) *client.Connection {
	t.Helper()
	return client.Wrap(conn)
}

func supportedOptions(t *testing.T) *primitive.StringMultimap {
	t.Helper()
	cqlVersions, err := primitive.NewStringList([]string{"3.0.0"})
	require.NoError(t, err)
	multimap, err := primitive.NewStringMultimap([]string{"CQL_VERSION"}, map[string]primitive.StringList{"CQL_VERSION": cqlVersions})
	require.NoError(t, err)
	return multimap
}

func supportedOptionsWithCompression(t *testing.T) *primitive.StringMultimap {
	t.Helper()
	cqlVersions, err := primitive.NewStringList([]string{"3.0.0"})
	require.NoError(t, err)
	compressions, err := primitive.NewStringList([]string{"SNAPPY", "LZ4"})
	require.NoError(t, err)
	multimap, err := primitive.NewStringMultimap(
		[]string{"CQL_VERSION", "COMPRESSION"},
		map[string]primitive.StringList{"CQL_VERSION": cqlVersions, "COMPRESSION": compressions},
	)
	require.NoError(t, err)
	return multimap
}

func TestHandshakeWithoutAuthentication(t *testing.T) {
	clientSide, serverSide := net.Pipe()
	defer clientSide.Close()
	defer serverSide.Close()

	conn := newFakeServer(serverSide)
	go func() {
		options := conn.receive(t)
		assert.Equal(t, primitive.OpCodeOptions, options.Header.OpCode)
		conn.send(t, options.Header.StreamId, &message.Supported{Options: supportedOptions(t)})

		startup := conn.receive(t)
		assert.Equal(t, primitive.OpCodeStartup, startup.Header.OpCode)
		conn.send(t, startup.Header.StreamId, &message.Ready{})
	}()

	c := newTestConnection(t, clientSide)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := client.Handshake(ctx, c, client.HandshakeOptions{})
	require.NoError(t, err)
}

func TestHandshakeWithAuthentication(t *testing.T) {
	clientSide, serverSide := net.Pipe()
	defer clientSide.Close()
	defer serverSide.Close()

	conn := newFakeServer(serverSide)
	go func() {
		options := conn.receive(t)
		conn.send(t, options.Header.StreamId, &message.Supported{Options: supportedOptions(t)})

		startup := conn.receive(t)
		conn.send(t, startup.Header.StreamId, &message.Authenticate{Authenticator: "org.apache.cassandra.auth.PasswordAuthenticator"})

		authResponse := conn.receive(t)
		assert.Equal(t, primitive.OpCodeAuthResponse, authResponse.Header.OpCode)
		conn.send(t, authResponse.Header.StreamId, &message.AuthSuccess{})
	}()

	c := newTestConnection(t, clientSide)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := client.Handshake(ctx, c, client.HandshakeOptions{
		Credentials: &client.Credentials{Username: "alice", Password: "s3cr3t"},
	})
	require.NoError(t, err)
}

func TestHandshakeFailsWhenAuthRequiredButNoCredentials(t *testing.T) {
	clientSide, serverSide := net.Pipe()
	defer clientSide.Close()
	defer serverSide.Close()

	conn := newFakeServer(serverSide)
	go func() {
		options := conn.receive(t)
		conn.send(t, options.Header.StreamId, &message.Supported{Options: supportedOptions(t)})
		startup := conn.receive(t)
		conn.send(t, startup.Header.StreamId, &message.Authenticate{Authenticator: "org.apache.cassandra.auth.PasswordAuthenticator"})
	}()

	c := newTestConnection(t, clientSide)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := client.Handshake(ctx, c, client.HandshakeOptions{})
	require.Error(t, err)
	var handshakeErr *client.HandshakeError
	require.ErrorAs(t, err, &handshakeErr)
	assert.Contains(t, handshakeErr.Message, "No credentials provided")
}

func TestHandshakeNegotiatesRequestedCompression(t *testing.T) {
	clientSide, serverSide := net.Pipe()
	defer clientSide.Close()
	defer serverSide.Close()

	conn := newFakeServer(serverSide)
	go func() {
		options := conn.receive(t)
		conn.send(t, options.Header.StreamId, &message.Supported{Options: supportedOptionsWithCompression(t)})

		startup := conn.receive(t)
		require.IsType(t, &message.Startup{}, startup.Message)
		assert.Equal(t, "SNAPPY", startup.Message.(*message.Startup).Compression)
		conn.send(t, startup.Header.StreamId, &message.Ready{})
	}()

	c := newTestConnection(t, clientSide)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := client.Handshake(ctx, c, client.HandshakeOptions{PreferredCompression: "SNAPPY"})
	require.NoError(t, err)
}

func TestCallCorrelatesByStreamId(t *testing.T) {
	clientSide, serverSide := net.Pipe()
	defer clientSide.Close()
	defer serverSide.Close()

	conn := newFakeServer(serverSide)
	go func() {
		req := conn.receive(t)
		assert.Equal(t, primitive.OpCodeQuery, req.Header.OpCode)
		conn.send(t, req.Header.StreamId, &message.Result{Header: &message.VoidResult{}})
	}()

	c := newTestConnection(t, clientSide)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	resp, err := c.Call(ctx, frame.NewRequestFrame(0, &message.Query{Query: "SELECT 1"}))
	require.NoError(t, err)
	result := resp.Message.(*message.Result)
	assert.Equal(t, message.ResultKindVoid, result.Header.Kind())
}

func TestEventsRoutedSeparately(t *testing.T) {
	clientSide, serverSide := net.Pipe()
	defer clientSide.Close()
	defer serverSide.Close()

	conn := newFakeServer(serverSide)
	c := newTestConnection(t, clientSide)
	defer c.Close()

	go conn.send(t, -1, &message.Error{Code: 0x1001, Text: "topology change"})

	select {
	case event := <-c.Events:
		errMsg := event.Message.(*message.Error)
		assert.Equal(t, int32(0x1001), errMsg.Code)
	case <-time.After(time.Second):
		t.Fatal("expected event frame, got none")
	}
}
