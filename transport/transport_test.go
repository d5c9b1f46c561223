package transport_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cassandra-proto/cqlproto/transport"
)

func TestDialTCP(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	accepted := make(chan net.Conn, 1)
	go func() {
		conn, err := ln.Accept()
		if err == nil {
			accepted <- conn
		}
	}()

	conn, err := transport.DialTCP(context.Background(), ln.Addr().String(), time.Second)
	require.NoError(t, err)
	defer conn.Close()

	select {
	case server := <-accepted:
		defer server.Close()
	case <-time.After(time.Second):
		t.Fatal("server never accepted connection")
	}
}

func TestDialTCPConnectionRefused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	_, err = transport.DialTCP(context.Background(), addr, 200*time.Millisecond)
	assert.Error(t, err)
}

func TestDialTLSRequiresServerName(t *testing.T) {
	_, err := transport.DialTLS(context.Background(), "127.0.0.1:0", time.Second, transport.TLSOptions{})
	assert.Error(t, err)
	var invalid *transport.InvalidTLSOptionsError
	require.ErrorAs(t, err, &invalid)
}

func TestDialTLSRejectsIPLiteralServerName(t *testing.T) {
	_, err := transport.DialTLS(context.Background(), "127.0.0.1:0", time.Second,
		transport.TLSOptions{ServerName: "127.0.0.1"})
	assert.Error(t, err)
	var invalid *transport.InvalidTLSOptionsError
	require.ErrorAs(t, err, &invalid)
}
