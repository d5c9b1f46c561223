package primitive_test

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cassandra-proto/cqlproto/primitive"
)

func TestInetAddrRoundTripIPv4(t *testing.T) {
	addr := net.IPv4(192, 168, 1, 42)
	buf := make([]byte, primitive.LengthOfInetAddr(addr))
	rest := primitive.WriteInetAddr(addr, buf)
	assert.Empty(t, rest)

	decoded, remaining, err := primitive.ReadInetAddr(buf)
	require.NoError(t, err)
	assert.Empty(t, remaining)
	assert.True(t, decoded.Equal(addr))
}

func TestInetAddrRoundTripIPv6(t *testing.T) {
	addr := net.ParseIP("2001:db8::1")
	buf := make([]byte, primitive.LengthOfInetAddr(addr))
	rest := primitive.WriteInetAddr(addr, buf)
	assert.Empty(t, rest)

	decoded, remaining, err := primitive.ReadInetAddr(buf)
	require.NoError(t, err)
	assert.Empty(t, remaining)
	assert.True(t, decoded.Equal(addr))
}

func TestInetAddrInvalidLength(t *testing.T) {
	buf := []byte{0x05, 0x01, 0x02, 0x03, 0x04, 0x05}
	_, _, err := primitive.ReadInetAddr(buf)
	require.Error(t, err)
}

func TestInetAddrTooShort(t *testing.T) {
	buf := []byte{0x04, 0x01, 0x02}
	_, _, err := primitive.ReadInetAddr(buf)
	require.Error(t, err)
}

func TestInetRoundTrip(t *testing.T) {
	in := &primitive.Inet{Addr: net.IPv4(10, 0, 0, 1), Port: 9042}
	buf := make([]byte, primitive.LengthOfInet(in))
	rest := primitive.WriteInet(in, buf)
	assert.Empty(t, rest)

	decoded, remaining, err := primitive.ReadInet(buf)
	require.NoError(t, err)
	assert.Empty(t, remaining)
	assert.True(t, decoded.Addr.Equal(in.Addr))
	assert.Equal(t, in.Port, decoded.Port)
}
