package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGlobalFlagsRequiresHost(t *testing.T) {
	_, _, err := parseGlobalFlags([]string{"test-connection"})
	require.Error(t, err)
}

func TestParseGlobalFlagsDefaults(t *testing.T) {
	g, rest, err := parseGlobalFlags([]string{"--host", "127.0.0.1", "test-connection"})
	require.NoError(t, err)
	assert.Equal(t, 9042, g.Port)
	assert.Equal(t, "v3", g.ProtocolVersion)
	assert.Equal(t, []string{"test-connection"}, rest)
	assert.Equal(t, "127.0.0.1:9042", g.address())
}

func TestParseGlobalFlagsRejectsUnsupportedProtocolVersion(t *testing.T) {
	_, _, err := parseGlobalFlags([]string{"--host", "127.0.0.1", "--protocol-version", "v4", "test-connection"})
	require.Error(t, err)
}

func TestSplitCertSuffix(t *testing.T) {
	path, password, err := splitCertSuffix("/tmp/client.p12:hunter2")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/client.p12", path)
	assert.Equal(t, "hunter2", password)

	path, password, err = splitCertSuffix("/tmp/client.p12")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/client.p12", path)
	assert.Equal(t, "", password)
}

func TestParseQueryFlagsRequiresExecuteOrFile(t *testing.T) {
	_, err := parseQueryFlags([]string{})
	require.Error(t, err)
}

func TestParseQueryFlagsMutuallyExclusive(t *testing.T) {
	_, err := parseQueryFlags([]string{"--execute", "SELECT 1", "--file", "-"})
	require.Error(t, err)
}

func TestParseQueryFlagsRejectsBadOutputFormat(t *testing.T) {
	_, err := parseQueryFlags([]string{"--execute", "SELECT 1", "--output-format", "xml"})
	require.Error(t, err)
}

func TestToClientConfigRejectsUnsupportedCompression(t *testing.T) {
	g, _, err := parseGlobalFlags([]string{"--host", "127.0.0.1", "--compression", "zstd", "test-connection"})
	require.NoError(t, err)
	_, err = toClientConfig(g)
	require.Error(t, err)
}

func TestToClientConfigAcceptsSupportedCompression(t *testing.T) {
	g, _, err := parseGlobalFlags([]string{"--host", "127.0.0.1", "--compression", "lz4", "test-connection"})
	require.NoError(t, err)
	cfg, err := toClientConfig(g)
	require.NoError(t, err)
	assert.Equal(t, "LZ4", cfg.Handshake.PreferredCompression)
}

func TestParseQueryFlagsOK(t *testing.T) {
	q, err := parseQueryFlags([]string{"--execute", "SELECT * FROM system.local", "--output-format", "json"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM system.local", q.Execute)
	assert.Equal(t, "json", q.OutputFormat)
}
