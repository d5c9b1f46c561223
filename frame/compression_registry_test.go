package frame_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cassandra-proto/cqlproto/frame"
)

func TestNegotiateCompressionRequiresExplicitPreference(t *testing.T) {
	_, ok := frame.NegotiateCompression([]string{"LZ4", "SNAPPY"}, "")
	assert.False(t, ok)
}

func TestNegotiateCompressionPicksPreferredWhenAdvertised(t *testing.T) {
	name, ok := frame.NegotiateCompression([]string{"LZ4", "SNAPPY"}, "SNAPPY")
	assert.True(t, ok)
	assert.Equal(t, "SNAPPY", name)
}

func TestNegotiateCompressionRejectsUnadvertisedPreference(t *testing.T) {
	_, ok := frame.NegotiateCompression([]string{"LZ4"}, "SNAPPY")
	assert.False(t, ok)
}

func TestNegotiateCompressionRejectsUnknownAlgorithm(t *testing.T) {
	_, ok := frame.NegotiateCompression([]string{"ZSTD"}, "ZSTD")
	assert.False(t, ok)
}
