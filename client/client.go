// Copyright 2020 DataStax
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package client

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/cassandra-proto/cqlproto/frame"
	"github.com/cassandra-proto/cqlproto/transport"
)

// Config gathers everything needed to open and hand-shake a connection.
type Config struct {
	Address        string
	ConnectTimeout time.Duration
	TLS            *transport.TLSOptions
	Handshake      HandshakeOptions

	EncodedFrameDumpDir string
	DecodedFrameDumpDir string
}

// Connect opens the transport (TCP, or TLS if Config.TLS is set) and wraps it in a Connection.
// The handshake is not performed: call Handshake next, or use ConnectAndHandshake.
func Connect(ctx context.Context, cfg Config) (*Connection, error) {
	var conn transport.Conn
	var err error
	if cfg.TLS != nil {
		conn, err = transport.DialTLS(ctx, cfg.Address, cfg.ConnectTimeout, *cfg.TLS)
	} else {
		conn, err = transport.DialTCP(ctx, cfg.Address, cfg.ConnectTimeout)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot connect to %s: %w", cfg.Address, err)
	}
	log.Info().Msgf("connected to %s", cfg.Address)

	var decodedDump, encodedDump frame.DumpSink
	if cfg.DecodedFrameDumpDir != "" {
		decodedDump = &frame.FileDumpSink{Dir: cfg.DecodedFrameDumpDir}
	}
	if cfg.EncodedFrameDumpDir != "" {
		encodedDump = &frame.FileDumpSink{Dir: cfg.EncodedFrameDumpDir}
	}
	c := newConnection(conn, decodedDump, encodedDump)
	return c, nil
}

// ConnectAndHandshake opens a connection and performs the full startup handshake before returning,
// so the returned Connection is immediately ready to accept ordinary requests. It also returns the
// negotiated CQL_VERSION.
func ConnectAndHandshake(ctx context.Context, cfg Config) (*Connection, string, error) {
	c, err := Connect(ctx, cfg)
	if err != nil {
		return nil, "", err
	}
	cqlVersion, err := Handshake(ctx, c, cfg.Handshake)
	if err != nil {
		_ = c.Close()
		return nil, "", err
	}
	return c, cqlVersion, nil
}
