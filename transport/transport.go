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

// Package transport establishes the byte stream a driver connection runs on: plain TCP or TLS,
// nothing else. It knows nothing about frames or messages.
package transport

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"os"
	"time"
)

// Conn is the byte stream a connection is built on.
type Conn interface {
	net.Conn
}

// InvalidTLSOptionsError reports a TLSOptions value DialTLS cannot act on.
type InvalidTLSOptionsError struct {
	Reason string
}

func (e *InvalidTLSOptionsError) Error() string {
	return fmt.Sprintf("transport: invalid TLSOptions: %s", e.Reason)
}

const DefaultConnectTimeout = 5 * time.Second

// DialTCP opens a plain, unencrypted TCP connection to addr ("host:port").
func DialTCP(ctx context.Context, addr string, timeout time.Duration) (Conn, error) {
	if timeout <= 0 {
		timeout = DefaultConnectTimeout
	}
	dialer := net.Dialer{}
	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	conn, err := dialer.DialContext(connectCtx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("cannot establish TCP connection to %s: %w", addr, err)
	}
	return conn, nil
}

// TLSOptions configures DialTLS. ServerName is required: the native protocol has no equivalent of
// HTTP's Host header, so SNI is the only way the server picks a certificate.
type TLSOptions struct {
	ServerName string
	// CAFile is an optional PEM file of trusted root certificates. When set, only its certificates
	// are trusted, in place of the host's default trust store; if empty, the default store is used.
	CAFile string
	// ClientCertFile and ClientCertPassword identify this client to the server via a PKCS#12 bundle,
	// for servers that require mutual TLS. Both empty means no client certificate is presented.
	ClientCertFile     string
	ClientCertPassword string
}

// DialTLS opens a TLS connection to addr, performing the handshake before returning.
func DialTLS(ctx context.Context, addr string, timeout time.Duration, opts TLSOptions) (Conn, error) {
	if opts.ServerName == "" {
		return nil, &InvalidTLSOptionsError{Reason: "ServerName is required for SNI"}
	}
	if net.ParseIP(opts.ServerName) != nil {
		return nil, &InvalidTLSOptionsError{Reason: "ServerName must be a DNS name, not an IP literal"}
	}
	config := &tls.Config{ServerName: opts.ServerName, MinVersion: tls.VersionTLS12}

	if opts.CAFile != "" {
		pemBytes, err := os.ReadFile(opts.CAFile)
		if err != nil {
			return nil, fmt.Errorf("cannot read CA file %s: %w", opts.CAFile, err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pemBytes) {
			return nil, fmt.Errorf("no certificates found in CA file %s", opts.CAFile)
		}
		config.RootCAs = pool
	}

	if opts.ClientCertFile != "" {
		cert, err := loadPKCS12Certificate(opts.ClientCertFile, opts.ClientCertPassword)
		if err != nil {
			return nil, err
		}
		config.Certificates = []tls.Certificate{cert}
	}

	if timeout <= 0 {
		timeout = DefaultConnectTimeout
	}
	dialer := &tls.Dialer{NetDialer: &net.Dialer{}, Config: config}
	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	conn, err := dialer.DialContext(connectCtx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("cannot establish TLS connection to %s: %w", addr, err)
	}
	return conn, nil
}
