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

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/cassandra-proto/cqlproto/client"
	"github.com/cassandra-proto/cqlproto/frame"
	"github.com/cassandra-proto/cqlproto/internal/logging"
	"github.com/cassandra-proto/cqlproto/transport"
)

func configureLogging(g *globalFlags) {
	logging.Configure(logging.ParseLevel(g.LogLevel), true)
}

// toClientConfig translates the parsed global flags into a client.Config, parsing the --cert
// path[:password] suffix and filling in credentials only if --user was supplied.
func toClientConfig(g *globalFlags) (client.Config, error) {
	cfg := client.Config{
		Address:             g.address(),
		ConnectTimeout:      5 * time.Second,
		EncodedFrameDumpDir: g.EncodedDumpDir,
		DecodedFrameDumpDir: g.DecodedDumpDir,
		Handshake: client.HandshakeOptions{
			PreferredCqlVersion:  g.CqlVersion,
			PreferredCompression: strings.ToUpper(g.Compression),
		},
	}
	if g.Compression != "" {
		if _, found := frame.RecognizedCompressions[strings.ToUpper(g.Compression)]; !found {
			return client.Config{}, fmt.Errorf("unsupported --compression %q: only LZ4 and SNAPPY are recognized", g.Compression)
		}
	}
	if g.User != "" {
		cfg.Handshake.Credentials = &client.Credentials{Username: g.User, Password: g.Password}
	}
	if g.TLS {
		tlsOpts := transport.TLSOptions{ServerName: g.Host, CAFile: g.CAFile}
		if g.Cert != "" {
			path, password, err := splitCertSuffix(g.Cert)
			if err != nil {
				return client.Config{}, err
			}
			tlsOpts.ClientCertFile = path
			tlsOpts.ClientCertPassword = password
		}
		cfg.TLS = &tlsOpts
	} else if g.Cert != "" {
		return client.Config{}, fmt.Errorf("--cert requires --tls")
	}
	return cfg, nil
}

// splitCertSuffix splits "path" or "path:password" on the last colon, so an earlier colon in path
// (such as a Windows drive letter) stays in path when a password suffix is present. A path that
// contains a colon but has no password suffix is split at its last colon all the same.
func splitCertSuffix(certFlag string) (path string, password string, err error) {
	idx := strings.LastIndex(certFlag, ":")
	if idx < 0 {
		return certFlag, "", nil
	}
	return certFlag[:idx], certFlag[idx+1:], nil
}
