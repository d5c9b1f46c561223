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

// Command cqlproto is a thin operational shell around package client: it dials a single connection,
// performs the startup handshake, and either reports success (test-connection) or sends one QUERY
// request and prints the RESULT (query). It does not parse CQL and does not manage a pool.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: cqlproto <test-connection|query> [flags]")
		return 2
	}
	global, rest, err := parseGlobalFlags(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if len(rest) == 0 {
		fmt.Fprintln(os.Stderr, "usage: cqlproto <test-connection|query> [flags]")
		return 2
	}

	configureLogging(global)

	ctx := context.Background()
	switch rest[0] {
	case "test-connection":
		return runTestConnection(ctx, global)
	case "query":
		return runQuery(ctx, global, rest[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", rest[0])
		return 2
	}
}

// parseGlobalFlags parses the flags common to every subcommand, then returns the remaining
// arguments starting with the subcommand name. The flag package stops at the first non-flag
// argument, which is exactly the subcommand boundary this CLI relies on.
func parseGlobalFlags(args []string) (*globalFlags, []string, error) {
	fs := flag.NewFlagSet("cqlproto", flag.ContinueOnError)
	g := &globalFlags{}
	fs.StringVar(&g.Host, "host", "", "server host (required)")
	fs.IntVar(&g.Port, "port", 9042, "server port")
	fs.StringVar(&g.User, "user", "", "username for authenticated servers")
	fs.StringVar(&g.Password, "password", "", "password for authenticated servers")
	fs.StringVar(&g.ProtocolVersion, "protocol-version", "v3", "protocol version (v3)")
	fs.StringVar(&g.CqlVersion, "cql-version", "", "preferred CQL_VERSION (defaults to the server's greatest offered version)")
	fs.StringVar(&g.Compression, "compression", "", "negotiate STARTUP COMPRESSION (LZ4 or SNAPPY); empty means none")
	fs.BoolVar(&g.TLS, "tls", false, "connect over TLS")
	fs.StringVar(&g.CertType, "cert-type", "pkcs12", "client certificate type (pkcs12)")
	fs.StringVar(&g.Cert, "cert", "", "client certificate path, optionally suffixed with :password")
	fs.StringVar(&g.CAFile, "ca-file", "", "PEM file of trusted CA certificates, used instead of the system trust store")
	fs.StringVar(&g.EncodedDumpDir, "debug-dump-encoded-frames-into-directory", "", "write every encoded frame to this directory")
	fs.StringVar(&g.DecodedDumpDir, "debug-dump-decoded-frames-into-directory", "", "write every decoded frame to this directory")
	fs.StringVar(&g.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if g.Host == "" {
		return nil, nil, fmt.Errorf("--host is required")
	}
	if g.ProtocolVersion != "v3" {
		return nil, nil, fmt.Errorf("unsupported --protocol-version %q: only v3 is implemented", g.ProtocolVersion)
	}
	if g.CertType != "pkcs12" {
		return nil, nil, fmt.Errorf("unsupported --cert-type %q: only pkcs12 is implemented", g.CertType)
	}
	return g, fs.Args(), nil
}

type globalFlags struct {
	Host            string
	Port            int
	User            string
	Password        string
	ProtocolVersion string
	CqlVersion      string
	Compression     string
	TLS             bool
	CertType        string
	Cert            string
	CAFile          string
	EncodedDumpDir  string
	DecodedDumpDir  string
	LogLevel        string
}

func (g *globalFlags) address() string {
	return fmt.Sprintf("%s:%d", g.Host, g.Port)
}
