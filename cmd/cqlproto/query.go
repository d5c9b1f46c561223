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
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cassandra-proto/cqlproto/client"
	"github.com/cassandra-proto/cqlproto/message"
)

type queryFlags struct {
	Keyspace     string
	Execute      string
	File         string
	DryRun       bool
	OutputFormat string
}

func parseQueryFlags(args []string) (*queryFlags, error) {
	fs := flag.NewFlagSet("query", flag.ContinueOnError)
	q := &queryFlags{}
	fs.StringVar(&q.Keyspace, "keyspace", "", "keyspace to use (informational only: this core does not send USE)")
	fs.StringVar(&q.Execute, "execute", "", "CQL statement to execute")
	fs.StringVar(&q.File, "file", "", "path to a file containing the CQL statement to execute, or - for stdin")
	fs.BoolVar(&q.DryRun, "dry-run", false, "print the statement that would be sent, without connecting")
	fs.StringVar(&q.OutputFormat, "output-format", "yaml", "output format (yaml, json)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if q.OutputFormat != "yaml" && q.OutputFormat != "json" {
		return nil, fmt.Errorf("unsupported --output-format %q: must be yaml or json", q.OutputFormat)
	}
	if q.Execute == "" && q.File == "" {
		return nil, fmt.Errorf("one of --execute or --file is required")
	}
	if q.Execute != "" && q.File != "" {
		return nil, fmt.Errorf("--execute and --file are mutually exclusive")
	}
	return q, nil
}

func (q *queryFlags) statement() (string, error) {
	if q.Execute != "" {
		return q.Execute, nil
	}
	if q.File == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("cannot read statement from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(q.File)
	if err != nil {
		return "", fmt.Errorf("cannot read statement from %s: %w", q.File, err)
	}
	return string(data), nil
}

func runQuery(ctx context.Context, g *globalFlags, args []string) int {
	q, err := parseQueryFlags(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	statement, err := q.statement()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if q.DryRun {
		return printOutput(q.OutputFormat, map[string]string{"statement": statement, "keyspace": q.Keyspace})
	}

	cfg, err := toClientConfig(g)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	conn, _, err := client.ConnectAndHandshake(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer conn.Close()

	simple := client.NewSimple(conn)
	req := frameForQuery(statement)
	resp, err := simple.Call(ctx, req)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return printOutput(q.OutputFormat, describeResult(resp))
}

func describeResult(msg message.Message) any {
	result, ok := msg.(*message.Result)
	if !ok {
		return map[string]string{"message": msg.String()}
	}
	switch h := result.Header.(type) {
	case *message.VoidResult:
		return map[string]string{"kind": "void"}
	case *message.SetKeyspaceResult:
		return map[string]string{"kind": "set_keyspace", "keyspace": h.Keyspace}
	case *message.SchemaChangeResult:
		return map[string]string{"kind": "schema_change", "change_type": h.ChangeType, "target": h.Target, "options": h.Options}
	case *message.RowsResult:
		return map[string]any{"kind": "rows", "columns_count": h.Metadata.ColumnsCount, "row_payload_bytes": len(h.RowPayload)}
	default:
		return map[string]string{"kind": "unknown"}
	}
}

func printOutput(format string, v any) int {
	var encoded []byte
	var err error
	switch format {
	case "json":
		encoded, err = json.MarshalIndent(v, "", "  ")
	default:
		encoded, err = yaml.Marshal(v)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Println(string(encoded))
	return 0
}
