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
	"fmt"
	"os"

	"github.com/cassandra-proto/cqlproto/client"
)

func runTestConnection(ctx context.Context, g *globalFlags) int {
	cfg, err := toClientConfig(g)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	conn, cqlVersion, err := client.ConnectAndHandshake(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer conn.Close()
	fmt.Printf("ok (CQL_VERSION %s)\n", cqlVersion)
	return 0
}
