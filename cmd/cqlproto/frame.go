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
	"github.com/cassandra-proto/cqlproto/frame"
	"github.com/cassandra-proto/cqlproto/message"
)

// frameForQuery builds a QUERY request with default options (consistency ONE, no bound values);
// this core does not parse CQL, so it cannot detect or bind "?" placeholders itself.
func frameForQuery(statement string) *frame.Frame {
	return frame.NewRequestFrame(0, &message.Query{Query: statement})
}
