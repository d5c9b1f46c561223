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

package message

import "github.com/cassandra-proto/cqlproto/primitive"

// RowsFlag holds the bits of a RowsMetadata's flags field.
type RowsFlag int32

const (
	RowsFlagGlobalTableSpec = RowsFlag(0x0001)
	RowsFlagHasMorePages    = RowsFlag(0x0002)
	RowsFlagNoMetadata      = RowsFlag(0x0004)
)

func (f RowsFlag) has(bit RowsFlag) bool { return f&bit != 0 }

// GlobalTableSpec names the keyspace and table that every column in a result shares, when the server
// elects to factor it out of the per-column metadata.
type GlobalTableSpec struct {
	Keyspace string
	Table    string
}

// RowsMetadata is the metadata header that precedes a ROWS result's row payload. Column specs and the
// row payload itself are not decoded by this core; RowsResult.RowPayload carries them as raw bytes.
type RowsMetadata struct {
	Flags           RowsFlag
	ColumnsCount    int32
	GlobalTableSpec *GlobalTableSpec
	PagingState     []byte
	NoMetadata      bool
}

// decodeRowsMetadata reads the RowsMetadata header: flags, columns count, and whichever of
// global_table_spec / paging_state the flags select. It does not touch column specs or row contents.
func decodeRowsMetadata(body []byte) (*RowsMetadata, []byte, error) {
	flagsRaw, remaining, err := primitive.ReadInt(body)
	if err != nil {
		return nil, body, err
	}
	flags := RowsFlag(flagsRaw)
	var columnsCount int32
	if columnsCount, remaining, err = primitive.ReadInt(remaining); err != nil {
		return nil, body, err
	}
	m := &RowsMetadata{Flags: flags, ColumnsCount: columnsCount, NoMetadata: flags.has(RowsFlagNoMetadata)}
	if flags.has(RowsFlagGlobalTableSpec) {
		var keyspace, table string
		if keyspace, remaining, err = primitive.ReadString(remaining); err != nil {
			return nil, body, err
		}
		if table, remaining, err = primitive.ReadString(remaining); err != nil {
			return nil, body, err
		}
		m.GlobalTableSpec = &GlobalTableSpec{Keyspace: keyspace, Table: table}
	}
	if flags.has(RowsFlagHasMorePages) {
		var pagingState []byte
		if pagingState, remaining, err = primitive.ReadBytes(remaining); err != nil {
			return nil, body, err
		}
		m.PagingState = pagingState
	}
	return m, remaining, nil
}

func encodeRowsMetadata(m *RowsMetadata, dest []byte) []byte {
	dest = primitive.WriteInt(int32(m.Flags), dest)
	dest = primitive.WriteInt(m.ColumnsCount, dest)
	if m.Flags.has(RowsFlagGlobalTableSpec) && m.GlobalTableSpec != nil {
		dest = primitive.WriteString(m.GlobalTableSpec.Keyspace, dest)
		dest = primitive.WriteString(m.GlobalTableSpec.Table, dest)
	}
	if m.Flags.has(RowsFlagHasMorePages) {
		dest = primitive.WriteBytes(m.PagingState, dest)
	}
	return dest
}

func lengthOfRowsMetadata(m *RowsMetadata) int {
	length := primitive.LengthOfInt + primitive.LengthOfInt
	if m.Flags.has(RowsFlagGlobalTableSpec) && m.GlobalTableSpec != nil {
		length += primitive.LengthOfString(m.GlobalTableSpec.Keyspace) + primitive.LengthOfString(m.GlobalTableSpec.Table)
	}
	if m.Flags.has(RowsFlagHasMorePages) {
		length += primitive.LengthOfBytes(m.PagingState)
	}
	return length
}
