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

// QueryFlag is the one-byte field in a QUERY body that announces which optional sections follow,
// in the fixed order defined by the protocol.
type QueryFlag uint8

const (
	QueryFlagValues            = QueryFlag(0x01)
	QueryFlagSkipMetadata       = QueryFlag(0x02)
	QueryFlagPageSize           = QueryFlag(0x04)
	QueryFlagPagingState        = QueryFlag(0x08)
	QueryFlagSerialConsistency  = QueryFlag(0x10)
	QueryFlagDefaultTimestamp   = QueryFlag(0x20)
	QueryFlagValuesAreNamed     = QueryFlag(0x40)
)

// NamedValue is one (name, value) pair of a QUERY's named values section. A slice, rather than a map,
// preserves wire order so that encode(decode(q)) reproduces the original bytes.
type NamedValue struct {
	Name  string
	Value []byte
}

// QueryOptions holds every field of a QUERY body after the query string itself.
type QueryOptions struct {
	Consistency       primitive.ConsistencyLevel
	PositionalValues  [][]byte
	NamedValues       []NamedValue
	SkipMetadata      bool
	PageSize          *int32
	PagingState       []byte
	SerialConsistency *primitive.ConsistencyLevel
	DefaultTimestamp  *int64
}

func (o *QueryOptions) hasNamedValues() bool {
	return o.NamedValues != nil
}

// hasValues reports whether the values flag should be set. A non-nil PositionalValues is significant
// even when empty: it distinguishes a QUERY that explicitly sent zero bound values from one that
// never had a values section at all, so that decode -> encode reproduces the original flags byte.
func (o *QueryOptions) hasValues() bool {
	return o.PositionalValues != nil || o.hasNamedValues()
}

func (o *QueryOptions) flags() QueryFlag {
	var f QueryFlag
	if o.hasValues() {
		f = f.add(QueryFlagValues)
	}
	if o.SkipMetadata {
		f = f.add(QueryFlagSkipMetadata)
	}
	if o.PageSize != nil {
		f = f.add(QueryFlagPageSize)
	}
	if o.PagingState != nil {
		f = f.add(QueryFlagPagingState)
	}
	if o.SerialConsistency != nil {
		f = f.add(QueryFlagSerialConsistency)
	}
	if o.DefaultTimestamp != nil {
		f = f.add(QueryFlagDefaultTimestamp)
	}
	if o.hasNamedValues() {
		f = f.add(QueryFlagValuesAreNamed)
	}
	return f
}

func (f QueryFlag) add(bit QueryFlag) QueryFlag   { return f | bit }
func (f QueryFlag) has(bit QueryFlag) bool         { return f&bit != 0 }

func lengthOfValues(o *QueryOptions) int {
	length := primitive.LengthOfShort
	if o.hasNamedValues() {
		for _, nv := range o.NamedValues {
			length += primitive.LengthOfString(nv.Name) + primitive.LengthOfBytes(nv.Value)
		}
	} else {
		for _, v := range o.PositionalValues {
			length += primitive.LengthOfBytes(v)
		}
	}
	return length
}

// LengthOfQueryOptions returns the exact encoded size of a QUERY body's options section (everything
// after the query string): consistency, flags byte, and whichever optional sections the flags select.
func LengthOfQueryOptions(o *QueryOptions) int {
	length := primitive.LengthOfShort // consistency
	length += primitive.LengthOfByte  // flags
	f := o.flags()
	if f.has(QueryFlagValues) {
		length += lengthOfValues(o)
	}
	if f.has(QueryFlagPageSize) {
		length += primitive.LengthOfInt
	}
	if f.has(QueryFlagPagingState) {
		length += primitive.LengthOfBytes(o.PagingState)
	}
	if f.has(QueryFlagSerialConsistency) {
		length += primitive.LengthOfShort
	}
	if f.has(QueryFlagDefaultTimestamp) {
		length += primitive.LengthOfLong
	}
	return length
}

// EncodeQueryOptions appends the options section in the fixed protocol order: consistency, flags,
// then values, page size, paging state, serial consistency, and default timestamp -- each included
// iff its flag bit is set.
func EncodeQueryOptions(o *QueryOptions, dest []byte) []byte {
	dest = primitive.WriteConsistencyLevel(o.Consistency, dest)
	f := o.flags()
	dest = primitive.WriteByte(uint8(f), dest)
	if f.has(QueryFlagValues) {
		if f.has(QueryFlagValuesAreNamed) {
			dest = primitive.WriteShort(uint16(len(o.NamedValues)), dest)
			for _, nv := range o.NamedValues {
				dest = primitive.WriteString(nv.Name, dest)
				dest = primitive.WriteBytes(nv.Value, dest)
			}
		} else {
			dest = primitive.WriteShort(uint16(len(o.PositionalValues)), dest)
			for _, v := range o.PositionalValues {
				dest = primitive.WriteBytes(v, dest)
			}
		}
	}
	if f.has(QueryFlagPageSize) {
		dest = primitive.WriteInt(*o.PageSize, dest)
	}
	if f.has(QueryFlagPagingState) {
		dest = primitive.WriteBytes(o.PagingState, dest)
	}
	if f.has(QueryFlagSerialConsistency) {
		dest = primitive.WriteConsistencyLevel(*o.SerialConsistency, dest)
	}
	if f.has(QueryFlagDefaultTimestamp) {
		dest = primitive.WriteLong(*o.DefaultTimestamp, dest)
	}
	return dest
}

// DecodeQueryOptions consumes a QUERY body's options section, reading exactly the sections its own
// flags byte selects, in protocol order.
func DecodeQueryOptions(body []byte) (*QueryOptions, []byte, error) {
	consistency, remaining, err := primitive.ReadConsistencyLevel(body)
	if err != nil {
		return nil, body, err
	}
	var flagByte uint8
	flagByte, remaining, err = primitive.ReadByte(remaining)
	if err != nil {
		return nil, body, err
	}
	f := QueryFlag(flagByte)
	o := &QueryOptions{Consistency: consistency}
	if f.has(QueryFlagValues) {
		var count uint16
		if count, remaining, err = primitive.ReadShort(remaining); err != nil {
			return nil, body, err
		}
		if f.has(QueryFlagValuesAreNamed) {
			named := make([]NamedValue, count)
			for i := 0; i < int(count); i++ {
				var name string
				var value []byte
				if name, remaining, err = primitive.ReadString(remaining); err != nil {
					return nil, body, err
				}
				if value, remaining, err = primitive.ReadBytes(remaining); err != nil {
					return nil, body, err
				}
				named[i] = NamedValue{Name: name, Value: value}
			}
			o.NamedValues = named
		} else {
			positional := make([][]byte, count)
			for i := 0; i < int(count); i++ {
				var value []byte
				if value, remaining, err = primitive.ReadBytes(remaining); err != nil {
					return nil, body, err
				}
				positional[i] = value
			}
			o.PositionalValues = positional
		}
	}
	o.SkipMetadata = f.has(QueryFlagSkipMetadata)
	if f.has(QueryFlagPageSize) {
		var pageSize int32
		if pageSize, remaining, err = primitive.ReadInt(remaining); err != nil {
			return nil, body, err
		}
		o.PageSize = &pageSize
	}
	if f.has(QueryFlagPagingState) {
		var pagingState []byte
		if pagingState, remaining, err = primitive.ReadBytes(remaining); err != nil {
			return nil, body, err
		}
		o.PagingState = pagingState
	}
	if f.has(QueryFlagSerialConsistency) {
		var serial primitive.ConsistencyLevel
		if serial, remaining, err = primitive.ReadConsistencyLevel(remaining); err != nil {
			return nil, body, err
		}
		o.SerialConsistency = &serial
	}
	if f.has(QueryFlagDefaultTimestamp) {
		var ts int64
		if ts, remaining, err = primitive.ReadLong(remaining); err != nil {
			return nil, body, err
		}
		o.DefaultTimestamp = &ts
	}
	return o, remaining, nil
}
