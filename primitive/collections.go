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

package primitive

import "math"

// MaxElementCount is the largest element count a 16-bit-prefixed container (string-list, string-map,
// string-multimap, or the QUERY values section) can declare.
const MaxElementCount = math.MaxUint16

// StringList is the [string list] container: a 16-bit count followed by that many [string]s.
type StringList []string

// NewStringList is the checked constructor: it fails if values would not fit in a 16-bit count.
func NewStringList(values []string) (StringList, error) {
	if len(values) > MaxElementCount {
		return nil, &MaximumLengthExceededError{What: "[string list]", Got: len(values), Max: MaxElementCount}
	}
	return NewStringListUnchecked(values), nil
}

// NewStringListUnchecked is the unchecked constructor, for callers (such as a decoder that has just
// read a count known to fit) that have already established the length precondition.
func NewStringListUnchecked(values []string) StringList {
	return StringList(values)
}

func ReadStringList(source []byte) (decoded StringList, remaining []byte, err error) {
	var count uint16
	if count, remaining, err = ReadShort(source); err != nil {
		return nil, source, err
	}
	values := make([]string, count)
	for i := 0; i < int(count); i++ {
		var value string
		if value, remaining, err = ReadString(remaining); err != nil {
			return nil, source, err
		}
		values[i] = value
	}
	return NewStringListUnchecked(values), remaining, nil
}

func WriteStringList(l StringList, dest []byte) []byte {
	dest = WriteShort(uint16(len(l)), dest)
	for _, value := range l {
		dest = WriteString(value, dest)
	}
	return dest
}

func LengthOfStringList(l StringList) int {
	length := LengthOfShort
	for _, value := range l {
		length += LengthOfString(value)
	}
	return length
}

// StringMap is the [string map] container: a 16-bit count followed by that many (string, string) pairs.
// Key order is preserved so that encode(decode(m)) reproduces the original bytes.
type StringMap struct {
	keys   []string
	values map[string]string
}

func NewStringMap(keys []string, values map[string]string) (*StringMap, error) {
	if len(keys) > MaxElementCount {
		return nil, &MaximumLengthExceededError{What: "[string map]", Got: len(keys), Max: MaxElementCount}
	}
	return NewStringMapUnchecked(keys, values), nil
}

func NewStringMapUnchecked(keys []string, values map[string]string) *StringMap {
	return &StringMap{keys: keys, values: values}
}

func (m *StringMap) Keys() []string {
	return m.keys
}

func (m *StringMap) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *StringMap) Len() int {
	return len(m.keys)
}

func ReadStringMap(source []byte) (decoded *StringMap, remaining []byte, err error) {
	var count uint16
	if count, remaining, err = ReadShort(source); err != nil {
		return nil, source, err
	}
	keys := make([]string, count)
	values := make(map[string]string, count)
	for i := 0; i < int(count); i++ {
		var key, value string
		if key, remaining, err = ReadString(remaining); err != nil {
			return nil, source, err
		}
		if value, remaining, err = ReadString(remaining); err != nil {
			return nil, source, err
		}
		keys[i] = key
		values[key] = value
	}
	return NewStringMapUnchecked(keys, values), remaining, nil
}

func WriteStringMap(m *StringMap, dest []byte) []byte {
	dest = WriteShort(uint16(len(m.keys)), dest)
	for _, key := range m.keys {
		dest = WriteString(key, dest)
		dest = WriteString(m.values[key], dest)
	}
	return dest
}

func LengthOfStringMap(m *StringMap) int {
	length := LengthOfShort
	for _, key := range m.keys {
		length += LengthOfString(key) + LengthOfString(m.values[key])
	}
	return length
}

// StringMultimap is the [string multimap] container: a 16-bit count followed by that many
// (string, string-list) pairs.
type StringMultimap struct {
	keys   []string
	values map[string]StringList
}

func NewStringMultimap(keys []string, values map[string]StringList) (*StringMultimap, error) {
	if len(keys) > MaxElementCount {
		return nil, &MaximumLengthExceededError{What: "[string multimap]", Got: len(keys), Max: MaxElementCount}
	}
	return NewStringMultimapUnchecked(keys, values), nil
}

func NewStringMultimapUnchecked(keys []string, values map[string]StringList) *StringMultimap {
	return &StringMultimap{keys: keys, values: values}
}

func (m *StringMultimap) Keys() []string {
	return m.keys
}

func (m *StringMultimap) Get(key string) (StringList, bool) {
	v, ok := m.values[key]
	return v, ok
}

func ReadStringMultimap(source []byte) (decoded *StringMultimap, remaining []byte, err error) {
	var count uint16
	if count, remaining, err = ReadShort(source); err != nil {
		return nil, source, err
	}
	keys := make([]string, count)
	values := make(map[string]StringList, count)
	for i := 0; i < int(count); i++ {
		var key string
		var list StringList
		if key, remaining, err = ReadString(remaining); err != nil {
			return nil, source, err
		}
		if list, remaining, err = ReadStringList(remaining); err != nil {
			return nil, source, err
		}
		keys[i] = key
		values[key] = list
	}
	return NewStringMultimapUnchecked(keys, values), remaining, nil
}

func WriteStringMultimap(m *StringMultimap, dest []byte) []byte {
	dest = WriteShort(uint16(len(m.keys)), dest)
	for _, key := range m.keys {
		dest = WriteString(key, dest)
		dest = WriteStringList(m.values[key], dest)
	}
	return dest
}

func LengthOfStringMultimap(m *StringMultimap) int {
	length := LengthOfShort
	for _, key := range m.keys {
		length += LengthOfString(key) + LengthOfStringList(m.values[key])
	}
	return length
}
