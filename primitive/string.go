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

import (
	"math"
	"unicode/utf8"
)

// MaxStringLength is the largest length a [string] can declare: its length prefix is a 16-bit uint.
const MaxStringLength = math.MaxUint16

// [string]: a 16-bit length prefix followed by that many UTF-8 bytes.

func ReadString(source []byte) (decoded string, remaining []byte, err error) {
	var length uint16
	if length, remaining, err = ReadShort(source); err != nil {
		return "", source, err
	}
	if len(remaining) < int(length) {
		return "", source, incomplete("[string]", int(length)-len(remaining))
	}
	raw := remaining[:length]
	if !utf8.Valid(raw) {
		return "", source, invalid("[string]", "content is not valid UTF-8")
	}
	return string(raw), remaining[length:], nil
}

func WriteString(s string, dest []byte) []byte {
	dest = WriteShort(uint16(len(s)), dest)
	n := copy(dest, s)
	return dest[n:]
}

func LengthOfString(s string) int {
	return LengthOfShort + len(s)
}

// [long string]: a 32-bit length prefix followed by that many UTF-8 bytes.

func ReadLongString(source []byte) (decoded string, remaining []byte, err error) {
	var length int32
	if length, remaining, err = ReadInt(source); err != nil {
		return "", source, err
	}
	if length < 0 {
		return "", source, invalid("[long string]", "negative length")
	}
	if len(remaining) < int(length) {
		return "", source, incomplete("[long string]", int(length)-len(remaining))
	}
	raw := remaining[:length]
	if !utf8.Valid(raw) {
		return "", source, invalid("[long string]", "content is not valid UTF-8")
	}
	return string(raw), remaining[length:], nil
}

func WriteLongString(s string, dest []byte) []byte {
	dest = WriteInt(int32(len(s)), dest)
	n := copy(dest, s)
	return dest[n:]
}

func LengthOfLongString(s string) int {
	return LengthOfInt + len(s)
}
