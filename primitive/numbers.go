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

import "encoding/binary"

// Lengths, in bytes, of the fixed-width wire primitives.
const (
	LengthOfByte  = 1
	LengthOfShort = 2
	LengthOfInt   = 4
	LengthOfLong  = 8
)

// [byte] is not defined as a distinct wire type by the protocol spec, but every other primitive is
// built out of it.

func ReadByte(source []byte) (decoded uint8, remaining []byte, err error) {
	if len(source) < LengthOfByte {
		return 0, source, incomplete("[byte]", LengthOfByte-len(source))
	}
	return source[0], source[LengthOfByte:], nil
}

func WriteByte(b uint8, dest []byte) []byte {
	dest[0] = b
	return dest[LengthOfByte:]
}

// [short]

func ReadShort(source []byte) (decoded uint16, remaining []byte, err error) {
	if len(source) < LengthOfShort {
		return 0, source, incomplete("[short]", LengthOfShort-len(source))
	}
	return binary.BigEndian.Uint16(source), source[LengthOfShort:], nil
}

func WriteShort(i uint16, dest []byte) []byte {
	binary.BigEndian.PutUint16(dest, i)
	return dest[LengthOfShort:]
}

// [int]

func ReadInt(source []byte) (decoded int32, remaining []byte, err error) {
	if len(source) < LengthOfInt {
		return 0, source, incomplete("[int]", LengthOfInt-len(source))
	}
	return int32(binary.BigEndian.Uint32(source)), source[LengthOfInt:], nil
}

func WriteInt(i int32, dest []byte) []byte {
	binary.BigEndian.PutUint32(dest, uint32(i))
	return dest[LengthOfInt:]
}

// [long]

func ReadLong(source []byte) (decoded int64, remaining []byte, err error) {
	if len(source) < LengthOfLong {
		return 0, source, incomplete("[long]", LengthOfLong-len(source))
	}
	return int64(binary.BigEndian.Uint64(source)), source[LengthOfLong:], nil
}

func WriteLong(l int64, dest []byte) []byte {
	binary.BigEndian.PutUint64(dest, uint64(l))
	return dest[LengthOfLong:]
}
