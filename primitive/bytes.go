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

// [bytes]: a 32-bit signed length prefix followed by that many raw bytes. Length -1 is the
// protocol's encoding of a null value, distinct from a present-but-empty (length 0) value.

// ReadBytes decodes a [bytes] value. A nil return with no error means the wire value was null.
func ReadBytes(source []byte) (decoded []byte, remaining []byte, err error) {
	var length int32
	if length, remaining, err = ReadInt(source); err != nil {
		return nil, source, err
	}
	if length < -1 {
		return nil, source, invalid("[bytes]", "length less than -1")
	}
	if length == -1 {
		return nil, remaining, nil
	}
	if len(remaining) < int(length) {
		return nil, source, incomplete("[bytes]", int(length)-len(remaining))
	}
	decoded = make([]byte, length)
	copy(decoded, remaining[:length])
	return decoded, remaining[length:], nil
}

// WriteBytes encodes a [bytes] value. A nil slice is encoded as the null value (length -1); a
// non-nil empty slice is encoded as present-but-empty (length 0).
func WriteBytes(b []byte, dest []byte) []byte {
	if b == nil {
		dest = WriteInt(-1, dest)
		return dest
	}
	dest = WriteInt(int32(len(b)), dest)
	n := copy(dest, b)
	return dest[n:]
}

func LengthOfBytes(b []byte) int {
	return LengthOfInt + len(b)
}

// IsNullBytes reports whether decoding at this position would yield the [bytes] null encoding,
// without consuming the buffer.
func IsNullBytes(source []byte) bool {
	if len(source) < LengthOfInt {
		return false
	}
	length, _, err := ReadInt(source)
	return err == nil && length == -1
}
