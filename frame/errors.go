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

package frame

import "fmt"

// InvalidDataLengthError is returned when a header decode is attempted on fewer than HeaderEncodedLength bytes.
type InvalidDataLengthError struct {
	Got int
}

func (e *InvalidDataLengthError) Error() string {
	return fmt.Sprintf("invalid header length: need %d bytes, got %d", HeaderEncodedLength, e.Got)
}

// UnsupportedVersionError is returned when the header's version byte does not carry protocol version 3.
type UnsupportedVersionError struct {
	Got uint8
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported protocol version: %#.2x", e.Got)
}

// InvalidOpCodeError is returned when the header's opcode byte is not one of the enumerated opcodes.
type InvalidOpCodeError struct {
	Got uint8
}

func (e *InvalidOpCodeError) Error() string {
	return fmt.Sprintf("invalid opcode: %#.2x", e.Got)
}

// BodyLengthMismatchError is returned when a message decode consumes a different number of bytes than
// the header declared for the body.
type BodyLengthMismatchError struct {
	Declared int
	Consumed int
}

func (e *BodyLengthMismatchError) Error() string {
	return fmt.Sprintf("body length mismatch: header declared %d bytes, decoder consumed %d", e.Declared, e.Consumed)
}
