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

import "fmt"

// ProtocolVersion is the low 7 bits of the header's version-and-direction byte.
type ProtocolVersion uint8

// ProtocolVersion3 is the only version this core negotiates and decodes.
const ProtocolVersion3 = ProtocolVersion(0x03)

const versionMask = 0x7F

func (v ProtocolVersion) IsSupported() bool {
	return v == ProtocolVersion3
}

func (v ProtocolVersion) String() string {
	if v == ProtocolVersion3 {
		return "ProtocolVersion 3"
	}
	return fmt.Sprintf("ProtocolVersion ? [%#.2x]", uint8(v))
}

// HeaderFlag holds the bits of the header's flags byte. Only bits 0 and 1 are interpreted by this
// core; the rest are preserved verbatim across decode/encode round trips.
type HeaderFlag uint8

const (
	HeaderFlagCompressed = HeaderFlag(0x01)
	HeaderFlagTracing    = HeaderFlag(0x02)
)

func (f HeaderFlag) Has(bit HeaderFlag) bool {
	return f&bit != 0
}

func (f HeaderFlag) Add(bit HeaderFlag) HeaderFlag {
	return f | bit
}

func (f HeaderFlag) Remove(bit HeaderFlag) HeaderFlag {
	return f &^ bit
}
