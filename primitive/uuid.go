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
	"github.com/google/uuid"
)

// LengthOfUuid is the fixed wire length of a [uuid]: 16 raw bytes, no length prefix.
const LengthOfUuid = 16

// UUID is the [uuid] wire primitive, used for a frame's optional tracing id.
type UUID = uuid.UUID

func ReadUuid(source []byte) (decoded UUID, remaining []byte, err error) {
	if len(source) < LengthOfUuid {
		return UUID{}, source, incomplete("[uuid]", LengthOfUuid-len(source))
	}
	decoded, err = uuid.FromBytes(source[:LengthOfUuid])
	if err != nil {
		return UUID{}, source, invalid("[uuid]", err.Error())
	}
	return decoded, source[LengthOfUuid:], nil
}

func WriteUuid(u UUID, dest []byte) []byte {
	copy(dest, u[:])
	return dest[LengthOfUuid:]
}
