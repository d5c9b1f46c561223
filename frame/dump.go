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

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cassandra-proto/cqlproto/primitive"
)

// DumpSink is an optional debugging side effect: every encoded or decoded frame is handed to Dump.
// Guard its use behind a configuration option (see cmd/cqlproto's --debug-dump-* flags); creating the
// target directory is the caller's responsibility.
type DumpSink interface {
	Dump(frameIndex int, opCode primitive.OpCode, encoded []byte) error
}

// FileDumpSink writes one file per frame into Dir, named "NN-XX_OPCODE.bytes" where NN is a
// zero-padded per-connection frame counter and XX is the opcode in hex. Files are created with
// truncation: a rerun against the same directory overwrites, it does not append.
type FileDumpSink struct {
	Dir string
}

func (s *FileDumpSink) Dump(frameIndex int, opCode primitive.OpCode, encoded []byte) error {
	name := fmt.Sprintf("%02d-%02X_%s.bytes", frameIndex, uint8(opCode), opCode.String())
	path := filepath.Join(s.Dir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open frame dump file %s: %w", path, err)
	}
	defer f.Close()
	if _, err := f.Write(encoded); err != nil {
		return fmt.Errorf("cannot write frame dump file %s: %w", path, err)
	}
	return nil
}
