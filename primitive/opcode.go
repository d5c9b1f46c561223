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

// OpCode is the one-byte header field that identifies the message variant carried by a frame body.
type OpCode uint8

const (
	OpCodeError         = OpCode(0x00)
	OpCodeStartup       = OpCode(0x01)
	OpCodeReady         = OpCode(0x02)
	OpCodeAuthenticate  = OpCode(0x03)
	OpCodeOptions       = OpCode(0x05)
	OpCodeSupported     = OpCode(0x06)
	OpCodeQuery         = OpCode(0x07)
	OpCodeResult        = OpCode(0x08)
	OpCodePrepare       = OpCode(0x09)
	OpCodeExecute       = OpCode(0x0A)
	OpCodeRegister      = OpCode(0x0B)
	OpCodeEvent         = OpCode(0x0C)
	OpCodeBatch         = OpCode(0x0D)
	OpCodeAuthChallenge = OpCode(0x0E)
	OpCodeAuthResponse  = OpCode(0x0F)
	OpCodeAuthSuccess   = OpCode(0x10)
)

func (c OpCode) IsValid() bool {
	switch c {
	case OpCodeError, OpCodeStartup, OpCodeReady, OpCodeAuthenticate, OpCodeOptions, OpCodeSupported,
		OpCodeQuery, OpCodeResult, OpCodePrepare, OpCodeExecute, OpCodeRegister, OpCodeEvent, OpCodeBatch,
		OpCodeAuthChallenge, OpCodeAuthResponse, OpCodeAuthSuccess:
		return true
	}
	return false
}

// IsRequest reports whether this opcode, by protocol convention, only ever appears on request frames.
func (c OpCode) IsRequest() bool {
	switch c {
	case OpCodeStartup, OpCodeOptions, OpCodeQuery, OpCodePrepare, OpCodeExecute, OpCodeRegister,
		OpCodeBatch, OpCodeAuthResponse:
		return true
	}
	return false
}

// IsResponse reports whether this opcode, by protocol convention, only ever appears on response frames.
func (c OpCode) IsResponse() bool {
	switch c {
	case OpCodeError, OpCodeReady, OpCodeAuthenticate, OpCodeSupported, OpCodeResult, OpCodeEvent,
		OpCodeAuthChallenge, OpCodeAuthSuccess:
		return true
	}
	return false
}

func (c OpCode) String() string {
	switch c {
	case OpCodeError:
		return "ERROR"
	case OpCodeStartup:
		return "STARTUP"
	case OpCodeReady:
		return "READY"
	case OpCodeAuthenticate:
		return "AUTHENTICATE"
	case OpCodeOptions:
		return "OPTIONS"
	case OpCodeSupported:
		return "SUPPORTED"
	case OpCodeQuery:
		return "QUERY"
	case OpCodeResult:
		return "RESULT"
	case OpCodePrepare:
		return "PREPARE"
	case OpCodeExecute:
		return "EXECUTE"
	case OpCodeRegister:
		return "REGISTER"
	case OpCodeEvent:
		return "EVENT"
	case OpCodeBatch:
		return "BATCH"
	case OpCodeAuthChallenge:
		return "AUTH_CHALLENGE"
	case OpCodeAuthResponse:
		return "AUTH_RESPONSE"
	case OpCodeAuthSuccess:
		return "AUTH_SUCCESS"
	}
	return fmt.Sprintf("OpCode ? [%#.2x]", uint8(c))
}
