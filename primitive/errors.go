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

// IncompleteError is returned by a decode function when the source buffer does not hold enough
// bytes to complete the decode. ExpectedMin is the minimum number of additional bytes the caller
// should wait for before retrying the decode.
type IncompleteError struct {
	What        string
	ExpectedMin int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("cannot decode %s: need at least %d more byte(s)", e.What, e.ExpectedMin)
}

// InvalidError is returned when a length prefix or enum code makes decoding impossible, regardless
// of how many more bytes might arrive (e.g. a string-list count implying more strings than could ever
// fit, or an unrecognized consistency level code).
type InvalidError struct {
	What   string
	Reason string
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("cannot decode %s: %s", e.What, e.Reason)
}

// MaximumLengthExceededError is returned by checked constructors when a runtime length exceeds the
// wire type's maximum representable length.
type MaximumLengthExceededError struct {
	What     string
	Got      int
	Max      int
}

func (e *MaximumLengthExceededError) Error() string {
	return fmt.Sprintf("%s length %d exceeds maximum of %d", e.What, e.Got, e.Max)
}

func incomplete(what string, expectedMin int) error {
	return &IncompleteError{What: what, ExpectedMin: expectedMin}
}

func invalid(what string, reason string) error {
	return &InvalidError{What: what, Reason: reason}
}
