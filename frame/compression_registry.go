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

// RecognizedCompressions is the set of algorithm names this core recognizes in a SUPPORTED response
// and can therefore safely ask for in STARTUP's COMPRESSION option. Applying a negotiated algorithm
// to a frame body is out of scope (see the package's design notes), so this is name recognition only.
var RecognizedCompressions = map[string]struct{}{
	"LZ4":    {},
	"SNAPPY": {},
}

// NegotiateCompression returns the algorithm name to ask for in STARTUP. It only ever returns ok=true
// for an algorithm the caller explicitly asked for in preferred, this core recognizes, AND the server
// advertised in its SUPPORTED response: since nothing in this core applies a negotiated algorithm to
// the wire, auto-picking one the caller never asked for would silently make every subsequent frame
// body unreadable.
func NegotiateCompression(serverAdvertised []string, preferred string) (name string, ok bool) {
	if preferred == "" {
		return "", false
	}
	if _, found := RecognizedCompressions[preferred]; !found {
		return "", false
	}
	for _, candidate := range serverAdvertised {
		if candidate == preferred {
			return preferred, true
		}
	}
	return "", false
}
