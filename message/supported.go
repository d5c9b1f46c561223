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

package message

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cassandra-proto/cqlproto/primitive"
)

const (
	supportedKeyCqlVersion  = "CQL_VERSION"
	supportedKeyCompression = "COMPRESSION"
)

// Supported is the response advertising the server's option sets, keyed by option name.
type Supported struct {
	Options *primitive.StringMultimap
}

func (m *Supported) IsResponse() bool            { return true }
func (m *Supported) GetOpCode() primitive.OpCode { return primitive.OpCodeSupported }
func (m *Supported) String() string              { return "SUPPORTED" }

// CqlVersions returns the server-advertised CQL_VERSION option values, in advertised order.
func (m *Supported) CqlVersions() primitive.StringList {
	values, _ := m.Options.Get(supportedKeyCqlVersion)
	return values
}

// Compressions returns the server-advertised COMPRESSION option values, in advertised order.
func (m *Supported) Compressions() primitive.StringList {
	values, _ := m.Options.Get(supportedKeyCompression)
	return values
}

// semanticVersion is a minimal x.y.z parse, sufficient to order CQL_VERSION strings; any component
// that isn't a plain non-negative integer makes the whole string fail to parse.
type semanticVersion struct {
	major, minor, patch int
}

func parseSemanticVersion(s string) (semanticVersion, bool) {
	parts := strings.SplitN(s, ".", 3)
	var v semanticVersion
	values := [3]*int{&v.major, &v.minor, &v.patch}
	for i, part := range parts {
		if i >= 3 {
			break
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return semanticVersion{}, false
		}
		*values[i] = n
	}
	return v, true
}

func (v semanticVersion) less(other semanticVersion) bool {
	if v.major != other.major {
		return v.major < other.major
	}
	if v.minor != other.minor {
		return v.minor < other.minor
	}
	return v.patch < other.patch
}

// LatestCqlVersion selects the lexically greatest (by semantic-version ordering) CQL_VERSION entry
// that parses as a semantic version. It fails if the list is empty or none of its entries parse.
func (m *Supported) LatestCqlVersion() (string, error) {
	versions := m.CqlVersions()
	if len(versions) == 0 {
		return "", fmt.Errorf("server did not advertise any CQL_VERSION")
	}
	var best string
	var bestParsed semanticVersion
	found := false
	for _, candidate := range versions {
		parsed, ok := parseSemanticVersion(candidate)
		if !ok {
			continue
		}
		if !found || bestParsed.less(parsed) {
			best = candidate
			bestParsed = parsed
			found = true
		}
	}
	if !found {
		return "", fmt.Errorf("no advertised CQL_VERSION parses as a semantic version: %v", versions)
	}
	return best, nil
}

type supportedCodec struct{}

func (c *supportedCodec) Encode(msg Message, dest []byte) ([]byte, error) {
	supported, ok := msg.(*Supported)
	if !ok {
		return dest, fmt.Errorf("expected *message.Supported, got %T", msg)
	}
	return primitive.WriteStringMultimap(supported.Options, dest), nil
}

func (c *supportedCodec) EncodedLength(msg Message) (int, error) {
	supported, ok := msg.(*Supported)
	if !ok {
		return -1, fmt.Errorf("expected *message.Supported, got %T", msg)
	}
	return primitive.LengthOfStringMultimap(supported.Options), nil
}

func (c *supportedCodec) Decode(body []byte) (Message, int, error) {
	options, remaining, err := primitive.ReadStringMultimap(body)
	if err != nil {
		return nil, 0, err
	}
	return &Supported{Options: options}, len(body) - len(remaining), nil
}

func (c *supportedCodec) GetOpCode() primitive.OpCode { return primitive.OpCodeSupported }

func init() { register(&supportedCodec{}) }
