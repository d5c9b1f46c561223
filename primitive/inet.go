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
	"fmt"
	"net"
)

// Inet is the [inet] wire type: an [inetaddr] (a one-byte length, 4 or 16, followed by that many
// address bytes) plus a 4-byte port number. It is rarer than the other collection primitives —
// it names the affected node's address in STATUS_CHANGE and TOPOLOGY_CHANGE EVENT messages (see
// message.StatusChangeEvent, message.TopologyChangeEvent).
type Inet struct {
	Addr net.IP
	Port int32
}

func (i Inet) String() string {
	return fmt.Sprintf("%v:%v", i.Addr, i.Port)
}

// ReadInetAddr reads a bare [inetaddr]: no port.
func ReadInetAddr(source []byte) (addr net.IP, remaining []byte, err error) {
	length, remaining, err := ReadByte(source)
	if err != nil {
		return nil, source, err
	}
	switch length {
	case net.IPv4len:
		if len(remaining) < net.IPv4len {
			return nil, source, incomplete("[inetaddr] (IPv4)", net.IPv4len-len(remaining))
		}
		return net.IPv4(remaining[0], remaining[1], remaining[2], remaining[3]), remaining[net.IPv4len:], nil
	case net.IPv6len:
		if len(remaining) < net.IPv6len {
			return nil, source, incomplete("[inetaddr] (IPv6)", net.IPv6len-len(remaining))
		}
		decoded := make(net.IP, net.IPv6len)
		copy(decoded, remaining[:net.IPv6len])
		return decoded, remaining[net.IPv6len:], nil
	default:
		return nil, source, invalid("[inetaddr]", fmt.Sprintf("unsupported address length %d", length))
	}
}

// WriteInetAddr writes a bare [inetaddr]: no port.
func WriteInetAddr(addr net.IP, dest []byte) []byte {
	if v4 := addr.To4(); v4 != nil {
		dest = WriteByte(net.IPv4len, dest)
		n := copy(dest, v4)
		return dest[n:]
	}
	v6 := addr.To16()
	dest = WriteByte(net.IPv6len, dest)
	n := copy(dest, v6)
	return dest[n:]
}

// LengthOfInetAddr returns the encoded size of a bare [inetaddr].
func LengthOfInetAddr(addr net.IP) int {
	if addr.To4() != nil {
		return LengthOfByte + net.IPv4len
	}
	return LengthOfByte + net.IPv6len
}

// ReadInet reads an [inet]: [inetaddr] followed by a 4-byte port.
func ReadInet(source []byte) (decoded *Inet, remaining []byte, err error) {
	addr, remaining, err := ReadInetAddr(source)
	if err != nil {
		return nil, source, err
	}
	port, remaining, err := ReadInt(remaining)
	if err != nil {
		return nil, source, err
	}
	return &Inet{Addr: addr, Port: port}, remaining, nil
}

// WriteInet writes an [inet]: [inetaddr] followed by a 4-byte port.
func WriteInet(i *Inet, dest []byte) []byte {
	dest = WriteInetAddr(i.Addr, dest)
	return WriteInt(i.Port, dest)
}

// LengthOfInet returns the encoded size of an [inet].
func LengthOfInet(i *Inet) int {
	return LengthOfInetAddr(i.Addr) + LengthOfInt
}
