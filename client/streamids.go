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

package client

// MaxStreamId is the highest request stream id the wire format allows in a single byte-signed
// 16-bit field; -1 is reserved for the server-event broadcast id and is never allocated here.
const MaxStreamId = 32767

// streamIdPool is a channel-backed ring of the 0..MaxStreamId request stream ids. Borrowing when
// the ring is empty returns immediately with a BackpressureError: it never blocks and never panics.
type streamIdPool struct {
	ids    chan int16
	closed chan struct{}
}

func newStreamIdPool() *streamIdPool {
	p := &streamIdPool{
		ids:    make(chan int16, MaxStreamId+1),
		closed: make(chan struct{}),
	}
	for i := 0; i <= MaxStreamId; i++ {
		p.ids <- int16(i)
	}
	return p
}

func (p *streamIdPool) borrow() (int16, error) {
	select {
	case id := <-p.ids:
		return id, nil
	default:
		return 0, &BackpressureError{MaxInFlight: MaxStreamId + 1}
	}
}

func (p *streamIdPool) release(id int16) {
	select {
	case p.ids <- id:
	default:
		// pool already holds every id (double release); drop silently rather than block or panic
	}
}
