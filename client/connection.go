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

// Package client drives a single connection: the startup handshake, then stream-id multiplexed
// request/response correlation, and a small streaming facade over RESULT rows. One goroutine owns the
// decoder and is the only reader of the transport; callers write their own request frames to the
// transport under a mutex and receive replies through channels.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/cassandra-proto/cqlproto/frame"
	"github.com/cassandra-proto/cqlproto/transport"
)

const readBufferSize = 16 * 1024

// Connection is a single multiplexed connection to a native-protocol server. It must be built
// through Connect, ConnectAndHandshake or Wrap; the zero value is not usable.
type Connection struct {
	conn      transport.Conn
	decoder   *frame.Decoder
	streamIds *streamIdPool

	writeMu sync.Mutex

	pendingMu sync.Mutex
	pending   map[int16]chan *frame.Frame

	// Events receives every frame carrying a negative (broadcast) stream id. It is never written to
	// by a pending call's Call, and it is closed when the connection is closed.
	Events chan *frame.Frame

	encodedDump  frame.DumpSink
	encodedCount int

	closed   int32
	closeErr error
	done     chan struct{}
}

// Wrap builds a Connection around an already-established transport, without performing a
// handshake and without frame dump sinks. Tests use it to drive both ends of an in-memory pipe.
func Wrap(conn transport.Conn) *Connection {
	return newConnection(conn, nil, nil)
}

// newConnection installs decodedDump and encodedDump before starting readLoop: the decoder's dump
// sink is read by Next from that goroutine, so setting it after the goroutine starts would race.
func newConnection(conn transport.Conn, decodedDump, encodedDump frame.DumpSink) *Connection {
	decoder := frame.NewDecoder()
	if decodedDump != nil {
		decoder.SetDumpSink(decodedDump)
	}
	c := &Connection{
		conn:        conn,
		decoder:     decoder,
		streamIds:   newStreamIdPool(),
		pending:     make(map[int16]chan *frame.Frame),
		Events:      make(chan *frame.Frame, 32),
		encodedDump: encodedDump,
		done:        make(chan struct{}),
	}
	go c.readLoop()
	return c
}

func (c *Connection) String() string {
	return fmt.Sprintf("cql connection [%v]", c.conn.RemoteAddr())
}

// Call sends a request and waits for the response carrying the same stream id, or until ctx is
// done. If ctx is done before a response arrives, the stream id is retired without affecting the
// connection: a late response (if one ever arrives) is simply dropped.
func (c *Connection) Call(ctx context.Context, req *frame.Frame) (*frame.Frame, error) {
	if atomic.LoadInt32(&c.closed) == 1 {
		return nil, &ConnectionClosedError{Cause: c.closeErr}
	}
	streamId, err := c.streamIds.borrow()
	if err != nil {
		return nil, err
	}
	req.Header.StreamId = streamId

	replies := make(chan *frame.Frame, 1)
	c.pendingMu.Lock()
	c.pending[streamId] = replies
	c.pendingMu.Unlock()

	release := func() {
		c.pendingMu.Lock()
		delete(c.pending, streamId)
		c.pendingMu.Unlock()
		c.streamIds.release(streamId)
	}

	if err := c.send(req); err != nil {
		release()
		return nil, err
	}

	select {
	case resp, ok := <-replies:
		release()
		if !ok {
			return nil, &ConnectionClosedError{Cause: c.closeErr}
		}
		return resp, nil
	case <-ctx.Done():
		release()
		return nil, ctx.Err()
	case <-c.done:
		release()
		return nil, &ConnectionClosedError{Cause: c.closeErr}
	}
}

func (c *Connection) send(f *frame.Frame) error {
	encoded, err := frame.Encode(f)
	if err != nil {
		return fmt.Errorf("cannot encode frame: %w", err)
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if c.encodedDump != nil {
		c.encodedCount++
		if dumpErr := c.encodedDump.Dump(c.encodedCount, f.Header.OpCode, encoded); dumpErr != nil {
			log.Warn().Err(dumpErr).Msgf("%v: encoded frame dump failed", c)
		}
	}
	_, err = c.conn.Write(encoded)
	if err != nil {
		return fmt.Errorf("cannot write frame: %w", err)
	}
	return nil
}

// Close closes the underlying transport and fails every call still awaiting a response.
func (c *Connection) Close() error {
	return c.closeWithCause(nil)
}

func (c *Connection) closeWithCause(cause error) error {
	if !atomic.CompareAndSwapInt32(&c.closed, 0, 1) {
		return nil
	}
	c.closeErr = cause
	close(c.done)
	err := c.conn.Close()

	c.pendingMu.Lock()
	for streamId, ch := range c.pending {
		delete(c.pending, streamId)
		close(ch)
	}
	c.pendingMu.Unlock()
	close(c.Events)
	return err
}

func (c *Connection) readLoop() {
	buf := make([]byte, readBufferSize)
	for {
		f, err := c.decoder.Next()
		if errors.Is(err, frame.ErrNeedMoreData) {
			n, readErr := c.conn.Read(buf)
			if n > 0 {
				c.decoder.Append(buf[:n])
			}
			if readErr != nil {
				if !errors.Is(readErr, io.EOF) {
					log.Error().Err(readErr).Msgf("%v: read failed", c)
				}
				_ = c.closeWithCause(readErr)
				return
			}
			continue
		}
		if err != nil {
			// A structural decode error leaves the decoder unable to say which stream id it belonged
			// to (see frame.Decoder.Next): there is no single caller to blame, so the whole connection
			// is failed, matching the "otherwise" branch of the core's decode-error handling.
			log.Error().Err(err).Msgf("%v: decode failed, closing connection", c)
			_ = c.closeWithCause(err)
			return
		}
		c.dispatch(f)
	}
}

func (c *Connection) dispatch(f *frame.Frame) {
	if f.Header.StreamId < 0 {
		select {
		case c.Events <- f:
		default:
			log.Warn().Msgf("%v: event channel full, dropping event frame", c)
		}
		return
	}
	c.pendingMu.Lock()
	ch, found := c.pending[f.Header.StreamId]
	c.pendingMu.Unlock()
	if !found {
		log.Warn().Msgf("%v: response for unknown or retired stream id %d, dropping", c, f.Header.StreamId)
		return
	}
	select {
	case ch <- f:
	default:
		log.Warn().Msgf("%v: stream id %d already has a pending reply, dropping", c, f.Header.StreamId)
	}
}
