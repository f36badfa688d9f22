// Package stream composes the resp codec with a net.Conn into a
// length-delimited duplex adapter: ReadFrame accumulates bytes from the
// socket until resp.Decode stops reporting resp.ErrIncomplete, and
// WriteFrame drains an encoded Frame back out. This is the boundary
// where partial TCP reads are reconciled -- modeled on framing.Decoder's
// ErrAgain retry loop and packet.go's consumeFramedPackets drain loop in
// the codec this package's shape is borrowed from.
package stream

import (
	"bytes"
	"errors"
	"net"
	"time"

	"github.com/flarekv/respd/resp"
)

const readChunkSize = 4096

// Conn wraps a net.Conn with frame-at-a-time read/write. It owns its
// read buffer exclusively; callers must not share a Conn across
// goroutines.
type Conn struct {
	raw      net.Conn
	readBuf  bytes.Buffer
	writeBuf bytes.Buffer
}

// NewConn wraps raw in a frame-oriented Conn.
func NewConn(raw net.Conn) *Conn {
	return &Conn{raw: raw}
}

// ReadFrame decodes one frame per call. Bytes left over in the read
// buffer after a successful decode stay buffered for the next call, so a
// pipeline of requests arriving in one TCP read is served one frame at a
// time without re-reading the socket.
func (c *Conn) ReadFrame() (resp.Frame, error) {
	for {
		frame, err := resp.Decode(&c.readBuf)
		if err == nil {
			return frame, nil
		}
		if !errors.Is(err, resp.ErrIncomplete) {
			return nil, err
		}

		var chunk [readChunkSize]byte
		n, readErr := c.raw.Read(chunk[:])
		if n > 0 {
			c.readBuf.Write(chunk[:n])
		}
		if readErr != nil {
			return nil, readErr
		}
	}
}

// WriteFrame encodes frame and writes it to the underlying connection in
// a single Write call.
func (c *Conn) WriteFrame(frame resp.Frame) error {
	c.writeBuf.Reset()
	c.writeBuf.Write(frame.Encode())
	_, err := c.raw.Write(c.writeBuf.Bytes())
	return err
}

// Close closes the underlying connection.
func (c *Conn) Close() error {
	return c.raw.Close()
}

// SetReadDeadline forwards to the underlying connection, letting the
// server impose idle timeouts the codec itself is silent on.
func (c *Conn) SetReadDeadline(t time.Time) error {
	return c.raw.SetReadDeadline(t)
}

// SetWriteDeadline forwards to the underlying connection.
func (c *Conn) SetWriteDeadline(t time.Time) error {
	return c.raw.SetWriteDeadline(t)
}

// RemoteAddr forwards to the underlying connection, for logging.
func (c *Conn) RemoteAddr() net.Addr {
	return c.raw.RemoteAddr()
}
