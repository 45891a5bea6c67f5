// Package httpconn adapts a raw net.Conn to textcompat.Conn so HTTP
// responses can be read through a textcompat.ResponseReader.
package httpconn

import (
	"bufio"
	"fmt"
	"net"
	"net/http"

	"github.com/unkn0wn-root/textcompat"
)

const (
	defaultBufferSize = 64 << 10
	// bufio's floor; with it nearly every read goes to the socket.
	unbufferedSize = 16
)

type Options struct {
	BufferSize int               // buffered read size; 0 => 64 KiB
	Logger     textcompat.Logger // nil => NopLogger
}

// Conn writes one request on GetResponse and reads its response.
// It is not safe for concurrent use.
type Conn struct {
	nc      net.Conn
	req     *http.Request
	bufSize int
	log     textcompat.Logger

	lastReadSize int
}

var _ textcompat.Conn[*http.Response] = (*Conn)(nil)

// New returns a Conn for req over nc. req may be nil when the request has
// already been written by the caller.
func New(nc net.Conn, req *http.Request, opts Options) *Conn {
	c := &Conn{nc: nc, req: req, bufSize: opts.BufferSize, log: opts.Logger}
	if c.bufSize <= 0 {
		c.bufSize = defaultBufferSize
	}
	if c.log == nil {
		c.log = textcompat.NopLogger{}
	}
	return c
}

// GetResponse sends the request (if any) and reads the response. The
// buffering hint selects a BufferSize reader; without it the response is
// read with the smallest reader bufio allows.
func (c *Conn) GetResponse(opts ...textcompat.ResponseOption) (*http.Response, error) {
	if c == nil {
		return nil, textcompat.ErrNilConn
	}
	ro := textcompat.ResponseOptionsOf(opts...)

	if c.req != nil {
		if err := c.req.Write(c.nc); err != nil {
			return nil, fmt.Errorf("httpconn: write request: %w", err)
		}
	}

	size := unbufferedSize
	if ro.Buffering {
		size = c.bufSize
	}
	c.lastReadSize = size
	c.log.Debug("httpconn: reading response", textcompat.Fields{
		"buffering": ro.Buffering,
		"read_size": size,
	})

	resp, err := http.ReadResponse(bufio.NewReaderSize(c.nc, size), c.req)
	if err != nil {
		return nil, fmt.Errorf("httpconn: read response: %w", err)
	}
	return resp, nil
}

// ReadSize reports the reader size used by the last GetResponse.
func (c *Conn) ReadSize() int { return c.lastReadSize }
