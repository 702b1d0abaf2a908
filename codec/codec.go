// Package codec implements a byte-order aware binary reader and writer
package codec

import "encoding/binary"
import "math"

import "github.com/pkg/errors"

// ErrTruncated is returned when a read runs past the end of the buffer
var ErrTruncated = errors.New("codec: truncated stream")

// LittleEndian is the byte order of network files
var LittleEndian binary.ByteOrder = binary.LittleEndian

// BigEndian is the byte order of IDX files
var BigEndian binary.ByteOrder = binary.BigEndian

// Writer appends fixed width values to a growable buffer
type Writer struct {
	buf   []byte
	order binary.ByteOrder
}

// NewWriter creates an empty writer using byte order order
func NewWriter(order binary.ByteOrder) *Writer {
	return &Writer{order: order}
}

// EnsureSpace grows the buffer capacity so that n more bytes fit without reallocation
func (w *Writer) EnsureSpace(n int) {
	if n <= 0 || cap(w.buf)-len(w.buf) >= n {
		return
	}
	grown := make([]byte, len(w.buf), len(w.buf)+n)
	copy(grown, w.buf)
	w.buf = grown
}

// WriteUint16 appends v
func (w *Writer) WriteUint16(v uint16) {
	var b [2]byte
	w.order.PutUint16(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// WriteUint32 appends v
func (w *Writer) WriteUint32(v uint32) {
	var b [4]byte
	w.order.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// WriteFloat64 appends the IEEE 754 bits of v
func (w *Writer) WriteFloat64(v float64) {
	var b [8]byte
	w.order.PutUint64(b[:], math.Float64bits(v))
	w.buf = append(w.buf, b[:]...)
}

// Write appends raw bytes
func (w *Writer) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	return len(p), nil
}

// Bytes returns the written bytes. The slice aliases the writer buffer.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written
func (w *Writer) Len() int {
	return len(w.buf)
}

// Cap returns the current buffer capacity
func (w *Writer) Cap() int {
	return cap(w.buf)
}

// Reader consumes fixed width values from a byte slice
type Reader struct {
	buf   []byte
	pos   int
	order binary.ByteOrder
}

// NewReader creates a reader over b using byte order order
func NewReader(b []byte, order binary.ByteOrder) *Reader {
	return &Reader{buf: b, order: order}
}

func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 || len(r.buf)-r.pos < n {
		return nil, errors.Wrapf(ErrTruncated, "need %d bytes at offset %d, have %d", n, r.pos, len(r.buf)-r.pos)
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadUint16 reads a uint16
func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return r.order.Uint16(b), nil
}

// ReadUint32 reads a uint32
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(b), nil
}

// ReadFloat64 reads a float64
func (r *Reader) ReadFloat64() (float64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(r.order.Uint64(b)), nil
}

// Read reads n raw bytes. The returned slice aliases the reader buffer.
func (r *Reader) Read(n int) ([]byte, error) {
	return r.take(n)
}

// Remaining reports the number of unread bytes
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}
