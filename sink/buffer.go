// Package sink provides io.Writer implementations for exercising encoders
package sink

import "io"

// Buffer is a writer over a fixed caller-provided slice. Writes that do not
// fit are truncated and fail with io.ErrShortWrite.
type Buffer struct {
	buf []byte
	n   int
}

var _ io.Writer = &Buffer{}

func NewBuffer(buf []byte) *Buffer {
	return &Buffer{buf: buf}
}

func (b *Buffer) Write(p []byte) (int, error) {
	n := copy(b.buf[b.n:], p)
	b.n += n
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// Bytes returns the written portion of the buffer
func (b *Buffer) Bytes() []byte {
	return b.buf[:b.n]
}

func (b *Buffer) Len() int {
	return b.n
}

// Available returns the number of bytes that can still be written
func (b *Buffer) Available() int {
	return len(b.buf) - b.n
}

// Reset zeroes the buffer and rewinds it
func (b *Buffer) Reset() {
	for i := range b.buf {
		b.buf[i] = 0
	}
	b.n = 0
}
