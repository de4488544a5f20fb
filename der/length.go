package der

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

const (
	lengthLongForm  = 0x80
	maxShortForm    = 127
	maxLengthOctets = 4
)

// Length is the positive octet count of a TLV's content.
//
// The zero Length is not valid; use NewLength. Zero-length content is written
// by the tlv package as a bare 0x00 octet without going through Length.
type Length struct {
	n uint32
}

// NewLength constructs a Length. n must be at least 1.
func NewLength(n uint32) (Length, error) {
	if n == 0 {
		return Length{}, newError(KindInvalidEncoding, -1, errors.New("length must be positive"))
	}
	return Length{n}, nil
}

// Value returns the octet count
func (l Length) Value() uint32 {
	return l.n
}

// Int returns the octet count as an int, for slicing
func (l Length) Int() int {
	return int(l.n)
}

// EncodedLen returns the number of octets Encode will write
func (l Length) EncodedLen() int {
	if l.n <= maxShortForm {
		return 1
	}
	return 1 + len(stripLeadingZeros(l.bytes()))
}

func (l Length) bytes() []byte {
	var b [maxLengthOctets]byte
	binary.BigEndian.PutUint32(b[:], l.n)
	return b[:]
}

// AppendTo appends the DER encoding of the length to buf
func (l Length) AppendTo(buf []byte) []byte {
	if l.n <= maxShortForm {
		return append(buf, byte(l.n))
	}

	// Long form, use the smallest encoding for the value
	b := stripLeadingZeros(l.bytes())
	buf = append(buf, lengthLongForm|byte(len(b)))
	return append(buf, b...)
}

// Encode writes the DER encoding of the length to w, returning the number of
// octets written
func (l Length) Encode(w io.Writer) (int, error) {
	var scratch [1 + maxLengthOctets]byte
	return write(w, l.AppendTo(scratch[:0]))
}

// DecodeLength reads a length header from c.
//
// Long form values are accepted even when not minimally encoded. A value that
// does not fit in 32 bits fails with KindIntValueTooLarge; a zero value
// (including the indefinite-length marker 0x80) fails with
// KindInvalidEncoding.
func DecodeLength(c *Cursor) (Length, error) {
	start := c.Offset()

	first, err := c.ReadByte()
	if err != nil {
		return Length{}, err
	}

	n := uint32(first)
	if first > maxShortForm {
		count := int(first &^ lengthLongForm)
		octets, err := c.Next(count)
		if err != nil {
			c.Seek(start)
			return Length{}, err
		}

		fitted, ok := fitContent(octets, maxLengthOctets, false)
		if !ok {
			c.Seek(start)
			return Length{}, newError(KindIntValueTooLarge, start, errors.Errorf("%d length octets", count))
		}
		n = binary.BigEndian.Uint32(fitted)
	}

	if n == 0 {
		c.Seek(start)
		return Length{}, newError(KindInvalidEncoding, start, errors.Errorf("zero length header 0x%02x", first))
	}
	return Length{n}, nil
}

// write sends b to w in one call, translating failures into KindIO
func write(w io.Writer, b []byte) (int, error) {
	n, err := w.Write(b)
	if err == nil && n < len(b) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return n, ioError(err)
	}
	return n, nil
}
