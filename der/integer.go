package der

import (
	"encoding/binary"
	"io"
	"unsafe"

	"github.com/pkg/errors"
)

type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer is any fixed-width integer type up to 64 bits. 128 bit values use
// Int128 and Uint128.
type Integer interface {
	Signed | Unsigned
}

func widthOf[T Integer]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

// nativeBytes returns v big-endian at the width of T
func nativeBytes[T Integer](v T) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	return b[8-widthOf[T]():]
}

// stripLeadingZeros drops leading 0x00 octets, keeping at least one.
//
// Only zero octets are removed: a negative value keeps its run of 0xFF
// octets and is written at full width.
func stripLeadingZeros(b []byte) []byte {
	i := 0
	for i < len(b)-1 && b[i] == 0x00 {
		i++
	}
	return b[i:]
}

// fitContent narrows or widens big-endian content to exactly width octets.
// If signed is set the content is treated as two's complement and sign
// extended; otherwise it is an unsigned magnitude. ok is false if the value
// does not fit.
func fitContent(content []byte, width int, signed bool) (out []byte, ok bool) {
	out = make([]byte, width)

	fill := byte(0x00)
	if len(content) <= width {
		if signed && len(content) > 0 && content[0]&0x80 != 0 {
			fill = 0xFF
		}
		pad := width - len(content)
		for i := 0; i < pad; i++ {
			out[i] = fill
		}
		copy(out[pad:], content)
		return out, true
	}

	excess := len(content) - width
	if signed && content[excess]&0x80 != 0 {
		fill = 0xFF
	}
	for _, b := range content[:excess] {
		if b != fill {
			return nil, false
		}
	}
	copy(out, content[excess:])
	return out, true
}

func encodeInteger(w io.Writer, native []byte) (int, error) {
	return write(w, appendInteger(nil, native))
}

func appendInteger(buf []byte, native []byte) []byte {
	content := stripLeadingZeros(native)
	buf = append(buf, TagInteger.Value())
	buf = Length{uint32(len(content))}.AppendTo(buf)
	return append(buf, content...)
}

// decodeInteger reads an INTEGER TLV and returns its value as exactly width
// big-endian octets. For a signed target, content shorter than width is
// read as an unsigned magnitude and only content at least width octets long
// is sign extended.
func decodeInteger(c *Cursor, width int, signed bool) ([]byte, error) {
	start := c.Offset()

	if err := ExpectTag(c, TagInteger); err != nil {
		return nil, err
	}

	l, err := DecodeLength(c)
	if err != nil {
		c.Seek(start)
		return nil, err
	}

	content, err := c.Next(l.Int())
	if err != nil {
		c.Seek(start)
		return nil, err
	}

	out, ok := fitContent(content, width, signed && len(content) >= width)
	if !ok {
		c.Seek(start)
		return nil, newError(KindIntValueTooLarge, start,
			errors.Errorf("%d content octets do not fit in %d bits", len(content), width*8))
	}
	return out, nil
}

func uint64FromBytes(b []byte) uint64 {
	var full [8]byte
	copy(full[8-len(b):], b)
	return binary.BigEndian.Uint64(full[:])
}

// EncodeInt writes v as a DER INTEGER, returning the number of octets written
func EncodeInt[T Integer](w io.Writer, v T) (int, error) {
	return encodeInteger(w, nativeBytes(v))
}

// AppendInt appends v as a DER INTEGER to buf
func AppendInt[T Integer](buf []byte, v T) []byte {
	return appendInteger(buf, nativeBytes(v))
}

// EncodedIntLen returns the number of octets EncodeInt will write for v
func EncodedIntLen[T Integer](v T) int {
	return 2 + len(stripLeadingZeros(nativeBytes(v)))
}

// DecodeInt reads a DER INTEGER into a signed type
func DecodeInt[T Signed](c *Cursor) (T, error) {
	b, err := decodeInteger(c, widthOf[T](), true)
	if err != nil {
		return 0, err
	}
	return T(uint64FromBytes(b)), nil
}

// DecodeUint reads a DER INTEGER into an unsigned type
func DecodeUint[T Unsigned](c *Cursor) (T, error) {
	b, err := decodeInteger(c, widthOf[T](), false)
	if err != nil {
		return 0, err
	}
	return T(uint64FromBytes(b)), nil
}
