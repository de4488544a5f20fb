// Package tlv provides utilities for working with DER TLV
// structures of any type
package tlv

import (
	"io"
	"math"

	"github.com/erincandescent/derkit/der"
	"github.com/pkg/errors"
)

// Put appends a TLV to a buffer
func Put(buf []byte, tag der.Tag, data []byte) ([]byte, error) {
	buf = append(buf, tag.Value())

	switch {
	case len(data) == 0:
		buf = append(buf, 0x00)
	case uint64(len(data)) > math.MaxUint32:
		return nil, &der.Error{Kind: der.KindIntValueTooLarge, Offset: -1, Err: errors.New("TLV too long")}
	default:
		l, err := der.NewLength(uint32(len(data)))
		if err != nil {
			return nil, err
		}
		buf = l.AppendTo(buf)
	}

	return append(buf, data...), nil
}

// Write writes a TLV to w, returning the number of bytes written
func Write(w io.Writer, tag der.Tag, data []byte) (int, error) {
	buf, err := Put(nil, tag, data)
	if err != nil {
		return 0, err
	}

	n, err := w.Write(buf)
	if err == nil && n < len(buf) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return n, &der.Error{Kind: der.KindIO, Offset: -1, Err: err}
	}
	return n, nil
}

// nextLength reads a length header, accepting the bare 0x00 used for empty
// content
func nextLength(c *der.Cursor) (int, error) {
	if b, err := c.PeekByte(); err != nil {
		return 0, err
	} else if b == 0x00 {
		_, err = c.ReadByte()
		return 0, err
	}

	l, err := der.DecodeLength(c)
	if err != nil {
		return 0, err
	}
	return l.Int(), nil
}

// Next reads the next TLV from the cursor. On error the cursor is left where
// it was.
func Next(c *der.Cursor) (tag der.Tag, body []byte, err error) {
	start := c.Offset()
	defer func() {
		if err != nil {
			c.Seek(start)
		}
	}()

	tag, err = der.ReadTag(c)
	if err != nil {
		return
	}

	length, err := nextLength(c)
	if err != nil {
		return
	}

	body, err = c.Next(length)
	return
}

// Get reads a TLV with a specific tag. If optional is set and the next
// element has a different tag (or there is no next element), nil is returned
// and the cursor does not move.
func Get(c *der.Cursor, tag der.Tag, optional bool) ([]byte, error) {
	start := c.Offset()

	if optional {
		if c.Remaining() == 0 {
			return nil, nil
		}
		if b, _ := c.PeekByte(); der.Tag(b) != tag {
			return nil, nil
		}
	}

	if err := der.ExpectTag(c, tag); err != nil {
		return nil, err
	}
	c.Seek(start)

	_, body, err := Next(c)
	return body, err
}

// Element is one decoded TLV
type Element struct {
	Offset    int
	Tag       der.Tag
	HeaderLen int
	Content   []byte
	Children  []Element
}

// Parse walks data as a sequence of TLVs, descending into constructed
// elements. Trailing bytes that do not form a TLV are an error.
func Parse(data []byte) ([]Element, error) {
	return parse(data, 0)
}

func parse(data []byte, base int) ([]Element, error) {
	var elems []Element
	c := der.NewCursor(data)

	for c.Remaining() > 0 {
		start := c.Offset()
		tag, body, err := Next(c)
		if err != nil {
			var derr *der.Error
			if errors.As(err, &derr) && derr.Offset >= 0 {
				derr.Offset += base
			}
			return nil, errors.Wrapf(err, "parsing element at offset %d", base+start)
		}

		elem := Element{
			Offset:    base + start,
			Tag:       tag,
			HeaderLen: c.Offset() - start - len(body),
			Content:   body,
		}
		if tag.IsConstructed() && len(body) > 0 {
			elem.Children, err = parse(body, elem.Offset+elem.HeaderLen)
			if err != nil {
				return nil, err
			}
		}
		elems = append(elems, elem)
	}

	return elems, nil
}
