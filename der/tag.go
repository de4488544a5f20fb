package der

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Class is the two-bit class field of a tag, already shifted into place
type Class uint8

const (
	ClassUniversal       Class = 0x00
	ClassApplication     Class = 0x40
	ClassContextSpecific Class = 0x80
	ClassPrivate         Class = 0xC0
)

const (
	classMask      = 0xC0
	constructedBit = 0x20
	tagNumberMask  = 0x1F
)

// MaxTagNumber is the largest tag number that fits the single-octet form
const MaxTagNumber = 31

func (c Class) String() string {
	switch c {
	case ClassUniversal:
		return "universal"
	case ClassApplication:
		return "application"
	case ClassContextSpecific:
		return "context-specific"
	case ClassPrivate:
		return "private"
	}
	return fmt.Sprintf("Class(0x%02x)", uint8(c))
}

// Tag is a single identifier octet: class in bits 7-6, the constructed flag in
// bit 5 and the tag number in bits 4-0.
//
// The combinators each clear their field before setting it, so calls touching
// different fields commute and the last class combinator wins.
type Tag uint8

// Universal primitive tags
const (
	TagBoolean          Tag = 0x01
	TagInteger          Tag = 0x02
	TagBitString        Tag = 0x03
	TagOctetString      Tag = 0x04
	TagNull             Tag = 0x05
	TagObjectIdentifier Tag = 0x06
)

// NewTag stores number as the raw tag octet. Numbers above 31 overlap the
// class and constructed bits; keeping them in range is up to the caller.
func NewTag(number uint8) Tag {
	return Tag(number)
}

func (t Tag) withClass(c Class) Tag {
	return t&^classMask | Tag(c)
}

func (t Tag) Universal() Tag       { return t.withClass(ClassUniversal) }
func (t Tag) Application() Tag     { return t.withClass(ClassApplication) }
func (t Tag) ContextSpecific() Tag { return t.withClass(ClassContextSpecific) }
func (t Tag) Private() Tag         { return t.withClass(ClassPrivate) }

func (t Tag) Primitive() Tag {
	return t &^ constructedBit
}

func (t Tag) Constructed() Tag {
	return t&^constructedBit | constructedBit
}

// Value returns the raw tag octet
func (t Tag) Value() uint8 {
	return uint8(t)
}

func (t Tag) Class() Class {
	return Class(t & classMask)
}

func (t Tag) Number() uint8 {
	return uint8(t & tagNumberMask)
}

func (t Tag) IsConstructed() bool {
	return t&constructedBit != 0
}

func (t Tag) String() string {
	switch t {
	case TagBoolean:
		return "BOOLEAN"
	case TagInteger:
		return "INTEGER"
	case TagBitString:
		return "BIT STRING"
	case TagOctetString:
		return "OCTET STRING"
	case TagNull:
		return "NULL"
	case TagObjectIdentifier:
		return "OBJECT IDENTIFIER"
	}

	form := "primitive"
	if t.IsConstructed() {
		form = "constructed"
	}
	return fmt.Sprintf("[%s %d %s]", t.Class(), t.Number(), form)
}

// Encode writes the tag octet to w
func (t Tag) Encode(w io.Writer) (int, error) {
	return write(w, []byte{byte(t)})
}

// ReadTag consumes one tag octet
func ReadTag(c *Cursor) (Tag, error) {
	b, err := c.ReadByte()
	return Tag(b), err
}

// ExpectTag consumes one tag octet, failing with KindUnexpectedTag if it is
// not want. The cursor is not advanced on mismatch.
func ExpectTag(c *Cursor, want Tag) error {
	start := c.Offset()
	got, err := ReadTag(c)
	if err != nil {
		return err
	}
	if got != want {
		c.Seek(start)
		return newError(KindUnexpectedTag, start, errors.Errorf("expected %s (0x%02x), have 0x%02x", want, want.Value(), got.Value()))
	}
	return nil
}
