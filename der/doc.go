// package der provides the primitive TLV codec for DER (the canonical subset
// of ASN.1 BER): length headers, tag octets and fixed-width integers.
//
// Encoding goes to any io.Writer and always produces the shortest length
// header. Decoding reads from a Cursor over an in-memory buffer:
//
//	var buf bytes.Buffer
//	der.EncodeInt(&buf, int32(1234))
//
//	c := der.NewCursor(buf.Bytes())
//	v, err := der.DecodeInt[int32](c)
//
// Integer content has leading 0x00 octets removed down to a single octet.
// Leading 0xFF octets of negative values are kept, so a negative value is
// always written at the full width of its type. Decoding is lenient about
// non-minimal input.
//
// All failures are *Error values; compare them with errors.Is against
// ErrIntValueTooLarge, ErrInvalidEncoding, ErrIO, ErrUnexpectedEOF and
// ErrUnexpectedTag, or use IsKind.
package der
