package der

// Cursor reads from an immutable byte slice, tracking the current position.
// Every read is bounds checked and fails with KindUnexpectedEOF instead of
// panicking.
type Cursor struct {
	data   []byte
	offset int
}

// NewCursor creates a cursor positioned at the start of data
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Offset returns the number of bytes consumed so far
func (c *Cursor) Offset() int {
	return c.offset
}

// Remaining returns the number of unread bytes
func (c *Cursor) Remaining() int {
	return len(c.data) - c.offset
}

// Rest returns the unread bytes without consuming them
func (c *Cursor) Rest() []byte {
	return c.data[c.offset:]
}

// ReadByte consumes one byte
func (c *Cursor) ReadByte() (byte, error) {
	b, err := c.PeekByte()
	if err != nil {
		return 0, err
	}
	c.offset++
	return b, nil
}

// PeekByte returns the next byte without consuming it
func (c *Cursor) PeekByte() (byte, error) {
	if c.offset >= len(c.data) {
		return 0, newError(KindUnexpectedEOF, c.offset, nil)
	}
	return c.data[c.offset], nil
}

// Next consumes n bytes, returning them as a sub-slice of the input.
// The cursor does not move if fewer than n bytes remain.
func (c *Cursor) Next(n int) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, newError(KindUnexpectedEOF, c.offset, nil)
	}
	b := c.data[c.offset : c.offset+n : c.offset+n]
	c.offset += n
	return b, nil
}

// Seek moves the cursor back to an offset it previously reported
func (c *Cursor) Seek(offset int) {
	if offset < 0 {
		offset = 0
	} else if offset > len(c.data) {
		offset = len(c.data)
	}
	c.offset = offset
}
