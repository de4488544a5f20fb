package der

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02, 0x03})
	assert.Equal(t, 0, c.Offset())
	assert.Equal(t, 3, c.Remaining())

	b, err := c.PeekByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0x01), b)
	assert.Equal(t, 0, c.Offset())

	b, err = c.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0x01), b)

	next, err := c.Next(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x03}, next)
	assert.Equal(t, 0, c.Remaining())
	assert.Empty(t, c.Rest())

	t.Run("EOF", func(t *testing.T) {
		_, err := c.ReadByte()
		assert.True(t, IsKind(err, KindUnexpectedEOF))
		assert.Equal(t, 3, err.(*Error).Offset)

		_, err = c.Next(1)
		assert.True(t, IsKind(err, KindUnexpectedEOF))
		assert.Equal(t, 3, c.Offset())
	})

	t.Run("Seek", func(t *testing.T) {
		c.Seek(1)
		assert.Equal(t, []byte{0x02, 0x03}, c.Rest())
		c.Seek(10)
		assert.Equal(t, 0, c.Remaining())
	})
}

func TestCursorNextDoesNotAlias(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02, 0x03})
	first, err := c.Next(1)
	require.NoError(t, err)
	first = append(first, 0xFF)
	assert.Equal(t, []byte{0x02, 0x03}, c.Rest())
	assert.Equal(t, []byte{0x01, 0xFF}, first)
}
