//go:build fuzz
// +build fuzz

package der

import (
	"testing"
)

// FuzzDecodeInt checks that arbitrary input never panics and that anything
// accepted re-encodes to a value that decodes identically
func FuzzDecodeInt(f *testing.F) {
	f.Add([]byte{0x02, 0x01, 0x00})
	f.Add([]byte{0x02, 0x04, 0xFF, 0xFF, 0xFF, 0xFF})
	f.Add([]byte{0x02, 0x85, 0xAB, 0xCD, 0xEF, 0x88, 0x99})
	f.Add([]byte{0x01, 0x01, 0xFF})

	f.Fuzz(func(t *testing.T, data []byte) {
		v, err := DecodeInt[int32](NewCursor(data))
		if err != nil {
			if KindOf(err) == 0 {
				t.Fatalf("untyped error: %v", err)
			}
			return
		}

		again, err := DecodeInt[int32](NewCursor(AppendInt(nil, v)))
		if err != nil || again != v {
			t.Fatalf("re-decode of %d gave %d, %v", v, again, err)
		}
	})
}

// FuzzLengthRoundTrip checks decode(encode(v)) == v
func FuzzLengthRoundTrip(f *testing.F) {
	f.Add(uint32(1))
	f.Add(uint32(128))
	f.Add(uint32(0xA5B5C5D5))

	f.Fuzz(func(t *testing.T, v uint32) {
		l, err := NewLength(v)
		if v == 0 {
			if err == nil {
				t.Fatal("zero length accepted")
			}
			return
		}

		got, err := DecodeLength(NewCursor(l.AppendTo(nil)))
		if err != nil || got.Value() != v {
			t.Fatalf("round trip of %#x gave %#x, %v", v, got.Value(), err)
		}
	})
}
