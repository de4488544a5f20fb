package der

import (
	"encoding/binary"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

const width128 = 16

// Uint128 is an unsigned 128 bit integer
type Uint128 struct {
	Hi, Lo uint64
}

// Int128 is a two's complement signed 128 bit integer
type Int128 struct {
	Hi int64
	Lo uint64
}

func Uint128From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

func Int128From64(v int64) Int128 {
	return Int128{Hi: v >> 63, Lo: uint64(v)}
}

func (u Uint128) bytes() []byte {
	b := make([]byte, width128)
	binary.BigEndian.PutUint64(b[:8], u.Hi)
	binary.BigEndian.PutUint64(b[8:], u.Lo)
	return b
}

func (i Int128) bytes() []byte {
	return Uint128{uint64(i.Hi), i.Lo}.bytes()
}

func uint128FromBytes(b []byte) Uint128 {
	return Uint128{
		Hi: binary.BigEndian.Uint64(b[:8]),
		Lo: binary.BigEndian.Uint64(b[8:]),
	}
}

// Big returns u as a big.Int
func (u Uint128) Big() *big.Int {
	return new(big.Int).SetBytes(u.bytes())
}

// Big returns i as a big.Int
func (i Int128) Big() *big.Int {
	v := new(big.Int).SetBytes(i.bytes())
	if i.Hi < 0 {
		v.Sub(v, new(big.Int).Lsh(big.NewInt(1), 128))
	}
	return v
}

func (u Uint128) String() string {
	return u.Big().String()
}

func (i Int128) String() string {
	return i.Big().String()
}

var (
	maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	maxInt128  = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minInt128  = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)

// Uint128FromBig converts v, failing with KindIntValueTooLarge if it is
// negative or wider than 128 bits
func Uint128FromBig(v *big.Int) (Uint128, error) {
	if v.Sign() < 0 || v.Cmp(maxUint128) > 0 {
		return Uint128{}, newError(KindIntValueTooLarge, -1, errors.Errorf("%s out of range for uint128", v))
	}
	b := make([]byte, width128)
	v.FillBytes(b)
	return uint128FromBytes(b), nil
}

// Int128FromBig converts v, failing with KindIntValueTooLarge if it does not
// fit in 128 bits
func Int128FromBig(v *big.Int) (Int128, error) {
	if v.Cmp(minInt128) < 0 || v.Cmp(maxInt128) > 0 {
		return Int128{}, newError(KindIntValueTooLarge, -1, errors.Errorf("%s out of range for int128", v))
	}
	t := new(big.Int).Set(v)
	if t.Sign() < 0 {
		t.Add(t, new(big.Int).Lsh(big.NewInt(1), 128))
	}
	b := make([]byte, width128)
	t.FillBytes(b)
	u := uint128FromBytes(b)
	return Int128{Hi: int64(u.Hi), Lo: u.Lo}, nil
}

// ParseUint128 parses a decimal (or 0x-prefixed hex) string
func ParseUint128(s string) (Uint128, error) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return Uint128{}, errors.Errorf("invalid integer %q", s)
	}
	return Uint128FromBig(v)
}

// ParseInt128 parses a decimal (or 0x-prefixed hex) string
func ParseInt128(s string) (Int128, error) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return Int128{}, errors.Errorf("invalid integer %q", s)
	}
	return Int128FromBig(v)
}

func EncodeUint128(w io.Writer, v Uint128) (int, error) {
	return encodeInteger(w, v.bytes())
}

func EncodeInt128(w io.Writer, v Int128) (int, error) {
	return encodeInteger(w, v.bytes())
}

func DecodeUint128(c *Cursor) (Uint128, error) {
	b, err := decodeInteger(c, width128, false)
	if err != nil {
		return Uint128{}, err
	}
	return uint128FromBytes(b), nil
}

func DecodeInt128(c *Cursor) (Int128, error) {
	b, err := decodeInteger(c, width128, true)
	if err != nil {
		return Int128{}, err
	}
	u := uint128FromBytes(b)
	return Int128{Hi: int64(u.Hi), Lo: u.Lo}, nil
}
