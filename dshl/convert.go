package dshl

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Converts a value to a string. Byte slices are rendered as hex.
func ToString(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return hex.EncodeToString(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Converts a value to an int64. Strings may use a 0x, 0o or 0b prefix.
func ToInt64(v interface{}) (int64, error) {
	switch v := v.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case string:
		return strconv.ParseInt(v, 0, 64)
	default:
		return 0, errors.Errorf("can't convert %T to int64", v)
	}
}

// Converts a value to a uint64. Strings may use a 0x, 0o or 0b prefix.
func ToUInt64(v interface{}) (uint64, error) {
	switch v := v.(type) {
	case uint64:
		return v, nil
	case int:
		if v < 0 {
			return 0, errors.Errorf("can't convert negative %d to uint64", v)
		}
		return uint64(v), nil
	case string:
		return strconv.ParseUint(v, 0, 64)
	default:
		return 0, errors.Errorf("can't convert %T to uint64", v)
	}
}

// Converts a value to bytes. Strings are read as hex, ignoring spaces, colons and an optional
// 0x prefix, so "02 01 05", "02:01:05" and "0x020105" are all accepted.
func ToBytes(v interface{}) ([]byte, error) {
	switch v := v.(type) {
	case []byte:
		return v, nil
	case string:
		s := strings.TrimPrefix(strings.ToLower(v), "0x")
		s = strings.NewReplacer(" ", "", ":", "", "\t", "").Replace(s)
		b, err := hex.DecodeString(s)
		return b, errors.Wrapf(err, "parsing hex %q", v)
	default:
		return nil, errors.Errorf("can't convert %T to bytes", v)
	}
}
