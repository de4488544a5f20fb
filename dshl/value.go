package dshl

import (
	"context"
)

// Wraps a value received from the commandline or returned by another command.
type Value struct {
	v interface{}
}

// Wraps a value in a Value.
func Wrap(v interface{}) Value {
	return Value{v: v}
}

// Returns the wrapped value. The context is accepted for symmetry with lazily evaluated values
// and is currently unused.
func (v Value) Get(ctx ...context.Context) interface{} {
	return v.v
}

func (v Value) String(ctx ...context.Context) string {
	return ToString(v.Get(ctx...))
}

func (v Value) Int64(ctx ...context.Context) (int64, error) {
	return ToInt64(v.Get(ctx...))
}

func (v Value) UInt64(ctx ...context.Context) (uint64, error) {
	return ToUInt64(v.Get(ctx...))
}

// Returns the value as raw bytes; strings are parsed as hex.
func (v Value) Bytes(ctx ...context.Context) ([]byte, error) {
	return ToBytes(v.Get(ctx...))
}
