package der

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind identifies one of the failure classes of the codec
type ErrorKind int

const (
	KindIntValueTooLarge ErrorKind = iota + 1
	KindInvalidEncoding
	KindIO
	KindUnexpectedEOF
	KindUnexpectedTag
)

var (
	ErrIntValueTooLarge = errors.New("integer value too large")
	ErrInvalidEncoding  = errors.New("invalid encoding")
	ErrIO               = errors.New("I/O error")
	ErrUnexpectedEOF    = errors.New("unexpected end of input")
	ErrUnexpectedTag    = errors.New("unexpected tag")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case KindIntValueTooLarge:
		return ErrIntValueTooLarge
	case KindInvalidEncoding:
		return ErrInvalidEncoding
	case KindIO:
		return ErrIO
	case KindUnexpectedEOF:
		return ErrUnexpectedEOF
	case KindUnexpectedTag:
		return ErrUnexpectedTag
	}
	return nil
}

func (k ErrorKind) String() string {
	switch k {
	case KindIntValueTooLarge:
		return "IntValueTooLarge"
	case KindInvalidEncoding:
		return "InvalidEncoding"
	case KindIO:
		return "Io"
	case KindUnexpectedEOF:
		return "UnexpectedEof"
	case KindUnexpectedTag:
		return "UnexpectedTag"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is returned by every encode and decode operation in this package.
//
// Offset is the position in the input at which decoding failed. Errors raised
// while encoding have no input position and carry an Offset of -1.
type Error struct {
	Kind   ErrorKind
	Offset int
	Err    error
}

var _ error = &Error{}

func (e *Error) Error() string {
	msg := "der: " + e.Kind.sentinel().Error()
	if e.Offset >= 0 {
		msg = fmt.Sprintf("%s at offset %d", msg, e.Offset)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error, if any. For KindIO this is the error
// reported by the sink.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error for the error's kind
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func newError(kind ErrorKind, offset int, err error) *Error {
	return &Error{Kind: kind, Offset: offset, Err: err}
}

func ioError(err error) *Error {
	return newError(KindIO, -1, err)
}

// KindOf returns the kind of a codec error, or 0 if err did not come from
// this package
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsKind checks if err is a codec error of the given kind
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
