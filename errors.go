package pixelkernel

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure a kernel operation can report.
type ErrorKind int

const (
	InvalidArgument ErrorKind = iota + 1
	OutOfBounds
	PreconditionViolation
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfBounds     = errors.New("out of bounds")
	ErrPrecondition    = errors.New("precondition violation")
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case OutOfBounds:
		return "out of bounds"
	case PreconditionViolation:
		return "precondition violation"
	default:
		return "unknown"
	}
}

// Error is returned by every public operation of the package.
// Op names the failing operation, Msg describes the offending value.
type Error struct {
	Op   string
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Msg)
}

// Is reports whether target is the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidArgument:
		return e.Kind == InvalidArgument
	case ErrOutOfBounds:
		return e.Kind == OutOfBounds
	case ErrPrecondition:
		return e.Kind == PreconditionViolation
	}
	return false
}

// KindOf returns the ErrorKind carried by err, or 0 if err is not a kernel error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func invalidArg(op, format string, args ...any) error {
	return &Error{Op: op, Kind: InvalidArgument, Msg: fmt.Sprintf(format, args...)}
}

func outOfBounds(op string, x, y, w, h int) error {
	return &Error{Op: op, Kind: OutOfBounds, Msg: fmt.Sprintf("(%d,%d) outside %dx%d", x, y, w, h)}
}

func precondition(op, format string, args ...any) error {
	return &Error{Op: op, Kind: PreconditionViolation, Msg: fmt.Sprintf(format, args...)}
}
