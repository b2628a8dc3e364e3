package bazi

import "fmt"

// ErrorKind enumerates the three error kinds compute can surface. The
// operation that detects a failure returns without partial output, and
// the core never retries, swallows, or logs it.
type ErrorKind int

const (
	// OutOfRange covers a civil year outside [1900, 2100], a longitude
	// outside [-180, 180], or a solar-term index outside [0, 23].
	OutOfRange ErrorKind = iota
	// InvalidLunarDate covers an isLeap flag or day inconsistent with
	// the encoded lunar-year table.
	InvalidLunarDate
	// InvalidInput covers a structurally malformed input: a missing
	// required field or a non-finite number.
	InvalidInput
)

func (k ErrorKind) String() string {
	switch k {
	case OutOfRange:
		return "OutOfRange"
	case InvalidLunarDate:
		return "InvalidLunarDate"
	default:
		return "InvalidInput"
	}
}

// Error is the typed error compute returns, splitting the enumerated
// kind from the human-readable message.
type Error struct {
	Kind    ErrorKind
	Message string
	err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("bazi: %s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped cause, if any, so errors.As/errors.Is work
// across the L0-L6 boundary.
func (e *Error) Unwrap() error { return e.err }

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func wrapError(kind ErrorKind, cause error) *Error {
	return &Error{Kind: kind, Message: cause.Error(), err: cause}
}
