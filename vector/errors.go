package vector

import (
	"errors"
	"fmt"
)

// Sentinels wrapped by every error and panic value of this package.
var (
	ErrShape           = errors.New("dimension mismatch")
	ErrAlias           = errors.New("operand aliases the destination")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrEmpty           = errors.New("empty vector")
	ErrPrecondition    = errors.New("precondition violated")
	ErrDomain          = errors.New("numerical domain error")
	ErrParse           = errors.New("parse error")
)

// Error describes a failed operation. Precondition violations are raised with a
// *Error as panic value, numerical domain errors are returned.
type Error struct {
	Op      string
	Err     error
	Details string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("vector.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("vector.%s: %v: %s", e.Op, e.Err, e.Details)
}

// Unwrap returns the sentinel.
func (e *Error) Unwrap() error {
	return e.Err
}

func fail(op string, err error, format string, args ...interface{}) {
	panic(&Error{Op: op, Err: err, Details: fmt.Sprintf(format, args...)})
}

func domainError(op string, format string, args ...interface{}) error {
	return &Error{Op: op, Err: ErrDomain, Details: fmt.Sprintf(format, args...)}
}

func checkDim(op string, expected, got int) {
	if expected != got {
		fail(op, ErrShape, "%d vs. %d", expected, got)
	}
}

// ParseError is returned when a vector can not be read from a stream.
type ParseError struct {
	// Expected is what the reader was looking for, Found what it got instead.
	Expected string
	Found    string
	// Offset is the stream position the read started at, Pos where it stopped.
	Offset int64
	Pos    int64
	// Err is the underlying I/O error, if any.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := "failed to read vector from stream"
	if e.Expected != "" {
		msg += fmt.Sprintf(": expected %s", e.Expected)
		if e.Found != "" {
			msg += fmt.Sprintf(", got %s", e.Found)
		}
	} else if e.Found != "" {
		msg += ": " + e.Found
	}
	if e.Err != nil {
		msg += fmt.Sprintf(" (%v)", e.Err)
	}
	return fmt.Sprintf("%s, file position at start is %d, currently %d", msg, e.Offset, e.Pos)
}

// Unwrap allows errors.Is(err, ErrParse) as well as matching the I/O cause.
func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrParse, e.Err}
	}
	return []error{ErrParse}
}
