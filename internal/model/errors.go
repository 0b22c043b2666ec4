package model

import (
	"github.com/rotisserie/eris"
)

// ErrInvalidArgument is returned when a caller passes an unusable value,
// such as a non-positive profile count.
var ErrInvalidArgument = eris.New("invalid argument")

// ErrIO matches every IOError via errors.Is.
var ErrIO = eris.New("io error")

// IOError wraps a failure to write or read an output file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrIO) true for any IOError in the chain.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// NewIOError wraps err as an IOError for the given operation and path.
func NewIOError(op, path string, err error) *IOError {
	return &IOError{Op: op, Path: path, Err: err}
}
