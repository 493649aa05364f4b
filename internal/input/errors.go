package input

import (
	"errors"
	"fmt"
)

// ErrNoInputFiles is wrapped by a ReadError when a directory holds no
// circuit files.
var ErrNoInputFiles = errors.New("no circuit files found")

// ReadError reports an input path that is missing or unreadable.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("cannot read input %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// DecodeError reports a circuit file that could be read but whose structure
// is invalid, such as an HCL syntax error or a duplicate wire name.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
