package cli

import (
	"errors"

	"github.com/specialistvlad/crossedwires/internal/crossing"
	"github.com/specialistvlad/crossedwires/internal/input"
	"github.com/specialistvlad/crossedwires/internal/wire"
)

// Process exit codes. Each failure class gets its own code so scripts can
// tell bad input apart from inputs that simply never cross.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitUsage      = 2
	ExitInput      = 3
	ExitParse      = 4
	ExitNoCrossing = 5
)

// ExitCode maps an error returned by the application onto an exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var exitErr *ExitError
	var parseErr *wire.ParseError
	var decodeErr *input.DecodeError
	var readErr *input.ReadError
	var noCrossing *crossing.NoCrossingError

	switch {
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.As(err, &parseErr), errors.As(err, &decodeErr):
		return ExitParse
	case errors.As(err, &readErr):
		return ExitInput
	case errors.As(err, &noCrossing):
		return ExitNoCrossing
	default:
		return ExitFailure
	}
}
