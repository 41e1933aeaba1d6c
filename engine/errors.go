package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/arena/constants"
)

// ErrShutdown signals a requested quit; it is an expected termination, not a failure
var ErrShutdown = errors.New("shutdown requested")

// InvariantError reports a violated precondition such as a missing display or player
type InvariantError struct {
	What string
	Err  error
}

func (e *InvariantError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invariant violated: %s: %v", e.What, e.Err)
	}
	return "invariant violated: " + e.What
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}

func invariant(what string, err error) error {
	return &InvariantError{What: what, Err: err}
}

const (
	ExitOK      = constants.ExitOK
	ExitQuit    = constants.ExitQuit
	ExitFailure = constants.ExitFailure
)

// ExitCode maps a Run result to the process exit status
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrShutdown):
		return ExitQuit
	default:
		return ExitFailure
	}
}
