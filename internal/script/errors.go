package script

import (
	"errors"
	"fmt"
)

// ErrEngineClosed is returned when running a script on a closed engine.
var ErrEngineClosed = errors.New("script engine is closed")

// Error reports a failed script run.
type Error struct {
	// Chunk is the script name passed to Run.
	Chunk string
	// Err is the renderer error the script raised, the context error if the
	// run was cancelled, or the Lua error otherwise.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("script %s: %v", e.Chunk, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}
