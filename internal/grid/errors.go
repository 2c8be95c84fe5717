package grid

import (
	"errors"
	"fmt"

	"github.com/bonnth80/html-grid/internal/surface"
)

// Errors returned by renderer operations.
var (
	// ErrInvalidColor indicates a colour string outside the accepted grammar.
	ErrInvalidColor = errors.New("invalid color string")

	// ErrInvalidArgument indicates a non-positive line count or interval.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfBounds indicates a cell address outside the grid.
	ErrOutOfBounds = errors.New("cell out of bounds")

	// ErrNotSupported indicates an operation without a defined contract yet.
	ErrNotSupported = errors.New("not yet supported")
)

// ValidationError describes a rejected setter argument.
// The renderer state is unchanged when one is returned.
type ValidationError struct {
	// Field is the setting the value was meant for.
	Field string
	// Value is the rejected value.
	Value any
	// Err is one of the package sentinel errors.
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: %v: %v", e.Field, e.Err, formatValue(e.Value))
	if errors.Is(e.Err, ErrInvalidColor) {
		msg += " (" + surface.ColorHint + ")"
	}
	return msg
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", v)
}
