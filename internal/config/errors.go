package config

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is returned for a settings file extension with no loader.
	ErrUnsupportedFormat = errors.New("unsupported settings format")

	// ErrValidationFailed wraps every setting Validate rejects.
	ErrValidationFailed = errors.New("invalid settings")
)

// ParseError reports a settings source that could not be decoded.
type ParseError struct {
	Path    string
	Line    int // 1-based; 0 when the decoder gives no position
	Column  int
	Message string
	Err     error
}

// Error formats the error as path:line:column: message, omitting
// unknown positions.
func (e *ParseError) Error() string {
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Column, e.Message)
	case e.Line > 0:
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
