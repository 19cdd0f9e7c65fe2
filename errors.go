package relay

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is matched by every argument validation error.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrClosed is returned for I/O on a port that has been closed.
	ErrClosed = errors.New("serial: port closed")
)

// RelayError reports a relay number outside 1..9.
type RelayError struct {
	Relay int
}

// Error implements error.
func (e *RelayError) Error() string {
	return fmt.Sprintf("invalid relay number %d", e.Relay)
}

// Unwrap makes errors.Is(err, ErrInvalidArgument) hold.
func (e *RelayError) Unwrap() error {
	return ErrInvalidArgument
}
