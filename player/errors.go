package player

import (
	"errors"
	"fmt"
)

var (
	ErrQuit     = errors.New("the user quit")
	ErrIO       = errors.New("io error")
	ErrInternal = errors.New("internal error")
)

// MalformedMoveError reports input that does not describe a legal move. The
// player may try again.
type MalformedMoveError struct {
	Reason string
}

func (e *MalformedMoveError) Error() string {
	return "malformed move: " + e.Reason
}

func Malformed(format string, args ...any) error {
	return &MalformedMoveError{Reason: fmt.Sprintf(format, args...)}
}
