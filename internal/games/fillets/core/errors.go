package core

import (
	"errors"
	"fmt"
)

// Sentinel causes wrapped by LogicError and LoadError.
var (
	ErrCellTaken   = errors.New("cell already occupied")
	ErrOutOfField  = errors.New("cell outside the field")
	ErrBadIndex    = errors.New("bad model index")
	ErrClosed      = errors.New("room closed")
	ErrBadMove     = errors.New("bad move")
	ErrEarlyFinish = errors.New("early finished level")
	ErrUnsettled   = errors.New("room did not settle")
)

// LogicError reports misuse of the engine by its caller.
type LogicError struct {
	Op  string
	Err error
}

func (e *LogicError) Error() string {
	return fmt.Sprintf("logic: %s: %v", e.Op, e.Err)
}

func (e *LogicError) Unwrap() error {
	return e.Err
}

// LoadError reports replay input that the room cannot reproduce.
type LoadError struct {
	Move rune
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load: move %q: %v", e.Move, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsLogic reports whether err is or wraps a LogicError.
func IsLogic(err error) bool {
	var le *LogicError
	return errors.As(err, &le)
}

// IsLoad reports whether err is or wraps a LoadError.
func IsLoad(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}
