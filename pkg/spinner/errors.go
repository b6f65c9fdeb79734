package spinner

import (
	"fmt"

	"github.com/pkg/errors"
)

// Configuration and runtime errors. Returned errors wrap these, so compare
// with errors.Is.
var (
	ErrInvalidColor      = errors.New("unsupported color")
	ErrInvalidHighlight  = errors.New("unsupported highlight")
	ErrInvalidAttr       = errors.New("unsupported attribute")
	ErrInvalidSide       = errors.New("unsupported side")
	ErrUncatchableSignal = errors.New("signal cannot be caught")
	ErrNotStarted        = errors.New("spinner has not been started")
	ErrTerminalTooSmall  = errors.New("terminal too small")
	ErrUnknownName       = errors.New("unknown name")
)

// TerminalTooSmallError reports a frame that cannot fit the terminal width.
type TerminalTooSmallError struct {
	Width int
}

func (e *TerminalTooSmallError) Error() string {
	return fmt.Sprintf("terminal size %d is too small to display spinner with the given settings", e.Width)
}

// Is matches ErrTerminalTooSmall.
func (e *TerminalTooSmallError) Is(target error) bool {
	return target == ErrTerminalTooSmall
}

// UnknownNameError is returned by Apply for a name that is not a color,
// highlight, attribute, glyph set or side.
type UnknownNameError struct {
	Name string
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("%q is not a known color, highlight, attribute, glyph set or side", e.Name)
}

// Is matches ErrUnknownName.
func (e *UnknownNameError) Is(target error) bool {
	return target == ErrUnknownName
}
