package command

import (
	"fmt"
)

// Error marks a failure that happened after the command line was parsed,
// so the caller logs it instead of printing usage.
type Error struct {
	Inner error
	Msg   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Msg, e.Inner)
}

func (e *Error) Unwrap() error {
	return e.Inner
}

func WrapError(err error) error {
	if err == nil {
		return nil
	}

	return &Error{
		Inner: err,
		Msg:   "command failed",
	}
}
