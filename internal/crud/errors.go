package crud

import (
	"errors"
	"fmt"
)

var (
	ErrModalClosed     = errors.New("crud: no form is open")
	ErrNotFound        = errors.New("crud: entity not found")
	ErrNoPendingDelete = errors.New("crud: no delete awaiting confirmation")
	ErrUnknownAction   = errors.New("crud: unknown action")
)

// ValidationError reports a field that failed a rule such as "required".
type ValidationError struct {
	Kind  string
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: field %q failed %q", e.Kind, e.Field, e.Rule)
}

// ParseError reports a draft value that could not be coerced to the field type.
type ParseError struct {
	Kind  string
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: field %q: cannot parse %q", e.Kind, e.Field, e.Value)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IsRecoverable reports whether err only asks the user to fix the form.
func IsRecoverable(err error) bool {
	var ve *ValidationError
	var pe *ParseError
	return errors.As(err, &ve) || errors.As(err, &pe)
}
