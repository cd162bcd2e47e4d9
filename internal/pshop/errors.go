package pshop

import "fmt"

// ParseError reports input that is not well formed for the expected file
// format. Conversions abort immediately; nothing is retried.
type ParseError struct {
	Format string // "xml" or "csv"
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s input: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MissingFieldError reports a required source field that is absent or holds
// a value outside its allowed domain (for example an active flag that is
// neither "0" nor "1"). The whole conversion for the file aborts; no
// partial output is produced.
type MissingFieldError struct {
	Field  string
	Value  string
	Reason string
}

func (e *MissingFieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("field %q has value %q: %s", e.Field, e.Value, e.Reason)
}
