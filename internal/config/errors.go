package config

import "fmt"

// Source labels used in error reporting.
const (
	sourceFile = "file"
	sourceEnv  = "env"
)

// ParseError indicates that a configuration file exists but could not be
// read or parsed. A missing file is not a ParseError; it resolves to an
// empty source instead.
type ParseError struct {
	// Path is the file that failed to parse.
	Path string
	// Err is the underlying read or syntax error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse config file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// TypeError indicates that a source supplied a value of the wrong type for
// a known field. The offending value is kept for inspection but its literal
// content is never included in the message, so a mistyped secret cannot
// leak through an error string.
type TypeError struct {
	// Field is the canonical name of the field.
	Field string
	// Source names the source that supplied the value.
	Source string
	// Value is the raw value as the source produced it.
	Value any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("invalid value for field %q from %s source: expected string, got %T", e.Field, e.Source, e.Value)
}
