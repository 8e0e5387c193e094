package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrFileNotFound indicates the binding file doesn't exist.
	ErrFileNotFound = errors.New("binding file not found")

	// ErrUnknownFormat indicates the file extension is not a supported format.
	ErrUnknownFormat = errors.New("unknown binding file format")

	// ErrInvalidValue indicates a setting has a value outside its domain.
	ErrInvalidValue = errors.New("invalid value")
)

// ParseError represents an error while parsing a binding file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Line is the line number where the error occurred (if available).
	Line int
	// Column is the column number where the error occurred (if available).
	Column int
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValueError describes a setting whose value could not be used.
type ValueError struct {
	// Path locates the setting, e.g. "mouse.double_click".
	Path string
	// Value is the rejected value.
	Value string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: %v (value: %q)", e.Path, e.Err, e.Value)
}

// Unwrap returns ErrInvalidValue wrapped around the underlying error.
func (e *ValueError) Unwrap() []error {
	return []error{ErrInvalidValue, e.Err}
}
