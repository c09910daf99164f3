// Copyright (C) 2025 Sean Quill. All Rights Reserved.

// Package jerr defines the failure taxonomy for the jev parser.
//
// Every failure the parser reports maps to exactly one Code. A Code is a
// stable machine-readable identifier; the Error carrying it adds a
// human-readable message and the position in the input stream where the
// failure was detected.
package jerr

import (
	"errors"
	"fmt"
)

// Code is a stable failure category.
type Code string

// The complete set of failure codes reported by the parser.
const (
	UnexpectedEOF           Code = "UNEXPECTED_EOF"
	UnexpectedOpenBrackets  Code = "UNEXPECTED_OPENING_BRACKETS"
	UnexpectedOpenBraces    Code = "UNEXPECTED_OPENING_BRACES"
	ExpectedClosingBrackets Code = "EXPECTED_CLOSING_BRACKETS"
	ExpectedClosingBraces   Code = "EXPECTED_CLOSING_BRACES"
	ExpectedKey             Code = "EXPECTED_KEY"
	ExpectedValue           Code = "EXPECTED_VALUE"
	InvalidNumber           Code = "INVALID_NUMBER"
	InvalidString           Code = "INVALID_STRING"
	InvalidType             Code = "INVALID_TYPE"
	NotInObject             Code = "NOT_IN_OBJECT"
	NotInArray              Code = "NOT_IN_ARRAY"
	UnexpectedTopLevel      Code = "UNEXPECTED_TOP_LEVEL"
	UnicodeEscape           Code = "UNICODE_ESCAPE"
	UserValidationFailed    Code = "USER_VALIDATION_FAILED"
)

// Error is the structured error type for all parse failures.
//
// Offset is the absolute character offset in the input stream at which the
// offending token begins, or -1 if the error has not yet been located.
// Line and Col are 1-based and 0-based respectively, matching the offset.
type Error struct {
	Code    Code
	Offset  int
	Line    int
	Col     int
	Message string

	cause error
}

// New creates an Error with the given code and message and no location.
func New(code Code, message string) *Error {
	return &Error{Code: code, Offset: -1, Message: message}
}

// Errorf creates an Error with the given code and a formatted message.
// The format arguments may include a %w-wrapped cause.
func Errorf(code Code, format string, args ...any) *Error {
	err := fmt.Errorf(format, args...)
	return &Error{Code: code, Offset: -1, Message: err.Error(), cause: errors.Unwrap(err)}
}

// Wrap creates an Error with the given code wrapping an existing error.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Offset: -1, Message: message, cause: cause}
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("jev: %s at offset %d (line %d:%d): %s",
			e.Code, e.Offset, e.Line, e.Col, e.Message)
	}
	return fmt.Sprintf("jev: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.cause }

// CodeOf reports the failure code of err, if err is or wraps an Error.
// It returns "" for nil and for errors outside this taxonomy.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// OffsetOf reports the stream offset recorded on err, or -1 if err does
// not carry one.
func OffsetOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Offset
	}
	return -1
}
