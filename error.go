package cmdline

import (
	"errors"
	"fmt"
)

// ParserError represents the type of error.
type ParserError uint

const (
	// ErrUnknown indicates a generic error.
	ErrUnknown ParserError = iota

	// ErrExpectedArgument indicates that a value-bearing option was found
	// at the end of the argument vector with no value token following it.
	ErrExpectedArgument

	// ErrHelp indicates that the built-in help was triggered (the error
	// contains the rendered help message).
	ErrHelp

	// ErrVersion indicates that the version option was triggered (the
	// error contains the version banner).
	ErrVersion

	// ErrRequired indicates that one or more required options were not
	// provided (the error contains one line per missing option).
	ErrRequired

	// ErrInvalidChoice indicates an option value which is not among the
	// declared choices for that option.
	ErrInvalidChoice

	// ErrInvalidValue indicates an option value rejected by the option's
	// validation rules.
	ErrInvalidValue
)

func (e ParserError) String() string {
	errs := [...]string{
		"unknown",           // ErrUnknown
		"expected argument", // ErrExpectedArgument
		"help",              // ErrHelp
		"version",           // ErrVersion
		"required",          // ErrRequired
		"invalid choice",    // ErrInvalidChoice
		"invalid value",     // ErrInvalidValue
	}
	if int(e) >= len(errs) {
		return "unrecognized error type"
	}

	return errs[e]
}

func (e ParserError) Error() string {
	return e.String()
}

// Error represents a parser outcome. The error returned from Parse is of
// this type. The error contains both a Type and a Message: for ErrHelp and
// ErrVersion the message is the text to show the user, not a diagnostic.
type Error struct {
	// The type of error
	Type ParserError

	// The error message
	Message string
}

// Error returns the error's message.
func (e *Error) Error() string {
	return e.Message
}

func newError(tp ParserError, message string) *Error {
	return &Error{
		Type:    tp,
		Message: message,
	}
}

func newErrorf(tp ParserError, format string, args ...interface{}) *Error {
	return newError(tp, fmt.Sprintf(format, args...))
}

// WroteHelp is a helper to test the error from Parse() to determine if the
// help message was triggered. It is safe to call without first checking
// that the error is nil.
func WroteHelp(err error) bool {
	var parseError *Error
	if !errors.As(err, &parseError) {
		return false
	}

	return parseError.Type == ErrHelp
}

// WroteVersion is the equivalent of WroteHelp for the version banner.
func WroteVersion(err error) bool {
	var parseError *Error
	if !errors.As(err, &parseError) {
		return false
	}

	return parseError.Type == ErrVersion
}
