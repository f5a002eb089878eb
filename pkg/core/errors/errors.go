// ============================================================================
// toolctl - Foundry Lab Tool Control CLI
// ============================================================================
//
// Package:     errors
// Description: Code-tagged errors with cause chains for the tool client
// Author:      Foundry Automation
// Created:     2026-08-14
// License:     MIT
// ============================================================================

package errors

import (
	"errors"
	"fmt"
)

// Code classifies an error for callers that need to branch on failure kind.
type Code string

const (
	CodeUnknown          Code = "UNKNOWN"
	CodeConnectionFailed Code = "CONNECTION_FAILED"
	CodeTransport        Code = "TRANSPORT"
	CodeScriptExecution  Code = "SCRIPT_EXECUTION"
	CodeInvalidInput     Code = "INVALID_INPUT"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
)

// String returns the string representation of the code.
func (c Code) String() string {
	return string(c)
}

// Error is a message with an optional cause and a classification code.
// It satisfies the standard error interface and unwraps to its cause, so
// errors.Is / errors.As work across the whole chain.
type Error struct {
	code    Code
	message string
	cause   error
}

// New creates a new Error without a cause.
func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

// Newf creates a new Error with a formatted message.
func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{code: code, message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with a code and contextual message.
// Returns nil when err is nil.
func Wrap(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{code: code, message: message, cause: err}
}

// Wrapf wraps an existing error with a code and formatted context.
func Wrapf(err error, code Code, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return &Error{code: code, message: fmt.Sprintf(format, args...), cause: err}
}

// Error returns the full context chain, outermost message first.
func (e *Error) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Code returns the classification code.
func (e *Error) Code() Code {
	return e.code
}

// Message returns the outermost message without the cause chain.
func (e *Error) Message() string {
	return e.message
}

// CodeOf returns the code of the outermost *Error in the chain, or
// CodeUnknown when the chain contains none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return CodeUnknown
}

// HasCode reports whether any *Error in the chain carries the given code.
func HasCode(err error, code Code) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.code == code {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}
