// Package errors provides a structured error type with wrapping and metadata
package errors

// Always import the project errors package as perr (platform/errors)

import (
	stderrs "errors"
	"fmt"
)

// ErrorCode classifies failures across the curate pipeline
// Values are stable because they drive CLI exit statuses; add sparingly
type ErrorCode uint16

const (
	// ErrorCodeUnknown is for unclassified errors
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodeInvalidArgument is for bad CLI flags or call parameters
	ErrorCodeInvalidArgument

	// ErrorCodeValidation is for job options that fail struct validation
	ErrorCodeValidation

	// ErrorCodeMalformedInput is for input that is not decodable UTF-8 (fatal)
	ErrorCodeMalformedInput

	// ErrorCodeIO is for unreadable input or unwritable output (fatal)
	ErrorCodeIO

	// ErrorCodeRulePack is for rule packs that fail to parse or compile
	ErrorCodeRulePack

	// ErrorCodeLengthViolation renders a validator length rejection for logs
	ErrorCodeLengthViolation

	// ErrorCodeRuleViolation renders a validator rule rejection for logs
	ErrorCodeRuleViolation
)

// String returns a short stable name for the code
func (c ErrorCode) String() string {
	switch c {
	case ErrorCodeInvalidArgument:
		return "invalid_argument"
	case ErrorCodeValidation:
		return "validation"
	case ErrorCodeMalformedInput:
		return "malformed_input"
	case ErrorCodeIO:
		return "io"
	case ErrorCodeRulePack:
		return "rulepack"
	case ErrorCodeLengthViolation:
		return "length_violation"
	case ErrorCodeRuleViolation:
		return "rule_violation"
	default:
		return "unknown"
	}
}

// ExitCode turns an ErrorCode into a process exit status (sysexits.h flavoured)
func ExitCode(c ErrorCode) int {
	switch c {
	case ErrorCodeInvalidArgument, ErrorCodeValidation:
		return 64 // EX_USAGE
	case ErrorCodeMalformedInput:
		return 65 // EX_DATAERR
	case ErrorCodeRulePack:
		return 78 // EX_CONFIG
	case ErrorCodeIO:
		return 74 // EX_IOERR
	default:
		return 1
	}
}

// Error is the structured error type with wrapping and metadata
// msg is human/developer facing; code is machine facing
// field is optional (offending option or rule id); op is optional operation tag
// orig is the wrapped cause
type Error struct {
	orig  error
	msg   string
	code  ErrorCode
	field string
	op    string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Unwrap returns the wrapped error, if any
func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Field returns the offending field, if any
func (e *Error) Field() string { return e.field }

// Op returns the operation label, if set
func (e *Error) Op() string { return e.op }

// Message returns the message without the wrapped cause
func (e *Error) Message() string { return e.msg }

// Root returns the deepest wrapped cause
func Root(err error) error {
	for err != nil {
		u := stderrs.Unwrap(err)
		if u == nil {
			return err
		}
		err = u
	}
	return nil
}

// CodeOf extracts an ErrorCode from any error, defaulting to Unknown
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err has the given code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// ExitCodeOf returns the mapped exit status for any error; nil maps to 0
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	return ExitCode(CodeOf(err))
}

// As unwraps and returns (*Error, true) if err is one of ours
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Mutators (copy-on-write)

// WithField attaches a field to an *Error (copy-on-write). If err isn't *Error, returns err unchanged
func WithField(err error, field string) error {
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return err
}

// WithOp attaches an operation label to an *Error (copy-on-write). If err isn't *Error, returns err unchanged
func WithOp(err error, op string) error {
	if e, ok := As(err); ok {
		c := *e
		c.op = op
		return &c
	}
	return err
}

// Constructors

// New returns a new *Error with the given code and message
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf returns a new *Error with code and formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap returns a new *Error that wraps orig with code and message
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf returns a new *Error that wraps orig with code and formatted message
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// WrapIf wraps only when err != nil
func WrapIf(err error, code ErrorCode, msg string) error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, msg)
}

// Sugar

// InvalidArgf returns an invalid argument error
func InvalidArgf(format string, a ...any) error { return Newf(ErrorCodeInvalidArgument, format, a...) }

// Validationf returns an options validation error
func Validationf(format string, a ...any) error { return Newf(ErrorCodeValidation, format, a...) }

// MalformedInputf returns a malformed input error
func MalformedInputf(format string, a ...any) error { return Newf(ErrorCodeMalformedInput, format, a...) }

// IOf returns an I/O error
func IOf(format string, a ...any) error { return Newf(ErrorCodeIO, format, a...) }

// RulePackf returns a rule pack error
func RulePackf(format string, a ...any) error { return Newf(ErrorCodeRulePack, format, a...) }

// Internalf returns a generic internal error
func Internalf(format string, a ...any) error { return Newf(ErrorCodeUnknown, format, a...) }
