package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrAlreadyExists  ErrorCode = "ALREADY_EXISTS"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Configuration file errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Resolution errors
	ErrPluginNotFound ErrorCode = "PLUGIN_NOT_FOUND"
	ErrParserNotFound ErrorCode = "PARSER_NOT_FOUND"
	ErrExtendNotFound ErrorCode = "EXTEND_NOT_FOUND"
	ErrExtendCycle    ErrorCode = "EXTEND_CYCLE"

	// Translation errors
	ErrEnvCycle ErrorCode = "ENV_CYCLE"
)

// CompatError represents a structured error with code and details
type CompatError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CompatError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CompatError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *CompatError) Is(target error) bool {
	var targetErr *CompatError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new CompatError with the given code and message
func New(code ErrorCode, message string) *CompatError {
	return &CompatError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new CompatError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CompatError {
	return &CompatError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a CompatError
func Wrap(err error, code ErrorCode, message string) *CompatError {
	if err == nil {
		return nil
	}
	return &CompatError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CompatError {
	if err == nil {
		return nil
	}
	return &CompatError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *CompatError) WithDetail(key string, value interface{}) *CompatError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *CompatError) WithDetails(details map[string]interface{}) *CompatError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var compatErr *CompatError
	if errors.As(err, &compatErr) {
		return compatErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a CompatError
func GetErrorCode(err error) ErrorCode {
	var compatErr *CompatError
	if errors.As(err, &compatErr) {
		return compatErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a CompatError
func GetErrorDetails(err error) map[string]interface{} {
	var compatErr *CompatError
	if errors.As(err, &compatErr) {
		return compatErr.Details
	}
	return nil
}
