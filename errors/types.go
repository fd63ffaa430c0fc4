package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  ErrorCode = "CONFIG_INVALID"

	// Deep link errors. All of these are terminal for the current
	// navigation request but never fatal to the process.
	ErrCodeDeepLinkPayloadMissing ErrorCode = "DEEP_LINK_PAYLOAD_MISSING"
	ErrCodeDeepLinkParse          ErrorCode = "DEEP_LINK_PARSE"
	ErrCodeDeepLinkUnresolved     ErrorCode = "DEEP_LINK_UNRESOLVED"

	// Intent URI errors
	ErrCodeIntentURISyntax ErrorCode = "INTENT_URI_SYNTAX"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// ShellError represents a structured error with context
type ShellError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *ShellError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ShellError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *ShellError) WithDetail(key string, value interface{}) *ShellError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *ShellError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new ShellError
func New(code ErrorCode, message string) *ShellError {
	return &ShellError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a ShellError
func Wrap(err error, code ErrorCode, message string) *ShellError {
	return &ShellError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific ShellError code
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	shellErr, ok := err.(*ShellError)
	if !ok {
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return Is(unwrapper.Unwrap(), code)
		}
		return false
	}

	return shellErr.Code == code
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	shellErr, ok := err.(*ShellError)
	if !ok {
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return shellErr.Code
}
