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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrUnknownCmd    ErrorCode = "UNKNOWN_COMMAND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Template errors
	ErrTemplateNotFound ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrTemplateInvalid  ErrorCode = "TEMPLATE_INVALID"

	// Detection errors
	ErrNothingDetected ErrorCode = "NOTHING_DETECTED"
	ErrDirRead         ErrorCode = "DIR_READ"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"
)

// GitigError represents a structured error with code and details
type GitigError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *GitigError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *GitigError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *GitigError) Is(target error) bool {
	var targetErr *GitigError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new GitigError with the given code and message
func New(code ErrorCode, message string) *GitigError {
	return &GitigError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new GitigError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *GitigError {
	return &GitigError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a GitigError
func Wrap(err error, code ErrorCode, message string) *GitigError {
	if err == nil {
		return nil
	}
	return &GitigError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *GitigError {
	if err == nil {
		return nil
	}
	return &GitigError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *GitigError) WithDetail(key string, value interface{}) *GitigError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *GitigError) WithDetails(details map[string]interface{}) *GitigError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// UserMessage returns the message without the code prefix, suitable for
// printing to a terminal. Non-GitigErrors are returned as-is.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var gitigErr *GitigError
	if errors.As(err, &gitigErr) {
		if gitigErr.Wrapped != nil {
			return fmt.Sprintf("%s: %s", gitigErr.Message, UserMessage(gitigErr.Wrapped))
		}
		return gitigErr.Message
	}
	return err.Error()
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var gitigErr *GitigError
	if errors.As(err, &gitigErr) {
		return gitigErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a GitigError
func GetErrorCode(err error) ErrorCode {
	var gitigErr *GitigError
	if errors.As(err, &gitigErr) {
		return gitigErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a GitigError
func GetErrorDetails(err error) map[string]interface{} {
	var gitigErr *GitigError
	if errors.As(err, &gitigErr) {
		return gitigErr.Details
	}
	return nil
}
