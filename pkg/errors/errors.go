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
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"
	ErrPermission    ErrorCode = "PERMISSION"

	// Configuration errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"
	ErrConfigSave ErrorCode = "CONFIG_SAVE"

	// Storage errors
	ErrStorageRead  ErrorCode = "STORAGE_READ"
	ErrStorageWrite ErrorCode = "STORAGE_WRITE"

	// Installer errors
	ErrBinaryNotFound ErrorCode = "BINARY_NOT_FOUND"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileCreate   ErrorCode = "FILE_CREATE"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// HiperError represents a structured error with code and details
type HiperError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *HiperError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *HiperError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *HiperError) Is(target error) bool {
	var targetErr *HiperError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new HiperError with the given code and message
func New(code ErrorCode, message string) *HiperError {
	return &HiperError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new HiperError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *HiperError {
	return &HiperError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a HiperError
func Wrap(err error, code ErrorCode, message string) *HiperError {
	if err == nil {
		return nil
	}
	return &HiperError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *HiperError {
	if err == nil {
		return nil
	}
	return &HiperError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *HiperError) WithDetail(key string, value interface{}) *HiperError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var hiperErr *HiperError
	if errors.As(err, &hiperErr) {
		return hiperErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a HiperError
func GetErrorCode(err error) ErrorCode {
	var hiperErr *HiperError
	if errors.As(err, &hiperErr) {
		return hiperErr.Code
	}
	return ErrUnknown
}
