package errors

import (
	"fmt"
)

// AppError represents a structured application error.
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError.
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetCode returns the error code if it's an AppError, otherwise "UNKNOWN".
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Predefined error codes. The pipeline's only fatal class is a missing
// required source; everything cell-level recovers to null upstream of here.
const (
	CodeConfigInvalid    = "CONFIG_INVALID"
	CodeSourceMissing    = "SOURCE_MISSING"
	CodeSourceUnreadable = "SOURCE_UNREADABLE"
	CodeInternalError    = "INTERNAL_ERROR"
)

// ConfigInvalid reports a bad configuration value.
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

// SourceMissing reports that no candidate file for a required record kind
// was readable anywhere. The message names the kind so the failure is
// actionable before any computation has run.
func SourceMissing(kind string, tried []string) *AppError {
	return New(CodeSourceMissing, fmt.Sprintf("no readable source for record kind %q (tried %v)", kind, tried))
}

// SourceUnreadable reports a file that exists but cannot be opened or parsed
// at the container level.
func SourceUnreadable(path string, cause error) *AppError {
	return &AppError{
		Code:    CodeSourceUnreadable,
		Message: fmt.Sprintf("source file %s unreadable", path),
		Cause:   cause,
	}
}

// InternalError reports an unexpected internal failure.
func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}
