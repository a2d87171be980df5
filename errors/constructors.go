package errors

import (
	stderrors "errors"
	"fmt"
)

// New creates a new PlatformError with the given code and message.
// The classification is the default for the code.
//
// Example:
//
//	var ErrTypeMismatch = errors.New(errors.CodeTypeMismatch, "type mismatch")
func New(code ErrorCode, message string) PlatformError {
	return &codedError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
	}
}

// Newf creates a new PlatformError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) PlatformError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an error with a code and message while preserving the original error.
// The wrapped error is accessible via Unwrap() and compatible with errors.Is and errors.As.
//
// If err already carries a classification it is kept; otherwise the
// classification is derived from the cause (see Classification).
//
// Returns nil if err is nil.
func Wrap(err error, code ErrorCode, message string) PlatformError {
	if err == nil {
		return nil
	}

	return &codedError{
		code:           code,
		classification: classificationOf(err, code),
		message:        message,
		cause:          err,
	}
}

// Wrapf wraps an error with a formatted message.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) PlatformError {
	if err == nil {
		return nil
	}

	return Wrap(err, code, fmt.Sprintf(format, args...))
}

func classificationOf(err error, code ErrorCode) ErrorClassification {
	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		return platformErr.Classification()
	}
	if isTransient(err) {
		return ClassificationRetryable
	}
	return getDefaultClassification(code)
}
