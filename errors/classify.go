package errors

import (
	stderrors "errors"
	"io/fs"
	"os"
	"syscall"
)

// Classify maps an error returned by a filesystem call onto an ErrorCode.
//
// An error that already carries a code keeps it. Otherwise the standard
// io/fs sentinels are recognized through the chain; a path component that is
// not a directory counts as NOT_FOUND because the path cannot resolve.
// Everything else is IO_FAILURE. Classify returns CodeUnknown for nil.
func Classify(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		return platformErr.Code()
	}

	switch {
	case stderrors.Is(err, fs.ErrNotExist), stderrors.Is(err, syscall.ENOTDIR):
		return CodeNotFound
	case stderrors.Is(err, fs.ErrPermission):
		return CodePermissionDenied
	case stderrors.Is(err, fs.ErrExist):
		return CodeAlreadyExists
	case stderrors.Is(err, fs.ErrInvalid):
		return CodeInvalidInput
	case stderrors.Is(err, stderrors.ErrUnsupported):
		return CodeUnsupported
	default:
		return CodeIOFailure
	}
}

// ClassifyRetry reports the classification for an error returned by a
// filesystem call. Interrupted calls, busy resources and expired deadlines
// are retryable.
func ClassifyRetry(err error, code ErrorCode) ErrorClassification {
	return classificationOf(err, code)
}

func isTransient(err error) bool {
	return stderrors.Is(err, syscall.EINTR) ||
		stderrors.Is(err, syscall.EAGAIN) ||
		stderrors.Is(err, syscall.EBUSY) ||
		stderrors.Is(err, os.ErrDeadlineExceeded)
}
