package fspath

import (
	stderrors "errors"
	"io"
	"io/fs"

	"github.com/jmgilman/go/fspath/errors"
)

// Error records a failed operation together with the path it was applied to.
type Error struct {
	Op   string
	Path string
	// Dest is the destination of a copy or rename, empty otherwise.
	Dest string
	Err  error

	code           errors.ErrorCode
	classification errors.ErrorClassification
}

// Error formats the failure as "[CODE] op path: cause", with " -> dest"
// after the path when Dest is set.
func (e *Error) Error() string {
	return "[" + string(e.code) + "] " + e.Message() + ": " + e.cause()
}

// Message returns the operation and its paths.
func (e *Error) Message() string {
	if e.Dest != "" {
		return e.Op + " " + e.Path + " -> " + e.Dest
	}
	return e.Op + " " + e.Path
}

// cause describes Err without repeating a path the OS error already carries.
func (e *Error) cause() string {
	var pe *fs.PathError
	if stderrors.As(e.Err, &pe) && pe.Err != nil {
		return pe.Err.Error()
	}
	return e.Err.Error()
}

// Code returns the error's code.
func (e *Error) Code() errors.ErrorCode { return e.code }

// Classification reports whether the operation may succeed if retried.
func (e *Error) Classification() errors.ErrorClassification { return e.classification }

// Context returns the operation and paths as context fields.
func (e *Error) Context() map[string]interface{} {
	ctx := map[string]interface{}{"op": e.Op, "path": e.Path}
	if e.Dest != "" {
		ctx["dest"] = e.Dest
	}
	return ctx
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

var _ errors.PlatformError = (*Error)(nil)

// ErrTypeMismatch is reported when a path names a different kind of entity
// than the operation requires.
var ErrTypeMismatch = errors.New(errors.CodeTypeMismatch, "type mismatch")

type mismatchError struct {
	expected string
	found    string
}

func (e *mismatchError) Error() string {
	return "expected " + e.expected + ", found " + e.found
}

func (e *mismatchError) Unwrap() error { return ErrTypeMismatch }

// wrap annotates err with op and path. Errors that already carry context
// pass through unchanged, as does io.EOF.
func (r *Resolver) wrap(op, path string, err error) error {
	return r.wrapTo(op, path, "", err)
}

// wrapTo is wrap for operations with a destination.
func (r *Resolver) wrapTo(op, path, dest string, err error) error {
	if err == nil || err == io.EOF {
		return err
	}
	var existing *Error
	if stderrors.As(err, &existing) {
		return err
	}

	code := errors.Classify(err)
	wrapped := &Error{
		Op:             op,
		Path:           path,
		Dest:           dest,
		Err:            err,
		code:           code,
		classification: errors.ClassifyRetry(err, code),
	}
	event := orDefault(r).log.Debug().
		Str("op", op).
		Str("path", path)
	if dest != "" {
		event = event.Str("dest", dest)
	}
	event.Str("code", string(code)).
		Err(err).
		Msg("filesystem operation failed")
	return wrapped
}

// attempt runs fn and annotates its failure with op and path.
func attempt[T any](r *Resolver, op, path string, fn func() (T, error)) (T, error) {
	v, err := fn()
	if err != nil {
		var zero T
		return zero, r.wrap(op, path, err)
	}
	return v, nil
}

// attemptErr is attempt for operations without a result.
func attemptErr(r *Resolver, op, path string, fn func() error) error {
	return r.wrap(op, path, fn())
}

// attemptTo is attempt for operations that move or copy path to dest.
func attemptTo[T any](r *Resolver, op, path, dest string, fn func() (T, error)) (T, error) {
	v, err := fn()
	if err != nil {
		var zero T
		return zero, r.wrapTo(op, path, dest, err)
	}
	return v, nil
}
