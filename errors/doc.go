// Package errors provides the coded error type used across fspath.
//
// Every failure surfaced by fspath carries an ErrorCode naming what went
// wrong (NOT_FOUND, TYPE_MISMATCH, ...), a classification telling the caller
// whether a retry could help, and optional context metadata. Errors remain
// compatible with the standard library (errors.Is, errors.As, errors.Unwrap),
// so a caller can still match fs.ErrNotExist through the chain.
//
// # Creating and wrapping
//
//	err := errors.New(errors.CodeInvalidInput, "append and truncate are mutually exclusive")
//
//	if err := decode(s); err != nil {
//	    return errors.Wrap(err, errors.CodeInvalidInput, "decoding path text")
//	}
//
// # Classifying OS errors
//
// Classify maps an arbitrary error returned by a filesystem call onto the
// fspath taxonomy:
//
//	code := errors.Classify(err) // CodeNotFound for fs.ErrNotExist, ...
//
// # Inspecting
//
//	if errors.GetCode(err) == errors.CodeNotFound {
//	    // ...
//	}
//
//	if errors.IsRetryable(err) {
//	    // the underlying call was interrupted or the resource was busy
//	}
//
// # Serialization
//
// ToJSON flattens any error into an ErrorResponse. The wrapped chain is not
// included; context metadata is.
package errors
