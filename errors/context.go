package errors

import "errors"

// WithContext adds a single context field to an error.
// Returns a new PlatformError; existing context fields are preserved.
//
// If err is not a PlatformError, it is converted to one with the code
// reported by Classify. Returns nil if err is nil.
//
// Example:
//
//	err = errors.WithContext(err, "command", "cat")
func WithContext(err error, key string, value interface{}) PlatformError {
	if err == nil {
		return nil
	}
	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap adds multiple context fields to an error.
// New fields override existing ones with the same key.
//
// If err is not a PlatformError, it is converted to one with the code
// reported by Classify. Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) PlatformError {
	if err == nil {
		return nil
	}

	var platformErr PlatformError
	if !errors.As(err, &platformErr) {
		code := Classify(err)
		platformErr = &codedError{
			code:           code,
			classification: classificationOf(err, code),
			message:        err.Error(),
			cause:          err,
		}
	}

	merged := platformErr.Context()
	if merged == nil {
		merged = make(map[string]interface{}, len(ctx))
	}
	for k, v := range ctx {
		merged[k] = v
	}

	return &codedError{
		code:           platformErr.Code(),
		classification: platformErr.Classification(),
		message:        platformErr.Message(),
		context:        merged,
		cause:          platformErr.Unwrap(),
	}
}
