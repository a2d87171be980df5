package errors

// ErrorClassification indicates whether an error may succeed if retried.
// fspath itself never retries; the classification is advice for the caller.
type ErrorClassification string

const (
	// ClassificationRetryable indicates a transient failure, such as an
	// interrupted system call or a busy resource.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates a failure that will repeat on retry.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
// Every code in the taxonomy is permanent by default; transient I/O failures
// are promoted to retryable by Classification inspecting the cause.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeNotFound:         ClassificationPermanent,
	CodeAlreadyExists:    ClassificationPermanent,
	CodeTypeMismatch:     ClassificationPermanent,
	CodePermissionDenied: ClassificationPermanent,
	CodeInvalidInput:     ClassificationPermanent,
	CodeUnsupported:      ClassificationPermanent,
	CodeIOFailure:        ClassificationPermanent,
	CodeInternal:         ClassificationPermanent,
	CodeUnknown:          ClassificationPermanent,
}

// getDefaultClassification returns the default classification for an error code.
// Returns ClassificationPermanent if the code is not in the map.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
