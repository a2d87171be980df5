package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Filesystem entity errors.

	// CodeNotFound indicates the path does not resolve to an existing entity.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates an exclusive create hit an existing entity.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodeTypeMismatch indicates the entity exists but is not of the requested
	// kind (a directory where a file was expected, or the reverse).
	CodeTypeMismatch ErrorCode = "TYPE_MISMATCH"

	// Permission errors.

	// CodePermissionDenied indicates the OS refused access to the entity.
	CodePermissionDenied ErrorCode = "PERMISSION_DENIED"

	// Caller errors.

	// CodeInvalidInput indicates the request itself was malformed, such as an
	// impossible combination of open flags or undecodable path text.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeUnsupported indicates the filesystem provider lacks the capability.
	CodeUnsupported ErrorCode = "UNSUPPORTED"

	// I/O errors.

	// CodeIOFailure is the catch-all for other OS-reported failures.
	CodeIOFailure ErrorCode = "IO_FAILURE"

	// System errors.

	// CodeInternal indicates a bug inside fspath itself.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an error that carries no code at all.
	CodeUnknown ErrorCode = "UNKNOWN"
)
