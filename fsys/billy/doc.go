// Package billy provides go-billy backed implementations of fsys.FS.
//
// LocalFS wraps billy's osfs rooted at "/" and delegates canonicalization to
// the operating system. MemoryFS wraps billy's memfs and canonicalizes by
// walking the path one component at a time, following symbolic links through
// Lstat and Readlink.
//
// Usage:
//
//	local := billy.NewLocal()
//	abs, err := local.Canonicalize("/tmp/../tmp/x")
//
//	mem := billy.NewMemory(billy.WithWorkingDir("/work"))
//	err = mem.MkdirAll("/work", 0o755)
//
// # Implicit Parents
//
// Both backends create missing parent directories when a file is opened with
// O_CREATE or renamed into a missing directory. Mkdir still requires the
// parent to exist.
//
// # Thread Safety
//
// FS instances (LocalFS, MemoryFS) are safe for concurrent use by
// multiple goroutines. File handles are not safe for concurrent use.
package billy
