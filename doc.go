// Package fspath provides typed, validated filesystem paths and
// capability-restricted file handles.
//
// A raw path string becomes an Abs only after it has been canonicalized and
// shown to exist. An Abs is refined into a File or a Dir by probing the entity
// it names, and a Dir lists its children as Entry values that are already
// classified. Opening a File yields a ReadHandle, WriteHandle or EditHandle
// whose method set matches the access it was opened with.
//
// Validation happens once, at construction. A value that was valid when built
// is never re-checked; operations against an entity that has since vanished
// simply fail with the filesystem's error.
//
// Usage:
//
//	dir, err := fspath.CreateDirAll("/tmp/example")
//	if err != nil {
//	    return err
//	}
//	f, err := dir.CreateFile("notes.txt")
//	if err != nil {
//	    return err
//	}
//	if err := f.WriteString("hello\n"); err != nil {
//	    return err
//	}
//	for entry, err := range dir.List() {
//	    ...
//	}
//
// # Resolvers
//
// Every value remembers the Resolver it was validated through. The Resolver
// owns the fsys.FS used for all I/O and the logger failures are reported to.
// Package-level functions use Default, which is backed by the host
// filesystem. Tests and embedders can build their own:
//
//	r := fspath.New(billy.NewMemory(), fspath.WithLogger(logger))
//
// # Errors
//
// Every failure is an *Error carrying the operation, the path, and the cause,
// and implements errors.PlatformError from this module's errors package:
//
//	_, err := fspath.NewAbs("/missing")
//	errors.GetCode(err)              // NOT_FOUND
//	stderrors.Is(err, fs.ErrNotExist) // true
//
// io.EOF returned by handle reads is the only error passed through unwrapped.
//
// # Concurrency
//
// Abs, File, Dir and Entry values are immutable and safe to share between
// goroutines. Handles own one open descriptor and are not safe for concurrent
// use.
package fspath
