// Package fsys defines the filesystem capability interface consumed by fspath.
//
// fspath never calls the operating system directly. Every canonicalize,
// stat, open, readdir, mkdir, remove and rename goes through an FS, which
// keeps the typed-path layer independent of the backing store and lets tests
// substitute an in-memory or fault-injecting filesystem.
//
// # Interface Hierarchy
//
// FS is composed of four sub-interfaces:
//
//   - ReadFS: Stat, Lstat, ReadDir
//   - WriteFS: OpenFile, Mkdir, MkdirAll
//   - ManageFS: Remove, RemoveAll, Rename
//   - ResolveFS: Canonicalize, Getwd
//
// Optional capabilities are discovered with type assertions:
//
//   - SymlinkFS: Symlink, Readlink
//   - Truncater and Syncer on File
//
// # Paths
//
// Names passed to an FS are absolute paths on the provider's namespace.
// Canonicalize is the exception: it also accepts relative names and resolves
// them against the provider's working directory, as reported by Getwd.
//
// # Providers
//
// Concrete implementations live in sub-packages:
//
//   - github.com/jmgilman/go/fspath/fsys/billy - go-billy backed local and memory filesystems
//
// Conformance tests for new providers live in fsys/fstest.
package fsys
