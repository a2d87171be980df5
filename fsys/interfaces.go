package fsys

import (
	"io"
	"io/fs"
)

// FSType represents the underlying type of filesystem implementation.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates the host operating system's filesystem.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// FS is the capability interface fspath consumes.
type FS interface {
	ReadFS
	WriteFS
	ManageFS
	ResolveFS

	// Type returns the underlying filesystem type.
	Type() FSType
}

// ReadFS defines metadata and directory reads.
type ReadFS interface {
	// Stat returns metadata for the named entity, following symbolic links.
	Stat(name string) (fs.FileInfo, error)

	// Lstat returns metadata for the named entity without following a
	// symbolic link in the final component.
	Lstat(name string) (fs.FileInfo, error)

	// ReadDir returns the direct children of the named directory sorted by
	// name. Entries describe the children themselves, so a symbolic link is
	// reported as a link and not as its target.
	ReadDir(name string) ([]fs.DirEntry, error)
}

// WriteFS defines operations that create entities.
type WriteFS interface {
	// OpenFile opens the named file with the given os.O_* flags. If the file
	// is created, perm is used (before umask).
	//
	// The returned file must be closed when no longer needed.
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// Mkdir creates a single directory. It fails with ErrExist if the name is
	// already taken and with ErrNotExist if the parent is missing.
	Mkdir(name string, perm fs.FileMode) error

	// MkdirAll creates a directory along with any missing parents. It does
	// nothing if the directory already exists.
	MkdirAll(name string, perm fs.FileMode) error
}

// ManageFS defines operations that remove or move entities.
type ManageFS interface {
	// Remove removes the named file or empty directory.
	// A non-empty directory is an error.
	Remove(name string) error

	// RemoveAll removes the named entity and any children it contains.
	// It returns nil if the name does not exist.
	RemoveAll(name string) error

	// Rename moves oldpath to newpath, replacing newpath if it is a file.
	Rename(oldpath, newpath string) error
}

// ResolveFS defines path resolution.
type ResolveFS interface {
	// Canonicalize returns the absolute form of name with every symbolic link
	// resolved and every "." and ".." component eliminated. The result names
	// an entity that existed at the time of the call; a missing entity is
	// reported as ErrNotExist.
	Canonicalize(name string) (string, error)

	// Getwd returns the absolute directory relative names are resolved against.
	Getwd() (string, error)
}

// File represents an open file handle.
type File interface {
	io.Reader
	io.ReaderAt
	io.Writer
	io.Seeker
	io.Closer

	// Name returns the name the file was opened with.
	Name() string

	// Stat returns metadata for the open file.
	Stat() (fs.FileInfo, error)
}

// Truncater allows truncating a file to a specified size.
//
//	if t, ok := file.(Truncater); ok {
//	    err := t.Truncate(size)
//	}
type Truncater interface {
	// Truncate changes the size of the file without moving the offset.
	Truncate(size int64) error
}

// Syncer allows committing file contents to stable storage.
type Syncer interface {
	// Sync flushes the file's in-core state to the storage device.
	Sync() error
}

// SymlinkFS defines symbolic link operations (typically local and memory filesystems).
type SymlinkFS interface {
	// Symlink creates newname as a symbolic link to oldname. The target is
	// stored as given.
	Symlink(oldname, newname string) error

	// Readlink returns the stored target of the named symbolic link.
	Readlink(name string) (string, error)
}
