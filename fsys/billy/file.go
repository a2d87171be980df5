package billy

import (
	"io/fs"

	"github.com/go-git/go-billy/v5"

	"github.com/jmgilman/go/fspath/fsys"
)

// File wraps billy.File to implement fsys.File.
// It keeps the name it was opened with and a reference to the filesystem,
// since billy.File has no Stat method.
type File struct {
	file billy.File
	fs   billy.Basic
	name string
}

// Read delegates to the underlying billy.File.
func (f *File) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

// ReadAt delegates to the underlying billy.File.
func (f *File) ReadAt(p []byte, off int64) (int, error) {
	return f.file.ReadAt(p, off)
}

// Write delegates to the underlying billy.File.
func (f *File) Write(p []byte) (int, error) {
	return f.file.Write(p)
}

// Seek delegates to the underlying billy.File.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence)
}

// Close delegates to the underlying billy.File.
func (f *File) Close() error {
	return f.file.Close()
}

// Stat returns metadata for the file through the owning filesystem, looked up
// by the name it was opened with. Once that name is renamed or replaced, Stat
// describes whatever lives at the name, not the open file. Neither backend
// offers a usable handle stat: the osfs chroot wrapper hides it, and memfs
// reports the permission passed to OpenFile instead of the stored mode.
func (f *File) Stat() (fs.FileInfo, error) {
	return f.fs.Stat(f.name)
}

// Name returns the name provided to OpenFile.
func (f *File) Name() string {
	return f.name
}

// Truncate implements fsys.Truncater.
func (f *File) Truncate(size int64) error {
	return f.file.Truncate(size)
}

// Sync implements fsys.Syncer.
// For backends without Sync (e.g., memfs), this is a no-op.
func (f *File) Sync() error {
	if syncer, ok := f.file.(interface{ Sync() error }); ok {
		return syncer.Sync()
	}
	return nil
}

// Compile-time interface checks.
var (
	_ fsys.File      = (*File)(nil)
	_ fsys.Truncater = (*File)(nil)
	_ fsys.Syncer    = (*File)(nil)
)
