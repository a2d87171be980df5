package billy

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/jmgilman/go/fspath/fsys"
)

// LocalFS wraps billy's osfs for access to the host filesystem.
type LocalFS struct {
	backend
}

// MemoryFS wraps billy's memfs for in-memory filesystem access.
type MemoryFS struct {
	backend
	wd string
}

// Option configures filesystem creation.
type Option func(*config)

type config struct {
	wd string
}

// WithWorkingDir sets the directory relative paths resolve against.
// Only MemoryFS honors it; LocalFS always uses the process working directory.
// The directory is not created.
func WithWorkingDir(dir string) Option {
	return func(c *config) {
		c.wd = dir
	}
}

// NewLocal creates a go-billy-backed local filesystem rooted at "/".
func NewLocal(_ ...Option) *LocalFS {
	return &LocalFS{
		backend: backend{bfs: osfs.New("/")},
	}
}

// NewMemory creates an empty go-billy-backed in-memory filesystem.
// Relative paths resolve against "/" unless WithWorkingDir is given.
func NewMemory(opts ...Option) *MemoryFS {
	cfg := config{wd: "/"}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &MemoryFS{
		backend: backend{bfs: memfs.New()},
		wd:      normalize(cfg.wd),
	}
}

// Unwrap returns the underlying billy.Filesystem.
func (b *backend) Unwrap() billy.Filesystem {
	return b.bfs
}

// normalize converts paths to use forward slashes consistently.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// backend holds the operations shared by every billy filesystem.
type backend struct {
	bfs billy.Filesystem
}

// dirEntry wraps fs.FileInfo to implement fs.DirEntry.
type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }

// Stat returns file metadata for the named file, following symbolic links.
func (b *backend) Stat(name string) (fs.FileInfo, error) {
	return b.bfs.Stat(normalize(name))
}

// Lstat returns file metadata without following a final symbolic link.
func (b *backend) Lstat(name string) (fs.FileInfo, error) {
	return b.bfs.Lstat(normalize(name))
}

// ReadDir returns the children of the named directory sorted by name.
func (b *backend) ReadDir(name string) ([]fs.DirEntry, error) {
	// Billy's ReadDir returns []fs.FileInfo, we need to convert to []fs.DirEntry
	infos, err := b.bfs.ReadDir(normalize(name))
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = &dirEntry{info: info}
	}
	slices.SortFunc(entries, func(x, y fs.DirEntry) int {
		return strings.Compare(x.Name(), y.Name())
	})
	return entries, nil
}

// OpenFile opens a file with the specified flags and permissions.
func (b *backend) OpenFile(name string, flag int, perm fs.FileMode) (fsys.File, error) {
	name = normalize(name)
	f, err := b.bfs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: b.bfs, name: name}, nil
}

// Mkdir creates a new directory with the specified name and permission bits.
// Unlike MkdirAll, this will fail if the parent directory does not exist.
func (b *backend) Mkdir(name string, perm fs.FileMode) error {
	name = normalize(name)
	if _, err := b.bfs.Lstat(name); err == nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}
	}
	parent := filepath.ToSlash(filepath.Dir(name))
	if parent != "." && parent != "/" {
		info, err := b.bfs.Stat(parent)
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrNotExist}
		}
	}
	// MkdirAll only creates name itself since the parent was verified above
	return b.bfs.MkdirAll(name, perm)
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (b *backend) MkdirAll(path string, perm fs.FileMode) error {
	return b.bfs.MkdirAll(normalize(path), perm)
}

// Remove removes the named file or empty directory.
func (b *backend) Remove(name string) error {
	return b.bfs.Remove(normalize(name))
}

// RemoveAll removes path and any children it contains.
func (b *backend) RemoveAll(path string) error {
	path = normalize(path)
	// Billy doesn't have RemoveAll, implement via recursive removal
	info, err := b.bfs.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if !info.IsDir() {
		return b.bfs.Remove(path)
	}

	entries, err := b.bfs.ReadDir(path)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if err := b.RemoveAll(filepath.ToSlash(filepath.Join(path, entry.Name()))); err != nil {
			return err
		}
	}

	return b.bfs.Remove(path)
}

// Rename renames (moves) oldpath to newpath.
func (b *backend) Rename(oldpath, newpath string) error {
	return b.bfs.Rename(normalize(oldpath), normalize(newpath))
}

// Symlink creates newname as a symbolic link to oldname.
func (b *backend) Symlink(oldname, newname string) error {
	return b.bfs.Symlink(oldname, normalize(newname))
}

// Readlink returns the destination of the named symbolic link.
func (b *backend) Readlink(name string) (string, error) {
	return b.bfs.Readlink(normalize(name))
}

// Canonicalize resolves name through the operating system. Relative names
// are joined onto the working directory without cleaning, so ".." is applied
// to resolved components rather than to the text.
func (lfs *LocalFS) Canonicalize(name string) (string, error) {
	if !filepath.IsAbs(name) {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		name = wd + string(filepath.Separator) + name
	}
	return filepath.EvalSymlinks(name)
}

// Getwd returns the process working directory.
func (lfs *LocalFS) Getwd() (string, error) {
	return os.Getwd()
}

// Type returns FSTypeLocal for local filesystem implementations.
func (lfs *LocalFS) Type() fsys.FSType {
	return fsys.FSTypeLocal
}

// Stat returns file metadata for the named file. The root always exists.
func (mfs *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	info, err := mfs.backend.Stat(name)
	if err != nil && normalize(name) == "/" {
		return rootInfo{}, nil
	}
	return info, err
}

// Lstat returns file metadata without following a final symbolic link.
// The root always exists.
func (mfs *MemoryFS) Lstat(name string) (fs.FileInfo, error) {
	info, err := mfs.backend.Lstat(name)
	if err != nil && normalize(name) == "/" {
		return rootInfo{}, nil
	}
	return info, err
}

// Canonicalize resolves name by walking its components.
// Relative names resolve against the working directory.
func (mfs *MemoryFS) Canonicalize(name string) (string, error) {
	if !filepath.IsAbs(name) && !strings.HasPrefix(filepath.ToSlash(name), "/") {
		name = mfs.wd + "/" + name
	}
	return resolve(mfs, name)
}

// Getwd returns the configured working directory.
func (mfs *MemoryFS) Getwd() (string, error) {
	return mfs.wd, nil
}

// Type returns FSTypeMemory for in-memory filesystem implementations.
func (mfs *MemoryFS) Type() fsys.FSType {
	return fsys.FSTypeMemory
}

// Compile-time interface checks.
var (
	_ fsys.FS        = (*LocalFS)(nil)
	_ fsys.FS        = (*MemoryFS)(nil)
	_ fsys.SymlinkFS = (*LocalFS)(nil)
	_ fsys.SymlinkFS = (*MemoryFS)(nil)
)
