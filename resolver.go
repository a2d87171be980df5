package fspath

import (
	"io/fs"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/jmgilman/go/fspath/errors"
	"github.com/jmgilman/go/fspath/fsys"
	"github.com/jmgilman/go/fspath/fsys/billy"
)

// Resolver validates paths against one filesystem.
type Resolver struct {
	fs  fsys.FS
	log zerolog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger failed operations are reported to at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Resolver) {
		r.log = logger
	}
}

// New creates a Resolver over filesystem.
func New(filesystem fsys.FS, opts ...Option) *Resolver {
	r := &Resolver{
		fs:  filesystem,
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Default is the Resolver used by package-level functions and by values
// produced through deserialization. It is backed by the host filesystem.
var Default = New(billy.NewLocal())

// FS returns the filesystem the resolver operates on.
func (r *Resolver) FS() fsys.FS {
	return r.fs
}

// orDefault returns r, or Default when r is nil.
func orDefault(r *Resolver) *Resolver {
	if r == nil {
		return Default
	}
	return r
}

// absolute joins a relative raw path onto the working directory. The text is
// not cleaned: ".." must be applied by the filesystem to resolved components.
func (r *Resolver) absolute(raw string) (string, error) {
	if raw == "" {
		return "", fsys.ErrNotExist
	}
	if filepath.IsAbs(raw) {
		return raw, nil
	}
	wd, err := r.fs.Getwd()
	if err != nil {
		return "", err
	}
	return joinRaw(wd, raw), nil
}

// joinRaw appends rel to base without cleaning, so that ".." in rel is
// resolved against the filesystem rather than the text.
func joinRaw(base, rel string) string {
	return strings.TrimRight(base, string(filepath.Separator)) + string(filepath.Separator) + rel
}

// place returns where raw would live once created. An existing raw resolves
// to its canonical form. Otherwise its parent must be an existing directory,
// and the result is the canonical parent joined with the final component.
func (r *Resolver) place(raw string) (string, error) {
	full, err := r.absolute(raw)
	if err != nil {
		return "", err
	}
	return r.placeIn(full, false)
}

// placeAll is place for paths whose missing ancestors will be created too.
func (r *Resolver) placeAll(raw string) (string, error) {
	full, err := r.absolute(raw)
	if err != nil {
		return "", err
	}
	return r.placeIn(full, true)
}

func (r *Resolver) placeIn(full string, parents bool) (string, error) {
	canonical, err := r.fs.Canonicalize(full)
	if err == nil {
		return canonical, nil
	}
	if !errors.Is(err, fsys.ErrNotExist) {
		return "", err
	}

	dir, base := splitLast(full)
	if base == "" || base == "." || base == ".." {
		return "", err
	}

	var parent string
	if parents {
		parent, err = r.placeIn(dir, true)
	} else {
		parent, err = r.existingDir(dir)
	}
	if err != nil {
		return "", err
	}
	return filepath.Join(parent, base), nil
}

// existingDir canonicalizes dir and requires it to be a directory.
func (r *Resolver) existingDir(dir string) (string, error) {
	canonical, err := r.fs.Canonicalize(dir)
	if err != nil {
		return "", err
	}
	info, err := r.fs.Stat(canonical)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", &fs.PathError{Op: "stat", Path: canonical, Err: syscall.ENOTDIR}
	}
	return canonical, nil
}

// splitLast splits full at its final separator without cleaning either half.
// base is empty for the root.
func splitLast(full string) (dir, base string) {
	trimmed := strings.TrimRight(full, string(filepath.Separator))
	i := strings.LastIndexByte(trimmed, filepath.Separator)
	if i < 0 {
		return full, ""
	}
	dir = trimmed[:i]
	if dir == "" {
		dir = string(filepath.Separator)
	}
	return dir, trimmed[i+1:]
}

// NewAbs validates raw through Default.
func NewAbs(raw string) (Abs, error) {
	return Default.Abs(raw)
}

// NewFile probes abs and returns it as a File.
// It fails with CodeTypeMismatch when abs is not a regular file.
func NewFile(abs Abs) (File, error) {
	return abs.resolver().newFile(abs)
}

// NewDir probes abs and returns it as a Dir.
// It fails with CodeTypeMismatch when abs is not a directory.
func NewDir(abs Abs) (Dir, error) {
	return abs.resolver().newDir(abs)
}

// CreateDir creates raw through Default. See Resolver.CreateDir.
func CreateDir(raw string) (Dir, error) {
	return Default.CreateDir(raw)
}

// CreateDirAll creates raw and its parents through Default. See Resolver.CreateDirAll.
func CreateDirAll(raw string) (Dir, error) {
	return Default.CreateDirAll(raw)
}

// CreateFile creates raw through Default. See Resolver.CreateFile.
func CreateFile(raw string) (File, error) {
	return Default.CreateFile(raw)
}

// OpenRead opens raw for reading through Default.
func OpenRead(raw string, opts ...OpenOption) (*ReadHandle, error) {
	return Default.OpenRead(raw, opts...)
}

// OpenWrite opens raw for writing through Default.
func OpenWrite(raw string, opts ...OpenOption) (*WriteHandle, error) {
	return Default.OpenWrite(raw, opts...)
}

// OpenEdit opens raw for reading and writing through Default.
func OpenEdit(raw string, opts ...OpenOption) (*EditHandle, error) {
	return Default.OpenEdit(raw, opts...)
}
