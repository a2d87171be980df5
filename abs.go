package fspath

import (
	"io/fs"
	"path/filepath"

	"github.com/jmgilman/go/fspath/errors"
	"github.com/jmgilman/go/fspath/pathtext"
)

// Abs is a canonical absolute path that existed when it was constructed.
//
// Symbolic links are resolved and "." and ".." are eliminated, so two Abs
// values naming the same entity compare equal. The zero value is not valid.
type Abs struct {
	path string
	r    *Resolver
}

// Abs canonicalizes raw and verifies that it exists. Relative paths resolve
// against the filesystem's working directory. An empty raw path fails with
// CodeNotFound.
func (r *Resolver) Abs(raw string) (Abs, error) {
	return attempt(r, "canonicalize", raw, func() (Abs, error) {
		if raw == "" {
			return Abs{}, fs.ErrNotExist
		}
		canonical, err := r.fs.Canonicalize(raw)
		if err != nil {
			return Abs{}, err
		}
		return Abs{path: canonical, r: r}, nil
	})
}

func (a Abs) resolver() *Resolver {
	return orDefault(a.r)
}

// String returns the canonical path.
func (a Abs) String() string { return a.path }

// Path returns the canonical path.
func (a Abs) Path() string { return a.path }

// Base returns the last element of the path.
func (a Abs) Base() string { return filepath.Base(a.path) }

// Equal reports whether a and other name the same canonical path.
func (a Abs) Equal(other Abs) bool { return a.path == other.path }

// Parent returns the validated parent directory. The root has no parent and
// fails with CodeNotFound.
func (a Abs) Parent() (Abs, error) {
	r := a.resolver()
	dir := filepath.Dir(a.path)
	if dir == a.path {
		return Abs{}, r.wrap("parent", a.path, fs.ErrNotExist)
	}
	return r.Abs(dir)
}

// Type probes the entity and reports its kind. Entities that are neither
// files nor directories report KindUnknown.
func (a Abs) Type() (Kind, error) {
	r := a.resolver()
	info, err := attempt(r, "stat", a.path, func() (fs.FileInfo, error) {
		return r.fs.Stat(a.path)
	})
	if err != nil {
		return KindUnknown, err
	}
	return kindOf(info.Mode()), nil
}

// File probes the entity and returns it as a File.
func (a Abs) File() (File, error) { return a.resolver().newFile(a) }

// Dir probes the entity and returns it as a Dir.
func (a Abs) Dir() (Dir, error) { return a.resolver().newDir(a) }

// Remove deletes the file or empty directory.
func (a Abs) Remove() error {
	r := a.resolver()
	return attemptErr(r, "remove", a.path, func() error {
		return r.fs.Remove(a.path)
	})
}

// Rename moves the entity to to, whose parent must be an existing directory.
// a is not updated and no longer names an existing entity afterward.
func (a Abs) Rename(to string) error {
	r := a.resolver()
	_, err := attemptTo(r, "rename", a.path, to, func() (struct{}, error) {
		target, err := r.place(to)
		if err != nil {
			return struct{}{}, err
		}
		return struct{}{}, r.fs.Rename(a.path, target)
	})
	return err
}

// MarshalText encodes the path with pathtext.
func (a Abs) MarshalText() ([]byte, error) {
	return []byte(pathtext.Encode(a.path)), nil
}

// UnmarshalText decodes a path produced by MarshalText. The result is bound
// to Default and is not checked for existence. Relative paths are rejected.
func (a *Abs) UnmarshalText(text []byte) error {
	path, err := decodeAbsolute(text)
	if err != nil {
		return err
	}
	*a = Abs{path: path}
	return nil
}

func decodeAbsolute(text []byte) (string, error) {
	path, err := pathtext.Decode(string(text))
	if err != nil {
		return "", Default.wrap("decode", string(text), err)
	}
	if !filepath.IsAbs(path) {
		return "", Default.wrap("decode", path,
			errors.New(errors.CodeInvalidInput, "path is not absolute"))
	}
	return path, nil
}
