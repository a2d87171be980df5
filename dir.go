package fspath

import (
	"io/fs"
	"iter"
	"path"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/jmgilman/go/fspath/errors"
	"github.com/jmgilman/go/fspath/fsys"
)

// Dir is an Abs proven to name a directory.
type Dir struct {
	abs Abs
}

// newDir probes abs and fails with CodeTypeMismatch unless it is a directory.
func (r *Resolver) newDir(abs Abs) (Dir, error) {
	return attempt(r, "probe", abs.path, func() (Dir, error) {
		info, err := r.fs.Stat(abs.path)
		if err != nil {
			return Dir{}, err
		}
		if !info.IsDir() {
			return Dir{}, &mismatchError{expected: "directory", found: describe(info.Mode())}
		}
		return Dir{abs: abs}, nil
	})
}

// Dir validates raw and probes it as a directory.
func (r *Resolver) Dir(raw string) (Dir, error) {
	abs, err := r.Abs(raw)
	if err != nil {
		return Dir{}, err
	}
	return r.newDir(abs)
}

// CreateDir creates the directory raw. Its parent must exist. An existing
// directory is returned as is; an existing entity of another kind fails with
// CodeTypeMismatch.
func (r *Resolver) CreateDir(raw string) (Dir, error) {
	return attempt(r, "create_dir", raw, func() (Dir, error) {
		target, err := r.place(raw)
		if err != nil {
			return Dir{}, err
		}
		if err := r.fs.Mkdir(target, 0o755); err != nil && !errors.Is(err, fsys.ErrExist) {
			return Dir{}, err
		}
		return r.Dir(target)
	})
}

// CreateDirAll creates the directory raw along with any missing parents.
// It is idempotent for existing directories; an existing entity of another
// kind fails with CodeTypeMismatch.
func (r *Resolver) CreateDirAll(raw string) (Dir, error) {
	return attempt(r, "create_dir", raw, func() (Dir, error) {
		target, err := r.placeAll(raw)
		if err != nil {
			return Dir{}, err
		}
		if _, err := r.fs.Stat(target); err != nil {
			if !errors.Is(err, fsys.ErrNotExist) {
				return Dir{}, err
			}
			if err := r.fs.MkdirAll(target, 0o755); err != nil {
				return Dir{}, err
			}
		}
		return r.Dir(target)
	})
}

func (d Dir) resolver() *Resolver { return d.abs.resolver() }

// Abs returns the validated path.
func (d Dir) Abs() Abs { return d.abs }

// String returns the canonical path.
func (d Dir) String() string { return d.abs.path }

// Path returns the canonical path.
func (d Dir) Path() string { return d.abs.path }

// Join validates rel interpreted relative to the directory.
func (d Dir) Join(rel string) (Abs, error) {
	return d.resolver().Abs(joinRaw(d.abs.path, rel))
}

// CreateDir creates the subdirectory rel. See Resolver.CreateDir.
func (d Dir) CreateDir(rel string) (Dir, error) {
	return d.resolver().CreateDir(joinRaw(d.abs.path, rel))
}

// CreateDirAll creates the subdirectory rel and its parents. See Resolver.CreateDirAll.
func (d Dir) CreateDirAll(rel string) (Dir, error) {
	return d.resolver().CreateDirAll(joinRaw(d.abs.path, rel))
}

// CreateFile creates the file rel inside the directory. See Resolver.CreateFile.
func (d Dir) CreateFile(rel string) (File, error) {
	return d.resolver().CreateFile(joinRaw(d.abs.path, rel))
}

// List yields one Entry per direct child of the directory in name order.
//
// Each child is canonicalized and probed once. A child that cannot be
// classified, such as a socket or a dangling link, is yielded as an error and
// iteration continues. Failing to read the directory yields a single error.
// The sequence is lazy and reads the directory again each time it is ranged
// over.
func (d Dir) List() iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		r := d.resolver()
		children, err := attempt(r, "read_dir", d.abs.path, func() ([]fs.DirEntry, error) {
			return r.fs.ReadDir(d.abs.path)
		})
		if err != nil {
			yield(Entry{}, err)
			return
		}
		for _, child := range children {
			if !yield(r.entry(filepath.Join(d.abs.path, child.Name()))) {
				return
			}
		}
	}
}

// Entries returns every child of the directory, stopping at the first
// child that cannot be classified.
func (d Dir) Entries() ([]Entry, error) {
	var entries []Entry
	for entry, err := range d.List() {
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Glob returns the entries below the directory whose slash-separated path
// relative to it matches pattern, using doublestar syntax ("**" matches any
// number of directories). Symbolically linked directories are matched but
// not descended into. Results are in lexical walk order. Glob fails on the
// first matching child that cannot be classified.
func (d Dir) Glob(pattern string) ([]Entry, error) {
	r := d.resolver()
	if !doublestar.ValidatePattern(pattern) {
		return nil, r.wrap("glob", d.abs.path,
			errors.Newf(errors.CodeInvalidInput, "invalid pattern %q", pattern))
	}

	var matches []Entry
	err := r.walk(d.abs.path, "", func(rel string) error {
		ok, err := doublestar.Match(pattern, rel)
		if err != nil || !ok {
			return err
		}
		entry, err := r.entry(filepath.Join(d.abs.path, filepath.FromSlash(rel)))
		if err != nil {
			return err
		}
		matches = append(matches, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// walk calls fn with the slash-separated relative path of every entity below
// dir, descending only into real directories.
func (r *Resolver) walk(dir, rel string, fn func(rel string) error) error {
	children, err := attempt(r, "read_dir", dir, func() ([]fs.DirEntry, error) {
		return r.fs.ReadDir(dir)
	})
	if err != nil {
		return err
	}
	for _, child := range children {
		childRel := path.Join(rel, child.Name())
		if err := fn(childRel); err != nil {
			return err
		}
		if child.IsDir() && child.Type()&fs.ModeSymlink == 0 {
			if err := r.walk(filepath.Join(dir, child.Name()), childRel, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Remove deletes the directory, which must be empty.
func (d Dir) Remove() error { return d.abs.Remove() }

// RemoveAll deletes the directory and everything it contains.
func (d Dir) RemoveAll() error {
	r := d.resolver()
	return attemptErr(r, "remove_all", d.abs.path, func() error {
		return r.fs.RemoveAll(d.abs.path)
	})
}

// MarshalText encodes the path with pathtext.
func (d Dir) MarshalText() ([]byte, error) { return d.abs.MarshalText() }

// UnmarshalText decodes a path produced by MarshalText. The result is bound
// to Default and is not probed.
func (d *Dir) UnmarshalText(text []byte) error {
	return d.abs.UnmarshalText(text)
}
