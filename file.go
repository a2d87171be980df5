package fspath

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/jmgilman/go/fspath/errors"
	"github.com/jmgilman/go/fspath/fsys"
)

// File is an Abs proven to name a regular file.
type File struct {
	abs Abs
}

// newFile probes abs and fails with CodeTypeMismatch unless it is a regular file.
func (r *Resolver) newFile(abs Abs) (File, error) {
	return attempt(r, "probe", abs.path, func() (File, error) {
		info, err := r.fs.Stat(abs.path)
		if err != nil {
			return File{}, err
		}
		if !info.Mode().IsRegular() {
			return File{}, &mismatchError{expected: "file", found: describe(info.Mode())}
		}
		return File{abs: abs}, nil
	})
}

// File validates raw and probes it as a regular file.
func (r *Resolver) File(raw string) (File, error) {
	abs, err := r.Abs(raw)
	if err != nil {
		return File{}, err
	}
	return r.newFile(abs)
}

// CreateFile creates raw if it does not exist, without truncating an existing
// file. An existing entity that is not a regular file fails with
// CodeTypeMismatch.
func (r *Resolver) CreateFile(raw string) (File, error) {
	return attempt(r, "create_file", raw, func() (File, error) {
		target, err := r.place(raw)
		if err != nil {
			return File{}, err
		}
		if _, err := r.fs.Stat(target); err != nil {
			if !errors.Is(err, fsys.ErrNotExist) {
				return File{}, err
			}
			f, err := r.fs.OpenFile(target, os.O_WRONLY|os.O_CREATE, 0o644)
			if err != nil {
				return File{}, err
			}
			if err := f.Close(); err != nil {
				return File{}, err
			}
		}
		return r.File(target)
	})
}

func (f File) resolver() *Resolver { return f.abs.resolver() }

// Abs returns the validated path.
func (f File) Abs() Abs { return f.abs }

// String returns the canonical path.
func (f File) String() string { return f.abs.path }

// Path returns the canonical path.
func (f File) Path() string { return f.abs.path }

// open opens f with the flags acc and opts allow.
func (f File) open(acc access, opts []OpenOption) (fsys.File, error) {
	r := f.resolver()
	return attempt(r, "open", f.abs.path, func() (fsys.File, error) {
		cfg := newOpenConfig(opts)
		flag, err := cfg.flags(acc)
		if err != nil {
			return nil, err
		}
		return r.fs.OpenFile(f.abs.path, flag, cfg.perm)
	})
}

// OpenRead opens the file for reading. Options that modify the file are
// rejected with CodeInvalidInput before the file is opened.
func (f File) OpenRead(opts ...OpenOption) (*ReadHandle, error) {
	file, err := f.open(accessRead, opts)
	if err != nil {
		return nil, err
	}
	return newReadHandle(file, f), nil
}

// OpenWrite opens the file for writing.
func (f File) OpenWrite(opts ...OpenOption) (*WriteHandle, error) {
	file, err := f.open(accessWrite, opts)
	if err != nil {
		return nil, err
	}
	return newWriteHandle(file, f), nil
}

// OpenEdit opens the file for reading and writing.
func (f File) OpenEdit(opts ...OpenOption) (*EditHandle, error) {
	file, err := f.open(accessEdit, opts)
	if err != nil {
		return nil, err
	}
	return newEditHandle(file, f), nil
}

// WithRead opens the file for reading, runs fn and closes the handle on every
// exit path, including a panic in fn.
func (f File) WithRead(fn func(*ReadHandle) error, opts ...OpenOption) (err error) {
	h, err := f.OpenRead(opts...)
	if err != nil {
		return err
	}
	defer closeInto(h, &err)
	return fn(h)
}

// WithWrite opens the file for writing, runs fn and closes the handle on
// every exit path.
func (f File) WithWrite(fn func(*WriteHandle) error, opts ...OpenOption) (err error) {
	h, err := f.OpenWrite(opts...)
	if err != nil {
		return err
	}
	defer closeInto(h, &err)
	return fn(h)
}

// WithEdit opens the file for reading and writing, runs fn and closes the
// handle on every exit path.
func (f File) WithEdit(fn func(*EditHandle) error, opts ...OpenOption) (err error) {
	h, err := f.OpenEdit(opts...)
	if err != nil {
		return err
	}
	defer closeInto(h, &err)
	return fn(h)
}

// closeInto closes c and reports its error through err unless err is already set.
func closeInto(c io.Closer, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
}

// ReadBytes returns the whole content of the file.
func (f File) ReadBytes() ([]byte, error) {
	var data []byte
	err := f.WithRead(func(h *ReadHandle) error {
		var err error
		data, err = h.ReadAll()
		return err
	})
	return data, err
}

// ReadString returns the whole content of the file as text. It fails with
// CodeInvalidInput when the content is not valid UTF-8.
func (f File) ReadString() (string, error) {
	var s string
	err := f.WithRead(func(h *ReadHandle) error {
		var err error
		s, err = h.ReadString()
		return err
	})
	return s, err
}

// WriteBytes replaces the content of the file with data.
//
// The data is written to a uniquely named temporary sibling, committed to
// stable storage, and renamed over the file. Readers observe either the old
// or the new content. The temporary file is removed on any failure.
func (f File) WriteBytes(data []byte) error {
	r := f.resolver()
	return attemptErr(r, "write", f.abs.path, func() error {
		perm := fs.FileMode(0o644)
		if info, err := r.fs.Stat(f.abs.path); err == nil {
			perm = info.Mode().Perm()
		}

		tmp := filepath.Join(filepath.Dir(f.abs.path),
			"."+filepath.Base(f.abs.path)+"."+uuid.NewString()+".tmp")
		if err := writeTemp(r.fs, tmp, perm, data); err != nil {
			r.discard(tmp)
			return err
		}
		if err := r.fs.Rename(tmp, f.abs.path); err != nil {
			r.discard(tmp)
			return err
		}
		return nil
	})
}

// WriteString replaces the content of the file with s. See WriteBytes.
func (f File) WriteString(s string) error {
	return f.WriteBytes([]byte(s))
}

func writeTemp(filesystem fsys.FS, name string, perm fs.FileMode, data []byte) error {
	tf, err := filesystem.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	if _, err := tf.Write(data); err != nil {
		_ = tf.Close()
		return err
	}
	if s, ok := tf.(fsys.Syncer); ok {
		if err := s.Sync(); err != nil {
			_ = tf.Close()
			return err
		}
	}
	return tf.Close()
}

// discard removes a temporary file left behind by a failed write.
func (r *Resolver) discard(tmp string) {
	err := r.fs.Remove(tmp)
	if err != nil && !errors.Is(err, fsys.ErrNotExist) {
		r.log.Debug().Str("path", tmp).Err(err).Msg("failed to remove temporary file")
		return
	}
	r.log.Debug().Str("path", tmp).Msg("removed temporary file")
}

// Append writes data to the end of the file.
func (f File) Append(data []byte) error {
	return f.WithWrite(func(h *WriteHandle) error {
		_, err := h.Write(data)
		return err
	}, WithAppend())
}

// ErrSameFile is reported when a copy destination resolves to its source.
var ErrSameFile = errors.New(errors.CodeInvalidInput, "destination is the source file")

// CopyTo copies the content of the file to dest, creating or truncating it,
// and returns dest validated as a File. A newly created dest gets the
// permission bits of the source. The parent of dest must exist, and dest
// must not resolve to the file itself.
func (f File) CopyTo(dest string) (File, error) {
	r := f.resolver()
	target, err := attemptTo(r, "copy", f.abs.path, dest, func() (string, error) {
		target, err := r.place(dest)
		if err != nil {
			return "", err
		}
		if target == f.abs.path {
			return "", ErrSameFile
		}
		return target, f.WithRead(func(src *ReadHandle) error {
			info, err := src.Stat()
			if err != nil {
				return err
			}
			out, err := r.fs.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
			if err != nil {
				return err
			}
			if _, err := io.Copy(out, src); err != nil {
				_ = out.Close()
				return err
			}
			return out.Close()
		})
	})
	if err != nil {
		return File{}, err
	}
	return r.File(target)
}

// Remove deletes the file.
func (f File) Remove() error { return f.abs.Remove() }

// MarshalText encodes the path with pathtext.
func (f File) MarshalText() ([]byte, error) { return f.abs.MarshalText() }

// UnmarshalText decodes a path produced by MarshalText. The result is bound
// to Default and is not probed.
func (f *File) UnmarshalText(text []byte) error {
	return f.abs.UnmarshalText(text)
}
