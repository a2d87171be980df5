package fspath

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/jmgilman/go/fspath/fsys"
)

// OpenOption configures how a file is opened.
type OpenOption func(*openConfig)

type openConfig struct {
	create    bool
	append    bool
	truncate  bool
	exclusive bool
	perm      fs.FileMode
}

// WithCreate creates the file if it does not exist.
func WithCreate() OpenOption {
	return func(c *openConfig) { c.create = true }
}

// WithAppend positions every write at the end of the file.
func WithAppend() OpenOption {
	return func(c *openConfig) { c.append = true }
}

// WithTruncate empties the file when it is opened.
func WithTruncate() OpenOption {
	return func(c *openConfig) { c.truncate = true }
}

// WithExclusive creates the file and fails with CodeAlreadyExists if it
// already exists. It implies WithCreate.
func WithExclusive() OpenOption {
	return func(c *openConfig) {
		c.create = true
		c.exclusive = true
	}
}

// WithPerm sets the permission bits of a newly created file.
// The default is 0o644.
func WithPerm(perm fs.FileMode) OpenOption {
	return func(c *openConfig) { c.perm = perm }
}

// access is the I/O capability a handle is opened with.
type access int

const (
	accessRead access = iota
	accessWrite
	accessEdit
)

func newOpenConfig(opts []OpenOption) openConfig {
	cfg := openConfig{perm: 0o644}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// flags validates the option combination for acc and returns the open flags.
func (c openConfig) flags(acc access) (int, error) {
	if acc == accessRead && (c.create || c.append || c.truncate) {
		return 0, fmt.Errorf("%w: read-only access does not allow modifying options", fs.ErrInvalid)
	}
	if c.append && c.truncate {
		return 0, fmt.Errorf("%w: append and truncate are mutually exclusive", fs.ErrInvalid)
	}

	var flag int
	switch acc {
	case accessRead:
		flag = os.O_RDONLY
	case accessWrite:
		flag = os.O_WRONLY
	case accessEdit:
		flag = os.O_RDWR
	}
	if c.create {
		flag |= os.O_CREATE
	}
	if c.exclusive {
		flag |= os.O_EXCL
	}
	if c.append {
		flag |= os.O_APPEND
	}
	if c.truncate {
		flag |= os.O_TRUNC
	}
	return flag, nil
}

// openRaw opens raw first and validates it into a File afterward, so that
// options such as WithCreate can bring the file into existence. The opened
// file is closed when validation fails.
func (r *Resolver) openRaw(raw string, acc access, opts []OpenOption) (fsys.File, File, error) {
	f, err := attempt(r, "open", raw, func() (fsys.File, error) {
		cfg := newOpenConfig(opts)
		flag, err := cfg.flags(acc)
		if err != nil {
			return nil, err
		}
		target, err := r.place(raw)
		if err != nil {
			return nil, err
		}
		return r.fs.OpenFile(target, flag, cfg.perm)
	})
	if err != nil {
		return nil, File{}, err
	}

	file, err := r.File(f.Name())
	if err != nil {
		if cerr := f.Close(); cerr != nil {
			r.log.Debug().Str("path", raw).Err(cerr).Msg("failed to release file handle")
		}
		return nil, File{}, err
	}
	return f, file, nil
}

// OpenRead opens raw for reading and validates it as a File.
func (r *Resolver) OpenRead(raw string, opts ...OpenOption) (*ReadHandle, error) {
	f, file, err := r.openRaw(raw, accessRead, opts)
	if err != nil {
		return nil, err
	}
	return newReadHandle(f, file), nil
}

// OpenWrite opens raw for writing and validates it as a File.
func (r *Resolver) OpenWrite(raw string, opts ...OpenOption) (*WriteHandle, error) {
	f, file, err := r.openRaw(raw, accessWrite, opts)
	if err != nil {
		return nil, err
	}
	return newWriteHandle(f, file), nil
}

// OpenEdit opens raw for reading and writing and validates it as a File.
func (r *Resolver) OpenEdit(raw string, opts ...OpenOption) (*EditHandle, error) {
	f, file, err := r.openRaw(raw, accessEdit, opts)
	if err != nil {
		return nil, err
	}
	return newEditHandle(f, file), nil
}
