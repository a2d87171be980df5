package fspath

import (
	"fmt"
	"io"
	"io/fs"
	"sync"
	"unicode/utf8"

	"github.com/jmgilman/go/fspath/fsys"
)

// handle is the state shared by every handle type: one open file and the
// File it was opened from.
type handle struct {
	f      fsys.File
	file   File
	once   sync.Once
	closed bool
}

func (h *handle) r() *Resolver { return h.file.abs.resolver() }

// check fails with fs.ErrClosed once the handle has been closed.
func (h *handle) check(op string) error {
	if h.closed {
		return h.r().wrap(op, h.file.abs.path, fs.ErrClosed)
	}
	return nil
}

// Path returns the File the handle was opened from.
func (h *handle) Path() File { return h.file }

// Stat returns metadata for the open file.
func (h *handle) Stat() (fs.FileInfo, error) {
	if err := h.check("stat"); err != nil {
		return nil, err
	}
	return attempt(h.r(), "stat", h.file.abs.path, h.f.Stat)
}

// Seek sets the offset for the next read or write.
func (h *handle) Seek(offset int64, whence int) (int64, error) {
	if err := h.check("seek"); err != nil {
		return 0, err
	}
	return attempt(h.r(), "seek", h.file.abs.path, func() (int64, error) {
		return h.f.Seek(offset, whence)
	})
}

// Close releases the file. Only the first call closes; later calls return nil.
func (h *handle) Close() error {
	var err error
	h.once.Do(func() {
		h.closed = true
		err = h.r().wrap("close", h.file.abs.path, h.f.Close())
		h.r().log.Debug().Str("path", h.file.abs.path).Msg("released file handle")
	})
	return err
}

// reading holds the read operations of ReadHandle and EditHandle.
type reading struct {
	h *handle
}

// Read reads up to len(p) bytes. io.EOF is returned unwrapped.
func (rd reading) Read(p []byte) (int, error) {
	if err := rd.h.check("read"); err != nil {
		return 0, err
	}
	n, err := rd.h.f.Read(p)
	return n, rd.h.r().wrap("read", rd.h.file.abs.path, err)
}

// ReadAt reads len(p) bytes starting at off. io.EOF is returned unwrapped.
func (rd reading) ReadAt(p []byte, off int64) (int, error) {
	if err := rd.h.check("read"); err != nil {
		return 0, err
	}
	n, err := rd.h.f.ReadAt(p, off)
	return n, rd.h.r().wrap("read", rd.h.file.abs.path, err)
}

// ReadAll reads from the current offset to the end of the file.
func (rd reading) ReadAll() ([]byte, error) {
	if err := rd.h.check("read"); err != nil {
		return nil, err
	}
	return attempt(rd.h.r(), "read", rd.h.file.abs.path, func() ([]byte, error) {
		return io.ReadAll(rd.h.f)
	})
}

// ReadString reads the rest of the file as text. It fails with
// CodeInvalidInput when the content is not valid UTF-8.
func (rd reading) ReadString() (string, error) {
	data, err := rd.ReadAll()
	if err != nil {
		return "", err
	}
	if err := validUTF8(data); err != nil {
		return "", rd.h.r().wrap("read", rd.h.file.abs.path, err)
	}
	return string(data), nil
}

// writing holds the write operations of WriteHandle and EditHandle.
type writing struct {
	h *handle
}

// Write writes p at the current offset.
func (w writing) Write(p []byte) (int, error) {
	if err := w.h.check("write"); err != nil {
		return 0, err
	}
	n, err := w.h.f.Write(p)
	return n, w.h.r().wrap("write", w.h.file.abs.path, err)
}

// WriteString writes s at the current offset.
func (w writing) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// Flush commits written data to stable storage when the filesystem supports it.
func (w writing) Flush() error {
	if err := w.h.check("flush"); err != nil {
		return err
	}
	s, ok := w.h.f.(fsys.Syncer)
	if !ok {
		return nil
	}
	return attemptErr(w.h.r(), "flush", w.h.file.abs.path, s.Sync)
}

// Truncate changes the size of the file. It fails with CodeUnsupported when
// the filesystem cannot truncate open files.
func (w writing) Truncate(size int64) error {
	if err := w.h.check("truncate"); err != nil {
		return err
	}
	return attemptErr(w.h.r(), "truncate", w.h.file.abs.path, func() error {
		t, ok := w.h.f.(fsys.Truncater)
		if !ok {
			return fsys.ErrUnsupported
		}
		return t.Truncate(size)
	})
}

// ReadHandle is a file opened for reading only.
type ReadHandle struct {
	*handle
	reading
}

// WriteHandle is a file opened for writing only.
type WriteHandle struct {
	*handle
	writing
}

// EditHandle is a file opened for both reading and writing.
type EditHandle struct {
	*handle
	reading
	writing
}

func newHandle(f fsys.File, file File) *handle {
	return &handle{f: f, file: file}
}

func newReadHandle(f fsys.File, file File) *ReadHandle {
	h := newHandle(f, file)
	return &ReadHandle{handle: h, reading: reading{h}}
}

func newWriteHandle(f fsys.File, file File) *WriteHandle {
	h := newHandle(f, file)
	return &WriteHandle{handle: h, writing: writing{h}}
}

func newEditHandle(f fsys.File, file File) *EditHandle {
	h := newHandle(f, file)
	return &EditHandle{handle: h, reading: reading{h}, writing: writing{h}}
}

var (
	_ io.ReadSeekCloser  = (*ReadHandle)(nil)
	_ io.ReaderAt        = (*ReadHandle)(nil)
	_ io.WriteSeeker     = (*WriteHandle)(nil)
	_ io.StringWriter    = (*WriteHandle)(nil)
	_ io.Closer          = (*WriteHandle)(nil)
	_ io.ReadWriteSeeker = (*EditHandle)(nil)
	_ io.Closer          = (*EditHandle)(nil)
)

func validUTF8(data []byte) error {
	if !utf8.Valid(data) {
		return fmt.Errorf("%w: content is not valid UTF-8", fs.ErrInvalid)
	}
	return nil
}
