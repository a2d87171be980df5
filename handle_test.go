package fspath_test

import (
	"io"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/fspath"
	"github.com/jmgilman/go/fspath/errors"
)

func TestHandle_Capabilities(t *testing.T) {
	r, _ := newMemResolver(t)
	f, err := r.File("/work/a/file.txt")
	require.NoError(t, err)

	rh, err := f.OpenRead()
	require.NoError(t, err)
	defer func() { _ = rh.Close() }()
	_, isWriter := any(rh).(io.Writer)
	assert.False(t, isWriter, "ReadHandle must not expose Write")

	wh, err := f.OpenWrite()
	require.NoError(t, err)
	defer func() { _ = wh.Close() }()
	_, isReader := any(wh).(io.Reader)
	assert.False(t, isReader, "WriteHandle must not expose Read")

	eh, err := f.OpenEdit()
	require.NoError(t, err)
	defer func() { _ = eh.Close() }()
	_, isReadWriter := any(eh).(io.ReadWriter)
	assert.True(t, isReadWriter)
}

func TestHandle_DoubleClose(t *testing.T) {
	r, cfs := newCountingResolver(t)
	f, err := r.File("/work/a/file.txt")
	require.NoError(t, err)

	h, err := f.OpenRead()
	require.NoError(t, err)

	require.NoError(t, h.Close())
	require.NoError(t, h.Close())
	assert.Equal(t, 1, cfs.closes)
}

func TestHandle_UseAfterClose(t *testing.T) {
	r, _ := newMemResolver(t)
	f, err := r.File("/work/a/file.txt")
	require.NoError(t, err)

	h, err := f.OpenEdit()
	require.NoError(t, err)
	require.NoError(t, h.Close())

	_, err = h.Read(make([]byte, 1))
	assert.ErrorIs(t, err, fs.ErrClosed)
	_, err = h.Write([]byte("x"))
	assert.ErrorIs(t, err, fs.ErrClosed)
	_, err = h.Seek(0, io.SeekStart)
	assert.ErrorIs(t, err, fs.ErrClosed)
	_, err = h.Stat()
	assert.ErrorIs(t, err, fs.ErrClosed)
	assert.ErrorIs(t, h.Flush(), fs.ErrClosed)

	var pathErr *fspath.Error
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "/work/a/file.txt", pathErr.Path)
}

func TestReadHandle_Read(t *testing.T) {
	r, _ := newMemResolver(t)
	f, err := r.File("/work/a/file.txt")
	require.NoError(t, err)

	h, err := f.OpenRead()
	require.NoError(t, err)
	defer func() { _ = h.Close() }()

	buf := make([]byte, 2)
	n, err := h.ReadAt(buf, 1)
	require.NoError(t, err)
	assert.Equal(t, "el", string(buf[:n]))

	all, err := h.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "hello", string(all))

	// io.EOF is passed through unwrapped.
	_, err = h.Read(buf)
	assert.True(t, err == io.EOF, "got %v, want io.EOF", err)

	info, err := h.Stat()
	require.NoError(t, err)
	assert.EqualValues(t, 5, info.Size())
	assert.Equal(t, f, h.Path())
}

func TestWriteHandle_TruncateAndFlush(t *testing.T) {
	r, mfs := newMemResolver(t)
	f, err := r.File("/work/a/file.txt")
	require.NoError(t, err)

	h, err := f.OpenWrite()
	require.NoError(t, err)
	require.NoError(t, h.Truncate(2))
	require.NoError(t, h.Flush())
	require.NoError(t, h.Close())

	assert.Equal(t, "he", readMem(t, mfs, "/work/a/file.txt"))
}

func TestWriteHandle_TruncateUnsupported(t *testing.T) {
	// countingFile hides the optional Truncater and Syncer interfaces.
	r, _ := newCountingResolver(t)
	f, err := r.File("/work/a/file.txt")
	require.NoError(t, err)

	h, err := f.OpenWrite()
	require.NoError(t, err)
	defer func() { _ = h.Close() }()

	err = h.Truncate(0)
	require.Error(t, err)
	assert.Equal(t, errors.CodeUnsupported, errors.GetCode(err))
	assert.NoError(t, h.Flush())
}

func TestWriteHandle_Append(t *testing.T) {
	r, mfs := newMemResolver(t)
	f, err := r.File("/work/a/file.txt")
	require.NoError(t, err)

	h, err := f.OpenWrite(fspath.WithAppend())
	require.NoError(t, err)
	_, err = h.WriteString(" world")
	require.NoError(t, err)
	require.NoError(t, h.Close())

	assert.Equal(t, "hello world", readMem(t, mfs, "/work/a/file.txt"))
}

func TestWriteHandle_TruncateOnOpen(t *testing.T) {
	r, mfs := newMemResolver(t)
	f, err := r.File("/work/a/file.txt")
	require.NoError(t, err)

	h, err := f.OpenWrite(fspath.WithTruncate())
	require.NoError(t, err)
	_, err = h.Write([]byte("x"))
	require.NoError(t, err)
	require.NoError(t, h.Close())

	assert.Equal(t, "x", readMem(t, mfs, "/work/a/file.txt"))
}
