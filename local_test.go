package fspath_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/fspath"
	"github.com/jmgilman/go/fspath/errors"
)

// tempDir returns a canonical scratch directory on the host filesystem.
func tempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

func TestLocal_EndToEnd(t *testing.T) {
	root := tempDir(t)

	dir, err := fspath.CreateDirAll(filepath.Join(root, "a", "b"))
	require.NoError(t, err)

	f, err := dir.CreateFile("file.txt")
	require.NoError(t, err)
	require.NoError(t, f.WriteString("hello"))

	require.NoError(t, os.Symlink(filepath.Join(root, "a"), filepath.Join(root, "link")))

	viaLink, err := fspath.NewAbs(filepath.Join(root, "link", "b", "..", "b", "file.txt"))
	require.NoError(t, err)
	assert.True(t, viaLink.Equal(f.Abs()))

	s, err := f.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	entries, err := dir.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsFile())

	// No temporary siblings survive a successful write.
	require.NoError(t, f.WriteBytes([]byte("again")))
	names, err := os.ReadDir(dir.Path())
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, "file.txt", names[0].Name())
}

func TestLocal_WritePreservesMode(t *testing.T) {
	root := tempDir(t)
	path := filepath.Join(root, "script.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o750))

	f, err := fspath.Default.File(path)
	require.NoError(t, err)
	require.NoError(t, f.WriteString("#!/bin/sh\necho hi\n"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o750), info.Mode().Perm())
}

func TestLocal_TypeMismatch(t *testing.T) {
	root := tempDir(t)
	path := filepath.Join(root, "file.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	abs, err := fspath.NewAbs(path)
	require.NoError(t, err)

	_, err = fspath.NewDir(abs)
	require.Error(t, err)
	assert.Equal(t, errors.CodeTypeMismatch, errors.GetCode(err))
	assert.Contains(t, err.Error(), "expected directory, found file")

	_, err = fspath.NewFile(abs)
	require.NoError(t, err)
}

func TestLocal_RemoveNonEmpty(t *testing.T) {
	root := tempDir(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "d", "e"), 0o755))

	d, err := fspath.Default.Dir(filepath.Join(root, "d"))
	require.NoError(t, err)

	require.Error(t, d.Remove())
	require.NoError(t, d.RemoveAll())
	_, err = os.Stat(filepath.Join(root, "d"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocal_OpenWriteMissing(t *testing.T) {
	root := tempDir(t)

	_, err := fspath.OpenWrite(filepath.Join(root, "missing.txt"))
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))

	h, err := fspath.OpenWrite(filepath.Join(root, "missing.txt"), fspath.WithExclusive())
	require.NoError(t, err)
	require.NoError(t, h.Close())

	rh, err := fspath.OpenRead(filepath.Join(root, "missing.txt"))
	require.NoError(t, err)
	require.NoError(t, rh.Close())

	eh, err := fspath.OpenEdit(filepath.Join(root, "missing.txt"))
	require.NoError(t, err)
	require.NoError(t, eh.Close())
}

func TestLocal_CreateDir(t *testing.T) {
	root := tempDir(t)

	d, err := fspath.CreateDir(filepath.Join(root, "one"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "one"), d.Path())

	f, err := fspath.CreateFile(filepath.Join(root, "one", "f"))
	require.NoError(t, err)
	assert.Equal(t, "f", f.Abs().Base())
}

func TestLocal_DotDotAfterLink(t *testing.T) {
	root := tempDir(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "real", "sub"), 0o755))
	require.NoError(t, os.Symlink(filepath.Join(root, "real", "sub"), filepath.Join(root, "link")))
	require.NoError(t, os.WriteFile(filepath.Join(root, "f"), nil, 0o644))

	abs, err := fspath.NewAbs(root + "/link/..")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "real"), abs.String())

	_, err = fspath.NewAbs(root + "/f/..")
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestLocal_MissingParent(t *testing.T) {
	root := tempDir(t)
	src := filepath.Join(root, "src.txt")
	require.NoError(t, os.WriteFile(src, []byte("data"), 0o644))
	f, err := fspath.Default.File(src)
	require.NoError(t, err)

	_, err = fspath.CreateFile(filepath.Join(root, "nope", "x.txt"))
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))

	_, err = fspath.OpenWrite(filepath.Join(root, "nope", "y.txt"), fspath.WithCreate())
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))

	_, err = f.CopyTo(filepath.Join(root, "nope", "copy.txt"))
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))

	err = f.Abs().Rename(filepath.Join(root, "missing", "deep", "g"))
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))

	_, err = os.Stat(filepath.Join(root, "nope"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(root, "missing"))
	assert.True(t, os.IsNotExist(err))
	data, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))
}
