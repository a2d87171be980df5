package fspath_test

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/fspath"
	"github.com/jmgilman/go/fspath/fsys"
	"github.com/jmgilman/go/fspath/fsys/billy"
)

// newMemFS builds the fixture tree used across tests:
//
//	/work/a/file.txt   "hello"
//	/work/a/sub/
//	/work/link       -> /work/a
//
// Relative paths resolve against /work.
func newMemFS(t *testing.T) *billy.MemoryFS {
	t.Helper()
	mfs := billy.NewMemory(billy.WithWorkingDir("/work"))
	require.NoError(t, mfs.MkdirAll("/work/a/sub", 0o755))
	writeMem(t, mfs, "/work/a/file.txt", "hello")
	require.NoError(t, mfs.Symlink("/work/a", "/work/link"))
	return mfs
}

func newMemResolver(t *testing.T) (*fspath.Resolver, *billy.MemoryFS) {
	t.Helper()
	mfs := newMemFS(t)
	return fspath.New(mfs), mfs
}

func writeMem(t *testing.T, filesystem fsys.FS, name, content string) {
	t.Helper()
	f, err := filesystem.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	require.NoError(t, err)
	_, err = f.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

func readMem(t *testing.T, filesystem fsys.FS, name string) string {
	t.Helper()
	f, err := filesystem.OpenFile(name, os.O_RDONLY, 0)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	var b strings.Builder
	buf := make([]byte, 64)
	for {
		n, err := f.Read(buf)
		b.Write(buf[:n])
		if err != nil {
			break
		}
	}
	return b.String()
}

func names(t *testing.T, filesystem fsys.FS, dir string) []string {
	t.Helper()
	entries, err := filesystem.ReadDir(dir)
	require.NoError(t, err)
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name())
	}
	return out
}

var errFault = errors.New("injected fault")

// countingFS counts opened and closed files and can inject write faults.
type countingFS struct {
	fsys.FS
	opens  int
	closes int

	// failWrites selects files whose writes stop halfway with errFault.
	failWrites func(name string) bool
}

func (c *countingFS) OpenFile(name string, flag int, perm fs.FileMode) (fsys.File, error) {
	f, err := c.FS.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	c.opens++
	return &countingFile{
		File: f,
		fs:   c,
		fail: c.failWrites != nil && c.failWrites(name),
	}, nil
}

type countingFile struct {
	fsys.File
	fs   *countingFS
	fail bool
}

func (f *countingFile) Write(p []byte) (int, error) {
	if f.fail {
		n, _ := f.File.Write(p[:len(p)/2])
		return n, errFault
	}
	return f.File.Write(p)
}

func (f *countingFile) Close() error {
	f.fs.closes++
	return f.File.Close()
}

func newCountingResolver(t *testing.T) (*fspath.Resolver, *countingFS) {
	t.Helper()
	cfs := &countingFS{FS: newMemFS(t)}
	return fspath.New(cfs), cfs
}
