package fspath_test

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/fspath"
	"github.com/jmgilman/go/fspath/errors"
)

func TestDir_List(t *testing.T) {
	r, _ := newMemResolver(t)
	dir, err := r.Dir("/work")
	require.NoError(t, err)

	var got []string
	for entry, err := range dir.List() {
		require.NoError(t, err)
		got = append(got, entry.String())

		// Probing the same path independently agrees with the listing.
		kind, err := entry.Abs().Type()
		require.NoError(t, err)
		assert.Equal(t, entry.Kind(), kind)
		assert.True(t, entry.IsFile() || entry.IsDir())
	}

	// "link" resolves to its target.
	assert.Equal(t, []string{"/work/a", "/work/a"}, got)
}

func TestDir_List_Kinds(t *testing.T) {
	r, _ := newMemResolver(t)
	dir, err := r.Dir("/work/a")
	require.NoError(t, err)

	entries, err := dir.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	f, ok := entries[0].File()
	require.True(t, ok)
	assert.Equal(t, "/work/a/file.txt", f.String())
	_, ok = entries[0].Dir()
	assert.False(t, ok)

	d, ok := entries[1].Dir()
	require.True(t, ok)
	assert.Equal(t, "/work/a/sub", d.String())
	assert.Equal(t, fspath.KindDir, entries[1].Kind())
}

func TestDir_List_ContinuesPastBadEntry(t *testing.T) {
	r, mfs := newMemResolver(t)
	require.NoError(t, mfs.MkdirAll("/work/d", 0o755))
	require.NoError(t, mfs.Symlink("/work/nowhere", "/work/d/broken"))
	writeMem(t, mfs, "/work/d/ok.txt", "")

	dir, err := r.Dir("/work/d")
	require.NoError(t, err)

	var good, bad int
	for entry, err := range dir.List() {
		if err != nil {
			bad++
			assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
			continue
		}
		good++
		assert.True(t, entry.IsFile())
	}
	assert.Equal(t, 1, good)
	assert.Equal(t, 1, bad)

	_, err = dir.Entries()
	require.Error(t, err)
}

func TestDir_List_Restartable(t *testing.T) {
	r, mfs := newMemResolver(t)
	dir, err := r.Dir("/work/a")
	require.NoError(t, err)

	count := func() int {
		n := 0
		for range dir.List() {
			n++
		}
		return n
	}
	assert.Equal(t, 2, count())

	writeMem(t, mfs, "/work/a/third.txt", "")
	assert.Equal(t, 3, count())

	// Stopping early is honored.
	n := 0
	for range dir.List() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestDir_List_VanishedDir(t *testing.T) {
	r, mfs := newMemResolver(t)
	dir, err := r.Dir("/work/a/sub")
	require.NoError(t, err)
	require.NoError(t, mfs.Remove("/work/a/sub"))

	for _, err := range dir.List() {
		require.Error(t, err)
		assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
	}
}

func TestDir_Glob(t *testing.T) {
	r, mfs := newMemResolver(t)
	writeMem(t, mfs, "/work/a/sub/deep.txt", "")
	writeMem(t, mfs, "/work/a/sub/skip.md", "")

	dir, err := r.Dir("/work")
	require.NoError(t, err)

	entries, err := dir.Glob("**/*.txt")
	require.NoError(t, err)

	var got []string
	for _, e := range entries {
		got = append(got, e.String())
	}
	// The linked copy of a/ is not descended into.
	assert.Equal(t, []string{"/work/a/file.txt", "/work/a/sub/deep.txt"}, got)

	top, err := dir.Glob("*")
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.True(t, top[1].IsDir())

	_, err = dir.Glob("a/[")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestDir_Join(t *testing.T) {
	r, _ := newMemResolver(t)
	dir, err := r.Dir("/work/link")
	require.NoError(t, err)
	assert.Equal(t, "/work/a", dir.String())

	abs, err := dir.Join("sub/../file.txt")
	require.NoError(t, err)
	assert.Equal(t, "/work/a/file.txt", abs.String())

	_, err = dir.Join("missing")
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestDir_Join_DotDotAfterLink(t *testing.T) {
	r, mfs := newMemResolver(t)
	require.NoError(t, mfs.Symlink("/work/a/sub", "/work/deep"))
	dir, err := r.Dir("/work")
	require.NoError(t, err)

	abs, err := dir.Join("deep/../file.txt")
	require.NoError(t, err)
	assert.Equal(t, "/work/a/file.txt", abs.String())

	made, err := dir.CreateDir("deep/../made")
	require.NoError(t, err)
	assert.Equal(t, "/work/a/made", made.String())
}

func TestResolver_CreateDir(t *testing.T) {
	r, mfs := newMemResolver(t)

	d, err := r.CreateDir("/work/new")
	require.NoError(t, err)
	assert.Equal(t, "/work/new", d.String())

	again, err := r.CreateDir("/work/new")
	require.NoError(t, err)
	assert.Equal(t, d, again)

	viaLink, err := r.CreateDir("/work/link/made")
	require.NoError(t, err)
	assert.Equal(t, "/work/a/made", viaLink.String())
	info, err := mfs.Stat("/work/a/made")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = r.CreateDir("/work/x/y")
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))

	_, err = r.CreateDir("/work/a/file.txt")
	require.Error(t, err)
	assert.Equal(t, errors.CodeTypeMismatch, errors.GetCode(err))
}

func TestResolver_CreateDirAll(t *testing.T) {
	r, _ := newMemResolver(t)

	d, err := r.CreateDirAll("/work/x/y/z")
	require.NoError(t, err)
	assert.Equal(t, "/work/x/y/z", d.String())

	again, err := r.CreateDirAll("/work/x/y/z")
	require.NoError(t, err)
	assert.Equal(t, d, again)

	_, err = r.CreateDirAll("/work/a/file.txt")
	require.Error(t, err)
	assert.Equal(t, errors.CodeTypeMismatch, errors.GetCode(err))

	_, err = r.CreateDirAll("/work/a/file.txt/below")
	require.Error(t, err)
}

func TestDir_CreateChildren(t *testing.T) {
	r, _ := newMemResolver(t)
	dir, err := r.Dir("/work/a")
	require.NoError(t, err)

	sub, err := dir.CreateDir("child")
	require.NoError(t, err)
	assert.Equal(t, "/work/a/child", sub.String())

	deep, err := dir.CreateDirAll("p/q")
	require.NoError(t, err)
	assert.Equal(t, "/work/a/p/q", deep.String())

	f, err := deep.CreateFile("leaf.txt")
	require.NoError(t, err)
	assert.Equal(t, "/work/a/p/q/leaf.txt", f.String())
}

func TestDir_Remove(t *testing.T) {
	r, mfs := newMemResolver(t)
	dir, err := r.Dir("/work/a")
	require.NoError(t, err)

	require.Error(t, dir.Remove(), "non-empty directory must not be removed")
	_, err = mfs.Stat("/work/a/file.txt")
	require.NoError(t, err)

	require.NoError(t, dir.RemoveAll())
	_, err = mfs.Stat("/work/a")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	empty, err := r.CreateDir("/work/empty")
	require.NoError(t, err)
	require.NoError(t, empty.Remove())
}

func TestDir_Text(t *testing.T) {
	r, _ := newMemResolver(t)
	dir, err := r.Dir("/work/a")
	require.NoError(t, err)

	text, err := dir.MarshalText()
	require.NoError(t, err)

	var decoded fspath.Dir
	require.NoError(t, decoded.UnmarshalText(text))
	assert.Equal(t, dir.String(), decoded.String())
}
