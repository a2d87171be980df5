package fstest

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"testing"

	"github.com/jmgilman/go/fspath/fsys"
)

func testManageFS(t *testing.T, newFS NewFunc, config FSTestConfig) {
	run(t, config, "RemoveFile", newFS, func(t *testing.T, filesystem fsys.FS, root string) {
		name := join(root, "a.txt")
		writeFile(t, filesystem, name, nil)

		if err := filesystem.Remove(name); err != nil {
			t.Fatalf("Remove(%s): got error %v, want nil", name, err)
		}
		if _, err := filesystem.Stat(name); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(%s) after Remove: got error %v, want fs.ErrNotExist", name, err)
		}
	})

	run(t, config, "RemoveMissing", newFS, func(t *testing.T, filesystem fsys.FS, root string) {
		err := filesystem.Remove(join(root, "missing"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Remove(missing): got error %v, want fs.ErrNotExist", err)
		}
	})

	run(t, config, "RemoveNonEmptyDir", newFS, func(t *testing.T, filesystem fsys.FS, root string) {
		dir := join(root, "d")
		mkdir(t, filesystem, dir)
		writeFile(t, filesystem, join(dir, "f"), nil)

		if err := filesystem.Remove(dir); err == nil {
			t.Errorf("Remove(%s) on non-empty directory: got nil error, want failure", dir)
		}
		if _, err := filesystem.Stat(join(dir, "f")); err != nil {
			t.Errorf("Stat(d/f) after failed Remove: got error %v, want nil", err)
		}
	})

	run(t, config, "RemoveAll", newFS, func(t *testing.T, filesystem fsys.FS, root string) {
		dir := join(root, "d")
		mkdir(t, filesystem, join(dir, "sub"))
		writeFile(t, filesystem, join(dir, "sub", "f"), nil)

		if err := filesystem.RemoveAll(dir); err != nil {
			t.Fatalf("RemoveAll(%s): got error %v, want nil", dir, err)
		}
		if _, err := filesystem.Stat(dir); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(%s) after RemoveAll: got error %v, want fs.ErrNotExist", dir, err)
		}
	})

	run(t, config, "RemoveAllMissing", newFS, func(t *testing.T, filesystem fsys.FS, root string) {
		if err := filesystem.RemoveAll(join(root, "missing")); err != nil {
			t.Errorf("RemoveAll(missing): got error %v, want nil", err)
		}
	})

	run(t, config, "RenameReplaces", newFS, func(t *testing.T, filesystem fsys.FS, root string) {
		from, to := join(root, "from"), join(root, "to")
		writeFile(t, filesystem, from, []byte("new"))
		writeFile(t, filesystem, to, []byte("old"))

		if err := filesystem.Rename(from, to); err != nil {
			t.Fatalf("Rename(from, to): got error %v, want nil", err)
		}
		if _, err := filesystem.Stat(from); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(from) after Rename: got error %v, want fs.ErrNotExist", err)
		}

		f, err := filesystem.OpenFile(to, os.O_RDONLY, 0)
		if err != nil {
			t.Fatalf("OpenFile(to): got error %v, want nil", err)
		}
		defer func() { _ = f.Close() }()
		data, err := io.ReadAll(f)
		if err != nil {
			t.Fatalf("ReadAll(to): got error %v, want nil", err)
		}
		if string(data) != "new" {
			t.Errorf("content of to = %q, want %q", data, "new")
		}
	})

	run(t, config, "RenameMissing", newFS, func(t *testing.T, filesystem fsys.FS, root string) {
		err := filesystem.Rename(join(root, "missing"), join(root, "to"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Rename(missing): got error %v, want fs.ErrNotExist", err)
		}
	})
}
