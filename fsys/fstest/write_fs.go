package fstest

import (
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/jmgilman/go/fspath/fsys"
)

const createFlags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC

func testWriteFS(t *testing.T, newFS NewFunc, config FSTestConfig) {
	run(t, config, "OpenFileCreate", newFS, func(t *testing.T, filesystem fsys.FS, root string) {
		name := join(root, "new.txt")
		f, err := filesystem.OpenFile(name, createFlags, 0o644)
		if err != nil {
			t.Fatalf("OpenFile(%s, O_CREATE): got error %v, want nil", name, err)
		}
		if err := f.Close(); err != nil {
			t.Errorf("Close(): got error %v, want nil", err)
		}
		if _, err := filesystem.Stat(name); err != nil {
			t.Errorf("Stat(%s) after create: got error %v, want nil", name, err)
		}
	})

	run(t, config, "OpenFileMissingWithoutCreate", newFS, func(t *testing.T, filesystem fsys.FS, root string) {
		_, err := filesystem.OpenFile(join(root, "missing"), os.O_WRONLY, 0)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("OpenFile(missing, O_WRONLY): got error %v, want fs.ErrNotExist", err)
		}
	})

	run(t, config, "OpenFileExclusive", newFS, func(t *testing.T, filesystem fsys.FS, root string) {
		name := join(root, "exists.txt")
		writeFile(t, filesystem, name, nil)

		_, err := filesystem.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if !errors.Is(err, fs.ErrExist) {
			t.Errorf("OpenFile(%s, O_EXCL): got error %v, want fs.ErrExist", name, err)
		}
	})

	run(t, config, "OpenFileMissingParent", newFS, func(t *testing.T, filesystem fsys.FS, root string) {
		name := join(root, "no", "such", "file.txt")
		f, err := filesystem.OpenFile(name, createFlags, 0o644)
		if config.ImplicitParentDirs {
			if err != nil {
				t.Fatalf("OpenFile(%s): got error %v, want nil", name, err)
			}
			_ = f.Close()
			return
		}
		if err == nil {
			_ = f.Close()
			t.Fatalf("OpenFile(%s): got nil error, want failure", name)
		}
	})

	run(t, config, "OpenFileAppend", newFS, func(t *testing.T, filesystem fsys.FS, root string) {
		name := join(root, "log.txt")
		writeFile(t, filesystem, name, []byte("a"))

		f, err := filesystem.OpenFile(name, os.O_WRONLY|os.O_APPEND, 0)
		if err != nil {
			t.Fatalf("OpenFile(%s, O_APPEND): got error %v, want nil", name, err)
		}
		if _, err := f.Write([]byte("b")); err != nil {
			t.Fatalf("Write(): got error %v, want nil", err)
		}
		_ = f.Close()

		info, err := filesystem.Stat(name)
		if err != nil {
			t.Fatalf("Stat(%s): got error %v, want nil", name, err)
		}
		if info.Size() != 2 {
			t.Errorf("Stat(%s).Size() = %d, want 2", name, info.Size())
		}
	})

	run(t, config, "MkdirExisting", newFS, func(t *testing.T, filesystem fsys.FS, root string) {
		name := join(root, "d")
		mkdir(t, filesystem, name)

		err := filesystem.Mkdir(name, 0o755)
		if !errors.Is(err, fs.ErrExist) {
			t.Errorf("Mkdir(%s) on existing: got error %v, want fs.ErrExist", name, err)
		}
	})

	run(t, config, "MkdirMissingParent", newFS, func(t *testing.T, filesystem fsys.FS, root string) {
		err := filesystem.Mkdir(join(root, "a", "b"), 0o755)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Mkdir(a/b) without parent: got error %v, want fs.ErrNotExist", err)
		}
	})

	run(t, config, "MkdirAllIdempotent", newFS, func(t *testing.T, filesystem fsys.FS, root string) {
		name := join(root, "a", "b", "c")
		for i := range 2 {
			if err := filesystem.MkdirAll(name, 0o755); err != nil {
				t.Fatalf("MkdirAll(%s) call %d: got error %v, want nil", name, i+1, err)
			}
		}
		info, err := filesystem.Stat(name)
		if err != nil || !info.IsDir() {
			t.Errorf("Stat(%s) after MkdirAll: got (%v, %v), want directory", name, info, err)
		}
	})
}
