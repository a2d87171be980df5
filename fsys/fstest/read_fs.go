package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/fspath/fsys"
)

func testReadFS(t *testing.T, newFS NewFunc, config FSTestConfig) {
	run(t, config, "StatFile", newFS, func(t *testing.T, filesystem fsys.FS, root string) {
		name := join(root, "a.txt")
		writeFile(t, filesystem, name, []byte("hello"))

		info, err := filesystem.Stat(name)
		if err != nil {
			t.Fatalf("Stat(%s): got error %v, want nil", name, err)
		}
		if !info.Mode().IsRegular() {
			t.Errorf("Stat(%s).Mode() = %v, want regular file", name, info.Mode())
		}
		if info.Size() != 5 {
			t.Errorf("Stat(%s).Size() = %d, want 5", name, info.Size())
		}
	})

	run(t, config, "StatDir", newFS, func(t *testing.T, filesystem fsys.FS, root string) {
		name := join(root, "d")
		mkdir(t, filesystem, name)

		info, err := filesystem.Stat(name)
		if err != nil {
			t.Fatalf("Stat(%s): got error %v, want nil", name, err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(%s).IsDir() = false, want true", name)
		}
	})

	run(t, config, "StatMissing", newFS, func(t *testing.T, filesystem fsys.FS, root string) {
		_, err := filesystem.Stat(join(root, "missing"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(missing): got error %v, want fs.ErrNotExist", err)
		}
	})

	run(t, config, "ReadDirSorted", newFS, func(t *testing.T, filesystem fsys.FS, root string) {
		writeFile(t, filesystem, join(root, "c.txt"), nil)
		writeFile(t, filesystem, join(root, "a.txt"), nil)
		mkdir(t, filesystem, join(root, "b"))

		entries, err := filesystem.ReadDir(root)
		if err != nil {
			t.Fatalf("ReadDir(%s): got error %v, want nil", root, err)
		}
		want := []string{"a.txt", "b", "c.txt"}
		if len(entries) != len(want) {
			t.Fatalf("ReadDir(%s): got %d entries, want %d", root, len(entries), len(want))
		}
		for i, e := range entries {
			if e.Name() != want[i] {
				t.Errorf("ReadDir(%s)[%d] = %q, want %q", root, i, e.Name(), want[i])
			}
		}
		if !entries[1].IsDir() {
			t.Errorf("ReadDir(%s)[1].IsDir() = false, want true", root)
		}
	})

	run(t, config, "ReadDirDescribesLinks", newFS, func(t *testing.T, filesystem fsys.FS, root string) {
		sfs := symlinks(t, filesystem)
		mkdir(t, filesystem, join(root, "target"))
		if err := sfs.Symlink(join(root, "target"), join(root, "link")); err != nil {
			t.Fatalf("Symlink: setup failed: %v", err)
		}

		entries, err := filesystem.ReadDir(root)
		if err != nil {
			t.Fatalf("ReadDir(%s): got error %v, want nil", root, err)
		}
		for _, e := range entries {
			if e.Name() == "link" && e.Type()&fs.ModeSymlink == 0 {
				t.Errorf("ReadDir entry link has type %v, want symlink", e.Type())
			}
		}
	})

	run(t, config, "LstatLink", newFS, func(t *testing.T, filesystem fsys.FS, root string) {
		sfs := symlinks(t, filesystem)
		writeFile(t, filesystem, join(root, "target"), []byte("x"))
		if err := sfs.Symlink(join(root, "target"), join(root, "link")); err != nil {
			t.Fatalf("Symlink: setup failed: %v", err)
		}

		info, err := filesystem.Lstat(join(root, "link"))
		if err != nil {
			t.Fatalf("Lstat(link): got error %v, want nil", err)
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			t.Errorf("Lstat(link).Mode() = %v, want symlink", info.Mode())
		}

		info, err = filesystem.Stat(join(root, "link"))
		if err != nil {
			t.Fatalf("Stat(link): got error %v, want nil", err)
		}
		if !info.Mode().IsRegular() {
			t.Errorf("Stat(link).Mode() = %v, want regular file", info.Mode())
		}
	})
}
