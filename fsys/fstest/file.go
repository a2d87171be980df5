package fstest

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/jmgilman/go/fspath/fsys"
)

func testFile(t *testing.T, newFS NewFunc, config FSTestConfig) {
	run(t, config, "ReadSeek", newFS, func(t *testing.T, filesystem fsys.FS, root string) {
		name := join(root, "f.txt")
		writeFile(t, filesystem, name, []byte("hello world"))

		f, err := filesystem.OpenFile(name, os.O_RDONLY, 0)
		if err != nil {
			t.Fatalf("OpenFile(%s): got error %v, want nil", name, err)
		}
		defer func() { _ = f.Close() }()

		if _, err := f.Seek(6, io.SeekStart); err != nil {
			t.Fatalf("Seek(6): got error %v, want nil", err)
		}
		data, err := io.ReadAll(f)
		if err != nil {
			t.Fatalf("ReadAll(): got error %v, want nil", err)
		}
		if string(data) != "world" {
			t.Errorf("ReadAll() after Seek = %q, want %q", data, "world")
		}

		buf := make([]byte, 5)
		if _, err := f.ReadAt(buf, 0); err != nil && !errors.Is(err, io.EOF) {
			t.Fatalf("ReadAt(0): got error %v, want nil", err)
		}
		if string(buf) != "hello" {
			t.Errorf("ReadAt(0) = %q, want %q", buf, "hello")
		}
	})

	run(t, config, "Stat", newFS, func(t *testing.T, filesystem fsys.FS, root string) {
		name := join(root, "f.txt")
		writeFile(t, filesystem, name, []byte("abc"))

		f, err := filesystem.OpenFile(name, os.O_RDONLY, 0)
		if err != nil {
			t.Fatalf("OpenFile(%s): got error %v, want nil", name, err)
		}
		defer func() { _ = f.Close() }()

		info, err := f.Stat()
		if err != nil {
			t.Fatalf("Stat(): got error %v, want nil", err)
		}
		if info.Size() != 3 {
			t.Errorf("Stat().Size() = %d, want 3", info.Size())
		}
	})

	run(t, config, "Truncate", newFS, func(t *testing.T, filesystem fsys.FS, root string) {
		name := join(root, "f.txt")
		writeFile(t, filesystem, name, []byte("abcdef"))

		f, err := filesystem.OpenFile(name, os.O_RDWR, 0)
		if err != nil {
			t.Fatalf("OpenFile(%s): got error %v, want nil", name, err)
		}
		defer func() { _ = f.Close() }()

		tr, ok := f.(fsys.Truncater)
		if !ok {
			t.Skip("Truncater not supported")
		}
		if err := tr.Truncate(2); err != nil {
			t.Fatalf("Truncate(2): got error %v, want nil", err)
		}
		info, err := filesystem.Stat(name)
		if err != nil {
			t.Fatalf("Stat(%s): got error %v, want nil", name, err)
		}
		if info.Size() != 2 {
			t.Errorf("Stat(%s).Size() after Truncate = %d, want 2", name, info.Size())
		}
	})

	run(t, config, "WriteReadOnly", newFS, func(t *testing.T, filesystem fsys.FS, root string) {
		name := join(root, "f.txt")
		writeFile(t, filesystem, name, []byte("abc"))

		f, err := filesystem.OpenFile(name, os.O_RDONLY, 0)
		if err != nil {
			t.Fatalf("OpenFile(%s): got error %v, want nil", name, err)
		}
		defer func() { _ = f.Close() }()

		if _, err := f.Write([]byte("x")); err == nil {
			t.Errorf("Write() on read-only file: got nil error, want failure")
		}
	})
}
