package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/fspath/fsys"
)

func testResolveFS(t *testing.T, newFS NewFunc, config FSTestConfig) {
	run(t, config, "CanonicalizeClean", newFS, func(t *testing.T, filesystem fsys.FS, root string) {
		mkdir(t, filesystem, join(root, "a"))
		writeFile(t, filesystem, join(root, "a", "f.txt"), nil)

		got, err := filesystem.Canonicalize(root + "/./a/../a/f.txt")
		if err != nil {
			t.Fatalf("Canonicalize: got error %v, want nil", err)
		}
		if want := join(root, "a", "f.txt"); got != want {
			t.Errorf("Canonicalize = %q, want %q", got, want)
		}
	})

	run(t, config, "CanonicalizeMissing", newFS, func(t *testing.T, filesystem fsys.FS, root string) {
		_, err := filesystem.Canonicalize(join(root, "missing"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Canonicalize(missing): got error %v, want fs.ErrNotExist", err)
		}
	})

	run(t, config, "CanonicalizeThroughFile", newFS, func(t *testing.T, filesystem fsys.FS, root string) {
		writeFile(t, filesystem, join(root, "f"), nil)

		if _, err := filesystem.Canonicalize(join(root, "f", "x")); err == nil {
			t.Errorf("Canonicalize(f/x) where f is a file: got nil error, want failure")
		}
	})

	run(t, config, "CanonicalizeSymlinkChain", newFS, func(t *testing.T, filesystem fsys.FS, root string) {
		sfs := symlinks(t, filesystem)
		mkdir(t, filesystem, join(root, "real"))
		writeFile(t, filesystem, join(root, "real", "f"), nil)
		if err := sfs.Symlink(join(root, "real"), join(root, "l1")); err != nil {
			t.Fatalf("Symlink(l1): setup failed: %v", err)
		}
		if err := sfs.Symlink("l1", join(root, "l2")); err != nil {
			t.Fatalf("Symlink(l2): setup failed: %v", err)
		}

		got, err := filesystem.Canonicalize(join(root, "l2", "f"))
		if err != nil {
			t.Fatalf("Canonicalize(l2/f): got error %v, want nil", err)
		}
		if want := join(root, "real", "f"); got != want {
			t.Errorf("Canonicalize(l2/f) = %q, want %q", got, want)
		}
	})

	run(t, config, "CanonicalizeDotDotAfterLink", newFS, func(t *testing.T, filesystem fsys.FS, root string) {
		sfs := symlinks(t, filesystem)
		mkdir(t, filesystem, join(root, "real", "sub"))
		if err := sfs.Symlink(join(root, "real", "sub"), join(root, "link")); err != nil {
			t.Fatalf("Symlink(link): setup failed: %v", err)
		}

		// ".." after a link applies to the link's target, not to the text.
		got, err := filesystem.Canonicalize(root + "/link/..")
		if err != nil {
			t.Fatalf("Canonicalize(link/..): got error %v, want nil", err)
		}
		if want := join(root, "real"); got != want {
			t.Errorf("Canonicalize(link/..) = %q, want %q", got, want)
		}
	})

	run(t, config, "CanonicalizeFileDotDot", newFS, func(t *testing.T, filesystem fsys.FS, root string) {
		writeFile(t, filesystem, join(root, "f"), nil)

		if got, err := filesystem.Canonicalize(root + "/f/.."); err == nil {
			t.Errorf("Canonicalize(f/..) where f is a file = %q, want failure", got)
		}
	})

	run(t, config, "CanonicalizeDanglingLink", newFS, func(t *testing.T, filesystem fsys.FS, root string) {
		sfs := symlinks(t, filesystem)
		if err := sfs.Symlink(join(root, "gone"), join(root, "dangling")); err != nil {
			t.Fatalf("Symlink: setup failed: %v", err)
		}

		_, err := filesystem.Canonicalize(join(root, "dangling"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Canonicalize(dangling): got error %v, want fs.ErrNotExist", err)
		}
	})

	run(t, config, "CanonicalizeLoop", newFS, func(t *testing.T, filesystem fsys.FS, root string) {
		sfs := symlinks(t, filesystem)
		if err := sfs.Symlink(join(root, "b"), join(root, "a")); err != nil {
			t.Fatalf("Symlink(a): setup failed: %v", err)
		}
		if err := sfs.Symlink(join(root, "a"), join(root, "b")); err != nil {
			t.Fatalf("Symlink(b): setup failed: %v", err)
		}

		if _, err := filesystem.Canonicalize(join(root, "a")); err == nil {
			t.Errorf("Canonicalize(a) on a link loop: got nil error, want failure")
		}
	})

	run(t, config, "Getwd", newFS, func(t *testing.T, filesystem fsys.FS, _ string) {
		wd, err := filesystem.Getwd()
		if err != nil {
			t.Fatalf("Getwd(): got error %v, want nil", err)
		}
		if wd == "" || wd[0] != '/' {
			t.Errorf("Getwd() = %q, want absolute path", wd)
		}
	})
}
