// Package fstest provides a conformance test suite for fsys.FS providers.
//
// fspath relies on a small set of provider guarantees: canonicalization
// resolves every link and reports missing entities as fs.ErrNotExist, ReadDir
// describes links as links, Remove refuses non-empty directories, Rename
// replaces an existing file, and exclusive creates fail on existing names.
// The suite checks those guarantees.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuite(t, func(t *testing.T) (fsys.FS, string) {
//	        return myprovider.New(), "/"
//	    })
//	}
package fstest

import (
	"path"
	"slices"
	"testing"

	"github.com/jmgilman/go/fspath/fsys"
)

// NewFunc returns a fresh filesystem and an existing, empty, canonical
// directory on it to use as the scratch root for one test.
type NewFunc func(t *testing.T) (fsys.FS, string)

// FSTestConfig configures the test suite to match filesystem behavior characteristics.
type FSTestConfig struct {
	// ImplicitParentDirs indicates OpenFile with O_CREATE and Rename create
	// missing parent directories instead of failing.
	ImplicitParentDirs bool

	// SkipTests lists specific test names to skip.
	// Format: "TestGroup/SubTest" (e.g., "ManageFS/RenameReplaces").
	SkipTests []string
}

// POSIXTestConfig returns configuration for strict POSIX-like filesystems.
func POSIXTestConfig() FSTestConfig {
	return FSTestConfig{}
}

// TestSuite runs all conformance tests with POSIXTestConfig().
func TestSuite(t *testing.T, newFS NewFunc) {
	TestSuiteWithConfig(t, newFS, POSIXTestConfig())
}

// TestSuiteWithConfig runs all conformance tests with behavior configuration.
func TestSuiteWithConfig(t *testing.T, newFS NewFunc, config FSTestConfig) {
	groups := []struct {
		name string
		run  func(t *testing.T, newFS NewFunc, config FSTestConfig)
	}{
		{"ReadFS", testReadFS},
		{"WriteFS", testWriteFS},
		{"ManageFS", testManageFS},
		{"ResolveFS", testResolveFS},
		{"File", testFile},
	}

	for _, g := range groups {
		t.Run(g.name, func(t *testing.T) {
			g.run(t, newFS, config)
		})
	}
}

// run executes one subtest unless the config skips it.
func run(t *testing.T, config FSTestConfig, name string, newFS NewFunc, fn func(t *testing.T, filesystem fsys.FS, root string)) {
	t.Run(name, func(t *testing.T) {
		if shouldSkip(t.Name(), config.SkipTests) {
			t.Skip("skipped by configuration")
		}
		filesystem, root := newFS(t)
		fn(t, filesystem, root)
	})
}

// shouldSkip reports whether the full test name ends with a configured entry.
func shouldSkip(fullName string, skip []string) bool {
	return slices.ContainsFunc(skip, func(s string) bool {
		return len(fullName) >= len(s) && fullName[len(fullName)-len(s):] == s
	})
}

// writeFile creates name under root with the given content or fails the test.
func writeFile(t *testing.T, filesystem fsys.FS, name string, content []byte) {
	t.Helper()
	f, err := filesystem.OpenFile(name, createFlags, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(%s): setup failed: %v", name, err)
	}
	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		t.Fatalf("Write(%s): setup failed: %v", name, err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close(%s): setup failed: %v", name, err)
	}
}

// mkdir creates name or fails the test.
func mkdir(t *testing.T, filesystem fsys.FS, name string) {
	t.Helper()
	if err := filesystem.MkdirAll(name, 0o755); err != nil {
		t.Fatalf("MkdirAll(%s): setup failed: %v", name, err)
	}
}

// symlinks returns the SymlinkFS of filesystem or skips the test.
func symlinks(t *testing.T, filesystem fsys.FS) fsys.SymlinkFS {
	t.Helper()
	sfs, ok := filesystem.(fsys.SymlinkFS)
	if !ok {
		t.Skip("SymlinkFS not supported")
	}
	return sfs
}

func join(root string, elem ...string) string {
	return path.Join(append([]string{root}, elem...)...)
}
