package billy

import (
	"io/fs"
	"path"
	"strings"
	"syscall"
	"time"
)

// maxSymlinks bounds the number of links followed while resolving one path.
const maxSymlinks = 255

type linkReader interface {
	Lstat(name string) (fs.FileInfo, error)
	Readlink(name string) (string, error)
}

// resolve walks an absolute name one component at a time, replacing symbolic
// links with their targets and applying ".." to the already resolved prefix,
// the way the kernel does during path lookup. The prefix never contains a
// link, so backends that only understand literal names can be queried
// directly.
func resolve(lr linkReader, name string) (string, error) {
	name = strings.ReplaceAll(name, "\\", "/")
	if !strings.HasPrefix(name, "/") {
		return "", &fs.PathError{Op: "canonicalize", Path: name, Err: fs.ErrInvalid}
	}

	pending := strings.Split(name, "/")
	resolved := "/"
	links := 0

	for len(pending) > 0 {
		part := pending[0]
		pending = pending[1:]

		switch part {
		case "", ".":
			continue
		case "..":
			resolved = path.Dir(resolved)
			continue
		}

		next := path.Join(resolved, part)
		info, err := lr.Lstat(next)
		if err != nil {
			return "", err
		}

		if info.Mode()&fs.ModeSymlink == 0 {
			if len(pending) > 0 && !info.IsDir() {
				return "", &fs.PathError{Op: "lstat", Path: next, Err: syscall.ENOTDIR}
			}
			resolved = next
			continue
		}

		links++
		if links > maxSymlinks {
			return "", &fs.PathError{Op: "canonicalize", Path: name, Err: syscall.ELOOP}
		}

		target, err := lr.Readlink(next)
		if err != nil {
			return "", err
		}
		target = strings.ReplaceAll(target, "\\", "/")
		if strings.HasPrefix(target, "/") {
			resolved = "/"
		}
		pending = append(strings.Split(target, "/"), pending...)
	}

	return resolved, nil
}

// rootInfo describes "/" for backends that do not store it.
type rootInfo struct{}

func (rootInfo) Name() string       { return "/" }
func (rootInfo) Size() int64        { return 0 }
func (rootInfo) Mode() fs.FileMode  { return fs.ModeDir | 0o755 }
func (rootInfo) ModTime() time.Time { return time.Time{} }
func (rootInfo) IsDir() bool        { return true }
func (rootInfo) Sys() any           { return nil }
