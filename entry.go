package fspath

import (
	"encoding/json"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/fspath/errors"
)

// Entry is a directory child that listing has classified as a file or a
// directory. Entries are only produced by Dir.List, Dir.Entries and Dir.Glob;
// the zero value is not a valid entry.
type Entry struct {
	kind Kind
	abs  Abs
}

// entry canonicalizes child and probes it once.
func (r *Resolver) entry(child string) (Entry, error) {
	abs, err := r.Abs(child)
	if err != nil {
		return Entry{}, err
	}
	return attempt(r, "probe", abs.path, func() (Entry, error) {
		info, err := r.fs.Stat(abs.path)
		if err != nil {
			return Entry{}, err
		}
		kind := kindOf(info.Mode())
		if kind == KindUnknown {
			return Entry{}, &mismatchError{expected: "file or directory", found: describe(info.Mode())}
		}
		return Entry{kind: kind, abs: abs}, nil
	})
}

// Kind reports whether the entry is a file or a directory.
func (e Entry) Kind() Kind { return e.kind }

// IsFile reports whether the entry is a file.
func (e Entry) IsFile() bool { return e.kind == KindFile }

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool { return e.kind == KindDir }

// Abs returns the entry's validated path.
func (e Entry) Abs() Abs { return e.abs }

// String returns the entry's canonical path.
func (e Entry) String() string { return e.abs.path }

// File returns the entry as a File if it is one.
func (e Entry) File() (File, bool) {
	if e.kind != KindFile {
		return File{}, false
	}
	return File{abs: e.abs}, true
}

// Dir returns the entry as a Dir if it is one.
func (e Entry) Dir() (Dir, bool) {
	if e.kind != KindDir {
		return Dir{}, false
	}
	return Dir{abs: e.abs}, true
}

// entryDoc is the serialized form of an Entry.
type entryDoc struct {
	Type string `json:"type" yaml:"type"`
	Path Abs    `json:"path" yaml:"path"`
}

const (
	entryTypeFile = "file"
	entryTypeDir  = "dir"
)

func (e Entry) doc() entryDoc {
	t := entryTypeFile
	if e.kind == KindDir {
		t = entryTypeDir
	}
	return entryDoc{Type: t, Path: e.abs}
}

func (e *Entry) fromDoc(doc entryDoc) error {
	var kind Kind
	switch doc.Type {
	case entryTypeFile:
		kind = KindFile
	case entryTypeDir:
		kind = KindDir
	default:
		return Default.wrap("decode", doc.Path.path,
			errors.Newf(errors.CodeInvalidInput, "unknown entry type %q", doc.Type))
	}
	if doc.Path.path == "" {
		return Default.wrap("decode", "", fs.ErrInvalid)
	}
	*e = Entry{kind: kind, abs: doc.Path}
	return nil
}

// MarshalJSON encodes the entry as {"type":"file"|"dir","path":"..."}.
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.doc())
}

// UnmarshalJSON decodes the form produced by MarshalJSON. The result is
// bound to Default and is not probed.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var doc entryDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	return e.fromDoc(doc)
}

// MarshalYAML encodes the entry as a mapping with type and path keys.
func (e Entry) MarshalYAML() (interface{}, error) {
	return e.doc(), nil
}

// UnmarshalYAML decodes the form produced by MarshalYAML.
func (e *Entry) UnmarshalYAML(value *yaml.Node) error {
	var doc entryDoc
	if err := value.Decode(&doc); err != nil {
		return err
	}
	return e.fromDoc(doc)
}
