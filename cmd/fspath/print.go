package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/fspath"
)

// emit writes v in the configured format. text renders the plain form.
func (env *environment) emit(v any, text func(w io.Writer) error) error {
	switch env.cfg.Output {
	case outputJSON:
		enc := json.NewEncoder(env.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(env.stdout)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(env.stdout)
	}
}

// resolved pairs a command-line argument with its canonical path.
type resolved struct {
	Input string     `json:"input" yaml:"input"`
	Path  fspath.Abs `json:"path" yaml:"path"`
}

// typed pairs a canonical path with the kind of entity it names.
type typed struct {
	Path fspath.Abs `json:"path" yaml:"path"`
	Type string     `json:"type" yaml:"type"`
}

// pathOnly reports the path an operation produced.
type pathOnly struct {
	Path string `json:"path" yaml:"path"`
}

func (env *environment) emitPath(path string) error {
	return env.emit(pathOnly{Path: path}, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, path)
		return err
	})
}

func (env *environment) emitEntries(entries []fspath.Entry) error {
	if entries == nil {
		entries = []fspath.Entry{}
	}
	return env.emit(entries, func(w io.Writer) error {
		for _, e := range entries {
			kind := "file"
			if e.IsDir() {
				kind = "dir"
			}
			if _, err := fmt.Fprintf(w, "%-4s %s\n", kind, e); err != nil {
				return err
			}
		}
		return nil
	})
}
