package fspath_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/fspath"
	"github.com/jmgilman/go/fspath/errors"
)

func listed(t *testing.T) []fspath.Entry {
	t.Helper()
	r, _ := newMemResolver(t)
	dir, err := r.Dir("/work/a")
	require.NoError(t, err)
	entries, err := dir.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	return entries
}

func TestEntry_JSON(t *testing.T) {
	entries := listed(t)

	data, err := json.Marshal(entries)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"type":"file","path":"/work/a/file.txt"},
		{"type":"dir","path":"/work/a/sub"}
	]`, string(data))

	var decoded []fspath.Entry
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.True(t, decoded[0].IsFile())
	assert.Equal(t, "/work/a/file.txt", decoded[0].String())
	assert.True(t, decoded[1].IsDir())
}

func TestEntry_YAML(t *testing.T) {
	entries := listed(t)

	data, err := yaml.Marshal(entries)
	require.NoError(t, err)
	assert.Contains(t, string(data), "type: dir")

	var decoded []fspath.Entry
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, entries[0].String(), decoded[0].String())
	assert.Equal(t, entries[1].Kind(), decoded[1].Kind())
}

func TestEntry_Decode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "unknown type", doc: `{"type":"socket","path":"/tmp/x"}`},
		{name: "missing path", doc: `{"type":"file"}`},
		{name: "relative path", doc: `{"type":"file","path":"tmp/x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e fspath.Entry
			err := json.Unmarshal([]byte(tt.doc), &e)
			require.Error(t, err)
			assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
		})
	}
}

func TestEntry_Zero(t *testing.T) {
	var e fspath.Entry
	assert.False(t, e.IsFile())
	assert.False(t, e.IsDir())
	assert.Equal(t, fspath.KindUnknown, e.Kind())
	_, ok := e.File()
	assert.False(t, ok)
}
