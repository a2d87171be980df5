package fspath

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "file", KindFile.String())
	assert.Equal(t, "directory", KindDir.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		mode fs.FileMode
		want string
		kind Kind
	}{
		{mode: 0o644, want: "file", kind: KindFile},
		{mode: fs.ModeDir | 0o755, want: "directory", kind: KindDir},
		{mode: fs.ModeSymlink, want: "symlink"},
		{mode: fs.ModeSocket, want: "socket"},
		{mode: fs.ModeNamedPipe, want: "named pipe"},
		{mode: fs.ModeDevice, want: "device"},
		{mode: fs.ModeDevice | fs.ModeCharDevice, want: "device"},
		{mode: fs.ModeIrregular, want: "irregular file"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, describe(tt.mode))
			assert.Equal(t, tt.kind, kindOf(tt.mode))
		})
	}
}

func TestMismatchError(t *testing.T) {
	err := &mismatchError{expected: "directory", found: "socket"}
	assert.Equal(t, "expected directory, found socket", err.Error())
	assert.ErrorIs(t, err, ErrTypeMismatch)
}
