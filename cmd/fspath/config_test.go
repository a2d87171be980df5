package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/fspath/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fspath.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), *cfg)
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeConfig(t, "log_level: debug\noutput: yaml\nworkers: 2\n")

	t.Run("file over defaults", func(t *testing.T) {
		cfg, err := LoadConfig(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, outputYAML, cfg.Output)
		assert.Equal(t, 2, cfg.Workers)
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv("FSPATH_OUTPUT", "json")
		t.Setenv("FSPATH_WORKERS", "4")

		cfg, err := LoadConfig(path, nil)
		require.NoError(t, err)
		assert.Equal(t, outputJSON, cfg.Output)
		assert.Equal(t, 4, cfg.Workers)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("flags over env", func(t *testing.T) {
		t.Setenv("FSPATH_OUTPUT", "json")

		cfg, err := LoadConfig(path, map[string]any{"output": "text"})
		require.NoError(t, err)
		assert.Equal(t, outputText, cfg.Output)
	})
}

func TestLoadConfig_WorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fspath.yaml"), []byte("output: json\n"), 0o644))
	t.Chdir(dir)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, outputJSON, cfg.Output)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		overrides map[string]any
	}{
		{name: "missing explicit file", path: filepath.Join(t.TempDir(), "nope.yaml")},
		{name: "bad output", path: writeConfig(t, "output: xml\n")},
		{name: "bad workers", overrides: map[string]any{"workers": 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			_, err := LoadConfig(tt.path, tt.overrides)
			require.Error(t, err)
			assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
		})
	}
}
