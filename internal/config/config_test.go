package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "htmlhelper.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "limit:\n  length: 42\n  end: \" [more]\"\nlogging:\n  level: debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Limit.Length)
	assert.Equal(t, " [more]", cfg.Limit.End)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_FileInWorkingDirectory(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile(".htmlhelper.yaml", []byte("limit:\n  length: 7\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Limit.Length)
	assert.Equal(t, "...", cfg.Limit.End)
}

func TestLoad_Env(t *testing.T) {
	isolate(t)
	t.Setenv("HTMLHELPER_LIMIT_LENGTH", "12")
	t.Setenv("HTMLHELPER_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Limit.Length)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"negative length": "limit:\n  length: -1\n",
		"unknown level":   "logging:\n  level: loud\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			isolate(t)
			_, err := Load(writeConfig(t, content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validating config")
		})
	}
}
