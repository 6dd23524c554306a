package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command tree with args and stdin, returning stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	root := NewRootCommand()
	out := new(bytes.Buffer)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(out)
	root.SetErr(new(bytes.Buffer))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestRootCmd_Help(t *testing.T) {
	out, err := run(t, "", "--help")
	require.NoError(t, err)
	for _, sub := range []string{"limit", "clean", "strip", "name", "version"} {
		assert.Contains(t, out, sub)
	}
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	_, err := run(t, "", "nonexistent-command")
	require.Error(t, err)
}

func TestLimitCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"length flag", []string{"limit", "-n", "5"}, "<p>Hello...</p>"},
		{"end flag", []string{"limit", "--length", "5", "--end", "~"}, "<p>Hello~</p>"},
		{"config default", []string{"limit"}, "<p>Hello <b>world</b></p>"},
		{"explicit stdin", []string{"limit", "-n", "3", "-"}, "<p>Hel...</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "<p>Hello <b>world</b></p>", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestLimitCmd_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.html")
	require.NoError(t, os.WriteFile(path, []byte("<i>abcdef</i>"), 0o600))

	out, err := run(t, "", "limit", "-n", "2", path)
	require.NoError(t, err)
	assert.Equal(t, "<i>ab...</i>", out)
}

func TestLimitCmd_ConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("limit:\n  length: 3\n  end: \"!\"\n"), 0o600))

	out, err := run(t, "<p>Hello</p>", "--config", cfgPath, "limit")
	require.NoError(t, err)
	assert.Equal(t, "<p>Hel!</p>", out)
}

func TestLimitCmd_Env(t *testing.T) {
	t.Setenv("HTMLHELPER_LIMIT_LENGTH", "2")

	out, err := run(t, "<p>Hello</p>", "limit")
	require.NoError(t, err)
	assert.Equal(t, "<p>He...</p>", out)
}

func TestLimitCmd_NegativeLength(t *testing.T) {
	_, err := run(t, "x", "limit", "--length=-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --length")
}

func TestLimitCmd_MissingFile(t *testing.T) {
	_, err := run(t, "", "limit", filepath.Join(t.TempDir(), "absent.html"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading input")
}

func TestCleanCmd(t *testing.T) {
	out, err := run(t, `<a href="javascript:x()" onclick="y()">z</a><script>bad()</script>`, "clean")
	require.NoError(t, err)
	assert.Equal(t, `<a href="nojavascript...x()">z</a>bad()`, out)
}

func TestCleanCmd_Verbose(t *testing.T) {
	out, err := run(t, "<p>ok</p>", "clean", "-v")
	require.NoError(t, err)
	assert.Equal(t, "<p>ok</p>", out)
}

func TestStripCmd(t *testing.T) {
	out, err := run(t, "<p>Tom &amp; <b>Jerry</b></p>", "strip")
	require.NoError(t, err)
	assert.Equal(t, "Tom & Jerry", out)
}

func TestNameCmd(t *testing.T) {
	out, err := run(t, "", "name", "user[location][city]", "title")
	require.NoError(t, err)
	assert.Equal(t, "user-location-city\tuser location city\ntitle\ttitle\n", out)
}

func TestNameCmd_RequiresArgs(t *testing.T) {
	_, err := run(t, "", "name")
	require.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	SetVersion("1.2.3")
	t.Cleanup(func() { SetVersion("dev") })

	out, err := run(t, "", "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)

	out, err = run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "htmlhelper version 1.2.3")
	assert.Contains(t, out, "go version:")
}

func TestInvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("logging:\n  level: loud\n"), 0o600))

	_, err := run(t, "x", "--config", cfgPath, "strip")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}
