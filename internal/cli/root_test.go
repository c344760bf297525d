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

// runCLI executes the root command with args and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func configPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.json")
}

func TestCLI_SetAndGet(t *testing.T) {
	cfg := configPath(t)

	_, err := runCLI(t, "--config", cfg, "set", "server.port", "8080")
	require.NoError(t, err)

	out, err := runCLI(t, "--config", cfg, "get", "server.port")
	require.NoError(t, err)
	assert.Equal(t, "8080\n", out)
}

func TestCLI_SetKeepsJSONTypes(t *testing.T) {
	cfg := configPath(t)

	_, err := runCLI(t, "--config", cfg, "set", "server", `{"host": "h", "port": 1}`)
	require.NoError(t, err)

	out, err := runCLI(t, "--config", cfg, "get", "server.host")
	require.NoError(t, err)
	assert.Equal(t, "h\n", out)

	out, err = runCLI(t, "--config", cfg, "get", "server")
	require.NoError(t, err)
	assert.JSONEq(t, `{"host": "h", "port": 1}`, strings.TrimSpace(out))
}

func TestCLI_GetMissingKey(t *testing.T) {
	cfg := configPath(t)

	_, err := runCLI(t, "--config", cfg, "get", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"nope"`)

	out, err := runCLI(t, "--config", cfg, "get", "nope", "--default", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback\n", out)
}

func TestCLI_EnvOverride(t *testing.T) {
	cfg := configPath(t)
	_, err := runCLI(t, "--config", cfg, "set", "server.port", "1")
	require.NoError(t, err)

	t.Setenv("SERVER_PORT", "2")

	out, err := runCLI(t, "--config", cfg, "get", "server.port")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	out, err = runCLI(t, "--config", cfg, "--no-env", "get", "server.port")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestCLI_Del(t *testing.T) {
	cfg := configPath(t)
	_, err := runCLI(t, "--config", cfg, "set", "a.b", "1")
	require.NoError(t, err)

	_, err = runCLI(t, "--config", cfg, "del", "a.b")
	require.NoError(t, err)

	_, err = runCLI(t, "--config", cfg, "get", "a.b")
	assert.Error(t, err)
}

func TestCLI_Keys(t *testing.T) {
	cfg := configPath(t)
	_, err := runCLI(t, "--config", cfg, "set", "a.b", "1")
	require.NoError(t, err)
	_, err = runCLI(t, "--config", cfg, "set", "a.c", "2")
	require.NoError(t, err)

	out, err := runCLI(t, "--config", cfg, "keys")
	require.NoError(t, err)
	assert.Equal(t, "a.b\na.c\n", out)
}

func TestCLI_MergeYAMLFile(t *testing.T) {
	cfg := configPath(t)
	_, err := runCLI(t, "--config", cfg, "set", "server.host", "localhost")
	require.NoError(t, err)

	patch := filepath.Join(t.TempDir(), "patch.yaml")
	require.NoError(t, os.WriteFile(patch, []byte("server:\n    port: 9090\n"), 0o644))

	_, err = runCLI(t, "--config", cfg, "merge", patch)
	require.NoError(t, err)

	out, err := runCLI(t, "--config", cfg, "get", "server.port")
	require.NoError(t, err)
	assert.Equal(t, "9090\n", out)

	out, err = runCLI(t, "--config", cfg, "get", "server.host")
	require.NoError(t, err)
	assert.Equal(t, "localhost\n", out)
}

func TestCLI_Merge_UnknownExtension(t *testing.T) {
	cfg := configPath(t)
	patch := filepath.Join(t.TempDir(), "patch.ini")
	require.NoError(t, os.WriteFile(patch, []byte("x"), 0o644))

	_, err := runCLI(t, "--config", cfg, "merge", patch)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot infer format")
}

func TestCLI_ImportStdin(t *testing.T) {
	cfg := configPath(t)

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(`{"a": {"b": 1}}`))
	cmd.SetArgs([]string{"--config", cfg, "import", "-"})
	require.NoError(t, cmd.Execute())

	got, err := runCLI(t, "--config", cfg, "get", "a.b")
	require.NoError(t, err)
	assert.Equal(t, "1\n", got)
}

func TestCLI_ExportFormats(t *testing.T) {
	cfg := configPath(t)
	_, err := runCLI(t, "--config", cfg, "set", "server.port", "8080")
	require.NoError(t, err)

	out, err := runCLI(t, "--config", cfg, "export")
	require.NoError(t, err)
	assert.JSONEq(t, `{"server": {"port": 8080}}`, out)

	out, err = runCLI(t, "--config", cfg, "export", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "port: 8080")

	out, err = runCLI(t, "--config", cfg, "export", "-f", "toml")
	require.NoError(t, err)
	assert.Contains(t, out, "[server]")

	_, err = runCLI(t, "--config", cfg, "export", "-f", "xml")
	require.Error(t, err)
}

func TestCLI_ExportToFile(t *testing.T) {
	cfg := configPath(t)
	_, err := runCLI(t, "--config", cfg, "set", "a", "1")
	require.NoError(t, err)

	dest := filepath.Join(t.TempDir(), "out.yaml")
	_, err = runCLI(t, "--config", cfg, "export", "-f", "yaml", "-o", dest)
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "a: 1")
}
