package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

// project writes a config file and the given sources into a temp dir.
func project(t *testing.T, files map[string]string) (string, string) {
	t.Helper()

	dir := t.TempDir()
	cfg := filepath.Join(dir, "derive.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("color: never\n"), 0o644))

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	return dir, cfg
}

func TestGen_WritesOutput(t *testing.T) {
	dir, cfg := project(t, map[string]string{
		"model.rs": "#[derive(Debug, Constructor)]\npub struct Point { x: i32 }\n",
	})

	_, stderr, err := execute(t, "gen", "--config", cfg, dir)
	require.NoError(t, err, stderr)

	out, err := os.ReadFile(filepath.Join(dir, "model_derive.rs"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "pub fn new(x: i32) -> Self {")
}

func TestGen_StdoutAndDeriveFilter(t *testing.T) {
	dir, cfg := project(t, map[string]string{
		"model.rs": "#[derive(Error, Display)]\nstruct Oops;\n",
	})

	stdout, _, err := execute(t, "gen", "--config", cfg, "--stdout", "--derive", "Error", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "// Error for Oops")
	assert.NotContains(t, stdout, "// Display for Oops")

	_, err = os.Stat(filepath.Join(dir, "model_derive.rs"))
	assert.True(t, os.IsNotExist(err))
}

func TestGen_ReportsDiagnostics(t *testing.T) {
	dir, cfg := project(t, map[string]string{
		"bad.rs": "#[derive(Record)]\nstruct S { #[Record(flatten)] s: &str }\n",
	})

	_, stderr, err := execute(t, "gen", "--config", cfg, dir)
	require.EqualError(t, err, "expansion failed")
	assert.Contains(t, stderr, "error: Cannot flatten &str (derive Record)")
}

func TestGen_Diff(t *testing.T) {
	dir, cfg := project(t, map[string]string{
		"model.rs": "#[derive(Error)]\nstruct Oops;\n",
	})
	patch := filepath.Join(t.TempDir(), "changes.diff")

	_, stderr, err := execute(t, "gen", "--config", cfg, "--diff", patch, dir)
	require.NoError(t, err, stderr)

	b, err := os.ReadFile(patch)
	require.NoError(t, err)
	assert.Contains(t, string(b), "+impl ::core::error::Error for Oops {}")

	_, err = os.Stat(filepath.Join(dir, "model_derive.rs"))
	assert.True(t, os.IsNotExist(err))
}

func TestGen_InvalidDerive(t *testing.T) {
	dir, cfg := project(t, nil)

	_, _, err := execute(t, "gen", "--config", cfg, "--derive", "Dispaly", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown derive "Dispaly"`)
}

func TestExpand(t *testing.T) {
	dir, _ := project(t, map[string]string{
		"one.rs":  "pub struct Meters(f64);\n",
		"many.rs": "#[derive(Error)]\nstruct A;\n\n#[derive(Error)]\nstruct B;\n",
	})

	stdout, _, err := execute(t, "expand", "--derive", "Inner", filepath.Join(dir, "one.rs"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "pub struct MetersInner(pub f64);")

	stdout, _, err = execute(t, "expand", "-d", "Error", "--item", "B", filepath.Join(dir, "many.rs"))
	require.NoError(t, err)
	assert.Equal(t, "impl ::core::error::Error for B {}\n", stdout)

	_, stderr, err := execute(t, "expand", "-d", "Method", "--color", "never", filepath.Join(dir, "many.rs"))
	require.Error(t, err)
	assert.Contains(t, stderr, "error:")
}

func TestTokens(t *testing.T) {
	dir, _ := project(t, map[string]string{"a.rs": "struct A;"})

	stdout, _, err := execute(t, "tokens", filepath.Join(dir, "a.rs"))
	require.NoError(t, err)
	assert.Equal(t, "1:1\tIdent\tstruct\n1:8\tIdent\tA\n1:9\tPunct\t;\n", stdout)
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "derive-generator ")
}
