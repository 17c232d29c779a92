package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ztrue/tracerr"
)

func TestLoadKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, ioutil.WriteFile(path, []byte("Package: hello\nPrintWarnings: false\nJobs: 0\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	expected := Default("hello")
	expected.PrintWarnings = false
	expected.Jobs = 1
	assert.Equal(t, expected, cfg)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	cfg := Default("demo")
	cfg.Sources = []string{"main.colt", "util.colt"}
	cfg.PrintIR = true
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(tracerr.Unwrap(err)))

	bad := filepath.Join(dir, FileName)
	require.NoError(t, ioutil.WriteFile(bad, []byte("Jobs: [1, 2"), 0644))
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestGlob(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.colt", "b.colt", "notes.txt"} {
		require.NoError(t, ioutil.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	files, err := Glob(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.colt"), filepath.Join(dir, "b.colt")}, files)
}

func TestPrintOptions(t *testing.T) {
	cfg := Default("x")
	cfg.Colored = false
	cfg.PrintMessages = false

	opts := cfg.PrintOptions()
	assert.False(t, opts.Colored)
	assert.False(t, opts.Messages)
	assert.True(t, opts.Warnings)
	assert.True(t, opts.Errors)
}
