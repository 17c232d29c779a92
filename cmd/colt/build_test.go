package main

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/coreos/pkg/multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontaoski/colt/errors"
)

func TestLex(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, lex(&out, "var x = 1;\n@"))

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 6)
	assert.Contains(t, string(lines[0]), "var")
	assert.Contains(t, string(lines[5]), "   2 ERROR")
}

func TestLexString(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, lex(&out, `"it\'s"`))
	assert.Contains(t, out.String(), `STRING_L     "it's"`)
	assert.NotContains(t, out.String(), `\'`)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("src", "main.ll"), outputPath("", filepath.Join("src", "main.colt")))
	assert.Equal(t, filepath.Join("build", "main.ll"), outputPath("build", filepath.Join("src", "main.colt")))
}

func TestParseAll(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.colt")
	bad := filepath.Join(dir, "bad.colt")
	require.NoError(t, ioutil.WriteFile(good, []byte("fn main() { }"), 0644))
	require.NoError(t, ioutil.WriteFile(bad, []byte("var x: void = 1;\nvar y = z;"), 0644))

	units := parseAll([]string{good, bad}, 1)
	require.Len(t, units, 2)

	assert.Equal(t, good, units[0].path)
	assert.NoError(t, units[0].err)
	assert.Len(t, units[0].tree.Functions(), 1)

	assert.Equal(t, bad, units[1].path)
	assert.Equal(t, errors.ErrorCount(2), units[1].err)
	assert.Equal(t, 2, units[1].sink.Count(errors.ErrorLevel))

	sink := &errors.Collector{}
	assert.Equal(t, errors.ErrorCount(2), report(units, sink))
	assert.Equal(t, 2, sink.Count(errors.ErrorLevel))
	assert.NoError(t, report(units[:1], &errors.Collector{}))
}

func TestReportUnreadableFiles(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.colt")
	require.NoError(t, ioutil.WriteFile(bad, []byte("var y = z;"), 0644))

	units := parseAll([]string{filepath.Join(dir, "a.colt"), bad, filepath.Join(dir, "b.colt")}, 2)
	require.Len(t, units, 3)
	assert.Nil(t, units[0].tree)

	err := report(units, &errors.Collector{})
	failed, ok := err.(multierror.Error)
	require.True(t, ok, "%v", err)
	assert.Len(t, failed, 2)
}
