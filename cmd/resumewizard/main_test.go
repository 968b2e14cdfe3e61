package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{"RESUME_OUTPUT_DIR", "CHROME_PATH", "LOG_LEVEL", "RESUME_LOG_FILE"} {
		t.Setenv(k, "")
	}
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "none.yaml")))
	err := cmd.Execute()
	return out.String(), err
}

func TestTemplatesCommand(t *testing.T) {
	out, err := execute(t, "templates")
	require.NoError(t, err)
	assert.Contains(t, out, "modern")
	assert.Contains(t, out, "Modern Template (default)")
	assert.Contains(t, out, "compact")
}

func TestRenderHTMLToStdout(t *testing.T) {
	out, err := execute(t, "render", "--data", "testdata/resume.yaml", "--template", "compact")
	require.NoError(t, err)
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "template-compact")
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "2021 - Present")
}

func TestRenderHTMLToFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "jane.html")
	out, err := execute(t, "render", "--data", "testdata/resume.yaml", "--out", dest, "--strict")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+dest)

	b, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(b), "template-modern")
	assert.Contains(t, string(b), "March 2021 - Present")
}

func TestRenderStrictRejectsIncompleteData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"personalInfo": {"name": "Jane Doe"}}`), 0o644))

	_, err := execute(t, "render", "--data", path, "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Personal Info")

	_, err = execute(t, "render", "--data", path)
	assert.NoError(t, err, "without --strict incomplete data still renders")
}

func TestRenderRejectsBadInput(t *testing.T) {
	_, err := execute(t, "render", "--data", "testdata/resume.yaml", "--format", "docx")
	assert.Error(t, err)

	_, err = execute(t, "render")
	assert.Error(t, err, "--data is required")

	_, err = execute(t, "render", "--data", "testdata/missing.yaml")
	assert.Error(t, err)
}
