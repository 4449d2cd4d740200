package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/esimov/glyph2svg"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/gofont/goregular"
)

func TestMain_ExitCode(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, exitCode(nil))
	assert.Equal(exitResourceError, exitCode(&glyph2svg.ResourceError{Path: "x.ttf", Err: errors.New("boom")}))
	assert.Equal(exitWriteError, exitCode(&glyph2svg.WriteError{Path: "out", Err: errors.New("boom")}))
	assert.Equal(exitWriteError, exitCode(fmt.Errorf("wrapped: %w", &glyph2svg.WriteError{Path: "out"})))
	assert.Equal(exitFailure, exitCode(glyph2svg.ErrInterrupted))
	assert.Equal(exitFailure, exitCode(errors.New("unknown")))
}

func TestMain_InvalidArguments(t *testing.T) {
	dest := t.TempDir()

	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-x", "-f", "font.ttf", "-s", dest}},
		{"missing destination", []string{"-f", "font.ttf"}},
		{"missing font", []string{"--save-to", dest}},
		{"positional argument", []string{"-f", "font.ttf", "-s", dest, "extra"}},
		{"negative preview size", []string{"-f", "font.ttf", "-s", dest, "--png", "-1"}},
		{"invalid color", []string{"-f", "font.ttf", "-s", dest, "--color", "nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer

			assert.Equal(t, exitUsage, run(tt.args, &stderr))
			assert.Contains(t, stderr.String(), "Usage: glyph2svg")
		})
	}
	assert.Empty(t, dirEntries(t, dest))
}

func TestMain_Help(t *testing.T) {
	var stderr bytes.Buffer

	assert.Equal(t, 0, run([]string{"-h"}, &stderr))
	assert.Contains(t, stderr.String(), "-font-file")
}

func TestMain_ExportFont(t *testing.T) {
	var stderr bytes.Buffer
	dir := t.TempDir()
	font := filepath.Join(dir, "goregular.ttf")
	dest := filepath.Join(dir, "glyphs")
	assert.NoError(t, os.WriteFile(font, goregular.TTF, 0644))
	assert.NoError(t, os.Mkdir(dest, 0755))

	code := run([]string{"--font-file", font, "--save-to", dest, "--quiet"}, &stderr)

	assert.Equal(t, 0, code, stderr.String())
	assert.Contains(t, dirEntries(t, dest), "41.svg")
}

func TestMain_ExportFailures(t *testing.T) {
	var stderr bytes.Buffer
	dir := t.TempDir()
	font := filepath.Join(dir, "goregular.ttf")
	assert.NoError(t, os.WriteFile(font, goregular.TTF, 0644))

	assert.Equal(t, exitResourceError, run([]string{"-f", filepath.Join(dir, "missing.ttf"), "-s", dir, "--quiet"}, &stderr))
	assert.Equal(t, exitWriteError, run([]string{"-f", font, "-s", filepath.Join(dir, "missing"), "--quiet"}, &stderr))
}

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("could not read the destination directory: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
