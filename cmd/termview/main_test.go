package main

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/termview/geometry"
)

func writeRedPNG(t *testing.T) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := range 2 {
		for x := range 2 {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "red.png")

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	return path
}

func TestRunArgs(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.png")

	tcs := map[string]struct {
		args       []string
		wantStdout string
		wantStderr string
		wantCode   int
	}{
		"no arguments": {
			args:       []string{},
			wantStdout: "Usage:",
			wantCode:   0,
		},
		"too many arguments": {
			args:       []string{"a.png", "0.5", "extra"},
			wantStdout: "Usage:",
			wantCode:   0,
		},
		"invalid PAR": {
			args:       []string{"a.png", "abc"},
			wantStderr: "Error: invalid PAR value: abc",
			wantCode:   1,
		},
		"negative PAR": {
			args:       []string{"a.png", "-1"},
			wantStderr: "Error: invalid PAR value: -1",
			wantCode:   1,
		},
		"negative fractional PAR": {
			args:       []string{"--log-level=error", "a.png", "-0.5"},
			wantStderr: "Error: invalid PAR value: -0.5",
			wantCode:   1,
		},
		"missing file": {
			args:       []string{missing},
			wantStderr: "Error: failed to open the image",
			wantCode:   1,
		},
		"unknown kernel": {
			args:       []string{"--kernel=box", missing},
			wantStderr: "Error: invalid option",
			wantCode:   1,
		},
		"version": {
			args:       []string{"--version"},
			wantStdout: "termview ",
			wantCode:   0,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer

			code := run(t.Context(), tc.args, &stdout, &stderr, geometry.Unavailable{})
			assert.Equal(t, tc.wantCode, code)

			if tc.wantStdout != "" {
				assert.Contains(t, stdout.String(), tc.wantStdout)
			}

			if tc.wantStderr != "" {
				assert.Contains(t, stderr.String(), tc.wantStderr)
				// Errors must not leave escape sequences behind.
				assert.Empty(t, stdout.String())
			}
		})
	}
}

//nolint:paralleltest // Sets ROWS and COLUMNS.
func TestRunDisplay(t *testing.T) {
	t.Setenv("ROWS", "1")
	t.Setenv("COLUMNS", "1")

	path := writeRedPNG(t)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	var stdout, stderr bytes.Buffer

	code := run(ctx, []string{"--log-level=error", path, "0.5"}, &stdout, &stderr, geometry.Unavailable{})
	require.Equal(t, 0, code, stderr.String())

	assert.Equal(t,
		"\x1b[?25l\x1b[2J"+
			"\x1b[40m\x1b[2J\x1b[1H"+
			"\x1b[38;2;255;0;0m\x1b[48;2;255;0;0m▄"+
			"\n\x1b[0m\x1b[?25h",
		stdout.String())
	assert.Empty(t, stderr.String())
}

//nolint:paralleltest // Sets ROWS and COLUMNS.
func TestRunLogFile(t *testing.T) {
	t.Setenv("ROWS", "1")
	t.Setenv("COLUMNS", "1")

	path := writeRedPNG(t)
	logPath := filepath.Join(t.TempDir(), "termview.log")

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	var stdout, stderr bytes.Buffer

	code := run(ctx, []string{"--log-file=" + logPath, "--log-format=json", path}, &stdout, &stderr, geometry.Unavailable{})
	require.Equal(t, 0, code, stderr.String())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"loaded image"`)
	assert.Empty(t, stderr.String())
}
