//go:build unix

package geometry_test

import (
	"testing"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/termview/geometry"
)

func TestTerminalSize(t *testing.T) {
	t.Parallel()

	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}

	t.Cleanup(func() {
		assert.NoError(t, tty.Close())
		assert.NoError(t, ptmx.Close())
	})

	require.NoError(t, pty.Setsize(ptmx, &pty.Winsize{Rows: 10, Cols: 40}))

	dev := geometry.Terminal{Fd: int(tty.Fd())}

	cols, rows, err := dev.Size()
	require.NoError(t, err)
	assert.Equal(t, 40, cols)
	assert.Equal(t, 10, rows)

	r := geometry.Resolver{
		LookupEnv: env(nil),
		Device:    dev,
	}
	assert.Equal(t, geometry.Grid{Cols: 40, Rows: 20}, r.Resolve())
}
