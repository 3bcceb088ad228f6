//go:build unix

package geometry

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// ttyPath is the controlling terminal of the process.
const ttyPath = "/dev/tty"

// controllingTerminalSize queries the window size of [ttyPath].
func controllingTerminalSize() (int, int, error) {
	f, err := os.OpenFile(ttyPath, unix.O_NOCTTY|unix.O_CLOEXEC|unix.O_NDELAY|unix.O_RDWR, 0)
	if err != nil {
		return 0, 0, fmt.Errorf("opening %s: %w", ttyPath, err)
	}

	defer f.Close() //nolint:errcheck // Read-only query; close errors are irrelevant.

	return fdSize(int(f.Fd()))
}

// fdSize returns the window size of the terminal open on fd.
func fdSize(fd int) (int, int, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("querying window size: %w", err)
	}

	return int(ws.Col), int(ws.Row), nil
}
