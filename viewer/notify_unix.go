//go:build unix

package viewer

import (
	"os"

	"golang.org/x/sys/unix"
)

var (
	terminateSignals = []os.Signal{unix.SIGINT, unix.SIGTERM}
	resizeSignals    = []os.Signal{unix.SIGWINCH}
)
