//go:build !unix

package viewer

import "os"

// Without SIGWINCH the image is drawn once for the initial terminal size.
var (
	terminateSignals = []os.Signal{os.Interrupt}
	resizeSignals    []os.Signal
)
