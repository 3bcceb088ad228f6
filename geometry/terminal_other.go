//go:build !unix

package geometry

// controllingTerminalSize is unsupported without a unix controlling terminal.
func controllingTerminalSize() (int, int, error) {
	return 0, 0, ErrUnavailable
}
