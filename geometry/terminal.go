package geometry

import (
	"fmt"

	"golang.org/x/term"
)

// Terminal is a [SizeProvider] querying the terminal attached to Fd.
// When Fd is not a terminal it falls back to the controlling terminal of
// the process, where the platform supports that.
type Terminal struct {
	Fd int
}

// Size implements [SizeProvider].
func (t Terminal) Size() (int, int, error) {
	if term.IsTerminal(t.Fd) {
		cols, rows, err := term.GetSize(t.Fd)
		if err == nil {
			return cols, rows, nil
		}
	}

	cols, rows, err := controllingTerminalSize()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return cols, rows, nil
}
