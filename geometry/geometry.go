package geometry

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	// EnvRows names the environment variable overriding the character row
	// count.
	EnvRows = "ROWS"
	// EnvColumns names the environment variable overriding the column count.
	EnvColumns = "COLUMNS"

	// DefaultCols is used when no column count can be determined.
	DefaultCols = 80
	// DefaultRows is the pixel row count used when no row count can be
	// determined (48 character rows).
	DefaultRows = 96
)

// ErrUnavailable indicates the terminal size cannot be queried.
var ErrUnavailable = errors.New("terminal size unavailable")

// Grid is the terminal area an image is rendered into.
type Grid struct {
	// Cols is the number of character columns.
	Cols int
	// Rows is the number of pixel rows, twice the character row count.
	Rows int
}

// CharRows returns the number of character rows covered by g.
func (g Grid) CharRows() int {
	return g.Rows / 2
}

// SizeProvider reports the size of a terminal in character cells.
type SizeProvider interface {
	Size() (cols, rows int, err error)
}

// Fixed is a [SizeProvider] that always reports the same size.
type Fixed struct {
	Cols int
	Rows int
}

// Size implements [SizeProvider].
func (f Fixed) Size() (int, int, error) {
	return f.Cols, f.Rows, nil
}

// Unavailable is a [SizeProvider] for processes without a terminal.
type Unavailable struct{}

// Size implements [SizeProvider]. It always returns [ErrUnavailable].
func (Unavailable) Size() (int, int, error) {
	return 0, 0, ErrUnavailable
}

// Resolver determines the [Grid] for the next frame.
//
// The zero value consults neither the environment nor a device and resolves
// to the defaults.
type Resolver struct {
	// LookupEnv reads an environment variable, typically [os.LookupEnv].
	LookupEnv func(key string) (string, bool)
	// Device queries the terminal. Nil means no device is available.
	Device SizeProvider
}

// Resolve returns the grid for the next frame. Environment overrides win;
// values still unset are taken from the device, then from the defaults.
// Unparsable or non-positive values are ignored. The result always has at
// least one column and an even number of at least two pixel rows.
func (r Resolver) Resolve() Grid {
	var g Grid

	if r.LookupEnv != nil {
		if rows, ok := r.env(EnvRows); ok {
			g.Rows = rows * 2
		}

		if cols, ok := r.env(EnvColumns); ok {
			g.Cols = cols
		}
	}

	if (g.Rows == 0 || g.Cols == 0) && r.Device != nil {
		cols, rows, err := r.Device.Size()
		if err == nil {
			if g.Rows == 0 && rows > 0 {
				g.Rows = rows * 2
			}

			if g.Cols == 0 && cols > 0 {
				g.Cols = cols
			}
		}
	}

	if g.Rows == 0 {
		g.Rows = DefaultRows
	}

	if g.Cols == 0 {
		g.Cols = DefaultCols
	}

	return g
}

// env parses a positive count from the named environment variable.
// Fractional values are truncated.
func (r Resolver) env(key string) (int, bool) {
	s, ok := r.LookupEnv(key)
	if !ok {
		return 0, false
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || f < 1 || f > math.MaxInt32 {
		return 0, false
	}

	return int(f), true
}
