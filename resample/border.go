package resample

import (
	"errors"
	"fmt"
	"strings"
)

// Border decides what destination samples mapping outside the source image
// receive.
type Border int

const (
	// Letterbox leaves samples whose source coordinate falls outside the
	// image black. Kernel taps of samples inside the image that reach past
	// the edge repeat the edge pixel.
	Letterbox Border = iota
	// Clamp repeats the nearest edge pixel for every sample.
	Clamp
)

// ErrUnknownBorder indicates an unrecognized border name.
var ErrUnknownBorder = errors.New("unknown border")

// String returns the name of b.
func (b Border) String() string {
	switch b {
	case Letterbox:
		return "letterbox"
	case Clamp:
		return "clamp"
	}

	return fmt.Sprintf("Border(%d)", int(b))
}

// ParseBorder returns the [Border] named by s, case-insensitively.
func ParseBorder(s string) (Border, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "letterbox":
		return Letterbox, nil
	case "clamp":
		return Clamp, nil
	}

	return Letterbox, fmt.Errorf("%w: %q", ErrUnknownBorder, s)
}

// AllBorderStrings returns the names accepted by [ParseBorder].
func AllBorderStrings() []string {
	return []string{Letterbox.String(), Clamp.String()}
}

// covers reports whether coordinate c of an axis with n pixels lies on the
// image. Pixel i covers [i-0.5, i+0.5].
func (b Border) covers(c float64, n int) bool {
	if b == Clamp {
		return true
	}

	return c >= -0.5 && c <= float64(n)-0.5
}
