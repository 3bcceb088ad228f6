package resample

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/image/draw"
)

// Kernel selects the interpolation used by [Resample].
type Kernel int

const (
	// Auto selects a kernel from the mapping scale with [SelectKernel].
	Auto Kernel = iota
	// Area averages every source pixel covered by a destination sample,
	// weighted by coverage.
	Area
	// Cubic is Catmull-Rom bicubic interpolation.
	Cubic
	// Lanczos is Lanczos interpolation with a=4 (8 taps per axis).
	Lanczos
)

// ErrUnknownKernel indicates an unrecognized kernel name.
var ErrUnknownKernel = errors.New("unknown kernel")

var kernelNames = map[Kernel]string{
	Auto:    "auto",
	Area:    "area",
	Cubic:   "cubic",
	Lanczos: "lanczos",
}

// String returns the name of k.
func (k Kernel) String() string {
	if s, ok := kernelNames[k]; ok {
		return s
	}

	return fmt.Sprintf("Kernel(%d)", int(k))
}

// ParseKernel returns the [Kernel] named by s, case-insensitively.
func ParseKernel(s string) (Kernel, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kernelNames {
		if n == name {
			return k, nil
		}
	}

	return Auto, fmt.Errorf("%w: %q", ErrUnknownKernel, s)
}

// AllKernelStrings returns the names accepted by [ParseKernel].
func AllKernelStrings() []string {
	return []string{Auto.String(), Area.String(), Cubic.String(), Lanczos.String()}
}

// SelectKernel chooses a kernel for a mapping with the given scale (source
// pixels per destination pixel row) and pixel aspect ratio. The horizontal
// scale is scale*2*par.
func SelectKernel(scale, par float64) Kernel {
	sx := scale * 2 * par

	switch {
	case scale > 1 && sx > 1:
		return Area
	case scale < 0.5 && sx < 0.5:
		return Lanczos
	}

	return Cubic
}

// lanczosSupport is the Lanczos window radius.
const lanczosSupport = 4

// lanczos is the Lanczos kernel in the form used by golang.org/x/image/draw.
var lanczos = &draw.Kernel{
	Support: lanczosSupport,
	At: func(t float64) float64 {
		if t < 0 {
			t = -t
		}

		if t >= lanczosSupport {
			return 0
		}

		if t == 0 {
			return 1
		}

		pt := math.Pi * t

		return (math.Sin(pt) / pt) * (math.Sin(pt/lanczosSupport) / (pt / lanczosSupport))
	},
}

// filter returns the continuous kernel backing k. Area has none.
func (k Kernel) filter() *draw.Kernel {
	switch k {
	case Cubic:
		return draw.CatmullRom
	case Lanczos:
		return lanczos
	}

	return nil
}
