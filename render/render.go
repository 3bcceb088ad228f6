package render

import (
	"strconv"

	"github.com/charmbracelet/x/ansi"

	"go.jacobcolvin.com/termview/colorspace"
	"go.jacobcolvin.com/termview/raster"
)

const (
	// SessionStart hides the cursor and clears the screen once before the
	// first frame.
	SessionStart = ansi.HideCursor + ansi.EraseEntireScreen
	// FrameStart switches to a black background and clears the screen
	// before every frame.
	FrameStart = "\x1b[40m" + ansi.EraseEntireScreen
	// SessionEnd resets all attributes and shows the cursor again.
	SessionEnd = "\n\x1b[0m" + ansi.ShowCursor

	// HalfBlock is the lower half block glyph.
	HalfBlock = "▄"
)

// Renderer converts linear-light images to frames of escape sequences.
// It reuses one frame buffer between calls, so a Renderer must not be used
// concurrently.
type Renderer struct {
	buf []byte
}

// Frame returns the escape sequences drawing img, which must have an even
// number of pixel rows; a trailing odd row is ignored. The returned slice
// is only valid until the next call.
func (r *Renderer) Frame(img *raster.Image) []byte {
	b := append(r.buf[:0], FrameStart...)

	for y := range img.Height / 2 {
		b = append(b, "\x1b["...)
		b = strconv.AppendInt(b, int64(y+1), 10)
		b = append(b, 'H')

		for x := range img.Width {
			fr, fg, fb := img.At(x, 2*y+1)
			br, bg, bb := img.At(x, 2*y)

			b = appendColor(b, "\x1b[38;2;", fr, fg, fb)
			b = appendColor(b, "\x1b[48;2;", br, bg, bb)
			b = append(b, HalfBlock...)
		}
	}

	r.buf = b

	return b
}

// appendColor appends a true-color SGR sequence with the given prefix for
// the linear-light colour (r, g, b).
func appendColor(b []byte, prefix string, r, g, bl float32) []byte {
	b = append(b, prefix...)
	b = strconv.AppendUint(b, uint64(colorspace.LinearToSRGB8(float64(r))), 10)
	b = append(b, ';')
	b = strconv.AppendUint(b, uint64(colorspace.LinearToSRGB8(float64(g))), 10)
	b = append(b, ';')
	b = strconv.AppendUint(b, uint64(colorspace.LinearToSRGB8(float64(bl))), 10)

	return append(b, 'm')
}
