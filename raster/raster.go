package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"

	// Register decoders for the formats [Load] accepts.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"go.jacobcolvin.com/termview/colorspace"
)

// Channels is the number of float32 values stored per pixel.
const Channels = 3

var (
	// ErrOpen indicates the image file could not be read or decoded.
	ErrOpen = errors.New("failed to open the image")
	// ErrEmpty indicates the decoded image has no pixels.
	ErrEmpty = errors.New("image is empty")
)

// Image is a grid of linear-light RGB pixels stored row-major as float32.
// Channel values are nominally in [0, 1]; resampling kernels with negative
// lobes may produce values slightly outside that range.
//
// Create instances with [New], [FromImage], or [Load].
type Image struct {
	Pix    []float32
	Width  int
	Height int
}

// New returns a black image of the given size.
func New(width, height int) *Image {
	return &Image{
		Pix:    make([]float32, width*height*Channels),
		Width:  width,
		Height: height,
	}
}

// Offset returns the index in Pix of the red channel of pixel (x, y).
func (m *Image) Offset(x, y int) int {
	return (y*m.Width + x) * Channels
}

// At returns the linear RGB value of pixel (x, y).
func (m *Image) At(x, y int) (r, g, b float32) {
	i := m.Offset(x, y)
	return m.Pix[i], m.Pix[i+1], m.Pix[i+2]
}

// Set stores the linear RGB value of pixel (x, y).
func (m *Image) Set(x, y int, r, g, b float32) {
	i := m.Offset(x, y)
	m.Pix[i], m.Pix[i+1], m.Pix[i+2] = r, g, b
}

// FromImage converts img to linear light. Alpha is discarded: the
// non-premultiplied colour channels are used as-is.
func FromImage(img image.Image) (*Image, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrEmpty
	}

	out := New(b.Dx(), b.Dy())

	switch src := img.(type) {
	case *image.NRGBA:
		for y := range out.Height {
			row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := range out.Width {
				p := row[x*4:]
				out.Set(x, y, colorspace.Table[p[0]], colorspace.Table[p[1]], colorspace.Table[p[2]])
			}
		}

	default:
		for y := range out.Height {
			for x := range out.Width {
				c, _ := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				out.Set(x, y, colorspace.Table[c.R], colorspace.Table[c.G], colorspace.Table[c.B])
			}
		}
	}

	return out, nil
}

// Load decodes the image file at path and converts it to linear light.
// Errors wrap [ErrOpen] or [ErrEmpty].
func Load(path string) (img *Image, err error) {
	f, err := os.Open(path) //nolint:gosec // Image path from CLI argument is expected.
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}

	defer func() {
		closeErr := f.Close()
		if closeErr != nil {
			img = nil
			err = errors.Join(err, fmt.Errorf("%w: closing %s: %w", ErrOpen, path, closeErr))
		}
	}()

	decoded, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}

	return FromImage(decoded)
}
