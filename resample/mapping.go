package resample

import "go.jacobcolvin.com/termview/geometry"

// Mapping maps destination samples of a [geometry.Grid] to source image
// coordinates. Destination column c samples source x X[c]; destination pixel
// row r samples source y Y[r]. The 2D sample map is the outer product of the
// two, see [Mapping.At].
//
// Create instances with [NewMapping].
type Mapping struct {
	// X holds the source x coordinate of each destination column.
	X []float64
	// Y holds the source y coordinate of each destination pixel row.
	Y []float64
	// Scale is the number of source pixels per destination pixel row.
	Scale float64
	// PAR is the pixel aspect ratio of a terminal cell (width:height).
	PAR float64

	srcW int
	srcH int
}

// NewMapping computes the sample map fitting a w x h source image into g
// with pixel aspect ratio par. The larger of the horizontal and vertical
// scale factors wins so the whole image fits, and the image centre maps to
// the grid centre.
func NewMapping(w, h int, g geometry.Grid, par float64) Mapping {
	scaleX := float64(w) / float64(g.Cols) / (2 * par)
	scaleY := float64(h) / float64(g.Rows)

	m := Mapping{
		Scale: max(scaleX, scaleY),
		PAR:   par,
		X:     make([]float64, g.Cols),
		Y:     make([]float64, g.Rows),
		srcW:  w,
		srcH:  h,
	}

	for c := range m.X {
		m.X[c], _ = m.Source(float64(c), 0)
	}

	for r := range m.Y {
		_, m.Y[r] = m.Source(0, float64(r))
	}

	return m
}

// Source evaluates the affine map at the destination point (c, r), which
// may be fractional.
func (m Mapping) Source(c, r float64) (float64, float64) {
	centerFromX := float64(len(m.X)-1) / 2
	centerFromY := float64(len(m.Y)-1) / 2
	centerToX := float64(m.srcW-1) / 2
	centerToY := float64(m.srcH-1) / 2

	return (c-centerFromX)*m.StepX() + centerToX, (r-centerFromY)*m.StepY() + centerToY
}

// At returns the source coordinate sampled by destination column c and
// pixel row r.
func (m Mapping) At(c, r int) (float64, float64) {
	return m.X[c], m.Y[r]
}

// StepX is the number of source pixels per destination column.
func (m Mapping) StepX() float64 {
	return m.Scale * 2 * m.PAR
}

// StepY is the number of source pixels per destination pixel row.
func (m Mapping) StepY() float64 {
	return m.Scale
}

// Kernel returns the kernel [SelectKernel] picks for m.
func (m Mapping) Kernel() Kernel {
	return SelectKernel(m.Scale, m.PAR)
}

// Cols returns the destination column count.
func (m Mapping) Cols() int {
	return len(m.X)
}

// Rows returns the destination pixel row count.
func (m Mapping) Rows() int {
	return len(m.Y)
}
