package resample

import (
	"math"

	"go.jacobcolvin.com/termview/raster"
)

// tap is one weighted source index contributing to a destination sample.
type tap struct {
	i int
	w float64
}

// axis holds the precomputed taps of every destination index along one axis.
// A nil entry marks a sample outside the image under [Letterbox].
type axis [][]tap

// Resample produces a [Mapping.Cols] x [Mapping.Rows] linear-light image from
// src following m. An [Auto] kernel is resolved with [Mapping.Kernel].
//
// Resampling is separable: src is first filtered horizontally into one row
// per referenced source row, then vertically into the destination.
func Resample(src *raster.Image, m Mapping, k Kernel, b Border) *raster.Image {
	if k == Auto {
		k = m.Kernel()
	}

	xs := newAxis(m.X, src.Width, m.StepX(), k, b)
	ys := newAxis(m.Y, src.Height, m.StepY(), k, b)

	cols := len(xs)
	out := raster.New(cols, len(ys))

	// Horizontal pass, only for source rows some destination row reads.
	tmp := make([][]float32, src.Height)

	for _, taps := range ys {
		for _, ty := range taps {
			if tmp[ty.i] != nil {
				continue
			}

			row := make([]float32, cols*raster.Channels)
			filterRow(row, src, ty.i, xs)
			tmp[ty.i] = row
		}
	}

	// Vertical pass.
	for r, taps := range ys {
		if taps == nil {
			continue
		}

		dst := out.Pix[out.Offset(0, r):out.Offset(0, r+1)]

		for c := range cols {
			if xs[c] == nil {
				continue
			}

			var sr, sg, sb float64

			o := c * raster.Channels
			for _, ty := range taps {
				p := tmp[ty.i][o : o+raster.Channels]
				sr += float64(p[0]) * ty.w
				sg += float64(p[1]) * ty.w
				sb += float64(p[2]) * ty.w
			}

			dst[o], dst[o+1], dst[o+2] = float32(sr), float32(sg), float32(sb)
		}
	}

	return out
}

// filterRow applies the horizontal taps to source row y.
func filterRow(dst []float32, src *raster.Image, y int, xs axis) {
	row := src.Pix[src.Offset(0, y):src.Offset(0, y+1)]

	for c, taps := range xs {
		var sr, sg, sb float64

		for _, tx := range taps {
			p := row[tx.i*raster.Channels : tx.i*raster.Channels+raster.Channels]
			sr += float64(p[0]) * tx.w
			sg += float64(p[1]) * tx.w
			sb += float64(p[2]) * tx.w
		}

		o := c * raster.Channels
		dst[o], dst[o+1], dst[o+2] = float32(sr), float32(sg), float32(sb)
	}
}

// newAxis builds the taps for destination coordinates coords on a source
// axis of n pixels, where consecutive destination samples are step source
// pixels apart.
func newAxis(coords []float64, n int, step float64, k Kernel, b Border) axis {
	a := make(axis, len(coords))

	for d, c := range coords {
		if !b.covers(c, n) {
			continue
		}

		var taps []tap
		if f := k.filter(); f != nil {
			taps = filterTaps(c, step, f.Support, f.At)
		} else {
			taps = areaTaps(c, step)
		}

		a[d] = normalize(clampTaps(taps, n), c, n)
	}

	return a
}

// areaTaps weights every source pixel by how much of it the footprint of
// width step centred on c covers. Footprints narrower than a pixel are
// widened to one pixel.
func areaTaps(c, step float64) []tap {
	width := max(step, 1)
	lo := c - width/2
	hi := c + width/2

	var taps []tap

	for i := int(math.Floor(lo + 0.5)); float64(i)-0.5 < hi; i++ {
		overlap := math.Min(hi, float64(i)+0.5) - math.Max(lo, float64(i)-0.5)
		if overlap > 0 {
			taps = append(taps, tap{i: i, w: overlap})
		}
	}

	return taps
}

// filterTaps samples the kernel at at the source pixels within its support
// around c. When shrinking, the kernel is stretched by step so that it
// low-passes the source. Kernels are evaluated at the absolute distance, as
// [draw.Kernel.At] is only defined for t >= 0.
func filterTaps(c, step, support float64, at func(float64) float64) []tap {
	stretch := max(step, 1)
	radius := support * stretch

	var taps []tap

	for i := int(math.Ceil(c - radius)); float64(i) <= c+radius; i++ {
		w := at(math.Abs(float64(i)-c) / stretch)
		if w != 0 {
			taps = append(taps, tap{i: i, w: w})
		}
	}

	return taps
}

// clampTaps repeats the edge pixels for taps outside [0, n).
func clampTaps(taps []tap, n int) []tap {
	for j := range taps {
		taps[j].i = min(max(taps[j].i, 0), n-1)
	}

	return taps
}

// normalize scales the weights to sum to one. Degenerate tap sets fall back
// to the nearest source pixel.
func normalize(taps []tap, c float64, n int) []tap {
	var sum float64
	for _, t := range taps {
		sum += t.w
	}

	if sum == 0 || math.IsNaN(sum) {
		i := min(max(int(math.Round(c)), 0), n-1)
		return []tap{{i: i, w: 1}}
	}

	for j := range taps {
		taps[j].w /= sum
	}

	return taps
}
