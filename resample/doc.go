// Package resample maps a terminal grid onto a source image and resamples
// the image into it.
//
// A [Mapping] is a separable affine map from destination samples to source
// coordinates. It scales the image to fit the grid while preserving its
// proportions, correcting for the pixel aspect ratio (PAR) of the terminal
// cells, and centres the image in the grid. Whichever axis limits the scale
// leaves the other axis under-filled; how those samples are produced is
// chosen by a [Border].
//
// The interpolation [Kernel] follows the net scale factor:
//
//   - [Area] averages the covered source area when shrinking on both axes.
//   - [Lanczos] (a=4) when magnifying more than 2x on both axes.
//   - [Cubic] (Catmull-Rom) otherwise.
//
// Use [SelectKernel] or [Mapping.Kernel] to pick one, and [Resample] to
// produce the destination buffer:
//
//	m := resample.NewMapping(img.Width, img.Height, grid, 0.5)
//	out := resample.Resample(img, m, m.Kernel(), resample.Letterbox)
package resample
