// Package render emits resampled images as 24-bit ANSI half-block art.
//
// Each terminal cell shows two vertically stacked pixels: the lower half
// block "▄" (U+2584) is drawn in the colour of the bottom pixel on a
// background of the top pixel's colour.
package render
