// Package colorspace converts between 8-bit sRGB channel samples and
// linear-light intensities.
//
// Resampling is done in linear light so that averaging two pixels averages
// the light they emit rather than their gamma-encoded values. Use
// [SRGBToLinear] when loading an image and [LinearToSRGB] (or
// [LinearToSRGB8]) when emitting colours:
//
//	lin := colorspace.SRGBToLinear(200) // ~0.578
//	v := colorspace.LinearToSRGB8(lin)  // 200
//
// The formulas follow the piecewise sRGB transfer function described at
// http://entropymine.com/imageworsener/srgbformula/.
package colorspace
