package colorspace

import "math"

const (
	// decodeThreshold is the largest 8-bit sample on the linear segment of
	// the sRGB decoding curve.
	decodeThreshold = 0.04045 * 255
	// encodeThreshold is the largest linear value on the linear segment of
	// the sRGB encoding curve.
	encodeThreshold = 0.0031308

	gamma = 2.4
)

// SRGBToLinear converts an 8-bit sRGB channel sample to a linear-light value
// in [0, 1].
func SRGBToLinear(v uint8) float64 {
	x := float64(v)
	if x <= decodeThreshold {
		return x / (12.92 * 255)
	}

	return math.Pow((x/255+0.055)/1.055, gamma)
}

// LinearToSRGB converts a linear-light value to an sRGB channel value in
// [0, 255]. Values at or below zero map to zero and the result is clamped to
// 255. The result is not rounded.
func LinearToSRGB(x float64) float64 {
	switch {
	case x <= 0:
		return 0
	case x <= encodeThreshold:
		return x * (12.92 * 255)
	}

	return math.Min(math.Pow(x, 1/gamma)*(1.055*255)-(0.055*255), 255)
}

// LinearToSRGB8 is [LinearToSRGB] rounded to the nearest integer.
// NaN maps to zero.
func LinearToSRGB8(x float64) uint8 {
	if math.IsNaN(x) {
		return 0
	}

	return uint8(math.Round(LinearToSRGB(x)))
}

// Table holds [SRGBToLinear] for every 8-bit sample.
// Image conversion indexes it instead of evaluating the curve per pixel.
var Table = func() [256]float32 {
	var t [256]float32
	for i := range t {
		t[i] = float32(SRGBToLinear(uint8(i)))
	}

	return t
}()
