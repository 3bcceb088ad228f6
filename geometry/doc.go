// Package geometry resolves the terminal grid an image is rendered into.
//
// A [Grid] counts columns and pixel rows: every character row holds two
// vertically stacked pixels, so [Grid.Rows] is always twice the number of
// character rows.
//
// [Resolver] consults, in order, the ROWS and COLUMNS environment variables,
// a [SizeProvider] querying the terminal device, and finally fixed defaults
// of 80 columns by 48 character rows:
//
//	r := geometry.Resolver{
//	    LookupEnv: os.LookupEnv,
//	    Device:    geometry.Terminal{Fd: int(os.Stdout.Fd())},
//	}
//	grid := r.Resolve()
//
// Tests substitute [Fixed] or [Unavailable] for the device.
package geometry
