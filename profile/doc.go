// Package profile records runtime profiles of a termview session.
//
// Resampling large images is the expensive part of drawing a frame; the CPU
// profile shows where that time goes across every redraw of a session.
//
//	cfg := profile.NewConfig()
//	cfg.RegisterFlags(rootCmd.Flags())
//
//	p := cfg.NewProfiler()
//	err := p.Start()
//	// ... run the session ...
//	err = p.Stop()
//
// Users enable profiling via flags like --cpu-profile=cpu.prof.
package profile
