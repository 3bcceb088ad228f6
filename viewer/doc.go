// Package viewer drives a full-screen image viewing session.
//
// A [Session] owns a linear-light image and redraws it whenever the
// terminal is resized, until its context is cancelled:
//
//	INIT --Run--> DISPLAYING --redraw signal--> DISPLAYING
//	                  |
//	                  +--context done--> TERMINATED
//
// Every frame re-resolves the terminal grid, so a resize needs no special
// handling beyond waking the session. Termination restores the cursor and
// default colours. A frame that has started is always completed before the
// session reacts to a signal.
//
// [Notify] bridges process signals to the session: SIGINT and SIGTERM
// cancel the context, SIGWINCH is delivered on a single-slot channel so
// that any number of resizes during a frame collapse into one redraw.
//
// [Config] collects the options of a session from CLI flags, the
// pixel-aspect-ratio argument, and an optional YAML file:
//
//	cfg := viewer.NewConfig()
//	cfg.RegisterFlags(cmd.Flags())
//
//	opts, err := cfg.Options()
//	s := viewer.NewSession(img, os.Stdout, resolver, opts, logger)
//	err = s.Run(ctx, redraw)
package viewer
