package viewer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"go.jacobcolvin.com/termview/geometry"
	"go.jacobcolvin.com/termview/raster"
	"go.jacobcolvin.com/termview/render"
	"go.jacobcolvin.com/termview/resample"
)

// ErrWrite indicates the terminal output could not be written.
var ErrWrite = errors.New("writing output")

// State is the lifecycle state of a [Session].
type State int

const (
	// StateInit is the state of a session that has not drawn yet.
	StateInit State = iota
	// StateDisplaying is the state of a session showing its image.
	StateDisplaying
	// StateTerminated is the state of a session that has restored the
	// terminal.
	StateTerminated
)

// String returns the name of s.
func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateDisplaying:
		return "displaying"
	case StateTerminated:
		return "terminated"
	}

	return fmt.Sprintf("State(%d)", int(s))
}

// Session displays one image on a terminal.
//
// A Session is not safe for concurrent use; it is driven by a single
// goroutine calling [Session.Run].
//
// Create instances with [NewSession].
type Session struct {
	img      *raster.Image
	out      *bufio.Writer
	logger   *slog.Logger
	resolver geometry.Resolver
	renderer render.Renderer
	opts     Options
	state    State
}

// NewSession creates a [Session] drawing img to out. The grid of every frame
// comes from resolver. A nil logger discards log output.
func NewSession(img *raster.Image, out io.Writer, resolver geometry.Resolver, opts Options, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Session{
		img:      img,
		out:      bufio.NewWriter(out),
		logger:   logger,
		resolver: resolver,
		opts:     opts,
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Run prepares the terminal, draws the image, and redraws it every time a
// value arrives on redraw. When ctx is done, Run restores the terminal and
// returns nil. Signals arriving while a frame is drawn stay pending on their
// channel until the frame is complete.
func (s *Session) Run(ctx context.Context, redraw <-chan os.Signal) error {
	if s.state != StateInit {
		return fmt.Errorf("session already %s", s.state)
	}

	err := s.write(render.SessionStart)
	if err != nil {
		return err
	}

	s.state = StateDisplaying

	for {
		err = s.Draw()
		if err != nil {
			return errors.Join(err, s.Close())
		}

		select {
		case <-ctx.Done():
			return s.Close()

		case sig := <-redraw:
			if ctx.Err() != nil {
				return s.Close()
			}

			s.logger.Debug("redraw", slog.String("signal", sig.String()))
		}
	}
}

// Draw renders one complete frame for the current terminal grid and
// flushes it.
func (s *Session) Draw() error {
	start := time.Now()

	grid := s.resolver.Resolve()
	m := resample.NewMapping(s.img.Width, s.img.Height, grid, s.opts.PAR)

	kernel := s.opts.Kernel
	if kernel == resample.Auto {
		kernel = m.Kernel()
	}

	frame := s.renderer.Frame(resample.Resample(s.img, m, kernel, s.opts.Border))

	_, err := s.out.Write(frame)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	err = s.out.Flush()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	s.logger.Debug("frame",
		slog.Int("cols", grid.Cols),
		slog.Int("rows", grid.Rows),
		slog.Float64("scale", m.Scale),
		slog.String("kernel", kernel.String()),
		slog.Int("bytes", len(frame)),
		slog.Duration("took", time.Since(start)),
	)

	return nil
}

// Close restores the cursor and default colours. It is a no-op once the
// session has terminated.
func (s *Session) Close() error {
	if s.state == StateTerminated {
		return nil
	}

	s.state = StateTerminated

	return s.write(render.SessionEnd)
}

func (s *Session) write(seq string) error {
	_, err := s.out.WriteString(seq)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	err = s.out.Flush()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return nil
}
