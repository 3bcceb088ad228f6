package profile

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// Profiler records runtime profiles around a viewing session.
//
// Call [Profiler.Start] before the first frame and [Profiler.Stop] after the
// session ends. Resampling dominates the CPU profile; the heap and allocs
// profiles show the per-frame buffers.
//
// Create instances with [Config.NewProfiler].
type Profiler struct {
	cpuFile *os.File
	Config
}

// Start sets the memory profile rate and starts CPU profiling if enabled.
// It does nothing when no profile is requested.
func (p *Profiler) Start() error {
	if !p.Enabled() {
		return nil
	}

	runtime.MemProfileRate = p.MemProfileRate

	if p.CPUProfile == "" {
		return nil
	}

	f, err := os.Create(p.CPUProfile) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("creating CPU profile: %w", err)
	}

	err = pprof.StartCPUProfile(f)
	if err != nil {
		return errors.Join(fmt.Errorf("starting CPU profile: %w", err), f.Close())
	}

	p.cpuFile = f

	return nil
}

// Stop stops CPU profiling and writes the heap and allocs profiles if
// enabled.
func (p *Profiler) Stop() error {
	if p.cpuFile != nil {
		pprof.StopCPUProfile()

		err := p.cpuFile.Close()
		p.cpuFile = nil

		if err != nil {
			return fmt.Errorf("closing CPU profile: %w", err)
		}
	}

	for _, snap := range []struct {
		name string
		path string
	}{
		{"heap", p.HeapProfile},
		{"allocs", p.AllocsProfile},
	} {
		if snap.path == "" {
			continue
		}

		err := writeProfile(snap.name, snap.path)
		if err != nil {
			return err
		}
	}

	return nil
}

// writeProfile writes the named pprof profile to path.
func writeProfile(name, path string) error {
	prof := pprof.Lookup(name)
	if prof == nil {
		return fmt.Errorf("unknown profile: %s", name)
	}

	f, err := os.Create(path) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("create %s profile: %w", name, err)
	}

	err = prof.WriteTo(f, 0)
	if err != nil {
		return errors.Join(fmt.Errorf("write %s profile: %w", name, err), f.Close())
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("write %s profile: %w", name, err)
	}

	return nil
}
