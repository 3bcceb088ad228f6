package viewer

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.jacobcolvin.com/termview/resample"
)

// DefaultPAR is the pixel aspect ratio of a typical terminal cell, twice as
// tall as it is wide.
const DefaultPAR = 0.5

var (
	// ErrInvalidPAR indicates a pixel aspect ratio that is not a positive
	// number.
	ErrInvalidPAR = errors.New("invalid PAR value")
	// ErrInvalidOption indicates an invalid flag or configuration value.
	ErrInvalidOption = errors.New("invalid option")
)

// Options are the resolved settings of a [Session].
type Options struct {
	// PAR is the pixel aspect ratio (width:height) of a terminal cell.
	PAR float64
	// Kernel overrides the interpolation kernel; [resample.Auto] picks one
	// per frame from the scale.
	Kernel resample.Kernel
	// Border decides what samples outside the image show.
	Border resample.Border
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		PAR:    DefaultPAR,
		Kernel: resample.Auto,
		Border: resample.Letterbox,
	}
}

// Flags holds CLI flag names for viewer configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	ConfigFile string
	Kernel     string
	Border     string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds CLI flag values for viewer configuration.
//
// Values come from three places, highest precedence first: flags set on the
// command line (and the PAR argument, see [Config.SetPAR]), the YAML file
// named by ConfigFile, and [DefaultOptions].
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.Options] to resolve the settings.
type Config struct {
	flags *pflag.FlagSet
	par   *float64

	ConfigFile string
	Kernel     string
	Border     string
	Flags      Flags
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		ConfigFile: "config",
		Kernel:     "kernel",
		Border:     "border",
	}

	return f.NewConfig()
}

// RegisterFlags adds viewer flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	c.flags = flags

	flags.StringVar(&c.ConfigFile, c.Flags.ConfigFile, "",
		"YAML file with default par, kernel, and border settings")
	flags.StringVar(&c.Kernel, c.Flags.Kernel, resample.Auto.String(),
		fmt.Sprintf("interpolation kernel, one of: %s", resample.AllKernelStrings()))
	flags.StringVar(&c.Border, c.Flags.Border, resample.Letterbox.String(),
		fmt.Sprintf("fill for cells outside the image, one of: %s", resample.AllBorderStrings()))
}

// RegisterCompletions registers shell completions for viewer flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Kernel,
		cobra.FixedCompletions(resample.AllKernelStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Kernel, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.Border,
		cobra.FixedCompletions(resample.AllBorderStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Border, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.ConfigFile,
		func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return []string{"yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt
		})
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.ConfigFile, err)
	}

	return nil
}

// SetPAR sets the pixel aspect ratio from its command-line form. The value
// overrides the configuration file.
func (c *Config) SetPAR(s string) error {
	par, err := ParsePAR(s)
	if err != nil {
		return err
	}

	c.par = &par

	return nil
}

// ParsePAR parses a pixel aspect ratio. It must be a finite number greater
// than zero. Errors wrap [ErrInvalidPAR].
func ParsePAR(s string) (float64, error) {
	par, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidPAR, s)
	}

	if !validPAR(par) {
		return 0, fmt.Errorf("%w: %s: must be a positive number", ErrInvalidPAR, s)
	}

	return par, nil
}

func validPAR(par float64) bool {
	return par > 0 && !math.IsInf(par, 0)
}

// Options resolves the session settings. Errors wrap [ErrInvalidOption],
// [ErrInvalidPAR], or [ErrInvalidConfig].
func (c *Config) Options() (Options, error) {
	opts := DefaultOptions()

	kernel, border := c.Kernel, c.Border

	if c.ConfigFile != "" {
		f, err := LoadFile(c.ConfigFile)
		if err != nil {
			return Options{}, err
		}

		if f.PAR != nil {
			opts.PAR = *f.PAR
		}

		if f.Kernel != "" && !c.changed(c.Flags.Kernel) {
			kernel = f.Kernel
		}

		if f.Border != "" && !c.changed(c.Flags.Border) {
			border = f.Border
		}
	}

	if c.par != nil {
		opts.PAR = *c.par
	}

	if !validPAR(opts.PAR) {
		return Options{}, fmt.Errorf("%w: %v: must be a positive number", ErrInvalidPAR, opts.PAR)
	}

	if kernel != "" {
		k, err := resample.ParseKernel(kernel)
		if err != nil {
			return Options{}, fmt.Errorf("%w: %w", ErrInvalidOption, err)
		}

		opts.Kernel = k
	}

	if border != "" {
		b, err := resample.ParseBorder(border)
		if err != nil {
			return Options{}, fmt.Errorf("%w: %w", ErrInvalidOption, err)
		}

		opts.Border = b
	}

	return opts, nil
}

// changed reports whether the named flag was set on the command line.
func (c *Config) changed(name string) bool {
	if c.flags == nil {
		return false
	}

	return c.flags.Changed(name)
}
