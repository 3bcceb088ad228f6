// Package main provides the CLI entry point for termview, which draws an
// image in the terminal with 24-bit colour half-block characters.
//
// The image is redrawn whenever the terminal is resized and the terminal is
// restored on SIGINT or SIGTERM. The grid size comes from the ROWS and
// COLUMNS environment variables when set, or from the terminal otherwise.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/termview/geometry"
	"go.jacobcolvin.com/termview/log"
	"go.jacobcolvin.com/termview/profile"
	"go.jacobcolvin.com/termview/raster"
	"go.jacobcolvin.com/termview/version"
	"go.jacobcolvin.com/termview/viewer"
)

func main() {
	device := geometry.Terminal{Fd: int(os.Stdout.Fd())}

	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, device))
}

// run executes the command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, device geometry.SizeProvider) int {
	logCfg := log.NewConfig()
	viewCfg := viewer.NewConfig()
	profCfg := profile.NewConfig()

	code := 0

	rootCmd := &cobra.Command{
		Use:   "termview [flags] <image-path> [pixel-aspect-ratio]",
		Short: "Display an image in the terminal",
		Long: `termview draws an image in the terminal using 24-bit colour and half-block
characters, two pixels per cell. The optional pixel aspect ratio is the width
of a terminal cell divided by its height (default 0.5).`,
		Version:       version.String(),
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 || len(args) > 2 {
				cmd.SetOut(stdout)

				return cmd.Usage()
			}

			if len(args) == 2 {
				err := viewCfg.SetPAR(args[1])
				if err != nil {
					code = 1

					return err
				}
			}

			err := view(ctx, args[0], stdout, stderr, device, logCfg, viewCfg, profCfg)
			if err != nil {
				code = 1
			}

			return err
		},
	}

	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetVersionTemplate("termview {{.Version}}\n")

	flags := rootCmd.Flags()
	// Flags end at the image path so a PAR such as "-1" reaches validation.
	flags.SetInterspersed(false)

	logCfg.RegisterFlags(flags)
	viewCfg.RegisterFlags(flags)
	profCfg.RegisterFlags(flags)

	for _, register := range []func(*cobra.Command) error{
		logCfg.RegisterCompletions,
		viewCfg.RegisterCompletions,
		profCfg.RegisterCompletions,
	} {
		err := register(rootCmd)
		if err != nil {
			fmt.Fprintf(stderr, "register completions: %v\n", err)
		}
	}

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)

		if code == 0 {
			code = 1
		}
	}

	return code
}

// view loads the image and runs a viewing session until a termination
// signal arrives or ctx is done. Nothing is written to stdout before the
// image has loaded.
func view(
	ctx context.Context,
	path string,
	stdout, stderr io.Writer,
	device geometry.SizeProvider,
	logCfg *log.Config,
	viewCfg *viewer.Config,
	profCfg *profile.Config,
) (err error) {
	logger, closeLog, err := logCfg.NewLogger(stderr)
	if err != nil {
		return err
	}

	defer func() {
		err = errors.Join(err, closeLog())
	}()

	opts, err := viewCfg.Options()
	if err != nil {
		return err
	}

	img, err := raster.Load(path)
	if err != nil {
		return err
	}

	logger.Info("loaded image",
		slog.String("path", path),
		slog.Int("width", img.Width),
		slog.Int("height", img.Height),
		slog.Float64("par", opts.PAR),
		slog.String("kernel", opts.Kernel.String()),
		slog.String("border", opts.Border.String()),
	)

	profiler := profCfg.NewProfiler()

	err = profiler.Start()
	if err != nil {
		return err
	}

	defer func() {
		err = errors.Join(err, profiler.Stop())
	}()

	ctx, redraw, stop := viewer.Notify(ctx)
	defer stop()

	resolver := geometry.Resolver{
		LookupEnv: os.LookupEnv,
		Device:    device,
	}

	session := viewer.NewSession(img, stdout, resolver, opts, logger)

	return session.Run(ctx, redraw)
}
