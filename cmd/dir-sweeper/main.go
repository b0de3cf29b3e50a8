package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"dir-sweeper/internal/config"
	"dir-sweeper/internal/exitcodes"
	"dir-sweeper/internal/logging"
	"dir-sweeper/internal/metrics"
	"dir-sweeper/internal/sweep"
)

// exitError carries the process exit code alongside the cause
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

type options struct {
	stdout io.Writer
	logger zerolog.Logger
	fs     afero.Fs
	reg    *prometheus.Registry
	// locate returns the scan root and the name of the running program
	locate func() (string, string, error)
}

func main() {
	logger := logging.New(false)
	cmd := newRootCmd(options{
		stdout: os.Stdout,
		logger: logger,
		fs:     afero.NewOsFs(),
		reg:    prometheus.NewRegistry(),
		locate: locateSelf,
	})

	if err := cmd.Execute(); err != nil {
		code := exitCode(err)
		if code == exitcodes.UsageError {
			fmt.Fprint(os.Stderr, cmd.UsageString())
		}
		logger.Error().Err(err).Int("exit_code", code).Msg("sweep aborted")
		os.Exit(code)
	}
}

// exitCode maps a command error to the process exit code.
// Errors raised before RunE (argument validation) are usage errors.
func exitCode(err error) int {
	if err == nil {
		return exitcodes.Success
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitcodes.UsageError
}

func newRootCmd(opts options) *cobra.Command {
	return &cobra.Command{
		Use:   "dir-sweeper",
		Short: "Delete non-allow-listed files with the target suffix from this program's directory",
		Long: `dir-sweeper makes a single pass over the directory that contains it.
Every immediate entry whose name ends with the target suffix and is not on
the built-in allow-list is deleted. Failed deletions are reported and the
run continues. Subdirectories are never entered.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
}

func run(opts options) error {
	cfg, err := config.Default()
	if err != nil {
		return &exitError{code: exitcodes.InvalidConfig, err: fmt.Errorf("load defaults: %w", err)}
	}

	root, self, err := opts.locate()
	if err != nil {
		return &exitError{code: exitcodes.RuntimeError, err: err}
	}

	// The program never deletes itself
	allow := sweep.NewAllowList(cfg.Keep...)
	allow.Add(self)

	opts.logger.Info().
		Str("root", root).
		Str("suffix", cfg.TargetSuffix).
		Int("allow_listed", len(allow)).
		Msg("sweeping")

	sweeper := sweep.New(opts.fs, cfg.TargetSuffix,
		sweep.WithLogger(opts.logger),
		sweep.WithMetrics(metrics.NewSweep(opts.reg)),
	)
	report, err := sweeper.Run(root, allow)
	if err != nil {
		return &exitError{code: exitcodes.RuntimeError, err: err}
	}

	if err := report.Print(opts.stdout); err != nil {
		return &exitError{code: exitcodes.RuntimeError, err: fmt.Errorf("write report: %w", err)}
	}

	if err := metrics.Log(opts.reg, opts.logger); err != nil {
		opts.logger.Warn().Err(err).Msg("metrics unavailable")
	}
	return nil
}

// locateSelf resolves the directory holding the running executable
func locateSelf() (string, string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", "", fmt.Errorf("locate executable: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", "", fmt.Errorf("resolve executable: %w", err)
	}
	return filepath.Dir(exe), filepath.Base(exe), nil
}
