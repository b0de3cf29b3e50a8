package sweep

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"dir-sweeper/internal/fsops"
	"dir-sweeper/internal/metrics"
	"dir-sweeper/internal/safety"
)

var (
	ErrScanRoot    = errors.New("scan root unreadable")
	ErrNoSuffix    = errors.New("target suffix must not be empty")
	ErrIsDirectory = errors.New("is a directory")
)

// Option configures a Sweeper
type Option func(*Sweeper)

// WithDeleter replaces the default afero-backed deleter
func WithDeleter(d fsops.Deleter) Option {
	return func(s *Sweeper) { s.deleter = d }
}

// WithLogger sets the diagnostic logger; per-entry decisions log at debug level
func WithLogger(l zerolog.Logger) Option {
	return func(s *Sweeper) { s.logger = l }
}

// WithMetrics records outcomes into m
func WithMetrics(m *metrics.Sweep) Option {
	return func(s *Sweeper) { s.metrics = m }
}

// Sweeper deletes suffix-matching entries of a single directory that are
// not on an allow-list. It never descends into subdirectories.
type Sweeper struct {
	fs      afero.Fs
	suffix  string
	deleter fsops.Deleter
	logger  zerolog.Logger
	metrics *metrics.Sweep
}

// New creates a Sweeper over fs matching names that end with suffix
func New(fsys afero.Fs, suffix string, opts ...Option) *Sweeper {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	s := &Sweeper{
		fs:     fsys,
		suffix: suffix,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.deleter == nil {
		s.deleter = fsops.NewFsDeleter(fsys)
	}
	return s
}

// Run makes one pass over the immediate entries of root.
// Per-entry failures are recorded in the report and never abort the run;
// an error is returned only when root itself cannot be listed.
func (s *Sweeper) Run(root string, allow AllowList) (*Report, error) {
	if s.suffix == "" {
		return nil, ErrNoSuffix
	}

	validator, err := safety.NewValidator(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanRoot, err)
	}
	// The listing uses the caller's root as given; only the validator
	// resolves it against the working directory
	root = filepath.Clean(root)

	start := time.Now()
	if s.metrics != nil {
		defer s.metrics.ObserveSince(start)
	}

	entries, err := afero.ReadDir(s.fs, root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanRoot, err)
	}

	report := &Report{
		Root:    root,
		Results: make([]Result, 0, len(entries)),
	}

	for _, entry := range entries {
		res := s.sweepEntry(root, entry, allow, validator)
		s.record(res)
		report.Results = append(report.Results, res)
	}

	s.logger.Debug().
		Str("root", root).
		Int("deleted", report.Deleted()).
		Int("failed", report.Failed()).
		Int("skipped", report.Skipped()).
		Dur("elapsed", time.Since(start)).
		Msg("sweep finished")

	return report, nil
}

func (s *Sweeper) sweepEntry(root string, entry os.FileInfo, allow AllowList, validator *safety.Validator) Result {
	name := entry.Name()
	res := Result{Name: name, Path: filepath.Join(root, name)}

	if !strings.HasSuffix(name, s.suffix) {
		res.Outcome = Skipped
		res.Skip = SkipSuffixMismatch
		return res
	}
	if allow.Contains(name) {
		res.Outcome = Skipped
		res.Skip = SkipAllowListed
		return res
	}

	res.Outcome = Failed
	// os.Remove would silently take an empty directory with it
	if entry.IsDir() {
		res.Err = &fs.PathError{Op: "remove", Path: res.Path, Err: ErrIsDirectory}
		return res
	}
	if err := validator.ValidateDeleteTarget(res.Path); err != nil {
		res.Err = fmt.Errorf("refusing %s: %w", res.Path, err)
		return res
	}
	if err := s.deleter.Remove(res.Path); err != nil {
		res.Err = err
		return res
	}

	res.Outcome = Deleted
	return res
}

func (s *Sweeper) record(res Result) {
	switch res.Outcome {
	case Skipped:
		s.logger.Debug().Str("entry", res.Name).Str("reason", string(res.Skip)).Msg(res.Outcome.String())
		if s.metrics != nil {
			s.metrics.RecordSkipped(string(res.Skip))
		}
	case Deleted:
		s.logger.Debug().Str("entry", res.Name).Msg(res.Outcome.String())
		if s.metrics != nil {
			s.metrics.RecordDeleted()
		}
	case Failed:
		s.logger.Debug().Str("entry", res.Name).Err(res.Err).Msg(res.Outcome.String())
		if s.metrics != nil {
			s.metrics.RecordFailed()
		}
	}
}
