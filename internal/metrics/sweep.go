package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Sweep holds the collectors updated by a directory sweep
type Sweep struct {
	// FilesDeletedTotal tracks entries removed from the scan root
	FilesDeletedTotal prometheus.Counter

	// DeleteErrorsTotal tracks deletion attempts that failed
	DeleteErrorsTotal prometheus.Counter

	// EntriesSkippedTotal tracks entries left alone, by reason
	EntriesSkippedTotal *prometheus.CounterVec

	// SweepDuration tracks how long a full pass over the scan root takes
	SweepDuration prometheus.Histogram
}

// NewSweep creates the sweep collectors and registers them with reg.
// A nil reg leaves the collectors unregistered.
func NewSweep(reg prometheus.Registerer) *Sweep {
	m := &Sweep{
		FilesDeletedTotal: NewCounter(
			"dirsweeper_files_deleted_total",
			"Total number of files deleted by dir-sweeper.",
		),
		DeleteErrorsTotal: NewCounter(
			"dirsweeper_delete_errors_total",
			"Total number of failed deletion attempts.",
		),
		EntriesSkippedTotal: NewCounterVec(
			"dirsweeper_entries_skipped_total",
			"Total number of directory entries skipped, by reason.",
			[]string{"reason"},
		),
		SweepDuration: NewDurationHistogram(
			"dirsweeper_sweep_duration_seconds",
			"Duration of a sweep over the scan root in seconds.",
		),
	}

	if reg != nil {
		reg.MustRegister(
			m.FilesDeletedTotal,
			m.DeleteErrorsTotal,
			m.EntriesSkippedTotal,
			m.SweepDuration,
		)
	}
	return m
}

// RecordDeleted counts one successful deletion
func (m *Sweep) RecordDeleted() {
	m.FilesDeletedTotal.Inc()
}

// RecordFailed counts one failed deletion attempt
func (m *Sweep) RecordFailed() {
	m.DeleteErrorsTotal.Inc()
}

// RecordSkipped counts one skipped entry under reason
func (m *Sweep) RecordSkipped(reason string) {
	m.EntriesSkippedTotal.WithLabelValues(reason).Inc()
}

// ObserveSince records the elapsed time of a sweep started at start
func (m *Sweep) ObserveSince(start time.Time) {
	m.SweepDuration.Observe(time.Since(start).Seconds())
}
