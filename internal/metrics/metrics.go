// Package metrics counts job board operations and writes them in the
// Prometheus text format for a node-exporter textfile collector.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobboard"

// Recorder holds the counters for one process. A nil *Recorder is valid and
// records nothing.
type Recorder struct {
	registry *prometheus.Registry

	jobsPosted        prometheus.Counter
	jobsUpdated       prometheus.Counter
	jobsDeleted       prometheus.Counter
	applications      *prometheus.CounterVec
	statusUpdates     *prometheus.CounterVec
	syncPasses        prometheus.Counter
	applicantsSynced  prometheus.Counter
	invalidSkipped    prometheus.Counter
	malformedFallback *prometheus.CounterVec
}

// NewRecorder registers all counters on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		jobsPosted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "jobs",
			Name:      "posted_total",
			Help:      "Jobs created.",
		}),
		jobsUpdated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "jobs",
			Name:      "updated_total",
			Help:      "Jobs edited.",
		}),
		jobsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "jobs",
			Name:      "deleted_total",
			Help:      "Jobs deleted.",
		}),
		applications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "applications",
			Name:      "submissions_total",
			Help:      "Application submissions by outcome.",
		}, []string{"outcome"}),
		statusUpdates: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "applications",
			Name:      "status_updates_total",
			Help:      "Status updates by new status.",
		}, []string{"status"}),
		syncPasses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reconcile",
			Name:      "passes_total",
			Help:      "Applicant reconciliation passes.",
		}),
		applicantsSynced: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reconcile",
			Name:      "applicants_total",
			Help:      "Applicant snapshots written by reconciliation.",
		}),
		invalidSkipped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reconcile",
			Name:      "incomplete_applications_total",
			Help:      "Applications skipped for missing candidate fields.",
		}),
		malformedFallback: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "malformed_reads_total",
			Help:      "Reads that fell back to the default value.",
		}, []string{"key"}),
	}
}

// Outcome labels for ApplicationSubmitted.
const (
	OutcomeAccepted  = "accepted"
	OutcomeDuplicate = "duplicate"
)

func (r *Recorder) JobPosted() {
	if r != nil {
		r.jobsPosted.Inc()
	}
}

func (r *Recorder) JobUpdated() {
	if r != nil {
		r.jobsUpdated.Inc()
	}
}

func (r *Recorder) JobDeleted() {
	if r != nil {
		r.jobsDeleted.Inc()
	}
}

func (r *Recorder) ApplicationSubmitted(outcome string) {
	if r != nil {
		r.applications.WithLabelValues(outcome).Inc()
	}
}

func (r *Recorder) StatusUpdated(status string) {
	if r != nil {
		r.statusUpdates.WithLabelValues(status).Inc()
	}
}

// SyncPass records one reconciliation pass.
func (r *Recorder) SyncPass(applicants, skipped int) {
	if r == nil {
		return
	}
	r.syncPasses.Inc()
	r.applicantsSynced.Add(float64(applicants))
	r.invalidSkipped.Add(float64(skipped))
}

func (r *Recorder) MalformedRead(key string) {
	if r != nil {
		r.malformedFallback.WithLabelValues(key).Inc()
	}
}

// Gatherer exposes the registry, mainly for tests.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes the current counter values to path.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
