// Package reconcile rebuilds each job's cached applicant list from the
// applications collection.
//
// Job.Applicants is a cache with a single invalidation trigger: it is
// recomputed wholesale every time the employer view loads. Nothing patches it
// incrementally, so a pass is idempotent and can be re-run at any time. Between
// passes the cache may be stale.
package reconcile

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/jobboard/internal/logger"
	"github.com/jonathan/jobboard/internal/metrics"
	"github.com/jonathan/jobboard/internal/types"
	"github.com/sirupsen/logrus"
)

// JobStore is the part of the job repository the engine needs.
type JobStore interface {
	List(ctx context.Context) ([]types.Job, error)
	SaveReconciled(ctx context.Context, jobs []types.Job) error
}

// ApplicationSource lists every stored application.
type ApplicationSource interface {
	List(ctx context.Context) ([]types.Application, error)
}

// Stats summarises one recomputation.
type Stats struct {
	Jobs       int `json:"jobs"`
	Applicants int `json:"applicants"`
	Skipped    int `json:"skipped"`  // applications with incomplete candidate data
	Orphaned   int `json:"orphaned"` // valid applications whose job is gone
}

// Report describes one persisted pass.
type Report struct {
	PassID uuid.UUID `json:"pass_id"`
	Stats
}

// Apply returns a copy of jobs whose Applicants are rebuilt from apps.
// Applications with a candidate missing name, email, phone or resume are
// skipped. Snapshots keep application order, and an unset status reads as
// Pending. Every job gets a non-nil list, replacing whatever was cached.
func Apply(jobs []types.Job, apps []types.Application) ([]types.Job, Stats) {
	stats := Stats{Jobs: len(jobs)}

	byJob := make(map[int64][]types.ApplicantSnapshot)
	for _, app := range apps {
		if !app.Candidate.IsComplete() {
			stats.Skipped++
			continue
		}
		byJob[app.Job.ID] = append(byJob[app.Job.ID], types.ApplicantSnapshot{
			CandidateProfile: app.Candidate,
			Status:           app.Status.OrPending(),
		})
	}

	out := make([]types.Job, len(jobs))
	matched := make(map[int64]bool, len(jobs))
	for i, job := range jobs {
		applicants := byJob[job.ID]
		if applicants == nil {
			applicants = []types.ApplicantSnapshot{}
		} else if matched[job.ID] {
			// Two jobs sharing an id each get their own slice.
			applicants = append([]types.ApplicantSnapshot(nil), applicants...)
		}
		matched[job.ID] = true
		job.Applicants = applicants
		out[i] = job
		stats.Applicants += len(applicants)
	}

	for id, snaps := range byJob {
		if !matched[id] {
			stats.Orphaned += len(snaps)
		}
	}
	return out, stats
}

// EngineConfig holds the optional collaborators of an Engine.
type EngineConfig struct {
	Logger  logrus.FieldLogger
	Metrics *metrics.Recorder
}

// Engine runs persisted reconciliation passes.
type Engine struct {
	jobs    JobStore
	apps    ApplicationSource
	log     logrus.FieldLogger
	metrics *metrics.Recorder
}

// NewEngine creates an engine over the job and application repositories.
func NewEngine(jobs JobStore, apps ApplicationSource, config *EngineConfig) *Engine {
	if config == nil {
		config = &EngineConfig{}
	}
	e := &Engine{jobs: jobs, apps: apps, log: config.Logger, metrics: config.Metrics}
	if e.log == nil {
		e.log = logger.Discard()
	}
	return e
}

// Run loads both collections, rebuilds every job's applicants, and writes
// the job collection back. It returns the reconciled jobs.
func (e *Engine) Run(ctx context.Context) ([]types.Job, *Report, error) {
	report := &Report{PassID: uuid.New()}
	log := e.log.WithField("pass_id", report.PassID)

	apps, err := e.apps.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("reconcile: %w", err)
	}
	jobs, err := e.jobs.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("reconcile: %w", err)
	}

	reconciled, stats := Apply(jobs, apps)
	report.Stats = stats

	if err := e.jobs.SaveReconciled(ctx, reconciled); err != nil {
		return nil, nil, fmt.Errorf("reconcile: %w", err)
	}

	e.metrics.SyncPass(stats.Applicants, stats.Skipped)
	log.WithFields(logrus.Fields{
		"jobs":       stats.Jobs,
		"applicants": stats.Applicants,
		"skipped":    stats.Skipped,
		"orphaned":   stats.Orphaned,
	}).Info("Reconciled applicants")
	if stats.Skipped > 0 {
		log.WithField("skipped", stats.Skipped).Debug("Skipped applications with incomplete candidate data")
	}
	return reconciled, report, nil
}
