// Package applications provides the application repository: submission with
// duplicate detection, employer status updates, and candidate listings over
// the "applications" collection.
package applications

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/jobboard/internal/jobs"
	"github.com/jonathan/jobboard/internal/localstore"
	"github.com/jonathan/jobboard/internal/logger"
	"github.com/jonathan/jobboard/internal/metrics"
	"github.com/jonathan/jobboard/internal/types"
	"github.com/sirupsen/logrus"
)

// RepositoryConfig holds the optional collaborators of a Repository.
type RepositoryConfig struct {
	Now     func() time.Time
	Logger  logrus.FieldLogger
	Metrics *metrics.Recorder
}

// DefaultRepositoryConfig returns the wall clock and a discarding logger.
func DefaultRepositoryConfig() *RepositoryConfig {
	return &RepositoryConfig{
		Now:    time.Now,
		Logger: logger.Discard(),
	}
}

// Repository reads and writes applications in the local store.
type Repository struct {
	store   *localstore.Accessor
	now     func() time.Time
	log     logrus.FieldLogger
	metrics *metrics.Recorder
}

// NewRepository creates an application repository over the given store.
func NewRepository(store *localstore.Accessor, config *RepositoryConfig) *Repository {
	if config == nil {
		config = DefaultRepositoryConfig()
	}
	r := &Repository{
		store:   store,
		now:     config.Now,
		log:     config.Logger,
		metrics: config.Metrics,
	}
	if r.now == nil {
		r.now = time.Now
	}
	if r.log == nil {
		r.log = logger.Discard()
	}
	return r
}

// List returns every stored application in submission order.
func (r *Repository) List(ctx context.Context) ([]types.Application, error) {
	apps, _, err := localstore.Get(ctx, r.store, localstore.KeyApplications, []types.Application{})
	if err != nil {
		return nil, fmt.Errorf("failed to load applications: %w", err)
	}
	return apps, nil
}

func (r *Repository) save(ctx context.Context, apps []types.Application) error {
	if err := r.store.Set(ctx, localstore.KeyApplications, apps); err != nil {
		return fmt.Errorf("failed to save applications: %w", err)
	}
	return nil
}

// HasDuplicate reports whether email already applied to the job.
func (r *Repository) HasDuplicate(ctx context.Context, jobID int64, email string) (bool, error) {
	apps, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	return indexOf(apps, jobID, email) >= 0, nil
}

// Submit records a new Pending application with frozen job and candidate
// snapshots. It fails with DuplicateApplicationError when the pair already
// applied and with ExpiredJobError when the job has expired; the store is
// unchanged in both cases.
func (r *Repository) Submit(ctx context.Context, job *types.Job, candidate types.CandidateProfile) (*types.Application, error) {
	now := r.now()
	if jobs.IsExpired(job, now) {
		return nil, &ExpiredJobError{JobID: job.ID, ValidTill: job.ValidTill}
	}

	apps, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	fields := logrus.Fields{"job_id": job.ID, "email": candidate.Email}
	if indexOf(apps, job.ID, candidate.Email) >= 0 {
		r.metrics.ApplicationSubmitted(metrics.OutcomeDuplicate)
		r.log.WithFields(fields).Warn("Rejected duplicate application")
		return nil, &DuplicateApplicationError{JobID: job.ID, Email: candidate.Email}
	}

	app := types.Application{
		Job:       job.Ref(),
		Candidate: candidate,
		Status:    types.StatusPending,
		AppliedAt: now.Format(time.RFC3339),
	}
	apps = append(apps, app)
	if err := r.save(ctx, apps); err != nil {
		return nil, err
	}

	r.metrics.ApplicationSubmitted(metrics.OutcomeAccepted)
	r.log.WithFields(fields).Info("Submitted application")
	return &app, nil
}

// UpdateStatus sets the status of the application identified by (jobID,
// email).
func (r *Repository) UpdateStatus(ctx context.Context, jobID int64, email string, status types.ApplicationStatus) error {
	known, ok := types.ParseStatus(string(status))
	if !ok {
		return &InvalidStatusError{Status: string(status)}
	}

	apps, err := r.List(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(apps, jobID, email)
	if idx < 0 {
		return &NotFoundError{JobID: jobID, Email: email}
	}

	apps[idx].Status = known
	if err := r.save(ctx, apps); err != nil {
		return err
	}
	r.metrics.StatusUpdated(string(known))
	r.log.WithFields(logrus.Fields{"job_id": jobID, "email": email, "status": known}).Info("Updated application status")
	return nil
}

// ListForCandidate returns the applications submitted with email. An empty
// email returns every application: the store belongs to a single local user.
// That fallback discloses everyone's applications if the store is ever shared.
func (r *Repository) ListForCandidate(ctx context.Context, email string) ([]types.Application, error) {
	apps, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	if email == "" {
		r.log.WithField("count", len(apps)).Warn("No candidate email known; listing all applications")
		return apps, nil
	}
	out := make([]types.Application, 0, len(apps))
	for _, app := range apps {
		if app.Candidate.Email == email {
			out = append(out, app)
		}
	}
	return out, nil
}

// ListForJob returns the applications for one job in submission order.
func (r *Repository) ListForJob(ctx context.Context, jobID int64) ([]types.Application, error) {
	apps, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]types.Application, 0)
	for _, app := range apps {
		if app.Job.ID == jobID {
			out = append(out, app)
		}
	}
	return out, nil
}

// Get returns the application identified by (jobID, email).
func (r *Repository) Get(ctx context.Context, jobID int64, email string) (*types.Application, error) {
	apps, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	idx := indexOf(apps, jobID, email)
	if idx < 0 {
		return nil, &NotFoundError{JobID: jobID, Email: email}
	}
	return &apps[idx], nil
}

// Delete withdraws the application identified by (jobID, email).
func (r *Repository) Delete(ctx context.Context, jobID int64, email string) error {
	apps, err := r.List(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(apps, jobID, email)
	if idx < 0 {
		return &NotFoundError{JobID: jobID, Email: email}
	}

	apps = append(apps[:idx], apps[idx+1:]...)
	if err := r.save(ctx, apps); err != nil {
		return err
	}
	r.log.WithFields(logrus.Fields{"job_id": jobID, "email": email}).Info("Deleted application")
	return nil
}

func indexOf(apps []types.Application, jobID int64, email string) int {
	for i := range apps {
		if apps[i].Matches(jobID, email) {
			return i
		}
	}
	return -1
}
