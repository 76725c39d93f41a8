// Package jobs provides the job repository: CRUD over the "jobs" collection,
// job type normalization, and expiry.
package jobs

import (
	"context"
	"fmt"
	"time"

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

// Repository reads and writes jobs in the local store.
type Repository struct {
	store   *localstore.Accessor
	now     func() time.Time
	log     logrus.FieldLogger
	metrics *metrics.Recorder
}

// NewRepository creates a job repository over the given store.
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

// List returns every job in stored order, expired ones included.
func (r *Repository) List(ctx context.Context) ([]types.Job, error) {
	jobs, _, err := localstore.Get(ctx, r.store, localstore.KeyJobs, []types.Job{})
	if err != nil {
		return nil, fmt.Errorf("failed to load jobs: %w", err)
	}
	return jobs, nil
}

// ListActive returns the jobs that have not expired, in stored order.
func (r *Repository) ListActive(ctx context.Context) ([]types.Job, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	now := r.now()
	active := make([]types.Job, 0, len(all))
	for i := range all {
		if !IsExpired(&all[i], now) {
			active = append(active, all[i])
		}
	}
	return active, nil
}

// IsExpired reports whether the job has expired as of the repository clock.
func (r *Repository) IsExpired(job *types.Job) bool {
	return IsExpired(job, r.now())
}

// Get returns the job with the given id.
func (r *Repository) Get(ctx context.Context, id int64) (*types.Job, error) {
	jobs, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	idx := indexOf(jobs, id)
	if idx < 0 {
		return nil, &NotFoundError{ID: id}
	}
	return &jobs[idx], nil
}

// Create appends a new job. Its id is the creation time in milliseconds,
// bumped past any existing id it would collide with.
func (r *Repository) Create(ctx context.Context, fields types.JobFields) (*types.Job, error) {
	jobs, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	id := r.now().UnixMilli()
	for indexOf(jobs, id) >= 0 {
		id++
	}

	job := types.Job{ID: id, Applicants: []types.ApplicantSnapshot{}}
	applyFields(&job, fields)
	jobs = append(jobs, job)

	if err := r.store.Set(ctx, localstore.KeyJobs, jobs); err != nil {
		return nil, fmt.Errorf("failed to save jobs: %w", err)
	}
	r.metrics.JobPosted()
	r.log.WithFields(logrus.Fields{"job_id": id, "title": job.Title}).Info("Posted job")
	return &job, nil
}

// Update replaces the editable fields of the job with the given id. The id
// and the cached applicants are kept.
func (r *Repository) Update(ctx context.Context, id int64, fields types.JobFields) (*types.Job, error) {
	jobs, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	idx := indexOf(jobs, id)
	if idx < 0 {
		return nil, &NotFoundError{ID: id}
	}

	applyFields(&jobs[idx], fields)
	if jobs[idx].Applicants == nil {
		jobs[idx].Applicants = []types.ApplicantSnapshot{}
	}

	if err := r.store.Set(ctx, localstore.KeyJobs, jobs); err != nil {
		return nil, fmt.Errorf("failed to save jobs: %w", err)
	}
	r.metrics.JobUpdated()
	r.log.WithFields(logrus.Fields{"job_id": id, "title": jobs[idx].Title}).Info("Updated job")
	updated := jobs[idx]
	return &updated, nil
}

// Delete removes the job with the given id. Applications that reference it
// are left in place.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	jobs, err := r.List(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(jobs, id)
	if idx < 0 {
		return &NotFoundError{ID: id}
	}

	jobs = append(jobs[:idx], jobs[idx+1:]...)
	if err := r.store.Set(ctx, localstore.KeyJobs, jobs); err != nil {
		return fmt.Errorf("failed to save jobs: %w", err)
	}
	r.metrics.JobDeleted()
	r.log.WithField("job_id", id).Info("Deleted job")
	return nil
}

// SaveReconciled writes back a job collection whose applicant caches were
// recomputed. Only the reconciliation engine calls it.
func (r *Repository) SaveReconciled(ctx context.Context, jobs []types.Job) error {
	if err := r.store.Set(ctx, localstore.KeyJobs, jobs); err != nil {
		return fmt.Errorf("failed to save jobs: %w", err)
	}
	return nil
}

func applyFields(job *types.Job, f types.JobFields) {
	job.Title = f.Title
	job.Company = f.Company
	job.Logo = f.Logo
	job.Location = f.Location
	job.Salary = f.Salary
	job.Type = NormalizeType(f.Type)
	job.Description = f.Description
	job.Experience = f.Experience
	job.Skills = f.Skills
	job.ValidTill = f.ValidTill
}

func indexOf(jobs []types.Job, id int64) int {
	for i := range jobs {
		if jobs[i].ID == id {
			return i
		}
	}
	return -1
}

// FieldsOf returns the editable fields of a job, for partial edits.
func FieldsOf(job *types.Job) types.JobFields {
	return types.JobFields{
		Title:       job.Title,
		Company:     job.Company,
		Logo:        job.Logo,
		Location:    job.Location,
		Salary:      job.Salary,
		Type:        job.Type,
		Description: job.Description,
		Experience:  job.Experience,
		Skills:      job.Skills,
		ValidTill:   job.ValidTill,
	}
}
