package reconcile

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/jobboard/internal/applications"
	"github.com/jonathan/jobboard/internal/jobs"
	"github.com/jonathan/jobboard/internal/localstore"
	"github.com/jonathan/jobboard/internal/metrics"
	"github.com/jonathan/jobboard/internal/types"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profile(name, email string) types.CandidateProfile {
	return types.CandidateProfile{Name: name, Email: email, Phone: "555", Resume: "data:application/pdf;base64,AAAA"}
}

func TestApply_ScenarioC(t *testing.T) {
	p := profile("P", "p@x.com")
	q := profile("Q", "q@x.com")
	apps := []types.Application{
		{Job: types.JobRef{ID: 7}, Candidate: p, Status: types.StatusPending},
		{Job: types.JobRef{ID: 7}, Candidate: q, Status: types.StatusRejected},
	}

	out, stats := Apply([]types.Job{{ID: 7}}, apps)

	require.Len(t, out, 1)
	assert.Equal(t, []types.ApplicantSnapshot{
		{CandidateProfile: p, Status: types.StatusPending},
		{CandidateProfile: q, Status: types.StatusRejected},
	}, out[0].Applicants)
	assert.Equal(t, Stats{Jobs: 1, Applicants: 2}, stats)
}

func TestApply_MissingStatusReadsPending(t *testing.T) {
	apps := []types.Application{{Job: types.JobRef{ID: 1}, Candidate: profile("A", "a@x.com")}}

	out, _ := Apply([]types.Job{{ID: 1}}, apps)

	require.Len(t, out[0].Applicants, 1)
	assert.Equal(t, types.StatusPending, out[0].Applicants[0].Status)
}

func TestApply_SkipsIncompleteCandidates(t *testing.T) {
	noResume := profile("A", "a@x.com")
	noResume.Resume = ""
	noPhone := profile("B", "b@x.com")
	noPhone.Phone = ""
	apps := []types.Application{
		{Job: types.JobRef{ID: 1}, Candidate: noResume},
		{Job: types.JobRef{ID: 1}, Candidate: noPhone},
		{Job: types.JobRef{ID: 1}},
		{Job: types.JobRef{ID: 1}, Candidate: profile("C", "c@x.com")},
	}

	out, stats := Apply([]types.Job{{ID: 1}}, apps)

	require.Len(t, out[0].Applicants, 1)
	assert.Equal(t, "c@x.com", out[0].Applicants[0].Email)
	assert.Equal(t, 3, stats.Skipped)
}

func TestApply_OverwritesStaleCache(t *testing.T) {
	stale := []types.ApplicantSnapshot{{CandidateProfile: profile("Ghost", "ghost@x.com"), Status: types.StatusSelected}}
	in := []types.Job{{ID: 1, Applicants: stale}, {ID: 2, Applicants: stale}}
	apps := []types.Application{{Job: types.JobRef{ID: 2}, Candidate: profile("Real", "real@x.com"), Status: types.StatusInterview}}

	out, _ := Apply(in, apps)

	assert.NotNil(t, out[0].Applicants)
	assert.Empty(t, out[0].Applicants)
	require.Len(t, out[1].Applicants, 1)
	assert.Equal(t, "real@x.com", out[1].Applicants[0].Email)
	assert.Equal(t, types.StatusInterview, out[1].Applicants[0].Status)

	// Input is not mutated.
	assert.Equal(t, stale, in[0].Applicants)
}

func TestApply_CountsOrphans(t *testing.T) {
	apps := []types.Application{
		{Job: types.JobRef{ID: 99}, Candidate: profile("A", "a@x.com")},
		{Job: types.JobRef{ID: 1}, Candidate: profile("B", "b@x.com")},
	}

	_, stats := Apply([]types.Job{{ID: 1}}, apps)
	assert.Equal(t, 1, stats.Orphaned)
	assert.Equal(t, 1, stats.Applicants)
}

func TestApply_NoJobs(t *testing.T) {
	out, stats := Apply(nil, nil)
	assert.Empty(t, out)
	assert.Equal(t, Stats{}, stats)
}

type fixture struct {
	store  *localstore.Accessor
	jobs   *jobs.Repository
	apps   *applications.Repository
	engine *Engine
	rec    *metrics.Recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	now := func() time.Time { return time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC) }
	store := localstore.NewAccessor(localstore.NewMemoryBackend(), nil)
	rec := metrics.NewRecorder()
	jobRepo := jobs.NewRepository(store, &jobs.RepositoryConfig{Now: now})
	appRepo := applications.NewRepository(store, &applications.RepositoryConfig{Now: now})
	return &fixture{
		store:  store,
		jobs:   jobRepo,
		apps:   appRepo,
		engine: NewEngine(jobRepo, appRepo, &EngineConfig{Metrics: rec}),
		rec:    rec,
	}
}

func TestEngine_RunPersists(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	job, err := f.jobs.Create(ctx, types.JobFields{Title: "Dev"})
	require.NoError(t, err)
	_, err = f.apps.Submit(ctx, job, profile("P", "p@x.com"))
	require.NoError(t, err)
	require.NoError(t, f.apps.UpdateStatus(ctx, job.ID, "p@x.com", types.StatusShortlisted))

	reconciled, report, err := f.engine.Run(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, report.PassID)
	assert.Equal(t, 1, report.Applicants)
	require.Len(t, reconciled, 1)

	stored, err := f.jobs.Get(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, stored.Applicants, 1)
	assert.Equal(t, types.StatusShortlisted, stored.Applicants[0].Status)

	expected := `
# HELP jobboard_reconcile_passes_total Applicant reconciliation passes.
# TYPE jobboard_reconcile_passes_total counter
jobboard_reconcile_passes_total 1
`
	assert.NoError(t, testutil.GatherAndCompare(f.rec.Gatherer(), strings.NewReader(expected), "jobboard_reconcile_passes_total"))
}

func TestEngine_RunTwiceIsByteIdentical(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	a, err := f.jobs.Create(ctx, types.JobFields{Title: "A"})
	require.NoError(t, err)
	b, err := f.jobs.Create(ctx, types.JobFields{Title: "B"})
	require.NoError(t, err)
	for _, email := range []string{"p@x.com", "q@x.com"} {
		_, err = f.apps.Submit(ctx, a, profile("X", email))
		require.NoError(t, err)
	}
	_, err = f.apps.Submit(ctx, b, profile("Y", "p@x.com"))
	require.NoError(t, err)
	require.NoError(t, f.apps.UpdateStatus(ctx, a.ID, "q@x.com", types.StatusRejected))

	_, _, err = f.engine.Run(ctx)
	require.NoError(t, err)
	first, _, err := f.store.Backend().Get(ctx, localstore.KeyJobs)
	require.NoError(t, err)

	_, _, err = f.engine.Run(ctx)
	require.NoError(t, err)
	second, _, err := f.store.Backend().Get(ctx, localstore.KeyJobs)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEngine_StatusMatchesApplicationsAfterPass(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	job, err := f.jobs.Create(ctx, types.JobFields{Title: "Dev"})
	require.NoError(t, err)
	emails := []string{"a@x.com", "b@x.com", "c@x.com"}
	for _, email := range emails {
		_, err = f.apps.Submit(ctx, job, profile("N", email))
		require.NoError(t, err)
	}
	require.NoError(t, f.apps.UpdateStatus(ctx, job.ID, "b@x.com", types.StatusSelected))

	reconciled, _, err := f.engine.Run(ctx)
	require.NoError(t, err)

	for _, snap := range reconciled[0].Applicants {
		app, err := f.apps.Get(ctx, job.ID, snap.Email)
		require.NoError(t, err)
		assert.Equal(t, app.Status.OrPending(), snap.Status)
	}
}

type failingApps struct{}

func (failingApps) List(context.Context) ([]types.Application, error) {
	return nil, errors.New("store unavailable")
}

func TestEngine_RunPropagatesLoadErrors(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine(f.jobs, failingApps{}, nil)

	_, _, err := engine.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store unavailable")
}
