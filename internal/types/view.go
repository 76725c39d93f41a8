package types

// ApplicantView is the typed hand-off between a dashboard and the applicant
// detail view. Job and Candidate are always present; AppliedAt is empty when
// the view was opened from a job's applicant cache rather than from an
// application.
type ApplicantView struct {
	Job       JobRef
	Candidate CandidateProfile
	Status    ApplicationStatus
	AppliedAt string
}

// ViewFromApplication builds the detail view payload from an application.
func ViewFromApplication(app Application) ApplicantView {
	return ApplicantView{
		Job:       app.Job,
		Candidate: app.Candidate,
		Status:    app.Status.OrPending(),
		AppliedAt: app.AppliedAt,
	}
}

// ViewFromSnapshot builds the detail view payload from a job's cached
// applicant entry.
func ViewFromSnapshot(job *Job, snap ApplicantSnapshot) ApplicantView {
	return ApplicantView{
		Job:       job.Ref(),
		Candidate: snap.CandidateProfile,
		Status:    snap.Status.OrPending(),
	}
}
