package types

import "strings"

// ApplicationStatus is the employer-assigned review state of an application.
type ApplicationStatus string

// Known application statuses. Pending is the default and keeps the
// capitalized spelling the stored data has always used.
const (
	StatusPending     ApplicationStatus = "Pending"
	StatusShortlisted ApplicationStatus = "shortlisted"
	StatusInterview   ApplicationStatus = "interview"
	StatusSelected    ApplicationStatus = "selected"
	StatusRejected    ApplicationStatus = "rejected"
)

var knownStatuses = []ApplicationStatus{
	StatusPending,
	StatusShortlisted,
	StatusInterview,
	StatusSelected,
	StatusRejected,
}

// ParseStatus maps user input to a known status, ignoring case and
// surrounding whitespace.
func ParseStatus(raw string) (ApplicationStatus, bool) {
	s := strings.TrimSpace(raw)
	for _, known := range knownStatuses {
		if strings.EqualFold(s, string(known)) {
			return known, true
		}
	}
	return "", false
}

// OrPending returns the status, or StatusPending when it was never set.
func (s ApplicationStatus) OrPending() ApplicationStatus {
	if s == "" {
		return StatusPending
	}
	return s
}

// Application is a candidate's submission for a job, stored under the
// "applications" key. Job, Candidate and AppliedAt are frozen at submission.
type Application struct {
	Job       JobRef            `json:"job"`
	Candidate CandidateProfile  `json:"candidate"`
	Status    ApplicationStatus `json:"status,omitempty"`
	AppliedAt string            `json:"appliedAt"`
}

// Matches reports whether the application belongs to the (jobID, email) pair.
func (a *Application) Matches(jobID int64, email string) bool {
	return a.Job.ID == jobID && a.Candidate.Email == email
}

// ApplicantSnapshot is the per-job cached copy of a candidate plus the
// current status of their application. It flattens to the profile fields
// and a "status" key when encoded.
type ApplicantSnapshot struct {
	CandidateProfile
	Status ApplicationStatus `json:"status"`
}

// Label returns the status as shown to users, with the first letter
// capitalized. An unset status reads as Pending.
func (s ApplicationStatus) Label() string {
	v := string(s.OrPending())
	return strings.ToUpper(v[:1]) + v[1:]
}
