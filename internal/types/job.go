// Package types provides type definitions for the job board's persisted records.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Canonical job type tokens. Any other non-empty value is an unrecognized
// lowercase token kept as-is.
const (
	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeInternship = "internship"
	JobTypeRemote     = "remote"
)

// Job represents an employer-posted listing as stored under the "jobs" key.
type Job struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Logo        string `json:"logo,omitempty"` // inline data URL or empty
	Location    string `json:"location"`
	Salary      string `json:"salary"` // numeric-as-text
	Type        string `json:"type"`
	Description string `json:"description"`
	Experience  string `json:"experience,omitempty"`
	Skills      string `json:"skills,omitempty"`
	ValidTill   string `json:"validTill,omitempty"`

	// Applicants is a cache derived from the applications collection.
	// Only the reconciliation pass writes it.
	Applicants []ApplicantSnapshot `json:"applicants"`
}

// JobFields holds the employer-editable fields of a job.
type JobFields struct {
	Title       string
	Company     string
	Logo        string
	Location    string
	Salary      string
	Type        string
	Description string
	Experience  string
	Skills      string
	ValidTill   string
}

// JobRef is the trimmed job snapshot frozen into an application.
type JobRef struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Company string `json:"company"`
}

// Ref returns the trimmed snapshot of the job.
func (j *Job) Ref() JobRef {
	return JobRef{ID: j.ID, Title: j.Title, Company: j.Company}
}
