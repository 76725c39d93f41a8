package applications

import "fmt"

// DuplicateApplicationError indicates the email already applied to the job.
type DuplicateApplicationError struct {
	JobID int64
	Email string
}

func (e *DuplicateApplicationError) Error() string {
	return fmt.Sprintf("%s has already applied for job %d", e.Email, e.JobID)
}

// NotFoundError indicates no application matches (job id, email).
type NotFoundError struct {
	JobID int64
	Email string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no application from %s for job %d", e.Email, e.JobID)
}

// InvalidStatusError indicates a status outside the known set.
type InvalidStatusError struct {
	Status string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid application status %q", e.Status)
}

// ExpiredJobError indicates an attempt to apply to a job past its validTill.
type ExpiredJobError struct {
	JobID     int64
	ValidTill string
}

func (e *ExpiredJobError) Error() string {
	return fmt.Sprintf("job %d stopped accepting applications on %s", e.JobID, e.ValidTill)
}
