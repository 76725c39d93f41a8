package jobs

import "fmt"

// NotFoundError indicates no job has the requested id.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("job not found: %d", e.ID)
}
