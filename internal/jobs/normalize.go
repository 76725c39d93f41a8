package jobs

import (
	"strings"
	"time"

	"github.com/jonathan/jobboard/internal/types"
)

// NormalizeType maps free-text job type input to its canonical token. The
// first matching substring wins: "full", "part", "intern", "remote". Other
// input is returned trimmed and lower-cased. The result is a fixed point:
// NormalizeType(NormalizeType(x)) == NormalizeType(x).
func NormalizeType(raw string) string {
	t := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(t, "full"):
		return types.JobTypeFullTime
	case strings.Contains(t, "part"):
		return types.JobTypePartTime
	case strings.Contains(t, "intern"):
		return types.JobTypeInternship
	case strings.Contains(t, "remote"):
		return types.JobTypeRemote
	default:
		return t
	}
}

// validTillLayouts are tried in order. A bare date means midnight UTC.
var validTillLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04",
}

// ParseValidTill parses a job's validTill value.
func ParseValidTill(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range validTillLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsExpired reports whether the job's validTill is strictly before now.
// Jobs without a parseable validTill never expire.
func IsExpired(job *types.Job, now time.Time) bool {
	till, ok := ParseValidTill(job.ValidTill)
	if !ok {
		return false
	}
	return till.Before(now)
}
