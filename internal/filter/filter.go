// Package filter narrows an already-loaded job collection for the public
// listings view. It never touches the store.
package filter

import (
	"strings"

	"github.com/jonathan/jobboard/internal/jobs"
	"github.com/jonathan/jobboard/internal/types"
)

// Criteria are the optional listing filters. Zero values mean "any".
type Criteria struct {
	Search    string // case-insensitive substring of title, description or skills
	Location  string // case-insensitive substring of location
	MinSalary *int64 // jobs whose salary has no leading integer never pass
	JobType   string // compared after NormalizeType on both sides
}

// IsEmpty reports whether no criterion is set.
func (c Criteria) IsEmpty() bool {
	return c.Search == "" && c.Location == "" && c.MinSalary == nil && c.JobType == ""
}

// Jobs returns the jobs matching every set criterion, in input order.
func Jobs(in []types.Job, c Criteria) []types.Job {
	out := make([]types.Job, 0, len(in))
	for i := range in {
		if Match(&in[i], c) {
			out = append(out, in[i])
		}
	}
	return out
}

// Match applies the criteria to one job: keyword, then location, then
// minimum salary, then job type.
func Match(job *types.Job, c Criteria) bool {
	if c.Search != "" && !matchesKeyword(job, strings.ToLower(c.Search)) {
		return false
	}
	if c.Location != "" && !containsFold(job.Location, c.Location) {
		return false
	}
	if c.MinSalary != nil {
		salary, ok := ParseSalary(job.Salary)
		if !ok || salary < *c.MinSalary {
			return false
		}
	}
	if c.JobType != "" && jobs.NormalizeType(job.Type) != jobs.NormalizeType(c.JobType) {
		return false
	}
	return true
}

func matchesKeyword(job *types.Job, needle string) bool {
	return strings.Contains(strings.ToLower(job.Title), needle) ||
		strings.Contains(strings.ToLower(job.Description), needle) ||
		strings.Contains(strings.ToLower(job.Skills), needle)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// ParseSalary reads the leading integer of a salary string, skipping leading
// whitespace and accepting an optional sign: "50000/yr" is 50000, "50,000"
// is 50, "$50000" has none.
func ParseSalary(s string) (int64, bool) {
	s = strings.TrimLeft(s, " \t\n\r")
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	var n int64
	digits := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		if n > (1<<62)/10 {
			break
		}
		n = n*10 + int64(s[digits]-'0')
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}
