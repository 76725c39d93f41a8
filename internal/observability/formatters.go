// Package observability renders jobs, applications and candidate profiles as
// boxed text for the CLI.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/jobboard/internal/jobs"
	"github.com/jonathan/jobboard/internal/reconcile"
	"github.com/jonathan/jobboard/internal/types"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

// Printer handles formatted output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// printEmpty prints a one-line box.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printEmpty(message string) {
	fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, message)
	fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// describeBlob shows inline data URLs by kind instead of dumping them.
func describeBlob(s, kind string) string {
	switch {
	case s == "":
		return "None"
	case strings.HasPrefix(s, "data:"):
		return "(uploaded " + kind + ")"
	default:
		return s
	}
}

func writeJobFields(sb *strings.Builder, job *types.Job) {
	sb.WriteString(fmt.Sprintf("Company:    %s\n", job.Company))
	sb.WriteString(fmt.Sprintf("Location:   %s\n", job.Location))
	sb.WriteString(fmt.Sprintf("Salary:     %s\n", job.Salary))
	sb.WriteString(fmt.Sprintf("Type:       %s\n", job.Type))
	sb.WriteString(fmt.Sprintf("Experience: %s\n", orDefault(job.Experience, "Not specified")))
	sb.WriteString(fmt.Sprintf("Valid Till: %s\n", orDefault(job.ValidTill, "Lifetime")))
	if job.Logo != "" {
		sb.WriteString(fmt.Sprintf("Logo:       %s\n", describeBlob(job.Logo, "image")))
	}
}

// PrintEmployerJobs outputs every posted job with its expiry mark and
// applicant count.
func (p *Printer) PrintEmployerJobs(list []types.Job, now time.Time) {
	if len(list) == 0 {
		p.printEmpty("No jobs posted yet.")
		return
	}
	for i := range list {
		job := &list[i]
		title := fmt.Sprintf("#%d %s", job.ID, job.Title)
		if jobs.IsExpired(job, now) {
			title += " (Expired)"
		}

		var sb strings.Builder
		writeJobFields(&sb, job)
		if job.Description != "" {
			sb.WriteString("\n" + job.Description + "\n")
		}
		sb.WriteString(fmt.Sprintf("\nApplicants: %d", len(job.Applicants)))
		p.printBox(title, sb.String())
	}
}

// PrintListings outputs the public job listings.
func (p *Printer) PrintListings(list []types.Job) {
	if len(list) == 0 {
		p.printEmpty("No jobs found")
		return
	}
	for i := range list {
		job := &list[i]
		var sb strings.Builder
		writeJobFields(&sb, job)
		p.printBox(fmt.Sprintf("#%d %s", job.ID, strings.ToUpper(job.Title)), strings.TrimSuffix(sb.String(), "\n"))
	}
}

// PrintApplicants outputs a job's cached applicants with their statuses.
func (p *Printer) PrintApplicants(job *types.Job) {
	if job == nil {
		return
	}
	if len(job.Applicants) == 0 {
		p.printEmpty(fmt.Sprintf("No applicants for %s yet.", job.Title))
		return
	}

	var sb strings.Builder
	for i, a := range job.Applicants {
		sb.WriteString(fmt.Sprintf("%d. %s <%s>\n", i+1, a.Name, a.Email))
		sb.WriteString(fmt.Sprintf("   Phone:  %s\n", a.Phone))
		sb.WriteString(fmt.Sprintf("   Resume: %s\n", describeBlob(a.Resume, "document")))
		sb.WriteString(fmt.Sprintf("   Status: %s", a.Status.Label()))
		if i < len(job.Applicants)-1 {
			sb.WriteString("\n\n")
		}
	}
	p.printBox(fmt.Sprintf("APPLICANTS: %s", job.Title), sb.String())
}

// PrintApplications outputs a candidate's applications.
func (p *Printer) PrintApplications(apps []types.Application) {
	if len(apps) == 0 {
		p.printEmpty("You have not applied to any jobs yet.")
		return
	}

	var sb strings.Builder
	for i, app := range apps {
		sb.WriteString(fmt.Sprintf("%s (job #%d)\n", app.Job.Title, app.Job.ID))
		sb.WriteString(fmt.Sprintf("  %s\n", app.Job.Company))
		sb.WriteString(fmt.Sprintf("  Status: %s | Applied At: %s", app.Status.Label(), app.AppliedAt))
		if i < len(apps)-1 {
			sb.WriteString("\n\n")
		}
	}
	p.printBox(fmt.Sprintf("APPLIED JOBS (%d)", len(apps)), sb.String())
}

// PrintProfile outputs the saved candidate profile.
func (p *Printer) PrintProfile(profile *types.CandidateProfile) {
	if profile == nil {
		p.printEmpty("No profile saved.")
		return
	}
	var sb strings.Builder
	writeIdentity(&sb, profile)
	p.printBox("PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

func writeIdentity(sb *strings.Builder, c *types.CandidateProfile) {
	sb.WriteString(fmt.Sprintf("Name:   %s\n", c.Name))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", c.Email))
	sb.WriteString(fmt.Sprintf("Phone:  %s\n", c.Phone))
	sb.WriteString(fmt.Sprintf("Resume: %s\n", describeBlob(c.Resume, "document")))
}

// Section key orders used to summarise structured profile entries.
var (
	educationKeys  = []string{"degree", "institution", "year"}
	experienceKeys = []string{"role", "company", "duration", "description"}
	projectKeys    = []string{"title", "description"}
)

// PrintApplicantView outputs the full applicant detail view. Every profile
// section renders whether it is absent, empty, a single record, a single
// string, or a list mixing records and strings.
func (p *Printer) PrintApplicantView(v types.ApplicantView) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job:    %s at %s (#%d)\n", v.Job.Title, v.Job.Company, v.Job.ID))
	sb.WriteString(fmt.Sprintf("Status: %s\n", v.Status.Label()))
	if v.AppliedAt != "" {
		sb.WriteString(fmt.Sprintf("Applied At: %s\n", v.AppliedAt))
	}
	sb.WriteString("\n")

	c := &v.Candidate
	writeIdentity(&sb, c)
	sb.WriteString("\nCareer Objective:\n")
	sb.WriteString(fmt.Sprintf("  %s\n", orDefault(c.CareerObjective, "Not provided")))

	writeSection(&sb, "Education", c.Education, educationKeys)
	writeSection(&sb, "Experience", c.Experience, experienceKeys)
	writeSection(&sb, "Projects", c.Projects, projectKeys)
	writeSection(&sb, "Extracurriculars", c.Extracurriculars, nil)
	writeSection(&sb, "Skills", c.Skills, nil)

	p.printBox(fmt.Sprintf("APPLICANT: %s", orDefault(c.Name, "Unknown")), strings.TrimSuffix(sb.String(), "\n"))
}

func writeSection(sb *strings.Builder, title string, entries types.Entries, keys []string) {
	sb.WriteString(fmt.Sprintf("\n%s:\n", title))
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		if line := entryLine(e, keys); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		sb.WriteString("  Not provided\n")
		return
	}
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  • %s\n", line))
	}
}

// entryLine summarises an entry by the preferred keys, falling back to all
// of its fields in key order.
func entryLine(e types.Entry, keys []string) string {
	if !e.IsRecord() {
		return strings.TrimSpace(e.Text)
	}
	if s := e.Summary(keys...); s != "" {
		return s
	}
	all := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		all = append(all, k)
	}
	sort.Strings(all)
	return e.Summary(all...)
}

// PrintSyncReport outputs the result of a reconciliation pass.
func (p *Printer) PrintSyncReport(report *reconcile.Report) {
	if report == nil {
		return
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Pass:       %s\n", report.PassID))
	sb.WriteString(fmt.Sprintf("Jobs:       %d\n", report.Jobs))
	sb.WriteString(fmt.Sprintf("Applicants: %d\n", report.Applicants))
	sb.WriteString(fmt.Sprintf("Skipped:    %d (incomplete candidate data)\n", report.Skipped))
	sb.WriteString(fmt.Sprintf("Orphaned:   %d (job deleted)", report.Orphaned))
	p.printBox("APPLICANT SYNC", sb.String())
}
