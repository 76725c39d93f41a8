package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input string
		want  ApplicationStatus
		ok    bool
	}{
		{"Pending", StatusPending, true},
		{"pending", StatusPending, true},
		{" Shortlisted ", StatusShortlisted, true},
		{"INTERVIEW", StatusInterview, true},
		{"selected", StatusSelected, true},
		{"rejected", StatusRejected, true},
		{"hired", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseStatus(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplicationStatus_OrPending(t *testing.T) {
	assert.Equal(t, StatusPending, ApplicationStatus("").OrPending())
	assert.Equal(t, StatusRejected, StatusRejected.OrPending())
}

func TestApplicationStatus_Label(t *testing.T) {
	assert.Equal(t, "Pending", ApplicationStatus("").Label())
	assert.Equal(t, "Shortlisted", StatusShortlisted.Label())
	assert.Equal(t, "Interview", StatusInterview.Label())
}

func TestApplicantSnapshot_EncodesFlat(t *testing.T) {
	snap := ApplicantSnapshot{
		CandidateProfile: CandidateProfile{Name: "P", Email: "p@x.com", Phone: "1", Resume: "r"},
		Status:           StatusInterview,
	}

	out, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"P","email":"p@x.com","phone":"1","resume":"r","status":"interview"}`, string(out))

	var back ApplicantSnapshot
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, snap, back)
}

func TestApplication_MissingStatusDecodesEmpty(t *testing.T) {
	var app Application
	require.NoError(t, json.Unmarshal([]byte(`{"job":{"id":3,"title":"T","company":"C"},"candidate":{"email":"a@x.com"},"appliedAt":"now"}`), &app))
	assert.Equal(t, ApplicationStatus(""), app.Status)
	assert.True(t, app.Matches(3, "a@x.com"))
	assert.False(t, app.Matches(3, "b@x.com"))
}

func TestCandidateProfile_Validate(t *testing.T) {
	valid := CandidateProfile{Name: "Ada", Email: "ada@example.com", Phone: "555"}
	assert.NoError(t, valid.Validate())

	missing := CandidateProfile{Name: "Ada"}
	assert.Error(t, missing.Validate())

	badEmail := CandidateProfile{Name: "Ada", Email: "not-an-email", Phone: "555"}
	assert.Error(t, badEmail.Validate())
}

func TestCandidateProfile_IsComplete(t *testing.T) {
	p := CandidateProfile{Name: "Ada", Email: "ada@example.com", Phone: "555"}
	assert.False(t, p.IsComplete())
	p.Resume = "https://example.com/cv.pdf"
	assert.True(t, p.IsComplete())
}

func TestViews(t *testing.T) {
	job := &Job{ID: 9, Title: "Dev", Company: "Acme"}
	snap := ApplicantSnapshot{CandidateProfile: CandidateProfile{Name: "Q"}}
	v := ViewFromSnapshot(job, snap)
	assert.Equal(t, JobRef{ID: 9, Title: "Dev", Company: "Acme"}, v.Job)
	assert.Equal(t, StatusPending, v.Status)
	assert.Empty(t, v.AppliedAt)

	app := Application{Job: job.Ref(), Candidate: snap.CandidateProfile, Status: StatusSelected, AppliedAt: "t"}
	av := ViewFromApplication(app)
	assert.Equal(t, StatusSelected, av.Status)
	assert.Equal(t, "t", av.AppliedAt)
}
