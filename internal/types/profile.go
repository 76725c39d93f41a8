package types

import (
	"github.com/go-playground/validator/v10"
)

// CandidateProfile is the single candidate record kept under the
// "candidateProfile" key and frozen into every application.
type CandidateProfile struct {
	Name             string  `json:"name" validate:"required"`
	Email            string  `json:"email" validate:"required,email"`
	Phone            string  `json:"phone" validate:"required"`
	Resume           string  `json:"resume,omitempty"` // data URL or external link, opaque
	CareerObjective  string  `json:"careerObjective,omitempty"`
	Education        Entries `json:"education,omitempty"`
	Experience       Entries `json:"experience,omitempty"`
	Projects         Entries `json:"projects,omitempty"`
	Extracurriculars Entries `json:"extracurriculars,omitempty"`
	Skills           Entries `json:"skills,omitempty"`
}

// Validate validates the required identity fields using the validator.
func (p *CandidateProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// IsComplete reports whether the profile carries every field needed to be
// listed as an applicant: name, email, phone and resume.
func (p *CandidateProfile) IsComplete() bool {
	return p.Name != "" && p.Email != "" && p.Phone != "" && p.Resume != ""
}
