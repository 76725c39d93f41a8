package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateValue_Jobs(t *testing.T) {
	tests := []struct {
		name    string
		content string
		valid   bool
	}{
		{"empty array", `[]`, true},
		{"minimal job", `[{"id": 1}]`, true},
		{"full job", `[{"id": 1700000000000, "title": "Dev", "salary": "50000", "applicants": []}]`, true},
		{"null applicants", `[{"id": 1, "applicants": null}]`, true},
		{"object instead of array", `{"id": 1}`, false},
		{"missing id", `[{"title": "Dev"}]`, false},
		{"numeric salary", `[{"id": 1, "salary": 50000}]`, false},
		{"string id", `[{"id": "1"}]`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateValue(Jobs, tt.content)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateValue_Applications(t *testing.T) {
	assert.NoError(t, ValidateValue(Applications, `[]`))
	assert.NoError(t, ValidateValue(Applications,
		`[{"job":{"id":1,"title":"T","company":"C"},"candidate":{"name":"A","education":"BSc"},"appliedAt":"x"}]`))
	assert.Error(t, ValidateValue(Applications, `[{"job":{"id":"1"}}]`))
	assert.Error(t, ValidateValue(Applications, `"nope"`))
}

func TestValidateValue_CandidateProfile(t *testing.T) {
	assert.NoError(t, ValidateValue(CandidateProfile, `{"name":"A","skills":["Go"],"projects":{"title":"x"}}`))
	assert.Error(t, ValidateValue(CandidateProfile, `[]`))
	assert.Error(t, ValidateValue(CandidateProfile, `{"name": 5}`))
}

func TestValidateValue_MalformedDocument(t *testing.T) {
	err := ValidateValue(Jobs, `{not json`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
}

func TestValidateValue_UnknownSchema(t *testing.T) {
	err := ValidateValue("settings", `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, err.Error(), "no schema registered")
	assert.False(t, Has("settings"))
	assert.True(t, Has(Jobs))
}

func TestValidateJSONString_Valid(t *testing.T) {
	schema := `{"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}}`
	assert.NoError(t, ValidateJSONString(schema, `{"name": "Test"}`))
}

func TestValidateJSONString_Invalid(t *testing.T) {
	schema := `{"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}}`
	err := ValidateJSONString(schema, `{"age": 30}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Schema: Jobs,
		Errors: []FieldError{
			{Field: "0.id", Message: "id is required"},
			{Field: "1.salary", Message: "Invalid type"},
		},
	}

	msg := err.Error()
	assert.Contains(t, msg, "validation against jobs failed")
	assert.Contains(t, msg, "0.id")
	assert.Contains(t, msg, "Invalid type")
}
