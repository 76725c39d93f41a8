package schemas

// Names of the schemas for the three persisted keys. They match the keys
// used in the local store.
const (
	Jobs             = "jobs"
	Applications     = "applications"
	CandidateProfile = "candidateProfile"
)

// looseSection accepts every tolerated shape of a profile section.
const looseSection = `{"type": ["array", "object", "string", "null"]}`

const profileProperties = `{
	"name": {"type": "string"},
	"email": {"type": "string"},
	"phone": {"type": "string"},
	"resume": {"type": "string"},
	"careerObjective": {"type": "string"},
	"education": ` + looseSection + `,
	"experience": ` + looseSection + `,
	"projects": ` + looseSection + `,
	"extracurriculars": ` + looseSection + `,
	"skills": ` + looseSection + `
}`

var storeSchemas = map[string]string{
	Jobs: `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "array",
		"items": {
			"type": "object",
			"required": ["id"],
			"properties": {
				"id": {"type": "integer"},
				"title": {"type": "string"},
				"company": {"type": "string"},
				"logo": {"type": "string"},
				"location": {"type": "string"},
				"salary": {"type": "string"},
				"type": {"type": "string"},
				"description": {"type": "string"},
				"experience": {"type": "string"},
				"skills": {"type": "string"},
				"validTill": {"type": "string"},
				"applicants": {"type": ["array", "null"], "items": {"type": "object"}}
			}
		}
	}`,
	Applications: `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "array",
		"items": {
			"type": "object",
			"properties": {
				"job": {
					"type": "object",
					"properties": {
						"id": {"type": "integer"},
						"title": {"type": "string"},
						"company": {"type": "string"}
					}
				},
				"candidate": {"type": "object", "properties": ` + profileProperties + `},
				"status": {"type": "string"},
				"appliedAt": {"type": "string"}
			}
		}
	}`,
	CandidateProfile: `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"properties": ` + profileProperties + `
	}`,
}
