package jobs

import (
	"testing"
	"time"

	"github.com/jonathan/jobboard/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeType(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Full Time", "full-time"},
		{"full-time", "full-time"},
		{"FULLTIME", "full-time"},
		{"Part-time", "part-time"},
		{"parttime", "part-time"},
		{"Internship", "internship"},
		{"Summer Intern", "internship"},
		{"REMOTE", "remote"},
		{"Remote, full stack", "full-time"}, // "full" is checked first
		{"  Contract ", "contract"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeType(tt.input))
		})
	}
}

func TestNormalizeType_Idempotent(t *testing.T) {
	inputs := []string{
		"Full Time", "part", "Intern", "remote work", "Contract", "",
		"  Freelance  ", "FULL-TIME", "Part-Time Remote", "temp/seasonal",
	}
	for _, in := range inputs {
		once := NormalizeType(in)
		assert.Equal(t, once, NormalizeType(once), "input %q", in)
	}
}

func TestParseValidTill(t *testing.T) {
	d, ok := ParseValidTill("2020-01-01")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), d)

	_, ok = ParseValidTill("2030-06-01T12:00:00Z")
	assert.True(t, ok)

	_, ok = ParseValidTill("2030-06-01T12:00")
	assert.True(t, ok)

	_, ok = ParseValidTill("")
	assert.False(t, ok)

	_, ok = ParseValidTill("next tuesday")
	assert.False(t, ok)
}

func TestIsExpired(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		validTill string
		expected  bool
	}{
		{"no validTill", "", false},
		{"past date", "2020-01-01", true},
		{"far future", "2999-01-01", false},
		{"earlier today", "2026-10-17", true},
		{"tomorrow", "2026-10-18", false},
		{"exactly now", "2026-10-17T12:00:00Z", false},
		{"unparseable", "soon", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &types.Job{ID: 1, ValidTill: tt.validTill}
			assert.Equal(t, tt.expected, IsExpired(job, now))
		})
	}
}
