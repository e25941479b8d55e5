package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rakapratama/talent-tracker/internal/models"
)

func testCandidates() []models.Candidate {
	marchFirst := time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC)
	marchSecond := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)

	return []models.Candidate{
		{
			ID:             uuid.New(),
			Name:           "Alice Hartono",
			Email:          "alice@example.com",
			Position:       "Backend Engineer",
			ClientName:     "Acme Corp",
			RecruiterName:  "Budi Santoso",
			Manager:        "Siti Rahma",
			InterviewMode:  "Online",
			InterviewRound: "Technical",
			Status1:        "Interview Scheduled",
			InterviewDate:  &marchFirst,
		},
		{
			ID:             uuid.New(),
			Name:           "Bram Wijaya",
			Email:          "bram@example.com",
			Position:       "Data Analyst",
			ClientName:     "Globex",
			RecruiterName:  "Budi Santoso",
			Manager:        "Siti Rahma",
			InterviewMode:  "Onsite",
			InterviewRound: "HR",
			Status1:        "Interview Scheduled",
			InterviewDate:  &marchSecond,
		},
		{
			ID:            uuid.New(),
			Name:          "Citra Lestari",
			Email:         "citra@example.com",
			Position:      "Backend Engineer",
			ClientName:    "Acme Corp",
			RecruiterName: "Dewi Anggraini",
			Manager:       "Joko Susilo",
			InterviewMode: "Online",
			Status1:       "Sourced",
		},
	}
}

func TestFilterCandidatesEmptyFilterIsIdentity(t *testing.T) {
	candidates := testCandidates()

	got := FilterCandidates(candidates, models.CandidateFilter{})
	assert.Equal(t, candidates, got)
}

func TestFilterCandidatesSentinelEqualsUnset(t *testing.T) {
	candidates := testCandidates()

	filter := models.CandidateFilter{
		InterviewMode: models.FilterAll,
		Status1:       models.FilterAll,
	}

	got := FilterCandidates(candidates, filter)
	assert.Equal(t, candidates, got)
}

func TestFilterCandidatesConjunction(t *testing.T) {
	candidates := testCandidates()

	filter := models.CandidateFilter{
		InterviewMode: "Online",
		ClientName:    "Acme Corp",
		Status1:       "Interview Scheduled",
	}

	got := FilterCandidates(candidates, filter)
	require.Len(t, got, 1)
	assert.Equal(t, "Alice Hartono", got[0].Name)

	for _, c := range got {
		assert.Equal(t, "Online", c.InterviewMode)
		assert.Equal(t, "Acme Corp", c.ClientName)
		assert.Equal(t, "Interview Scheduled", c.Status1)
	}
}

func TestFilterCandidatesPreservesOrder(t *testing.T) {
	candidates := testCandidates()

	got := FilterCandidates(candidates, models.CandidateFilter{Manager: "Siti Rahma"})
	require.Len(t, got, 2)
	assert.Equal(t, "Alice Hartono", got[0].Name)
	assert.Equal(t, "Bram Wijaya", got[1].Name)
}

func TestFilterCandidatesByDateIgnoresTimeOfDay(t *testing.T) {
	candidates := testCandidates()

	// Filter time-of-day differs from the stored interview time.
	filterDate := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	got := FilterCandidates(candidates, models.CandidateFilter{InterviewDate: &filterDate})
	require.Len(t, got, 1)
	assert.Equal(t, "Alice Hartono", got[0].Name)

	nextDay := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	got = FilterCandidates(candidates, models.CandidateFilter{InterviewDate: &nextDay})
	require.Len(t, got, 1)
	assert.Equal(t, "Bram Wijaya", got[0].Name)
}

func TestFilterCandidatesByDateExcludesUnscheduled(t *testing.T) {
	candidates := testCandidates()

	filterDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	got := FilterCandidates(candidates, models.CandidateFilter{InterviewDate: &filterDate})

	for _, c := range got {
		assert.NotNil(t, c.InterviewDate)
	}
}

func TestSearchCandidatesBlankQueryIsIdentity(t *testing.T) {
	candidates := testCandidates()

	assert.Equal(t, candidates, SearchCandidates(candidates, ""))
	assert.Equal(t, candidates, SearchCandidates(candidates, "   "))
}

func TestSearchCandidatesPrefixMatch(t *testing.T) {
	candidates := testCandidates()

	got := SearchCandidates(candidates, "ali")
	require.Len(t, got, 1)
	assert.Equal(t, "Alice Hartono", got[0].Name)

	// Case-insensitive
	got = SearchCandidates(candidates, "ALI")
	require.Len(t, got, 1)
	assert.Equal(t, "Alice Hartono", got[0].Name)

	// Prefix only, not substring
	got = SearchCandidates(candidates, "lice")
	assert.Empty(t, got)
}

func TestSearchCandidatesMatchesAnyField(t *testing.T) {
	candidates := testCandidates()

	// Position prefix matches two candidates, order preserved.
	got := SearchCandidates(candidates, "backend")
	require.Len(t, got, 2)
	assert.Equal(t, "Alice Hartono", got[0].Name)
	assert.Equal(t, "Citra Lestari", got[1].Name)

	// Recruiter name
	got = SearchCandidates(candidates, "dewi")
	require.Len(t, got, 1)
	assert.Equal(t, "Citra Lestari", got[0].Name)
}
