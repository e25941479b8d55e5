package services

import (
	"strings"
	"time"

	"rakapratama/talent-tracker/internal/models"
)

// FilterCandidates returns the candidates satisfying every active predicate
// in filter. A string predicate is active when it is neither empty nor the
// "All" sentinel; the date predicate is active when non-nil and matches on
// the calendar day alone. The result preserves input order, and an inactive
// filter returns the input slice unchanged.
func FilterCandidates(candidates []models.Candidate, filter models.CandidateFilter) []models.Candidate {
	if filter.IsZero() {
		return candidates
	}

	filtered := make([]models.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if matchesFilter(&c, filter) {
			filtered = append(filtered, c)
		}
	}

	return filtered
}

func matchesFilter(c *models.Candidate, f models.CandidateFilter) bool {
	checks := []struct {
		want string
		have string
	}{
		{f.InterviewMode, c.InterviewMode},
		{f.InterviewRound, c.InterviewRound},
		{f.Status1, c.Status1},
		{f.Status2, c.Status2},
		{f.ClientName, c.ClientName},
		{f.Position, c.Position},
		{f.Manager, c.Manager},
	}

	for _, check := range checks {
		if predicateActive(check.want) && check.have != check.want {
			return false
		}
	}

	if f.InterviewDate != nil {
		if c.InterviewDate == nil {
			return false
		}
		if !sameCalendarDay(*c.InterviewDate, *f.InterviewDate) {
			return false
		}
	}

	return true
}

func predicateActive(value string) bool {
	return value != "" && value != models.FilterAll
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SearchCandidates narrows candidates to those where at least one searchable
// field starts with the query, case-insensitively. A blank query returns the
// input unchanged. This is a prefix match, not a substring match: typing
// "ali" finds "Alice" but "lice" does not.
func SearchCandidates(candidates []models.Candidate, query string) []models.Candidate {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return candidates
	}

	matched := make([]models.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if matchesQuery(&c, q) {
			matched = append(matched, c)
		}
	}

	return matched
}

func matchesQuery(c *models.Candidate, query string) bool {
	fields := []string{
		c.Name,
		c.Email,
		c.Position,
		c.ContactNumber,
		c.ClientName,
		c.RecruiterName,
		c.InterviewMode,
		c.InterviewRound,
		c.Status1,
	}

	for _, field := range fields {
		if strings.HasPrefix(strings.ToLower(field), query) {
			return true
		}
	}

	return false
}
