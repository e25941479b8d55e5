package models

import "time"

// FilterAll is the dropdown value meaning "no restriction" for a field. A
// field set to FilterAll behaves exactly like an unset field.
const FilterAll = "All"

// CandidateFilter holds one optional predicate per field. All active
// predicates must match (logical AND). The zero value matches everything.
type CandidateFilter struct {
	InterviewMode  string
	InterviewRound string
	Status1        string
	Status2        string
	ClientName     string
	Position       string
	Manager        string
	InterviewDate  *time.Time
}

// IsZero reports whether no predicate is active.
func (f CandidateFilter) IsZero() bool {
	for _, v := range []string{
		f.InterviewMode, f.InterviewRound, f.Status1, f.Status2,
		f.ClientName, f.Position, f.Manager,
	} {
		if v != "" && v != FilterAll {
			return false
		}
	}
	return f.InterviewDate == nil
}
