package models

import (
	"time"

	"github.com/google/uuid"
)

// InterviewAlert is raised when a candidate's interview is about to start.
// Alerts are transient: they live in the in-app feed and may be mailed out,
// but are never persisted.
type InterviewAlert struct {
	CandidateID   uuid.UUID `json:"candidate_id"`
	Name          string    `json:"name"`
	ClientName    string    `json:"client_name"`
	Position      string    `json:"position"`
	InterviewTime string    `json:"interview_time"`
	MinutesUntil  int       `json:"minutes_until"`
	CreatedAt     time.Time `json:"created_at"`
}

// DedupKey identifies one (candidate, scheduled time) pairing. The raw time
// string is used on purpose: rescheduling to a new time yields a new key and
// therefore a fresh alert.
func (a *InterviewAlert) DedupKey() string {
	return a.CandidateID.String() + "-" + a.InterviewTime
}
