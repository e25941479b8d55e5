package models

import (
	"time"

	"github.com/google/uuid"
)

// Candidate is the tracked profile of a job applicant. The enum-like string
// fields (InterviewMode, InterviewRound, Status1, Status2) are owned by the
// client application; the API stores and compares them without validation.
type Candidate struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name           string     `gorm:"type:text" json:"name"`
	Email          string     `gorm:"type:text" json:"email"`
	ContactNumber  string     `gorm:"type:text" json:"contact_number"`
	Position       string     `gorm:"type:text" json:"position"`
	ClientName     string     `gorm:"type:text" json:"client_name"`
	RecruiterName  string     `gorm:"type:text" json:"recruiter_name"`
	Manager        string     `gorm:"type:text" json:"manager"`
	InterviewMode  string     `gorm:"type:text" json:"interview_mode"`
	InterviewRound string     `gorm:"type:text" json:"interview_round"`
	Status1        string     `gorm:"type:text" json:"status_1"`
	Status2        string     `gorm:"type:text" json:"status_2"`
	InterviewDate  *time.Time `gorm:"type:timestamp" json:"interview_date"`
	// InterviewTime is free text: "14:30", "2pm", "N/A" or empty.
	InterviewTime string    `gorm:"type:text" json:"interview_time"`
	CreatedAt     time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt     time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (c *Candidate) TableName() string {
	return "candidates"
}
