package models

import (
	"time"

	"github.com/google/uuid"
)

// Resume is an uploaded CV document attached to a candidate. The extracted
// text itself is not stored here; it lives as embedded chunks in the vector
// store. Summary is the AI-generated digest shown on the candidate page.
type Resume struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CandidateID      uuid.UUID `gorm:"type:uuid;not null;index" json:"candidate_id"`
	Filename         string    `gorm:"type:text" json:"filename"`
	OriginalFileName string    `gorm:"type:text" json:"original_filename"`
	FilePath         string    `gorm:"type:text" json:"file_path"`
	PageCount        int       `gorm:"type:int" json:"page_count"`
	Summary          string    `gorm:"type:text" json:"summary"`
	CreatedAt        time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt        time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`

	Candidate Candidate `gorm:"foreignKey:CandidateID" json:"-"`
}

func (r *Resume) TableName() string {
	return "resumes"
}
