package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rakapratama/talent-tracker/internal/models"
)

type ResumeRepository interface {
	Create(resume *models.Resume) error
	FindByID(id uuid.UUID) (*models.Resume, error)
	FindByCandidateID(candidateID uuid.UUID) ([]models.Resume, error)
	UpdateIngestResult(id uuid.UUID, pageCount int, summary string) error
	DeleteByCandidateID(candidateID uuid.UUID) error
}

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

// Create implements ResumeRepository.
func (r *resumeRepository) Create(resume *models.Resume) error {
	if err := r.db.Create(resume).Error; err != nil {
		return fmt.Errorf("failed to create resume: %w", err)
	}

	return nil
}

// FindByID implements ResumeRepository.
func (r *resumeRepository) FindByID(id uuid.UUID) (*models.Resume, error) {
	var resume models.Resume
	if err := r.db.Where("id = ?", id).First(&resume).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("resume not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find resume: %w", err)
	}

	return &resume, nil
}

// FindByCandidateID implements ResumeRepository.
func (r *resumeRepository) FindByCandidateID(candidateID uuid.UUID) ([]models.Resume, error) {
	var resumes []models.Resume
	err := r.db.
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC").
		Find(&resumes).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find resumes: %w", err)
	}

	return resumes, nil
}

// UpdateIngestResult implements ResumeRepository.
func (r *resumeRepository) UpdateIngestResult(id uuid.UUID, pageCount int, summary string) error {
	result := r.db.Model(&models.Resume{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"page_count": pageCount,
			"summary":    summary,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update resume ingest result: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("resume not found")
	}

	return nil
}

// DeleteByCandidateID implements ResumeRepository.
func (r *resumeRepository) DeleteByCandidateID(candidateID uuid.UUID) error {
	if err := r.db.Where("candidate_id = ?", candidateID).Delete(&models.Resume{}).Error; err != nil {
		return fmt.Errorf("failed to delete resumes: %w", err)
	}

	return nil
}
