package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rakapratama/talent-tracker/internal/models"
)

type CandidateRepository interface {
	Create(candidate *models.Candidate) error
	FindByID(id uuid.UUID) (*models.Candidate, error)
	FindAll() ([]models.Candidate, error)
	Update(candidate *models.Candidate) error
	Delete(id uuid.UUID) error
	FindScheduledBetween(from, to time.Time) ([]models.Candidate, error)
	CountAll() (int64, error)
	CountByStage() (map[string]int64, error)
	CountScheduledBetween(from, to time.Time) (int64, error)
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

// Create implements CandidateRepository.
func (r *candidateRepository) Create(candidate *models.Candidate) error {
	if err := r.db.Create(candidate).Error; err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}

	return nil
}

// FindByID implements CandidateRepository.
func (r *candidateRepository) FindByID(id uuid.UUID) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.Where("id = ?", id).First(&candidate).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("candidate not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}

	return &candidate, nil
}

// FindAll implements CandidateRepository. Results keep a stable order so the
// in-memory filter and search stages stay deterministic.
func (r *candidateRepository) FindAll() ([]models.Candidate, error) {
	var candidates []models.Candidate
	if err := r.db.Order("created_at DESC").Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	return candidates, nil
}

// Update implements CandidateRepository.
func (r *candidateRepository) Update(candidate *models.Candidate) error {
	candidate.UpdatedAt = time.Now()

	result := r.db.Model(&models.Candidate{}).
		Where("id = ?", candidate.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(candidate)

	if result.Error != nil {
		return fmt.Errorf("failed to update candidate: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("candidate not found")
	}

	return nil
}

// Delete implements CandidateRepository.
func (r *candidateRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Candidate{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete candidate: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("candidate not found")
	}

	return nil
}

// FindScheduledBetween implements CandidateRepository. It returns candidates
// whose interview date is set and falls inside [from, to].
func (r *candidateRepository) FindScheduledBetween(from, to time.Time) ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := r.db.
		Where("interview_date IS NOT NULL").
		Where("interview_date BETWEEN ? AND ?", from, to).
		Order("interview_date ASC").
		Find(&candidates).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find scheduled candidates: %w", err)
	}

	return candidates, nil
}

// CountAll implements CandidateRepository.
func (r *candidateRepository) CountAll() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Candidate{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count candidates: %w", err)
	}

	return count, nil
}

// CountByStage implements CandidateRepository. Stages with an empty status
// are grouped under "Unassigned".
func (r *candidateRepository) CountByStage() (map[string]int64, error) {
	type row struct {
		Status1 string
		Total   int64
	}

	var rows []row
	err := r.db.Model(&models.Candidate{}).
		Select("status_1, count(*) as total").
		Group("status_1").
		Scan(&rows).Error

	if err != nil {
		return nil, fmt.Errorf("failed to count candidates by stage: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		stage := r.Status1
		if stage == "" {
			stage = "Unassigned"
		}
		counts[stage] += r.Total
	}

	return counts, nil
}

// CountScheduledBetween implements CandidateRepository.
func (r *candidateRepository) CountScheduledBetween(from, to time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Candidate{}).
		Where("interview_date IS NOT NULL").
		Where("interview_date BETWEEN ? AND ?", from, to).
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("failed to count scheduled candidates: %w", err)
	}

	return count, nil
}
