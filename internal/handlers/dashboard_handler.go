package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"rakapratama/talent-tracker/internal/models"
	"rakapratama/talent-tracker/internal/repositories"
)

type DashboardHandler struct {
	candidateRepo repositories.CandidateRepository
}

func NewDashboardHandler(candidateRepo repositories.CandidateRepository) *DashboardHandler {
	return &DashboardHandler{candidateRepo: candidateRepo}
}

// HandleStats handles GET /dashboard/stats
func (h *DashboardHandler) HandleStats(c *fiber.Ctx) error {
	total, err := h.candidateRepo.CountAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute stats",
		})
	}

	byStage, err := h.candidateRepo.CountByStage()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute stats",
		})
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)

	today, err := h.candidateRepo.CountScheduledBetween(dayStart, dayEnd)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute stats",
		})
	}

	return c.JSON(models.DashboardStats{
		TotalCandidates:   total,
		InterviewsToday:   today,
		CandidatesByStage: byStage,
	})
}
