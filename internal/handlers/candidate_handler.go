package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"rakapratama/talent-tracker/internal/models"
	"rakapratama/talent-tracker/internal/repositories"
	"rakapratama/talent-tracker/internal/services"
)

type CandidateHandler struct {
	candidateRepo repositories.CandidateRepository
	resumeService services.ResumeService
}

func NewCandidateHandler(
	candidateRepo repositories.CandidateRepository,
	resumeService services.ResumeService,
) *CandidateHandler {
	return &CandidateHandler{
		candidateRepo: candidateRepo,
		resumeService: resumeService,
	}
}

// HandleCreate handles POST /candidates
func (h *CandidateHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CandidateRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name is required",
		})
	}

	interviewDate, err := parseInterviewDate(req.InterviewDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid interview_date format",
		})
	}

	candidate := &models.Candidate{
		ID:             uuid.New(),
		Name:           req.Name,
		Email:          req.Email,
		ContactNumber:  req.ContactNumber,
		Position:       req.Position,
		ClientName:     req.ClientName,
		RecruiterName:  req.RecruiterName,
		Manager:        req.Manager,
		InterviewMode:  req.InterviewMode,
		InterviewRound: req.InterviewRound,
		Status1:        req.Status1,
		Status2:        req.Status2,
		InterviewDate:  interviewDate,
		InterviewTime:  req.InterviewTime,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := h.candidateRepo.Create(candidate); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create candidate",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(candidate)
}

// HandleList handles GET /candidates. Structured filters and the free-text
// search run in memory over the full ordered collection, so the response
// keeps the repository's ordering.
func (h *CandidateHandler) HandleList(c *fiber.Ctx) error {
	candidates, err := h.candidateRepo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list candidates",
		})
	}

	filter := models.CandidateFilter{
		InterviewMode:  c.Query("mode"),
		InterviewRound: c.Query("round"),
		Status1:        c.Query("status1"),
		Status2:        c.Query("status2"),
		ClientName:     c.Query("client_name"),
		Position:       c.Query("position"),
		Manager:        c.Query("manager"),
	}

	if dateParam := c.Query("interview_date"); dateParam != "" {
		date, err := time.Parse("2006-01-02", dateParam)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid interview_date format, expected YYYY-MM-DD",
			})
		}
		filter.InterviewDate = &date
	}

	candidates = services.FilterCandidates(candidates, filter)
	candidates = services.SearchCandidates(candidates, c.Query("search"))

	return c.JSON(models.CandidateListResponse{
		Total:      len(candidates),
		Candidates: candidates,
	})
}

// HandleGet handles GET /candidates/:id
func (h *CandidateHandler) HandleGet(c *fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate ID format",
		})
	}

	candidate, err := h.candidateRepo.FindByID(candidateID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Candidate not found",
		})
	}

	return c.JSON(candidate)
}

// HandleUpdate handles PUT /candidates/:id
func (h *CandidateHandler) HandleUpdate(c *fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate ID format",
		})
	}

	candidate, err := h.candidateRepo.FindByID(candidateID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Candidate not found",
		})
	}

	var req models.CandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name is required",
		})
	}

	interviewDate, err := parseInterviewDate(req.InterviewDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid interview_date format",
		})
	}

	candidate.Name = req.Name
	candidate.Email = req.Email
	candidate.ContactNumber = req.ContactNumber
	candidate.Position = req.Position
	candidate.ClientName = req.ClientName
	candidate.RecruiterName = req.RecruiterName
	candidate.Manager = req.Manager
	candidate.InterviewMode = req.InterviewMode
	candidate.InterviewRound = req.InterviewRound
	candidate.Status1 = req.Status1
	candidate.Status2 = req.Status2
	candidate.InterviewDate = interviewDate
	candidate.InterviewTime = req.InterviewTime

	if err := h.candidateRepo.Update(candidate); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update candidate",
		})
	}

	return c.JSON(candidate)
}

// HandleDelete handles DELETE /candidates/:id. Resume rows and vectors go
// with the candidate.
func (h *CandidateHandler) HandleDelete(c *fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate ID format",
		})
	}

	if err := h.candidateRepo.Delete(candidateID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Candidate not found",
		})
	}

	if err := h.resumeService.RemoveCandidateResumes(c.Context(), candidateID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Candidate deleted but resume cleanup failed: %v", err),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Candidate deleted",
	})
}

// parseInterviewDate accepts RFC 3339 timestamps or bare YYYY-MM-DD dates.
// Empty input means no interview is scheduled.
func parseInterviewDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}

	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
