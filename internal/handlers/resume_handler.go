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

type ResumeHandler struct {
	resumeRepo     repositories.ResumeRepository
	candidateRepo  repositories.CandidateRepository
	resumeService  services.ResumeService
	storageService services.StorageService
	maxFileSize    int64
}

func NewResumeHandler(
	resumeRepo repositories.ResumeRepository,
	candidateRepo repositories.CandidateRepository,
	resumeService services.ResumeService,
	storageService services.StorageService,
	maxFileSize int64,
) *ResumeHandler {
	return &ResumeHandler{
		resumeRepo:     resumeRepo,
		candidateRepo:  candidateRepo,
		resumeService:  resumeService,
		storageService: storageService,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /candidates/:id/resume with a "resume" PDF form
// field. The resume is stored, embedded, and summarized before the response
// returns.
func (h *ResumeHandler) HandleUpload(c *fiber.Ctx) error {
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

	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing 'resume' file field",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, err := h.storageService.SaveResume(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}

	resume := &models.Resume{
		ID:               uuid.New(),
		CandidateID:      candidate.ID,
		Filename:         filename,
		OriginalFileName: file.Filename,
		FilePath:         filePath,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.resumeRepo.Create(resume); err != nil {
		// Cleanup uploaded file if database insert fails
		h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume record: %v", err),
		})
	}

	if err := h.resumeService.IngestResume(c.Context(), candidate, resume); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to process resume: %v", err),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.ResumeUploadResponse{
		ID:           resume.ID.String(),
		CandidateID:  candidate.ID.String(),
		Filename:     resume.Filename,
		OriginalName: resume.OriginalFileName,
		PageCount:    resume.PageCount,
		Summary:      resume.Summary,
	})
}

// HandleSearch handles GET /resumes/search?q=...&limit=...
func (h *ResumeHandler) HandleSearch(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "q parameter is required",
		})
	}

	limit := c.QueryInt("limit", 5)

	matches, err := h.resumeService.SearchResumes(c.Context(), query, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("resume search failed: %v", err),
		})
	}

	if matches == nil {
		matches = []models.ResumeMatch{}
	}

	return c.JSON(models.ResumeSearchResponse{
		Query:   query,
		Matches: matches,
	})
}
