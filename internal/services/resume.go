package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"rakapratama/talent-tracker/internal/models"
	"rakapratama/talent-tracker/internal/repositories"
)

const (
	resumeChunkSize    = 1000
	resumeChunkOverlap = 150
)

type ResumeService interface {
	IngestResume(ctx context.Context, candidate *models.Candidate, resume *models.Resume) error
	SearchResumes(ctx context.Context, query string, limit int) ([]models.ResumeMatch, error)
	RemoveCandidateResumes(ctx context.Context, candidateID uuid.UUID) error
}

type resumeService struct {
	resumeRepo    repositories.ResumeRepository
	candidateRepo repositories.CandidateRepository
	geminiService GeminiService
	vectorStore   VectorStoreService
	pdfParser     PDFParserService
	chunker       TextChunker
	promptBuilder *PromptBuilder
	maxRetries    int
}

func NewResumeService(
	resumeRepo repositories.ResumeRepository,
	candidateRepo repositories.CandidateRepository,
	geminiService GeminiService,
	vectorStore VectorStoreService,
	pdfParser PDFParserService,
	maxRetries int,
) ResumeService {
	return &resumeService{
		resumeRepo:    resumeRepo,
		candidateRepo: candidateRepo,
		geminiService: geminiService,
		vectorStore:   vectorStore,
		pdfParser:     pdfParser,
		chunker:       NewTextChunker(),
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
	}
}

// IngestResume extracts the resume text, embeds it chunk by chunk into the
// vector store, and generates a short summary. The summary is best-effort: a
// failed generation leaves the resume searchable but unsummarized.
func (s *resumeService) IngestResume(ctx context.Context, candidate *models.Candidate, resume *models.Resume) error {
	log.Printf("📄 Ingesting resume %s for candidate %s\n", resume.ID, candidate.Name)

	content, err := s.pdfParser.ExtractResumeText(resume.FilePath)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	chunks := s.chunker.ChunkText(content.Text, resumeChunkSize, resumeChunkOverlap)
	for i, chunk := range chunks {
		embedding, err := s.geminiService.GenerateEmbedding(ctx, chunk)
		if err != nil {
			return fmt.Errorf("failed to embed resume chunk %d: %w", i, err)
		}

		err = s.vectorStore.UpsertResumeChunk(
			ctx,
			resume.ID.String(),
			candidate.ID.String(),
			i,
			chunk,
			embedding,
		)
		if err != nil {
			return fmt.Errorf("failed to store resume chunk %d: %w", i, err)
		}
	}

	log.Printf("✅ Embedded %d resume chunks for %s\n", len(chunks), candidate.Name)

	summary := ""
	prompt := s.promptBuilder.BuildResumeSummaryPrompt(candidate, content.Text)
	generated, err := s.geminiService.GenerateTextWithRetry(ctx, prompt, 0.2, s.maxRetries)
	if err != nil {
		log.Printf("⚠️  Failed to summarize resume %s: %v\n", resume.ID, err)
	} else {
		summary = generated
	}

	if err := s.resumeRepo.UpdateIngestResult(resume.ID, content.PageCount, summary); err != nil {
		return fmt.Errorf("failed to record ingest result: %w", err)
	}

	resume.PageCount = content.PageCount
	resume.Summary = summary

	return nil
}

// SearchResumes embeds the query and returns the best-matching candidates,
// one entry per candidate keyed by their highest-scoring chunk.
func (s *resumeService) SearchResumes(ctx context.Context, query string, limit int) ([]models.ResumeMatch, error) {
	if limit <= 0 {
		limit = 5
	}

	queryEmbedding, err := s.geminiService.GenerateEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	// Over-fetch chunks since several may belong to the same candidate.
	chunkMatches, err := s.vectorStore.SearchResumes(ctx, queryEmbedding, limit*4)
	if err != nil {
		return nil, fmt.Errorf("failed to search resumes: %w", err)
	}

	var matches []models.ResumeMatch
	seen := make(map[string]struct{})

	for _, chunk := range chunkMatches {
		if len(matches) >= limit {
			break
		}
		if _, dup := seen[chunk.CandidateID]; dup {
			continue
		}
		seen[chunk.CandidateID] = struct{}{}

		candidateID, err := uuid.Parse(chunk.CandidateID)
		if err != nil {
			continue
		}

		candidate, err := s.candidateRepo.FindByID(candidateID)
		if err != nil {
			// Candidate was deleted but its vectors lingered; skip.
			continue
		}

		matches = append(matches, models.ResumeMatch{
			Candidate: *candidate,
			Score:     chunk.Score,
			Excerpt:   excerpt(chunk.Text, 240),
		})
	}

	return matches, nil
}

// RemoveCandidateResumes drops a candidate's resume rows and vectors. Called
// on candidate deletion.
func (s *resumeService) RemoveCandidateResumes(ctx context.Context, candidateID uuid.UUID) error {
	if err := s.vectorStore.DeleteCandidateChunks(ctx, candidateID.String()); err != nil {
		return fmt.Errorf("failed to delete resume vectors: %w", err)
	}

	if err := s.resumeRepo.DeleteByCandidateID(candidateID); err != nil {
		return fmt.Errorf("failed to delete resume records: %w", err)
	}

	return nil
}

func excerpt(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	return text[:maxLen] + "…"
}
