package services

import (
	"fmt"
	"strings"

	"rakapratama/talent-tracker/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResumeSummaryPrompt asks for a short recruiter-facing digest of a
// resume. The resume text is truncated to keep the prompt inside the model's
// context window.
func (pb *PromptBuilder) BuildResumeSummaryPrompt(candidate *models.Candidate, resumeText string) string {
	const maxResumeChars = 20000
	if len(resumeText) > maxResumeChars {
		resumeText = resumeText[:maxResumeChars]
	}

	var sb strings.Builder
	sb.WriteString("You are an assistant for a recruitment team.\n")
	sb.WriteString("Summarize the following resume in at most 4 sentences, focusing on skills, ")
	sb.WriteString("years of experience, and notable achievements. Respond with plain text only.\n\n")
	sb.WriteString(fmt.Sprintf("Candidate name: %s\n", candidate.Name))
	if candidate.Position != "" {
		sb.WriteString(fmt.Sprintf("Applying for: %s\n", candidate.Position))
	}
	sb.WriteString("\nResume:\n")
	sb.WriteString(resumeText)

	return sb.String()
}
