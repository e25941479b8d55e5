package models

type CandidateRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email"`
	ContactNumber  string `json:"contact_number"`
	Position       string `json:"position"`
	ClientName     string `json:"client_name"`
	RecruiterName  string `json:"recruiter_name"`
	Manager        string `json:"manager"`
	InterviewMode  string `json:"interview_mode"`
	InterviewRound string `json:"interview_round"`
	Status1        string `json:"status_1"`
	Status2        string `json:"status_2"`
	InterviewDate  string `json:"interview_date"` // RFC 3339 or YYYY-MM-DD, empty = not scheduled
	InterviewTime  string `json:"interview_time"`
}

type CandidateListResponse struct {
	Total      int         `json:"total"`
	Candidates []Candidate `json:"candidates"`
}

type ResumeUploadResponse struct {
	ID           string `json:"id"`
	CandidateID  string `json:"candidate_id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	PageCount    int    `json:"page_count"`
	Summary      string `json:"summary,omitempty"`
}

type ResumeMatch struct {
	Candidate Candidate `json:"candidate"`
	Score     float32   `json:"score"`
	Excerpt   string    `json:"excerpt"`
}

type ResumeSearchResponse struct {
	Query   string        `json:"query"`
	Matches []ResumeMatch `json:"matches"`
}

type DashboardStats struct {
	TotalCandidates   int64            `json:"total_candidates"`
	InterviewsToday   int64            `json:"interviews_today"`
	CandidatesByStage map[string]int64 `json:"candidates_by_stage"`
}
