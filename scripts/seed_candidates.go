package main

import (
	"log"
	"time"

	"github.com/google/uuid"

	"rakapratama/talent-tracker/internal/config"
	"rakapratama/talent-tracker/internal/models"
	"rakapratama/talent-tracker/internal/repositories"
)

// Seeds a handful of candidates for local development, including one with an
// interview later today so the monitor has something to alert on.
func main() {
	log.Println("🚀 Seeding candidates...")

	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	candidateRepo := repositories.NewCandidateRepository(db)

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	nextWeek := today.AddDate(0, 0, 7)
	soon := now.Add(8 * time.Minute)

	candidates := []models.Candidate{
		{
			ID:             uuid.New(),
			Name:           "Alice Hartono",
			Email:          "alice.hartono@example.com",
			ContactNumber:  "+62 812 0001",
			Position:       "Backend Engineer",
			ClientName:     "Acme Corp",
			RecruiterName:  "Budi Santoso",
			Manager:        "Siti Rahma",
			InterviewMode:  "Online",
			InterviewRound: "Technical",
			Status1:        "Interview Scheduled",
			Status2:        "Active",
			InterviewDate:  &today,
			InterviewTime:  soon.Format("15:04"),
		},
		{
			ID:             uuid.New(),
			Name:           "Bram Wijaya",
			Email:          "bram.wijaya@example.com",
			ContactNumber:  "+62 812 0002",
			Position:       "Data Analyst",
			ClientName:     "Globex",
			RecruiterName:  "Budi Santoso",
			Manager:        "Siti Rahma",
			InterviewMode:  "Onsite",
			InterviewRound: "HR",
			Status1:        "Interview Scheduled",
			Status2:        "Active",
			InterviewDate:  &nextWeek,
			InterviewTime:  "2pm",
		},
		{
			ID:            uuid.New(),
			Name:          "Citra Lestari",
			Email:         "citra.lestari@example.com",
			ContactNumber: "+62 812 0003",
			Position:      "Frontend Engineer",
			ClientName:    "Initech",
			RecruiterName: "Dewi Anggraini",
			Manager:       "Siti Rahma",
			Status1:       "Sourced",
			Status2:       "Active",
			InterviewTime: "N/A",
		},
	}

	for i := range candidates {
		candidates[i].CreatedAt = time.Now()
		candidates[i].UpdatedAt = time.Now()

		if err := candidateRepo.Create(&candidates[i]); err != nil {
			log.Fatalf("❌ Failed to seed candidate %s: %v", candidates[i].Name, err)
		}
		log.Printf("✅ Seeded %s\n", candidates[i].Name)
	}

	log.Printf("🎉 Seeded %d candidates\n", len(candidates))
}
