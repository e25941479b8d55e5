package services

import (
	"sync"

	"rakapratama/talent-tracker/internal/models"
)

// AlertFeed is the in-app surface for interview alerts: a bounded, in-memory
// list the dashboard polls for banner notifications. Old entries fall off the
// front once capacity is reached. Nothing is persisted.
type AlertFeed struct {
	mu       sync.Mutex
	capacity int
	alerts   []models.InterviewAlert
}

func NewAlertFeed(capacity int) *AlertFeed {
	if capacity <= 0 {
		capacity = 100
	}

	return &AlertFeed{
		capacity: capacity,
		alerts:   make([]models.InterviewAlert, 0, capacity),
	}
}

func (f *AlertFeed) Push(alert models.InterviewAlert) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.alerts = append(f.alerts, alert)
	if len(f.alerts) > f.capacity {
		f.alerts = f.alerts[len(f.alerts)-f.capacity:]
	}
}

// Recent returns up to limit alerts, newest first. limit <= 0 returns all
// retained alerts.
func (f *AlertFeed) Recent(limit int) []models.InterviewAlert {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := len(f.alerts)
	if limit <= 0 || limit > n {
		limit = n
	}

	recent := make([]models.InterviewAlert, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		recent = append(recent, f.alerts[i])
	}

	return recent
}

func (f *AlertFeed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.alerts)
}
