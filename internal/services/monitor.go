package services

import (
	"log"
	"sync"
	"time"

	"rakapratama/talent-tracker/internal/models"
)

// ScheduleSource yields the candidates whose interview date falls inside a
// time range. Satisfied by repositories.CandidateRepository.
type ScheduleSource interface {
	FindScheduledBetween(from, to time.Time) ([]models.Candidate, error)
}

// InterviewMonitor watches today's interview schedule and raises an alert for
// each interview entering its lead-time window, at most once per
// (candidate, scheduled time) pairing for the monitor's lifetime.
type InterviewMonitor interface {
	Start()
	Stop()
}

type interviewMonitor struct {
	source   ScheduleSource
	feed     *AlertFeed
	mailer   ReminderMailer // nil when email reminders are not configured
	interval time.Duration
	leadTime time.Duration
	now      func() time.Time

	notified map[string]struct{}
	stopChan chan struct{}
	wg       sync.WaitGroup
}

func NewInterviewMonitor(
	source ScheduleSource,
	feed *AlertFeed,
	mailer ReminderMailer,
	interval time.Duration,
	leadTime time.Duration,
) InterviewMonitor {
	if interval <= 0 {
		interval = 60 * time.Second
	}
	if leadTime <= 0 {
		leadTime = 10 * time.Minute
	}

	return &interviewMonitor{
		source:   source,
		feed:     feed,
		mailer:   mailer,
		interval: interval,
		leadTime: leadTime,
		now:      time.Now,
		notified: make(map[string]struct{}),
		stopChan: make(chan struct{}),
	}
}

// Start implements InterviewMonitor. The first check runs immediately,
// followed by one check per interval until Stop is called.
func (m *interviewMonitor) Start() {
	log.Printf("🔔 Interview monitor started (every %s, %s lead time)\n", m.interval, m.leadTime)

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		m.tick()

		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-m.stopChan:
				log.Println("🔔 Interview monitor stopped")
				return
			case <-ticker.C:
				m.tick()
			}
		}
	}()
}

// Stop implements InterviewMonitor. Accumulated dedup state is discarded with
// the monitor; a restart may re-alert interviews still inside their window.
func (m *interviewMonitor) Stop() {
	close(m.stopChan)
	m.wg.Wait()
}

// tick scans today's interviews once. Any failure is logged and absorbed so
// the next tick runs normally.
func (m *interviewMonitor) tick() {
	now := m.now()
	currentMinutes := now.Hour()*60 + now.Minute()

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)

	candidates, err := m.source.FindScheduledBetween(dayStart, dayEnd)
	if err != nil {
		log.Printf("⚠️  Interview check failed: %v\n", err)
		return
	}

	leadMinutes := int(m.leadTime.Minutes())

	for _, c := range candidates {
		if c.Name == "" || c.InterviewTime == "" {
			continue
		}

		interviewMinutes, ok := ParseTimeOfDay(c.InterviewTime)
		if !ok {
			continue
		}

		// Alert only for interviews strictly in the future and at most
		// leadMinutes away. An interview starting this exact minute does
		// not alert: the reminder is a heads-up, not a start signal.
		delta := interviewMinutes - currentMinutes
		if delta <= 0 || delta > leadMinutes {
			continue
		}

		alert := models.InterviewAlert{
			CandidateID:   c.ID,
			Name:          c.Name,
			ClientName:    c.ClientName,
			Position:      c.Position,
			InterviewTime: c.InterviewTime,
			MinutesUntil:  delta,
			CreatedAt:     now,
		}

		key := alert.DedupKey()
		if _, seen := m.notified[key]; seen {
			continue
		}
		m.notified[key] = struct{}{}

		m.feed.Push(alert)
		log.Printf("🔔 Interview in %d min: %s — %s at %s (%s)\n",
			alert.MinutesUntil, alert.Name, alert.Position, alert.ClientName, alert.InterviewTime)

		if m.mailer != nil {
			if err := m.mailer.SendInterviewReminder(alert); err != nil {
				log.Printf("⚠️  Failed to send reminder email for %s: %v\n", alert.Name, err)
			}
		}
	}
}
