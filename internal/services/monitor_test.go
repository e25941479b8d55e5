package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rakapratama/talent-tracker/internal/models"
)

type fakeScheduleSource struct {
	candidates []models.Candidate
	err        error
	calls      int
}

func (f *fakeScheduleSource) FindScheduledBetween(from, to time.Time) ([]models.Candidate, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.candidates, nil
}

type recordingMailer struct {
	sent []models.InterviewAlert
	err  error
}

func (m *recordingMailer) SendInterviewReminder(alert models.InterviewAlert) error {
	m.sent = append(m.sent, alert)
	return m.err
}

// tenOClock is the fixed "now" used by the monitor tests: 10:00, i.e. 600
// minutes since midnight.
var tenOClock = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func newTestMonitor(source ScheduleSource, mailer ReminderMailer) *interviewMonitor {
	return &interviewMonitor{
		source:   source,
		feed:     NewAlertFeed(10),
		mailer:   mailer,
		interval: time.Minute,
		leadTime: 10 * time.Minute,
		now:      func() time.Time { return tenOClock },
		notified: make(map[string]struct{}),
		stopChan: make(chan struct{}),
	}
}

func scheduledCandidate(name, interviewTime string) models.Candidate {
	date := tenOClock
	return models.Candidate{
		ID:            uuid.New(),
		Name:          name,
		ClientName:    "Acme Corp",
		Position:      "Backend Engineer",
		InterviewDate: &date,
		InterviewTime: interviewTime,
	}
}

func TestMonitorAlertsInsideLeadWindow(t *testing.T) {
	source := &fakeScheduleSource{
		candidates: []models.Candidate{scheduledCandidate("Alice Hartono", "10:05")},
	}
	m := newTestMonitor(source, nil)

	m.tick()

	alerts := m.feed.Recent(0)
	require.Len(t, alerts, 1)
	assert.Equal(t, "Alice Hartono", alerts[0].Name)
	assert.Equal(t, "Acme Corp", alerts[0].ClientName)
	assert.Equal(t, "Backend Engineer", alerts[0].Position)
	assert.Equal(t, "10:05", alerts[0].InterviewTime)
	assert.Equal(t, 5, alerts[0].MinutesUntil)
}

func TestMonitorWindowBoundaries(t *testing.T) {
	tests := []struct {
		name          string
		interviewTime string
		wantAlert     bool
	}{
		{name: "starting right now", interviewTime: "10:00", wantAlert: false},
		{name: "one minute away", interviewTime: "10:01", wantAlert: true},
		{name: "at the window edge", interviewTime: "10:10", wantAlert: true},
		{name: "just past the window", interviewTime: "10:11", wantAlert: false},
		{name: "already started", interviewTime: "9:55", wantAlert: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := &fakeScheduleSource{
				candidates: []models.Candidate{scheduledCandidate("Alice Hartono", tt.interviewTime)},
			}
			m := newTestMonitor(source, nil)

			m.tick()

			if tt.wantAlert {
				assert.Equal(t, 1, m.feed.Len())
			} else {
				assert.Equal(t, 0, m.feed.Len())
			}
		})
	}
}

func TestMonitorDedupAcrossTicks(t *testing.T) {
	source := &fakeScheduleSource{
		candidates: []models.Candidate{scheduledCandidate("Alice Hartono", "10:05")},
	}
	m := newTestMonitor(source, nil)

	m.tick()
	m.tick()

	assert.Equal(t, 1, m.feed.Len())
}

func TestMonitorRescheduledTimeAlertsAgain(t *testing.T) {
	candidate := scheduledCandidate("Alice Hartono", "10:05")
	source := &fakeScheduleSource{candidates: []models.Candidate{candidate}}
	m := newTestMonitor(source, nil)

	m.tick()
	require.Equal(t, 1, m.feed.Len())

	// Same candidate, new time: the dedup key changes, so a fresh alert fires.
	source.candidates[0].InterviewTime = "10:08"
	m.tick()

	assert.Equal(t, 2, m.feed.Len())
}

func TestMonitorSkipsUnparsableAndIncomplete(t *testing.T) {
	source := &fakeScheduleSource{
		candidates: []models.Candidate{
			scheduledCandidate("", "10:05"),
			scheduledCandidate("Bram Wijaya", ""),
			scheduledCandidate("Citra Lestari", "N/A"),
			scheduledCandidate("Dewi Anggraini", "not a time"),
		},
	}
	m := newTestMonitor(source, nil)

	m.tick()

	assert.Equal(t, 0, m.feed.Len())
}

func TestMonitorAbsorbsSourceFailure(t *testing.T) {
	source := &fakeScheduleSource{
		candidates: []models.Candidate{scheduledCandidate("Alice Hartono", "10:05")},
		err:        fmt.Errorf("connection refused"),
	}
	m := newTestMonitor(source, nil)

	m.tick()
	assert.Equal(t, 0, m.feed.Len())

	// The next tick proceeds normally once the source recovers.
	source.err = nil
	m.tick()
	assert.Equal(t, 1, m.feed.Len())
	assert.Equal(t, 2, source.calls)
}

func TestMonitorSendsReminderEmail(t *testing.T) {
	source := &fakeScheduleSource{
		candidates: []models.Candidate{scheduledCandidate("Alice Hartono", "10:05")},
	}
	mailer := &recordingMailer{}
	m := newTestMonitor(source, mailer)

	m.tick()

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "Alice Hartono", mailer.sent[0].Name)
}

func TestMonitorMailerFailureDoesNotBlockAlerts(t *testing.T) {
	source := &fakeScheduleSource{
		candidates: []models.Candidate{scheduledCandidate("Alice Hartono", "10:05")},
	}
	mailer := &recordingMailer{err: fmt.Errorf("smtp down")}
	m := newTestMonitor(source, mailer)

	m.tick()

	assert.Equal(t, 1, m.feed.Len())
}

func TestMonitorStartStop(t *testing.T) {
	source := &fakeScheduleSource{}
	m := newTestMonitor(source, nil)

	m.Start()
	m.Stop()

	// The immediate first tick ran before Stop returned.
	assert.GreaterOrEqual(t, source.calls, 1)
}
