package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rakapratama/talent-tracker/internal/models"
)

func feedAlert(name string) models.InterviewAlert {
	return models.InterviewAlert{
		CandidateID:   uuid.New(),
		Name:          name,
		InterviewTime: "10:05",
		MinutesUntil:  5,
		CreatedAt:     time.Now(),
	}
}

func TestAlertFeedNewestFirst(t *testing.T) {
	feed := NewAlertFeed(10)
	feed.Push(feedAlert("first"))
	feed.Push(feedAlert("second"))
	feed.Push(feedAlert("third"))

	recent := feed.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "third", recent[0].Name)
	assert.Equal(t, "second", recent[1].Name)
}

func TestAlertFeedCapacity(t *testing.T) {
	feed := NewAlertFeed(3)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		feed.Push(feedAlert(name))
	}

	assert.Equal(t, 3, feed.Len())

	recent := feed.Recent(0)
	require.Len(t, recent, 3)
	assert.Equal(t, "e", recent[0].Name)
	assert.Equal(t, "c", recent[2].Name)
}

func TestAlertFeedRecentLimitLargerThanFeed(t *testing.T) {
	feed := NewAlertFeed(10)
	feed.Push(feedAlert("only"))

	recent := feed.Recent(50)
	require.Len(t, recent, 1)
	assert.Equal(t, "only", recent[0].Name)
}
