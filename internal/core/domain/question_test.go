package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWasPublishedRecentlyWithFutureQuestion(t *testing.T) {
	now := time.Now()
	question := Question{PubDate: now.Add(30 * 24 * time.Hour)}

	assert.False(t, question.WasPublishedRecently(now))
}

func TestWasPublishedRecentlyWithOldQuestion(t *testing.T) {
	now := time.Now()
	question := Question{PubDate: now.Add(-30 * 24 * time.Hour)}

	assert.False(t, question.WasPublishedRecently(now))
}

func TestWasPublishedRecentlyWithRecentQuestion(t *testing.T) {
	now := time.Now()
	question := Question{PubDate: now.Add(-time.Hour)}

	assert.True(t, question.WasPublishedRecently(now))
}

func TestWasPublishedRecentlyJustOverOneDay(t *testing.T) {
	now := time.Now()
	question := Question{PubDate: now.Add(-24*time.Hour - time.Minute)}

	assert.False(t, question.WasPublishedRecently(now))
}

func TestIsPublished(t *testing.T) {
	now := time.Now()

	assert.True(t, Question{PubDate: now.Add(-time.Minute)}.IsPublished(now))
	assert.True(t, Question{PubDate: now}.IsPublished(now))
	assert.False(t, Question{PubDate: now.Add(time.Minute)}.IsPublished(now))
}

func TestChoiceByID(t *testing.T) {
	first := Choice{ID: uuid.New(), Text: "First"}
	second := Choice{ID: uuid.New(), Text: "Second"}
	question := Question{Choices: []Choice{first, second}}

	found, ok := question.ChoiceByID(second.ID)
	assert.True(t, ok)
	assert.Equal(t, second, found)

	_, ok = question.ChoiceByID(uuid.New())
	assert.False(t, ok)
}

func TestTotalVotes(t *testing.T) {
	question := Question{Choices: []Choice{
		{Votes: 3},
		{Votes: 0},
		{Votes: 4},
	}}

	assert.Equal(t, int64(7), question.TotalVotes())
	assert.Equal(t, int64(0), Question{}.TotalVotes())
}
