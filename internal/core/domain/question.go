package domain

import (
	"time"

	"github.com/google/uuid"
)

type Question struct {
	ID      uuid.UUID `json:"id"`
	Text    string    `json:"text"`
	PubDate time.Time `json:"pub_date"`
	Choices []Choice  `json:"choices"`
}

type Choice struct {
	ID         uuid.UUID `json:"id"`
	QuestionID uuid.UUID `json:"question_id"`
	Text       string    `json:"text"`
	Votes      int64     `json:"votes"`
}

// IsPublished reports whether the question is visible at the given time.
func (q Question) IsPublished(now time.Time) bool {
	return !q.PubDate.After(now)
}

// WasPublishedRecently reports whether the question was published within
// the last 24 hours. Future-dated questions are never recent.
func (q Question) WasPublishedRecently(now time.Time) bool {
	return q.IsPublished(now) && !q.PubDate.Before(now.Add(-24*time.Hour))
}

// ChoiceByID returns the choice with the given id, or false when the id
// does not belong to this question.
func (q Question) ChoiceByID(id uuid.UUID) (Choice, bool) {
	for _, c := range q.Choices {
		if c.ID == id {
			return c, true
		}
	}
	return Choice{}, false
}

// TotalVotes sums the vote counters across all choices.
func (q Question) TotalVotes() int64 {
	var total int64
	for _, c := range q.Choices {
		total += c.Votes
	}
	return total
}
