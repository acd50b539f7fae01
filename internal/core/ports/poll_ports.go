package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"pollsite/internal/core/domain"
)

type QuestionRepository interface {
	Save(ctx context.Context, question *domain.Question) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	GetPublishedByID(ctx context.Context, id uuid.UUID, now time.Time) (*domain.Question, error)
	ListPublished(ctx context.Context, now time.Time, limit int) ([]*domain.Question, error)
}

type CreateQuestionInput struct {
	Text    string
	PubDate *time.Time
	Choices []string
}

type PollService interface {
	Create(ctx context.Context, input CreateQuestionInput) (*domain.Question, error)
	LatestQuestions(ctx context.Context) ([]*domain.Question, error)
	GetQuestion(ctx context.Context, id string) (*domain.Question, error)
}
