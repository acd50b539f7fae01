package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"pollsite/internal/core/domain"
	"pollsite/internal/core/ports"
)

// latestQuestionCount caps the index page at the five most recent polls.
const latestQuestionCount = 5

type pollService struct {
	repo ports.QuestionRepository
}

func NewPollService(repo ports.QuestionRepository) ports.PollService {
	return &pollService{
		repo: repo,
	}
}

func (s *pollService) Create(ctx context.Context, input ports.CreateQuestionInput) (*domain.Question, error) {
	if input.Text == "" {
		return nil, fmt.Errorf("%w: question text is required", domain.ErrInvalidQuestion)
	}

	pubDate := time.Now()
	if input.PubDate != nil {
		pubDate = *input.PubDate
	}

	questionID := uuid.New()
	question := &domain.Question{
		ID:      questionID,
		Text:    input.Text,
		PubDate: pubDate,
	}

	for _, choiceText := range input.Choices {
		if choiceText == "" {
			continue
		}
		question.Choices = append(question.Choices, domain.Choice{
			ID:         uuid.New(),
			QuestionID: questionID,
			Text:       choiceText,
		})
	}

	if len(question.Choices) == 0 {
		return nil, fmt.Errorf("%w: at least one choice is required", domain.ErrInvalidQuestion)
	}

	if err := s.repo.Save(ctx, question); err != nil {
		return nil, err
	}

	return question, nil
}

// LatestQuestions returns the five most recently published questions that
// have at least one choice, newest first.
func (s *pollService) LatestQuestions(ctx context.Context) ([]*domain.Question, error) {
	return s.repo.ListPublished(ctx, time.Now(), latestQuestionCount)
}

// GetQuestion resolves a question for the detail and results pages. Questions
// with a future publication date are indistinguishable from missing ones.
func (s *pollService) GetQuestion(ctx context.Context, id string) (*domain.Question, error) {
	questionID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrQuestionNotFound
	}

	return s.repo.GetPublishedByID(ctx, questionID, time.Now())
}
