package services

import (
	"context"

	"github.com/google/uuid"
	"pollsite/internal/core/domain"
	"pollsite/internal/core/ports"
)

type voteService struct {
	questionRepo ports.QuestionRepository
	choiceRepo   ports.ChoiceRepository
}

func NewVoteService(questionRepo ports.QuestionRepository, choiceRepo ports.ChoiceRepository) ports.VoteService {
	return &voteService{
		questionRepo: questionRepo,
		choiceRepo:   choiceRepo,
	}
}

// Cast records one vote for a choice belonging to the given question. The
// question lookup applies no publication-window filter: any existing id can
// receive a vote even before its publication date. When the submission names
// no usable choice, Cast returns the question together with
// domain.ErrNoChoiceSelected so the form can be redisplayed; no counter
// changes in that case.
func (s *voteService) Cast(ctx context.Context, input ports.CastVoteInput) (*domain.Question, error) {
	questionID, err := uuid.Parse(input.QuestionID)
	if err != nil {
		return nil, domain.ErrQuestionNotFound
	}

	question, err := s.questionRepo.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}

	choiceID, err := uuid.Parse(input.ChoiceID)
	if err != nil {
		return question, domain.ErrNoChoiceSelected
	}

	choice, ok := question.ChoiceByID(choiceID)
	if !ok {
		return question, domain.ErrNoChoiceSelected
	}

	if err := s.choiceRepo.IncrementVotes(ctx, choice.ID); err != nil {
		return question, err
	}

	return question, nil
}
