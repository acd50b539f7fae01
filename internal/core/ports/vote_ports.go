package ports

import (
	"context"

	"github.com/google/uuid"
	"pollsite/internal/core/domain"
)

type ChoiceRepository interface {
	IncrementVotes(ctx context.Context, choiceID uuid.UUID) error
}

type CastVoteInput struct {
	QuestionID string
	ChoiceID   string
}

type VoteService interface {
	// Cast returns the resolved question so callers can redisplay the
	// voting form when the submission carried no usable choice.
	Cast(ctx context.Context, input CastVoteInput) (*domain.Question, error)
}
