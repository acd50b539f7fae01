package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"pollsite/internal/core/domain"
	"pollsite/internal/core/ports"
)

type choiceRepository struct {
	db *sql.DB
}

func NewChoiceRepository(db *sql.DB) ports.ChoiceRepository {
	return &choiceRepository{
		db: db,
	}
}

// IncrementVotes adds exactly one vote to the choice. The increment happens
// inside the UPDATE, so concurrent votes on the same choice serialize on the
// row lock and none are lost.
func (r *choiceRepository) IncrementVotes(ctx context.Context, choiceID uuid.UUID) error {
	query := `
		UPDATE choices SET votes = votes + 1 WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, choiceID)
	if err != nil {
		return fmt.Errorf("failed to increment votes: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrNoChoiceSelected
	}

	return nil
}
