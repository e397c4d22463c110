package repository

import (
	"context"
	"fmt"

	"smanager/database"
	"smanager/domain/entities"

	"github.com/jackc/pgx/v5"
)

// AssignedSlotRepository implements the AssignedSlotRepository interface
type AssignedSlotRepository struct {
	q queryable
}

// NewAssignedSlotRepository creates a new assigned slot repository
func NewAssignedSlotRepository(db *database.DB) *AssignedSlotRepository {
	return &AssignedSlotRepository{q: db.Pool}
}

// newAssignedSlotRepositoryWithTx creates a new assigned slot repository with a transaction
func newAssignedSlotRepositoryWithTx(tx queryable) *AssignedSlotRepository {
	return &AssignedSlotRepository{q: tx}
}

// GetByScrim returns a scrim's assigned slots ordered by slot number
func (r *AssignedSlotRepository) GetByScrim(ctx context.Context, scrimID int64) ([]*entities.AssignedSlot, error) {
	query := `
		SELECT id, scrim_id, num, user_id, team_name, message_id, jump_url, created_at
		FROM assigned_slots
		WHERE scrim_id = $1
		ORDER BY num, id
	`

	rows, err := r.q.Query(ctx, query, scrimID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assigned slots of scrim %d: %w", scrimID, err)
	}

	slots, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[entities.AssignedSlot])
	if err != nil {
		return nil, fmt.Errorf("failed to scan assigned slots of scrim %d: %w", scrimID, err)
	}

	return slots, nil
}

// Delete removes an assigned slot by ID and returns the number of rows deleted
func (r *AssignedSlotRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM assigned_slots WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete assigned slot %d: %w", id, err)
	}
	return tag.RowsAffected(), nil
}
