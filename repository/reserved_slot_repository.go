package repository

import (
	"context"
	"errors"
	"fmt"

	"smanager/database"
	"smanager/domain/entities"

	"github.com/jackc/pgx/v5"
)

// ReservedSlotRepository implements the ReservedSlotRepository interface
type ReservedSlotRepository struct {
	q queryable
}

// NewReservedSlotRepository creates a new reserved slot repository
func NewReservedSlotRepository(db *database.DB) *ReservedSlotRepository {
	return &ReservedSlotRepository{q: db.Pool}
}

// newReservedSlotRepositoryWithTx creates a new reserved slot repository with a transaction
func newReservedSlotRepositoryWithTx(tx queryable) *ReservedSlotRepository {
	return &ReservedSlotRepository{q: tx}
}

// GetReservedUserIDs returns the users holding a reservation in a scrim
func (r *ReservedSlotRepository) GetReservedUserIDs(ctx context.Context, scrimID int64) ([]int64, error) {
	query := `
		SELECT DISTINCT user_id
		FROM reserved_slots
		WHERE scrim_id = $1 AND user_id IS NOT NULL
	`

	rows, err := r.q.Query(ctx, query, scrimID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reserved users of scrim %d: %w", scrimID, err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("failed to scan reserved users of scrim %d: %w", scrimID, err)
	}

	return ids, nil
}

// GetByScrimAndUser returns the user's first reservation in a scrim
func (r *ReservedSlotRepository) GetByScrimAndUser(ctx context.Context, scrimID, userID int64) (*entities.ReservedSlot, error) {
	query := `
		SELECT id, scrim_id, num, user_id, team_name, expires
		FROM reserved_slots
		WHERE scrim_id = $1 AND user_id = $2
		ORDER BY id
		LIMIT 1
	`

	rows, err := r.q.Query(ctx, query, scrimID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservation of user %d in scrim %d: %w", userID, scrimID, err)
	}

	slot, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[entities.ReservedSlot])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan reservation of user %d in scrim %d: %w", userID, scrimID, err)
	}

	return slot, nil
}

// Delete removes a reservation by ID
func (r *ReservedSlotRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM reserved_slots WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete reserved slot %d: %w", id, err)
	}
	return nil
}
