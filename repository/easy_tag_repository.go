package repository

import (
	"context"
	"fmt"

	"smanager/database"

	"github.com/jackc/pgx/v5"
)

// EasyTagRepository implements the EasyTagRepository interface
type EasyTagRepository struct {
	q queryable
}

// NewEasyTagRepository creates a new easy tag repository
func NewEasyTagRepository(db *database.DB) *EasyTagRepository {
	return &EasyTagRepository{q: db.Pool}
}

func newEasyTagRepositoryWithTx(tx queryable) *EasyTagRepository {
	return &EasyTagRepository{q: tx}
}

// DeleteByChannel removes the easy tag setup bound to channelID
func (r *EasyTagRepository) DeleteByChannel(ctx context.Context, channelID int64) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM easy_tags WHERE channel_id = $1`, channelID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete easy tag of channel %d: %w", channelID, err)
	}
	return tag.RowsAffected(), nil
}

// GetChannelIDs lists every easy tag channel
func (r *EasyTagRepository) GetChannelIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.q.Query(ctx, `SELECT channel_id FROM easy_tags`)
	if err != nil {
		return nil, fmt.Errorf("failed to query easy tag channels: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowTo[int64])
}
