package repository

import (
	"context"
	"fmt"

	"smanager/database"

	"github.com/jackc/pgx/v5"
)

// TagCheckRepository implements the TagCheckRepository interface
type TagCheckRepository struct {
	q queryable
}

// NewTagCheckRepository creates a new tag check repository
func NewTagCheckRepository(db *database.DB) *TagCheckRepository {
	return &TagCheckRepository{q: db.Pool}
}

func newTagCheckRepositoryWithTx(tx queryable) *TagCheckRepository {
	return &TagCheckRepository{q: tx}
}

// DeleteByChannel removes the tag check bound to channelID
func (r *TagCheckRepository) DeleteByChannel(ctx context.Context, channelID int64) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM tag_checks WHERE channel_id = $1`, channelID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete tag check of channel %d: %w", channelID, err)
	}
	return tag.RowsAffected(), nil
}

// GetChannelIDs lists every tag check channel
func (r *TagCheckRepository) GetChannelIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.q.Query(ctx, `SELECT channel_id FROM tag_checks`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tag check channels: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowTo[int64])
}
