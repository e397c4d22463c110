package repository

import (
	"context"
	"errors"
	"fmt"

	"smanager/database"
	"smanager/domain/entities"

	"github.com/jackc/pgx/v5"
)

// TourneyRepository implements the TourneyRepository interface
type TourneyRepository struct {
	q queryable
}

// NewTourneyRepository creates a new tourney repository
func NewTourneyRepository(db *database.DB) *TourneyRepository {
	return &TourneyRepository{q: db.Pool}
}

// newTourneyRepositoryWithTx creates a new tourney repository with a transaction
func newTourneyRepositoryWithTx(tx queryable) *TourneyRepository {
	return &TourneyRepository{q: tx}
}

// GetByID retrieves a tourney by ID
func (r *TourneyRepository) GetByID(ctx context.Context, id int64) (*entities.Tourney, error) {
	query := `
		SELECT id, guild_id, name, registration_channel_id, log_channel_id,
		       mod_role_id, role_id, open_role_id, required_mentions,
		       autodelete_rejected, cross_emoji, created_at
		FROM tourneys
		WHERE id = $1
	`

	var tourney entities.Tourney
	err := r.q.QueryRow(ctx, query, id).Scan(
		&tourney.ID,
		&tourney.GuildID,
		&tourney.Name,
		&tourney.RegistrationChannelID,
		&tourney.LogChannelID,
		&tourney.ModRoleID,
		&tourney.RoleID,
		&tourney.OpenRoleID,
		&tourney.RequiredMentions,
		&tourney.AutodeleteRejected,
		&tourney.CrossEmoji,
		&tourney.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tourney %d: %w", id, err)
	}

	return &tourney, nil
}

// DeleteByRegistrationChannel deletes every tourney registering in channelID
func (r *TourneyRepository) DeleteByRegistrationChannel(ctx context.Context, channelID int64) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM tourneys WHERE registration_channel_id = $1`, channelID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete tourneys of channel %d: %w", channelID, err)
	}
	return tag.RowsAffected(), nil
}

// GetRegistrationChannelIDs lists the registration channels of all tourneys
func (r *TourneyRepository) GetRegistrationChannelIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.q.Query(ctx, `SELECT DISTINCT registration_channel_id FROM tourneys`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tourney channels: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("failed to scan tourney channels: %w", err)
	}

	return ids, nil
}
