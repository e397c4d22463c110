package repository

import (
	"context"
	"errors"
	"fmt"

	"smanager/database"
	"smanager/domain/entities"

	"github.com/jackc/pgx/v5"
)

// ScrimRepository implements the ScrimRepository interface
type ScrimRepository struct {
	q queryable
}

// NewScrimRepository creates a new scrim repository
func NewScrimRepository(db *database.DB) *ScrimRepository {
	return &ScrimRepository{q: db.Pool}
}

// newScrimRepositoryWithTx creates a new scrim repository with a transaction
func newScrimRepositoryWithTx(tx queryable) *ScrimRepository {
	return &ScrimRepository{q: tx}
}

// GetByID retrieves a scrim by ID
func (r *ScrimRepository) GetByID(ctx context.Context, id int64) (*entities.Scrim, error) {
	query := `
		SELECT id, guild_id, name, registration_channel_id, log_channel_id,
		       mod_role_id, role_id, open_role_id, required_mentions,
		       autodelete_rejects, cross_emoji, available_slots, created_at
		FROM scrims
		WHERE id = $1
	`

	var scrim entities.Scrim
	err := r.q.QueryRow(ctx, query, id).Scan(
		&scrim.ID,
		&scrim.GuildID,
		&scrim.Name,
		&scrim.RegistrationChannelID,
		&scrim.LogChannelID,
		&scrim.ModRoleID,
		&scrim.RoleID,
		&scrim.OpenRoleID,
		&scrim.RequiredMentions,
		&scrim.AutodeleteRejects,
		&scrim.CrossEmoji,
		&scrim.AvailableSlots,
		&scrim.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scrim %d: %w", id, err)
	}

	return &scrim, nil
}

// DeleteByRegistrationChannel deletes every scrim registering in channelID.
// Reserved and assigned slots go with them through the foreign key cascade.
func (r *ScrimRepository) DeleteByRegistrationChannel(ctx context.Context, channelID int64) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM scrims WHERE registration_channel_id = $1`, channelID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete scrims of channel %d: %w", channelID, err)
	}
	return tag.RowsAffected(), nil
}

// AppendAvailableSlot returns a slot number to the scrim's free slot pool
func (r *ScrimRepository) AppendAvailableSlot(ctx context.Context, scrimID int64, num int) error {
	query := `
		UPDATE scrims
		SET available_slots = array_append(available_slots, $2::INTEGER)
		WHERE id = $1
	`

	tag, err := r.q.Exec(ctx, query, scrimID, num)
	if err != nil {
		return fmt.Errorf("failed to append slot %d to scrim %d: %w", num, scrimID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("scrim %d not found", scrimID)
	}

	return nil
}

// GetRegistrationChannelIDs lists the registration channels of all scrims
func (r *ScrimRepository) GetRegistrationChannelIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.q.Query(ctx, `SELECT DISTINCT registration_channel_id FROM scrims`)
	if err != nil {
		return nil, fmt.Errorf("failed to query scrim channels: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("failed to scan scrim channels: %w", err)
	}

	return ids, nil
}
