package testutil

import (
	"context"
	"testing"
	"time"

	"smanager/database"
	"smanager/domain/entities"

	"github.com/stretchr/testify/require"
)

// CreateTestScrim inserts a scrim registering in channelID with default settings
func CreateTestScrim(t *testing.T, db *database.DB, guildID, channelID int64) *entities.Scrim {
	t.Helper()

	scrim := &entities.Scrim{
		GuildID:               guildID,
		Name:                  "Evening Scrims",
		RegistrationChannelID: channelID,
		RequiredMentions:      4,
		CrossEmoji:            entities.DefaultCrossEmoji,
		AvailableSlots:        []int32{},
	}

	err := db.QueryRow(context.Background(), `
		INSERT INTO scrims (guild_id, name, registration_channel_id, required_mentions, cross_emoji, available_slots)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, scrim.GuildID, scrim.Name, scrim.RegistrationChannelID, scrim.RequiredMentions, scrim.CrossEmoji, scrim.AvailableSlots,
	).Scan(&scrim.ID, &scrim.CreatedAt)
	require.NoError(t, err)

	return scrim
}

// CreateTestTourney inserts a tourney registering in channelID
func CreateTestTourney(t *testing.T, db *database.DB, guildID, channelID int64) *entities.Tourney {
	t.Helper()

	tourney := &entities.Tourney{
		GuildID:               guildID,
		Name:                  "Weekly Cup",
		RegistrationChannelID: channelID,
		RequiredMentions:      3,
		CrossEmoji:            entities.DefaultCrossEmoji,
	}

	err := db.QueryRow(context.Background(), `
		INSERT INTO tourneys (guild_id, name, registration_channel_id, required_mentions, cross_emoji)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, tourney.GuildID, tourney.Name, tourney.RegistrationChannelID, tourney.RequiredMentions, tourney.CrossEmoji,
	).Scan(&tourney.ID, &tourney.CreatedAt)
	require.NoError(t, err)

	return tourney
}

// CreateTestReservedSlot inserts a reservation for userID that expires at expires
func CreateTestReservedSlot(t *testing.T, db *database.DB, scrimID, userID int64, num int, expires *time.Time) *entities.ReservedSlot {
	t.Helper()

	slot := &entities.ReservedSlot{
		ScrimID:  scrimID,
		Num:      num,
		UserID:   &userID,
		TeamName: "team soul",
		Expires:  expires,
	}

	err := db.QueryRow(context.Background(), `
		INSERT INTO reserved_slots (scrim_id, num, user_id, team_name, expires)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, slot.ScrimID, slot.Num, slot.UserID, slot.TeamName, slot.Expires,
	).Scan(&slot.ID)
	require.NoError(t, err)

	return slot
}

// CreateTestAssignedSlot inserts an assigned slot for a team
func CreateTestAssignedSlot(t *testing.T, db *database.DB, scrimID, userID int64, num int, teamName string) *entities.AssignedSlot {
	t.Helper()

	slot := &entities.AssignedSlot{
		ScrimID:  scrimID,
		Num:      num,
		UserID:   userID,
		TeamName: teamName,
	}

	err := db.QueryRow(context.Background(), `
		INSERT INTO assigned_slots (scrim_id, num, user_id, team_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, slot.ScrimID, slot.Num, slot.UserID, slot.TeamName,
	).Scan(&slot.ID, &slot.CreatedAt)
	require.NoError(t, err)

	return slot
}

// CreateTestTagCheck binds a tag check to channelID
func CreateTestTagCheck(t *testing.T, db *database.DB, guildID, channelID int64) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO tag_checks (guild_id, channel_id, required_mentions) VALUES ($1, $2, 2)`, guildID, channelID)
	require.NoError(t, err)
}

// CreateTestEasyTag binds an easy tag setup to channelID
func CreateTestEasyTag(t *testing.T, db *database.DB, guildID, channelID int64) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO easy_tags (guild_id, channel_id) VALUES ($1, $2)`, guildID, channelID)
	require.NoError(t, err)
}
