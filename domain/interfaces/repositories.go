package interfaces

import (
	"context"

	"smanager/domain/entities"
)

// ScrimRepository defines the interface for scrim data access
type ScrimRepository interface {
	// GetByID retrieves a scrim by ID, returning nil when it does not exist
	GetByID(ctx context.Context, id int64) (*entities.Scrim, error)

	// DeleteByRegistrationChannel deletes every scrim registering in channelID
	DeleteByRegistrationChannel(ctx context.Context, channelID int64) (int64, error)

	// AppendAvailableSlot returns a slot number to the scrim's pool of free slots
	AppendAvailableSlot(ctx context.Context, scrimID int64, num int) error

	// GetRegistrationChannelIDs lists the registration channels of all scrims
	GetRegistrationChannelIDs(ctx context.Context) ([]int64, error)
}

// TourneyRepository defines the interface for tourney data access
type TourneyRepository interface {
	// GetByID retrieves a tourney by ID, returning nil when it does not exist
	GetByID(ctx context.Context, id int64) (*entities.Tourney, error)

	// DeleteByRegistrationChannel deletes every tourney registering in channelID
	DeleteByRegistrationChannel(ctx context.Context, channelID int64) (int64, error)

	// GetRegistrationChannelIDs lists the registration channels of all tourneys
	GetRegistrationChannelIDs(ctx context.Context) ([]int64, error)
}

// ReservedSlotRepository defines the interface for slot reservation data access
type ReservedSlotRepository interface {
	// GetReservedUserIDs returns the users holding a reservation in a scrim
	GetReservedUserIDs(ctx context.Context, scrimID int64) ([]int64, error)

	// GetByScrimAndUser returns the user's first reservation in a scrim or nil
	GetByScrimAndUser(ctx context.Context, scrimID, userID int64) (*entities.ReservedSlot, error)

	// Delete removes a reservation by ID
	Delete(ctx context.Context, id int64) error
}

// AssignedSlotRepository defines the interface for assigned slot data access
type AssignedSlotRepository interface {
	// GetByScrim returns a scrim's assigned slots ordered by slot number
	GetByScrim(ctx context.Context, scrimID int64) ([]*entities.AssignedSlot, error)

	// Delete removes an assigned slot by ID and returns the number of rows deleted
	Delete(ctx context.Context, id int64) (int64, error)
}

// TagCheckRepository defines the interface for tag check channel data access
type TagCheckRepository interface {
	DeleteByChannel(ctx context.Context, channelID int64) (int64, error)
	GetChannelIDs(ctx context.Context) ([]int64, error)
}

// EasyTagRepository defines the interface for easy tag channel data access
type EasyTagRepository interface {
	DeleteByChannel(ctx context.Context, channelID int64) (int64, error)
	GetChannelIDs(ctx context.Context) ([]int64, error)
}
