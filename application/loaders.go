package application

import (
	"context"
	"fmt"

	"smanager/domain/entities"
)

// loadScrim reads a scrim in its own short transaction, nil when it does not exist
func loadScrim(ctx context.Context, uowFactory UnitOfWorkFactory, scrimID int64) (*entities.Scrim, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	scrim, err := uow.ScrimRepository().GetByID(ctx, scrimID)
	if err != nil {
		return nil, err
	}

	return scrim, uow.Commit()
}

// loadTourney reads a tourney in its own short transaction, nil when it does not exist
func loadTourney(ctx context.Context, uowFactory UnitOfWorkFactory, tourneyID int64) (*entities.Tourney, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	tourney, err := uow.TourneyRepository().GetByID(ctx, tourneyID)
	if err != nil {
		return nil, err
	}

	return tourney, uow.Commit()
}

// logChannelAvailable reports whether the target's log channel is set and still exists
func logChannelAvailable(ctx context.Context, messenger Messenger, target entities.RegistrationTarget) bool {
	return target.HasLogChannel() && messenger.ChannelExists(ctx, *target.LogChannelID)
}
