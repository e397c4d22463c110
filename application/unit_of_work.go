package application

import (
	"context"

	"smanager/domain/interfaces"
)

// UnitOfWork manages a database transaction and the repositories bound to it
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction
	Rollback() error

	// Repository getters
	ScrimRepository() interfaces.ScrimRepository
	TourneyRepository() interfaces.TourneyRepository
	ReservedSlotRepository() interfaces.ReservedSlotRepository
	AssignedSlotRepository() interfaces.AssignedSlotRepository
	TagCheckRepository() interfaces.TagCheckRepository
	EasyTagRepository() interfaces.EasyTagRepository
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}
