package repository

import (
	"context"
	"errors"
	"fmt"

	"smanager/application"
	"smanager/database"
	"smanager/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

// unitOfWork implements the UnitOfWork interface
type unitOfWork struct {
	db               *database.DB
	tx               pgx.Tx
	ctx              context.Context
	scrimRepo        interfaces.ScrimRepository
	tourneyRepo      interfaces.TourneyRepository
	reservedSlotRepo interfaces.ReservedSlotRepository
	assignedSlotRepo interfaces.AssignedSlotRepository
	tagCheckRepo     interfaces.TagCheckRepository
	easyTagRepo      interfaces.EasyTagRepository
}

// NewUnitOfWorkFactory creates a new UnitOfWork factory
func NewUnitOfWorkFactory(db *database.DB) application.UnitOfWorkFactory {
	return &unitOfWorkFactory{db: db}
}

type unitOfWorkFactory struct {
	db *database.DB
}

func (f *unitOfWorkFactory) Create() application.UnitOfWork {
	return &unitOfWork{db: f.db}
}

// Begin starts a new transaction
func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	u.tx = tx
	u.ctx = ctx

	// Create repositories with the transaction
	u.scrimRepo = newScrimRepositoryWithTx(tx)
	u.tourneyRepo = newTourneyRepositoryWithTx(tx)
	u.reservedSlotRepo = newReservedSlotRepositoryWithTx(tx)
	u.assignedSlotRepo = newAssignedSlotRepositoryWithTx(tx)
	u.tagCheckRepo = newTagCheckRepositoryWithTx(tx)
	u.easyTagRepo = newEasyTagRepositoryWithTx(tx)

	return nil
}

// Commit commits the transaction
func (u *unitOfWork) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}

	if err := u.tx.Commit(u.ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	u.tx = nil
	return nil
}

// Rollback rolls back the transaction
func (u *unitOfWork) Rollback() error {
	if u.tx == nil {
		return nil // Nothing to rollback
	}

	err := u.tx.Rollback(u.ctx)
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	u.tx = nil
	return nil
}

// ScrimRepository returns the scrim repository for this unit of work
func (u *unitOfWork) ScrimRepository() interfaces.ScrimRepository {
	if u.scrimRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.scrimRepo
}

// TourneyRepository returns the tourney repository for this unit of work
func (u *unitOfWork) TourneyRepository() interfaces.TourneyRepository {
	if u.tourneyRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.tourneyRepo
}

// ReservedSlotRepository returns the reserved slot repository for this unit of work
func (u *unitOfWork) ReservedSlotRepository() interfaces.ReservedSlotRepository {
	if u.reservedSlotRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.reservedSlotRepo
}

// AssignedSlotRepository returns the assigned slot repository for this unit of work
func (u *unitOfWork) AssignedSlotRepository() interfaces.AssignedSlotRepository {
	if u.assignedSlotRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.assignedSlotRepo
}

// TagCheckRepository returns the tag check repository for this unit of work
func (u *unitOfWork) TagCheckRepository() interfaces.TagCheckRepository {
	if u.tagCheckRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.tagCheckRepo
}

// EasyTagRepository returns the easy tag repository for this unit of work
func (u *unitOfWork) EasyTagRepository() interfaces.EasyTagRepository {
	if u.easyTagRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.easyTagRepo
}
