package services

import (
	"context"
	"fmt"

	"smanager/domain/interfaces"
)

// SlotService manages assigned scrim slots
type SlotService struct {
	assignedSlotRepo interfaces.AssignedSlotRepository
	scrimRepo        interfaces.ScrimRepository
}

// NewSlotService creates a new slot service
func NewSlotService(assignedSlotRepo interfaces.AssignedSlotRepository, scrimRepo interfaces.ScrimRepository) *SlotService {
	return &SlotService{
		assignedSlotRepo: assignedSlotRepo,
		scrimRepo:        scrimRepo,
	}
}

// FreeAssignedSlot deletes an assigned slot and makes its number available again.
// It reports false when the slot was already gone, in which case the number is left alone.
func (s *SlotService) FreeAssignedSlot(ctx context.Context, scrimID, slotID int64, num int) (bool, error) {
	deleted, err := s.assignedSlotRepo.Delete(ctx, slotID)
	if err != nil {
		return false, fmt.Errorf("failed to delete assigned slot %d: %w", slotID, err)
	}
	if deleted == 0 {
		return false, nil
	}

	if err := s.scrimRepo.AppendAvailableSlot(ctx, scrimID, num); err != nil {
		return false, fmt.Errorf("failed to free slot %d of scrim %d: %w", num, scrimID, err)
	}

	return true, nil
}
