package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"smanager/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// ReservationService releases reserved slots whose lease ran out
type ReservationService struct {
	reservedSlotRepo interfaces.ReservedSlotRepository
}

// NewReservationService creates a new reservation service
func NewReservationService(reservedSlotRepo interfaces.ReservedSlotRepository) *ReservationService {
	return &ReservationService{reservedSlotRepo: reservedSlotRepo}
}

// ReleaseExpired deletes the user's reservation in a scrim when it still expires at timerExpires.
// A reservation renewed after the timer was scheduled carries a different expiry and is kept.
func (s *ReservationService) ReleaseExpired(ctx context.Context, scrimID, userID int64, timerExpires time.Time) (bool, error) {
	userIDs, err := s.reservedSlotRepo.GetReservedUserIDs(ctx, scrimID)
	if err != nil {
		return false, fmt.Errorf("failed to get reserved users of scrim %d: %w", scrimID, err)
	}
	if !slices.Contains(userIDs, userID) {
		return false, nil
	}

	slot, err := s.reservedSlotRepo.GetByScrimAndUser(ctx, scrimID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to get reservation of user %d in scrim %d: %w", userID, scrimID, err)
	}
	if slot == nil {
		return false, nil
	}

	if !slot.ExpiresAt(timerExpires) {
		log.WithFields(log.Fields{
			"scrimID":      scrimID,
			"userID":       userID,
			"slotID":       slot.ID,
			"timerExpires": timerExpires,
		}).Debug("Reservation was renewed, ignoring stale timer")
		return false, nil
	}

	if err := s.reservedSlotRepo.Delete(ctx, slot.ID); err != nil {
		return false, fmt.Errorf("failed to delete reservation %d: %w", slot.ID, err)
	}

	return true, nil
}
