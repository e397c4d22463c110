package services

import (
	"context"
	"errors"
	"testing"

	"smanager/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSlotService_FreeAssignedSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("frees slot number", func(t *testing.T) {
		assignedRepo := new(testhelpers.MockAssignedSlotRepository)
		scrimRepo := new(testhelpers.MockScrimRepository)

		assignedRepo.On("Delete", ctx, int64(31)).Return(int64(1), nil)
		scrimRepo.On("AppendAvailableSlot", ctx, int64(7), 4).Return(nil)

		freed, err := NewSlotService(assignedRepo, scrimRepo).FreeAssignedSlot(ctx, 7, 31, 4)

		assert.NoError(t, err)
		assert.True(t, freed)
		assignedRepo.AssertExpectations(t)
		scrimRepo.AssertExpectations(t)
	})

	t.Run("delete failure keeps slot unavailable", func(t *testing.T) {
		assignedRepo := new(testhelpers.MockAssignedSlotRepository)
		scrimRepo := new(testhelpers.MockScrimRepository)

		assignedRepo.On("Delete", ctx, int64(31)).Return(int64(0), errors.New("boom"))

		freed, err := NewSlotService(assignedRepo, scrimRepo).FreeAssignedSlot(ctx, 7, 31, 4)

		assert.ErrorContains(t, err, "failed to delete assigned slot 31")
		assert.False(t, freed)
		scrimRepo.AssertNotCalled(t, "AppendAvailableSlot", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("already deleted slot is not appended again", func(t *testing.T) {
		assignedRepo := new(testhelpers.MockAssignedSlotRepository)
		scrimRepo := new(testhelpers.MockScrimRepository)

		assignedRepo.On("Delete", ctx, int64(31)).Return(int64(0), nil)

		freed, err := NewSlotService(assignedRepo, scrimRepo).FreeAssignedSlot(ctx, 7, 31, 4)

		assert.NoError(t, err)
		assert.False(t, freed)
		scrimRepo.AssertNotCalled(t, "AppendAvailableSlot", mock.Anything, mock.Anything, mock.Anything)
	})
}
