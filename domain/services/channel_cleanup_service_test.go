package services

import (
	"context"
	"errors"
	"testing"

	"smanager/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChannelCleanupService_PurgeChannel(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes every binding of the channel", func(t *testing.T) {
		scrimRepo := new(testhelpers.MockScrimRepository)
		tourneyRepo := new(testhelpers.MockTourneyRepository)
		tagCheckRepo := new(testhelpers.MockTagCheckRepository)
		easyTagRepo := new(testhelpers.MockEasyTagRepository)

		scrimRepo.On("DeleteByRegistrationChannel", ctx, int64(900)).Return(int64(2), nil)
		tourneyRepo.On("DeleteByRegistrationChannel", ctx, int64(900)).Return(int64(1), nil)
		tagCheckRepo.On("DeleteByChannel", ctx, int64(900)).Return(int64(0), nil)
		easyTagRepo.On("DeleteByChannel", ctx, int64(900)).Return(int64(1), nil)

		service := NewChannelCleanupService(scrimRepo, tourneyRepo, tagCheckRepo, easyTagRepo)
		result, err := service.PurgeChannel(ctx, 900)

		require.NoError(t, err)
		assert.Equal(t, ChannelPurgeResult{Scrims: 2, Tourneys: 1, TagChecks: 0, EasyTags: 1}, *result)
		assert.Equal(t, int64(4), result.Total())

		scrimRepo.AssertExpectations(t)
		tourneyRepo.AssertExpectations(t)
		tagCheckRepo.AssertExpectations(t)
		easyTagRepo.AssertExpectations(t)
	})

	t.Run("stops at first failure", func(t *testing.T) {
		scrimRepo := new(testhelpers.MockScrimRepository)
		tourneyRepo := new(testhelpers.MockTourneyRepository)
		tagCheckRepo := new(testhelpers.MockTagCheckRepository)
		easyTagRepo := new(testhelpers.MockEasyTagRepository)

		scrimRepo.On("DeleteByRegistrationChannel", ctx, int64(900)).Return(int64(0), nil)
		tourneyRepo.On("DeleteByRegistrationChannel", ctx, int64(900)).Return(int64(0), errors.New("deadlock detected"))

		service := NewChannelCleanupService(scrimRepo, tourneyRepo, tagCheckRepo, easyTagRepo)
		result, err := service.PurgeChannel(ctx, 900)

		assert.Nil(t, result)
		assert.ErrorContains(t, err, "failed to delete tourneys of channel 900")
		tagCheckRepo.AssertNotCalled(t, "DeleteByChannel", mock.Anything, mock.Anything)
		easyTagRepo.AssertNotCalled(t, "DeleteByChannel", mock.Anything, mock.Anything)
	})
}
