package services

import (
	"context"
	"fmt"

	"smanager/domain/interfaces"
)

// ChannelPurgeResult counts the rows removed for a deleted channel
type ChannelPurgeResult struct {
	Scrims    int64
	Tourneys  int64
	TagChecks int64
	EasyTags  int64
}

// Total is the number of rows removed
func (r ChannelPurgeResult) Total() int64 {
	return r.Scrims + r.Tourneys + r.TagChecks + r.EasyTags
}

// ChannelCleanupService removes everything bound to a channel that no longer exists
type ChannelCleanupService struct {
	scrimRepo    interfaces.ScrimRepository
	tourneyRepo  interfaces.TourneyRepository
	tagCheckRepo interfaces.TagCheckRepository
	easyTagRepo  interfaces.EasyTagRepository
}

// NewChannelCleanupService creates a new channel cleanup service
func NewChannelCleanupService(
	scrimRepo interfaces.ScrimRepository,
	tourneyRepo interfaces.TourneyRepository,
	tagCheckRepo interfaces.TagCheckRepository,
	easyTagRepo interfaces.EasyTagRepository,
) *ChannelCleanupService {
	return &ChannelCleanupService{
		scrimRepo:    scrimRepo,
		tourneyRepo:  tourneyRepo,
		tagCheckRepo: tagCheckRepo,
		easyTagRepo:  easyTagRepo,
	}
}

// PurgeChannel deletes scrims and tourneys registering in channelID and the tag checks bound to it
func (s *ChannelCleanupService) PurgeChannel(ctx context.Context, channelID int64) (*ChannelPurgeResult, error) {
	var result ChannelPurgeResult
	var err error

	if result.Scrims, err = s.scrimRepo.DeleteByRegistrationChannel(ctx, channelID); err != nil {
		return nil, fmt.Errorf("failed to delete scrims of channel %d: %w", channelID, err)
	}
	if result.Tourneys, err = s.tourneyRepo.DeleteByRegistrationChannel(ctx, channelID); err != nil {
		return nil, fmt.Errorf("failed to delete tourneys of channel %d: %w", channelID, err)
	}
	if result.TagChecks, err = s.tagCheckRepo.DeleteByChannel(ctx, channelID); err != nil {
		return nil, fmt.Errorf("failed to delete tag checks of channel %d: %w", channelID, err)
	}
	if result.EasyTags, err = s.easyTagRepo.DeleteByChannel(ctx, channelID); err != nil {
		return nil, fmt.Errorf("failed to delete easy tags of channel %d: %w", channelID, err)
	}

	return &result, nil
}
