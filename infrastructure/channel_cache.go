package infrastructure

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"smanager/application/dto"
	"smanager/domain/interfaces"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type channelSet map[int64]struct{}

func (s channelSet) sorted() []int64 {
	ids := make([]int64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ChannelCache tracks which channels are configured as registration, tag check or easy tag channels
type ChannelCache struct {
	mu       sync.RWMutex
	scrims   channelSet
	tourneys channelSet
	tagCheck channelSet
	easyTag  channelSet
}

// NewChannelCache creates an empty channel cache
func NewChannelCache() *ChannelCache {
	return &ChannelCache{
		scrims:   channelSet{},
		tourneys: channelSet{},
		tagCheck: channelSet{},
		easyTag:  channelSet{},
	}
}

// Warm loads every configured channel from the repositories, replacing the cache contents
func (c *ChannelCache) Warm(
	ctx context.Context,
	scrims interfaces.ScrimRepository,
	tourneys interfaces.TourneyRepository,
	tagChecks interfaces.TagCheckRepository,
	easyTags interfaces.EasyTagRepository,
) error {
	var scrimIDs, tourneyIDs, tagCheckIDs, easyTagIDs []int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ids, err := scrims.GetRegistrationChannelIDs(gctx)
		if err != nil {
			return fmt.Errorf("failed to load scrim channels: %w", err)
		}
		scrimIDs = ids
		return nil
	})
	g.Go(func() error {
		ids, err := tourneys.GetRegistrationChannelIDs(gctx)
		if err != nil {
			return fmt.Errorf("failed to load tourney channels: %w", err)
		}
		tourneyIDs = ids
		return nil
	})
	g.Go(func() error {
		ids, err := tagChecks.GetChannelIDs(gctx)
		if err != nil {
			return fmt.Errorf("failed to load tag check channels: %w", err)
		}
		tagCheckIDs = ids
		return nil
	})
	g.Go(func() error {
		ids, err := easyTags.GetChannelIDs(gctx)
		if err != nil {
			return fmt.Errorf("failed to load easy tag channels: %w", err)
		}
		easyTagIDs = ids
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.scrims = toSet(scrimIDs)
	c.tourneys = toSet(tourneyIDs)
	c.tagCheck = toSet(tagCheckIDs)
	c.easyTag = toSet(easyTagIDs)

	log.WithFields(log.Fields{
		"scrimChannels":    len(c.scrims),
		"tourneyChannels":  len(c.tourneys),
		"tagCheckChannels": len(c.tagCheck),
		"easyTagChannels":  len(c.easyTag),
	}).Info("Channel cache warmed")
	return nil
}

// Evict removes a channel from every set
func (c *ChannelCache) Evict(channelID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.scrims, channelID)
	delete(c.tourneys, channelID)
	delete(c.tagCheck, channelID)
	delete(c.easyTag, channelID)
}

// Tracks reports whether channelID is in any set
func (c *ChannelCache) Tracks(channelID int64) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, set := range []channelSet{c.scrims, c.tourneys, c.tagCheck, c.easyTag} {
		if _, ok := set[channelID]; ok {
			return true
		}
	}
	return false
}

// Snapshot returns the cached channels in ascending order
func (c *ChannelCache) Snapshot() dto.ChannelCacheSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return dto.ChannelCacheSnapshot{
		ScrimChannels:    c.scrims.sorted(),
		TourneyChannels:  c.tourneys.sorted(),
		TagCheckChannels: c.tagCheck.sorted(),
		EasyTagChannels:  c.easyTag.sorted(),
	}
}

func toSet(ids []int64) channelSet {
	set := make(channelSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
