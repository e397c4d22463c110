package bot

import (
	"context"
	"testing"

	"smanager/domain/events"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDispatcher struct {
	events []events.Event
	err    error
}

func (r *recordingDispatcher) Dispatch(ctx context.Context, event events.Event) error {
	r.events = append(r.events, event)
	return r.err
}

func TestBot_HandleChannelDelete(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	b, err := New(Config{Token: "test-token"}, dispatcher)
	require.NoError(t, err)

	b.handleChannelDelete(nil, &discordgo.ChannelDelete{Channel: &discordgo.Channel{ID: "200", GuildID: "100"}})

	require.Len(t, dispatcher.events, 1)
	assert.Equal(t, &events.GuildChannelDeleteEvent{GuildID: 100, ChannelID: 200}, dispatcher.events[0])
}

func TestBot_HandleChannelDeleteIgnoresNonGuildChannels(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	b, err := New(Config{Token: "test-token"}, dispatcher)
	require.NoError(t, err)

	b.handleChannelDelete(nil, &discordgo.ChannelDelete{Channel: &discordgo.Channel{ID: "200"}})
	b.handleChannelDelete(nil, &discordgo.ChannelDelete{Channel: &discordgo.Channel{ID: "abc", GuildID: "100"}})

	assert.Empty(t, dispatcher.events)
}
