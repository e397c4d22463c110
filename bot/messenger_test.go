package bot

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"smanager/application/dto"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDiscordAPI struct {
	mock.Mock
}

func (m *mockDiscordAPI) Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error) {
	args := m.Called(channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discordgo.Channel), args.Error(1)
}

func (m *mockDiscordAPI) GuildRoles(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Role, error) {
	args := m.Called(guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*discordgo.Role), args.Error(1)
}

func (m *mockDiscordAPI) User(userID string, options ...discordgo.RequestOption) (*discordgo.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discordgo.User), args.Error(1)
}

func (m *mockDiscordAPI) UserChannelPermissions(userID, channelID string, fetchOptions ...discordgo.RequestOption) (int64, error) {
	args := m.Called(userID, channelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDiscordAPI) MessageReactionAdd(channelID, messageID, emojiID string, options ...discordgo.RequestOption) error {
	return m.Called(channelID, messageID, emojiID).Error(0)
}

func (m *mockDiscordAPI) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	args := m.Called(channelID, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discordgo.Message), args.Error(1)
}

func (m *mockDiscordAPI) ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error {
	return m.Called(channelID, messageID).Error(0)
}

func (m *mockDiscordAPI) GuildMemberRoleRemove(guildID, userID, roleID string, options ...discordgo.RequestOption) error {
	return m.Called(guildID, userID, roleID).Error(0)
}

var errUnknownMessage = &discordgo.RESTError{
	Response: &http.Response{StatusCode: http.StatusNotFound},
	Message:  &discordgo.APIErrorMessage{Code: discordgo.ErrCodeUnknownMessage},
}

func testState(t *testing.T) *discordgo.State {
	t.Helper()

	state := discordgo.NewState()
	state.User = &discordgo.User{ID: "999"}
	require.NoError(t, state.GuildAdd(&discordgo.Guild{
		ID:       "100",
		Roles:    []*discordgo.Role{{ID: "260"}},
		Channels: []*discordgo.Channel{{ID: "250", GuildID: "100"}},
	}))
	return state
}

func TestMessenger_Lookups(t *testing.T) {
	ctx := context.Background()
	api := new(mockDiscordAPI)
	messenger := newMessenger(api, testState(t))

	t.Run("channel from state", func(t *testing.T) {
		assert.True(t, messenger.ChannelExists(ctx, 250))
	})

	t.Run("channel missing everywhere", func(t *testing.T) {
		api.On("Channel", "404").Return(nil, &discordgo.RESTError{
			Response: &http.Response{StatusCode: http.StatusNotFound},
			Message:  &discordgo.APIErrorMessage{Code: discordgo.ErrCodeUnknownChannel},
		}).Once()
		assert.False(t, messenger.ChannelExists(ctx, 404))
	})

	t.Run("role from state", func(t *testing.T) {
		assert.True(t, messenger.RoleExists(ctx, 100, 260))
	})

	t.Run("role from rest", func(t *testing.T) {
		api.On("GuildRoles", "100").Return([]*discordgo.Role{{ID: "261"}}, nil).Once()
		assert.True(t, messenger.RoleExists(ctx, 100, 261))
	})

	t.Run("deleted role", func(t *testing.T) {
		api.On("GuildRoles", "100").Return([]*discordgo.Role{{ID: "260"}}, nil).Once()
		assert.False(t, messenger.RoleExists(ctx, 100, 555))
	})

	t.Run("guild membership", func(t *testing.T) {
		assert.True(t, messenger.InGuild(100))
		assert.False(t, messenger.InGuild(101))
	})

	t.Run("user tag", func(t *testing.T) {
		api.On("User", "42").Return(&discordgo.User{ID: "42", Username: "captain", Discriminator: "0"}, nil).Once()
		assert.Equal(t, "captain", messenger.UserTag(ctx, 42))

		api.On("User", "43").Return(nil, errUnknownMessage).Once()
		assert.Empty(t, messenger.UserTag(ctx, 43))
	})

	api.AssertExpectations(t)
}

func TestMessenger_CanSend(t *testing.T) {
	ctx := context.Background()
	api := new(mockDiscordAPI)
	messenger := newMessenger(api, testState(t))

	// Embed links is not required to log
	api.On("UserChannelPermissions", "999", "250").
		Return(int64(discordgo.PermissionViewChannel|discordgo.PermissionSendMessages), nil).Once()
	assert.True(t, messenger.CanSend(ctx, 250))

	api.On("UserChannelPermissions", "999", "250").Return(int64(discordgo.PermissionSendMessages), nil).Once()
	assert.False(t, messenger.CanSend(ctx, 250))

	api.On("UserChannelPermissions", "999", "250").
		Return(int64(discordgo.PermissionViewChannel|discordgo.PermissionEmbedLinks), nil).Once()
	assert.False(t, messenger.CanSend(ctx, 250))

	withoutUser := newMessenger(api, discordgo.NewState())
	assert.False(t, withoutUser.CanSend(ctx, 250))

	api.AssertExpectations(t)
}

func TestMessenger_Reply(t *testing.T) {
	ctx := context.Background()
	api := new(mockDiscordAPI)
	messenger := newMessenger(api, testState(t))

	api.On("ChannelMessageSendComplex", "200", mock.MatchedBy(func(data *discordgo.MessageSend) bool {
		return data.Reference != nil &&
			data.Reference.MessageID == "300" &&
			len(data.Embeds) == 1 &&
			data.Embeds[0].Description == "denied" &&
			data.Embeds[0].Color == 0xE74C3C
	})).Return(&discordgo.Message{ID: "301"}, nil).Once()

	id, err := messenger.Reply(ctx, 200, 300, dto.Embed{Color: 0xE74C3C, Description: "denied"})
	require.NoError(t, err)
	assert.Equal(t, int64(301), id)

	api.On("ChannelMessageSendComplex", "200", mock.Anything).Return(nil, errUnknownMessage).Once()
	id, err = messenger.Reply(ctx, 200, 300, dto.Embed{Description: "denied"})
	require.NoError(t, err)
	assert.Zero(t, id)

	api.AssertExpectations(t)
}

func TestMessenger_Send(t *testing.T) {
	ctx := context.Background()
	api := new(mockDiscordAPI)
	messenger := newMessenger(api, testState(t))

	api.On("ChannelMessageSendComplex", "250", mock.MatchedBy(func(data *discordgo.MessageSend) bool {
		return data.Content == "<@&260>" &&
			len(data.Embeds) == 1 &&
			len(data.AllowedMentions.Parse) == 1 &&
			data.AllowedMentions.Parse[0] == discordgo.AllowedMentionTypeRoles
	})).Return(&discordgo.Message{ID: "1"}, nil).Once()
	require.NoError(t, messenger.Send(ctx, 250, dto.OutgoingMessage{
		Content:           "<@&260>",
		Embed:             &dto.Embed{Description: "closed"},
		AllowRoleMentions: true,
	}))

	api.On("ChannelMessageSendComplex", "250", mock.MatchedBy(func(data *discordgo.MessageSend) bool {
		return len(data.Embeds) == 0 && len(data.AllowedMentions.Parse) == 0
	})).Return(&discordgo.Message{ID: "2"}, nil).Once()
	require.NoError(t, messenger.Send(ctx, 250, dto.OutgoingMessage{Content: "```Slot 01  ->  TEAM```"}))

	api.On("ChannelMessageSendComplex", "250", mock.Anything).Return(nil, errors.New("connection reset")).Once()
	err := messenger.Send(ctx, 250, dto.OutgoingMessage{Content: "x"})
	assert.ErrorContains(t, err, "failed to send message: connection reset")

	api.AssertExpectations(t)
}

func TestMessenger_SuppressesExpectedFailures(t *testing.T) {
	ctx := context.Background()
	api := new(mockDiscordAPI)
	messenger := newMessenger(api, testState(t))

	forbidden := &discordgo.RESTError{
		Response: &http.Response{StatusCode: http.StatusForbidden},
		Message:  &discordgo.APIErrorMessage{Code: discordgo.ErrCodeMissingPermissions},
	}

	api.On("MessageReactionAdd", "200", "300", "name:123").Return(forbidden).Once()
	api.On("ChannelMessageDelete", "200", "300").Return(errUnknownMessage).Once()
	api.On("GuildMemberRoleRemove", "100", "42", "270").Return(forbidden).Once()

	assert.NoError(t, messenger.AddReaction(ctx, 200, 300, "<:name:123>"))
	assert.NoError(t, messenger.DeleteMessage(ctx, 200, 300))
	assert.NoError(t, messenger.RemoveRole(ctx, 100, 42, 270))

	api.AssertExpectations(t)
}

func TestNormalizeEmoji(t *testing.T) {
	assert.Equal(t, "❌", normalizeEmoji("❌"))
	assert.Equal(t, "no:123", normalizeEmoji("<:no:123>"))
	assert.Equal(t, "no:123", normalizeEmoji("<a:no:123>"))
}
