package bot

import (
	"context"
	"fmt"
	"strings"

	"smanager/application"
	"smanager/application/dto"
	"smanager/bot/common"
	"smanager/infrastructure/observability"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// discordAPI is the subset of *discordgo.Session the messenger calls
type discordAPI interface {
	Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	GuildRoles(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Role, error)
	User(userID string, options ...discordgo.RequestOption) (*discordgo.User, error)
	UserChannelPermissions(userID, channelID string, fetchOptions ...discordgo.RequestOption) (int64, error)
	MessageReactionAdd(channelID, messageID, emojiID string, options ...discordgo.RequestOption) error
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
	GuildMemberRoleRemove(guildID, userID, roleID string, options ...discordgo.RequestOption) error
}

// A member that cannot view a channel cannot send to it either, whatever its send bit says.
const sendPermissions = discordgo.PermissionViewChannel | discordgo.PermissionSendMessages

// Messenger performs the Discord side effects of event handlers.
// Expected Discord failures are logged and swallowed per call.
type Messenger struct {
	api   discordAPI
	state *discordgo.State
}

var _ application.Messenger = (*Messenger)(nil)

// NewMessenger creates a messenger backed by a gateway session
func NewMessenger(session *discordgo.Session) *Messenger {
	return newMessenger(session, session.State)
}

func newMessenger(api discordAPI, state *discordgo.State) *Messenger {
	return &Messenger{api: api, state: state}
}

func (m *Messenger) ChannelExists(ctx context.Context, channelID int64) bool {
	if m.state != nil {
		if _, err := m.state.Channel(common.FormatID(channelID)); err == nil {
			return true
		}
	}

	_, err := m.api.Channel(common.FormatID(channelID), discordgo.WithContext(ctx))
	if err != nil {
		m.suppress("fetch channel", err)
		return false
	}
	return true
}

func (m *Messenger) CanSend(ctx context.Context, channelID int64) bool {
	botID := m.botUserID()
	if botID == "" {
		return false
	}

	perms, err := m.api.UserChannelPermissions(botID, common.FormatID(channelID), discordgo.WithContext(ctx))
	if err != nil {
		m.suppress("fetch channel permissions", err)
		return false
	}
	return perms&sendPermissions == sendPermissions
}

func (m *Messenger) RoleExists(ctx context.Context, guildID, roleID int64) bool {
	guild, role := common.FormatID(guildID), common.FormatID(roleID)
	if m.state != nil {
		if _, err := m.state.Role(guild, role); err == nil {
			return true
		}
	}

	roles, err := m.api.GuildRoles(guild, discordgo.WithContext(ctx))
	if err != nil {
		m.suppress("fetch guild roles", err)
		return false
	}
	for _, r := range roles {
		if r.ID == role {
			return true
		}
	}
	return false
}

func (m *Messenger) InGuild(guildID int64) bool {
	if m.state == nil {
		return false
	}
	_, err := m.state.Guild(common.FormatID(guildID))
	return err == nil
}

func (m *Messenger) UserTag(ctx context.Context, userID int64) string {
	user, err := m.api.User(common.FormatID(userID), discordgo.WithContext(ctx))
	if err != nil || user == nil {
		m.suppress("fetch user", err)
		return ""
	}
	return user.String()
}

func (m *Messenger) AddReaction(ctx context.Context, channelID, messageID int64, emoji string) error {
	err := m.api.MessageReactionAdd(common.FormatID(channelID), common.FormatID(messageID), normalizeEmoji(emoji), discordgo.WithContext(ctx))
	if err != nil {
		return m.suppress("add reaction", err)
	}
	observability.GetMetrics().RecordMessageSent(observability.MessageTypeReaction)
	return nil
}

func (m *Messenger) Reply(ctx context.Context, channelID, messageID int64, embed dto.Embed) (int64, error) {
	failIfNotExists := false
	sent, err := m.api.ChannelMessageSendComplex(common.FormatID(channelID), &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{toMessageEmbed(embed)},
		Reference: &discordgo.MessageReference{
			MessageID:       common.FormatID(messageID),
			ChannelID:       common.FormatID(channelID),
			FailIfNotExists: &failIfNotExists,
		},
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Parse:       []discordgo.AllowedMentionType{discordgo.AllowedMentionTypeUsers},
			RepliedUser: true,
		},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return 0, m.suppress("reply", err)
	}

	observability.GetMetrics().RecordMessageSent(observability.MessageTypeReply)
	id, err := common.ParseID(sent.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to read reply id: %w", err)
	}
	return id, nil
}

func (m *Messenger) Send(ctx context.Context, channelID int64, msg dto.OutgoingMessage) error {
	send := &discordgo.MessageSend{
		Content:         msg.Content,
		AllowedMentions: &discordgo.MessageAllowedMentions{Parse: []discordgo.AllowedMentionType{}},
	}
	if msg.AllowRoleMentions {
		send.AllowedMentions.Parse = []discordgo.AllowedMentionType{discordgo.AllowedMentionTypeRoles}
	}
	messageType := observability.MessageTypeSlotlist
	if msg.Embed != nil {
		send.Embeds = []*discordgo.MessageEmbed{toMessageEmbed(*msg.Embed)}
		messageType = observability.MessageTypeLog
	}

	if _, err := m.api.ChannelMessageSendComplex(common.FormatID(channelID), send, discordgo.WithContext(ctx)); err != nil {
		return m.suppress("send message", err)
	}
	observability.GetMetrics().RecordMessageSent(messageType)
	return nil
}

func (m *Messenger) DeleteMessage(ctx context.Context, channelID, messageID int64) error {
	err := m.api.ChannelMessageDelete(common.FormatID(channelID), common.FormatID(messageID), discordgo.WithContext(ctx))
	return m.suppress("delete message", err)
}

func (m *Messenger) RemoveRole(ctx context.Context, guildID, userID, roleID int64) error {
	err := m.api.GuildMemberRoleRemove(common.FormatID(guildID), common.FormatID(userID), common.FormatID(roleID), discordgo.WithContext(ctx))
	return m.suppress("remove role", err)
}

func (m *Messenger) botUserID() string {
	if m.state == nil || m.state.User == nil {
		return ""
	}
	return m.state.User.ID
}

// suppress swallows expected Discord failures and wraps the rest
func (m *Messenger) suppress(op string, err error) error {
	if err == nil {
		return nil
	}

	if kind, ok := common.SuppressionKind(err); ok {
		log.WithFields(log.Fields{
			"operation": op,
			"kind":      kind,
			"error":     err,
		}).Debug("Ignoring Discord error")
		observability.GetMetrics().RecordSuppressedError(kind)
		return nil
	}

	return fmt.Errorf("failed to %s: %w", op, err)
}

func toMessageEmbed(embed dto.Embed) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Color:       embed.Color,
		Description: embed.Description,
	}
}

// normalizeEmoji turns a custom emoji mention like <:name:id> or <a:name:id> into the name:id form reactions take
func normalizeEmoji(emoji string) string {
	if !strings.HasPrefix(emoji, "<") || !strings.HasSuffix(emoji, ">") {
		return emoji
	}
	trimmed := strings.TrimSuffix(strings.TrimPrefix(emoji, "<"), ">")
	return strings.TrimPrefix(trimmed, "a:")
}
