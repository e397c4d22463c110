package common

import (
	"errors"
	"net/http"

	"github.com/bwmarrin/discordgo"
)

// Kinds of Discord failures the bot ignores
const (
	ErrorKindUnknownMessage = "unknown_message"
	ErrorKindUnknownChannel = "unknown_channel"
	ErrorKindUnknownRole    = "unknown_role"
	ErrorKindForbidden      = "forbidden"
	ErrorKindHTTP           = "http"
	ErrorKindStateNotFound  = "state_not_found"
)

// SuppressionKind classifies an expected Discord failure.
// Any REST error is expected, as is a lookup that missed the gateway state cache.
func SuppressionKind(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) {
		if restErr.Message != nil {
			switch restErr.Message.Code {
			case discordgo.ErrCodeUnknownMessage:
				return ErrorKindUnknownMessage, true
			case discordgo.ErrCodeUnknownChannel:
				return ErrorKindUnknownChannel, true
			case discordgo.ErrCodeUnknownRole:
				return ErrorKindUnknownRole, true
			case discordgo.ErrCodeMissingAccess, discordgo.ErrCodeMissingPermissions:
				return ErrorKindForbidden, true
			}
		}
		if restErr.Response != nil && restErr.Response.StatusCode == http.StatusForbidden {
			return ErrorKindForbidden, true
		}
		return ErrorKindHTTP, true
	}

	if errors.Is(err, discordgo.ErrStateNotFound) {
		return ErrorKindStateNotFound, true
	}

	return "", false
}
