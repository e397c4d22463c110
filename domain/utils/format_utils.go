package utils

import (
	"fmt"
	"strings"
	"unicode"
)

// Plural renders "n singular" or "n plural" from a "singular|plural" spec,
// e.g. Plural(1, "mention is|mentions are") == "1 mention is"
func Plural(n int, spec string) string {
	singular, plural, found := strings.Cut(spec, "|")
	if !found {
		plural = singular + "s"
	}
	if n == 1 || n == -1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

// Title upper-cases the first letter of each word and lower-cases the rest
func Title(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevLetter := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		default:
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

// ChannelMention formats a channel reference
func ChannelMention(channelID int64) string {
	return fmt.Sprintf("<#%d>", channelID)
}

// UserMention formats a user reference
func UserMention(userID int64) string {
	return fmt.Sprintf("<@%d>", userID)
}

// RoleMention formats a role reference
func RoleMention(roleID int64) string {
	return fmt.Sprintf("<@&%d>", roleID)
}
