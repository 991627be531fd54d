package models

// Chat types as reported by the Bot API.
const (
	ChatTypePrivate    = "private"
	ChatTypeGroup      = "group"
	ChatTypeSupergroup = "supergroup"
	ChatTypeChannel    = "channel"
)

// Chat represents a Telegram chat.
type Chat struct {
	ID       int64  // ID of the chat.
	Type     string // Type of the chat, one of the ChatType constants.
	Title    string // Title for groups, supergroups and channels.
	Username string // Public username of the chat, may be empty.
}

// IsPrivate reports whether the chat is a one-to-one conversation with the bot.
func (c *Chat) IsPrivate() bool {
	return c != nil && c.Type == ChatTypePrivate
}
