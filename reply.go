package idblaster

import (
	"github.com/madlabz/idblaster/models"
	"github.com/rs/zerolog/log"
)

// ReplyInPlace answers the event's message where it was posted.
//
// Inside a topic the answer is sent into the same topic, otherwise it replies to the message,
// so answers never jump to the main chat.
//
// Args:
//   - event: The event being answered.
//   - text: The HTML text of the answer.
//   - keyboard: An optional inline keyboard.
//
// Returns:
//   - int: The ID of the sent message.
//   - error: [ErrNoMessage] when the event has no message, or the send error.
func (c *Context) ReplyInPlace(event *Event, text string, keyboard *models.Keyboard) (int, error) {
	return c.replyInPlace(event, text, keyboard, true)
}

// replyInPlace is [Context.ReplyInPlace]; track decides whether the answer may be cleaned later.
func (c *Context) replyInPlace(event *Event, text string, keyboard *models.Keyboard, track bool) (int, error) {
	source := event.Message
	if source == nil || source.Chat == nil {
		return 0, ErrNoMessage
	}

	msg := &models.OutgoingMessage{
		ChatID:   source.Chat.ID,
		Text:     text,
		Keyboard: keyboard,
	}
	if source.InThread() {
		msg.ThreadID = source.ThreadID
	} else {
		msg.ReplyToID = source.ID
	}

	if !track {
		return c.send(msg)
	}
	return c.Send(msg)
}

// Send sends a message and remembers it for a later clean.
// Failures are logged and returned.
func (c *Context) Send(msg *models.OutgoingMessage) (int, error) {
	messageID, err := c.send(msg)
	if err != nil {
		return 0, err
	}

	c.Tracker.RecordSent(msg.ChatID, messageID)

	return messageID, nil
}

func (c *Context) send(msg *models.OutgoingMessage) (int, error) {
	messageID, err := c.App.Client.SendMessage(msg)
	if err != nil {
		log.Warn().Err(err).Int64("Chat", msg.ChatID).Int("Thread", msg.ThreadID).Msg("Failed to send message")
		return 0, err
	}

	return messageID, nil
}

// IsAuthorized reports whether the event's user may run privileged commands in the event's chat.
func (c *Context) IsAuthorized(event *Event) bool {
	return c.App.Permissions.IsAuthorized(event.Chat, event.User)
}

// Clean deletes the bot's tracked messages in the chat.
func (c *Context) Clean(chatID int64) CleanResult {
	return Clean(c.App.Client, c.Tracker, chatID)
}
