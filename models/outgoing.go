package models

// OutgoingMessage is a text message the bot is about to send.
type OutgoingMessage struct {
	ChatID    int64     // Destination chat.
	ThreadID  int       // Destination topic, 0 for none.
	ReplyToID int       // Message to reply to, 0 for none.
	Text      string    // HTML formatted text.
	Keyboard  *Keyboard // Optional inline keyboard.
}

// Button is an inline keyboard button carrying callback data.
type Button struct {
	Text string
	Data string
}

// Keyboard is an inline keyboard made of rows of buttons.
type Keyboard struct {
	Rows [][]Button
}

// NewKeyboard returns a single-row keyboard, or nil when no buttons are given.
func NewKeyboard(buttons ...Button) *Keyboard {
	if len(buttons) == 0 {
		return nil
	}
	return &Keyboard{Rows: [][]Button{buttons}}
}
