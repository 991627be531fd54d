package models

// CallbackQuery represents a press on an inline keyboard button.
type CallbackQuery struct {
	ID      string   // ID of the query, used to answer it.
	From    *User    // User who pressed the button.
	Message *Message // Message carrying the button, nil for inline messages.
	Data    string   // Data attached to the button.
}
