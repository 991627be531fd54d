package models

// Kinds of forward origins.
const (
	OriginUser       = "user"
	OriginHiddenUser = "hidden_user"
	OriginChat       = "chat"
	OriginChannel    = "channel"
)

// ForwardOrigin describes where a forwarded message originally came from.
//
// Only the fields matching Kind are set: User for "user", SenderName for
// "hidden_user", Chat (and MessageID for channels) for "chat" and "channel".
type ForwardOrigin struct {
	Kind       string
	User       *User
	SenderName string
	Chat       *Chat
	MessageID  int
	Signature  string
}
