package models

// Message represents an incoming message.
type Message struct {
	ID         int            // ID of the message inside its chat.
	ThreadID   int            // Topic (message thread) ID, 0 when the message is not in a thread.
	Chat       *Chat          // Chat the message belongs to.
	From       *User          // Sender, nil for channel posts.
	SenderChat *Chat          // Chat the message was sent on behalf of, if any.
	Text       string         // Text of the message.
	ReplyTo    *Message       // Message this one replies to.
	Forward    *ForwardOrigin // Origin of a forwarded message.
}

// InThread reports whether the message belongs to a topic.
func (m *Message) InThread() bool {
	return m != nil && m.ThreadID != 0
}

// ReplyTarget returns the author of the message this one replies to.
func (m *Message) ReplyTarget() *User {
	if m == nil || m.ReplyTo == nil {
		return nil
	}
	return m.ReplyTo.From
}
