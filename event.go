package idblaster

import (
	"github.com/madlabz/idblaster/models"
)

// EventType represents the type of an event.
type EventType int64

// Event types.
const (
	// Event triggered when the application starts.
	OnStart EventType = 1 << iota
	// Event triggered when the application stops.
	OnStop
	// Event triggered when a handler panics.
	OnError

	// Event triggered when a bot command is received.
	OnCommand
	// Event triggered when an inline keyboard button is pressed.
	OnCallback
	// Event triggered when a forwarded message is received.
	OnForward
	// Event triggered when any other message is received.
	OnMessage
)

// String returns a string of said EventType.
func (e EventType) String() string {
	switch e {
	case OnStart:
		return "OnStart"
	case OnStop:
		return "OnStop"
	case OnError:
		return "OnError"
	case OnCommand:
		return "OnCommand"
	case OnCallback:
		return "OnCallback"
	case OnForward:
		return "OnForward"
	case OnMessage:
		return "OnMessage"
	default:
		return "UnknownEvent"
	}
}

// Command is the parsed form of a "/name@bot args" message.
type Command struct {
	Name      string   // Lower-cased command name without the slash.
	Mention   string   // Bot username the command was addressed to, may be empty.
	Argument  string   // Everything after the command.
	Arguments []string // Argument split on white space.
}

// Event represents an event that can occur in the application.
//
// Type decides which payload is set: Command for [OnCommand], Callback for [OnCallback]
// and Forward for [OnForward]. Chat, User and Message are the effective chat, user and
// message of the update; for callbacks Message is the message carrying the button.
type Event struct {
	Type     EventType             // The type of the event.
	UpdateID int                   // The Bot API update ID.
	Chat     *models.Chat          // The chat associated with the event.
	User     *models.User          // The user associated with the event.
	Message  *models.Message       // The message associated with the event.
	Command  *Command              // The command associated with the event.
	Callback *models.CallbackQuery // The callback query associated with the event.
	Forward  *models.ForwardOrigin // The forward origin associated with the event.
	Error    any                   // The error associated with the event.
}

// IsPrivate reports whether the event happened in a private chat.
func (e *Event) IsPrivate() bool {
	return e.Chat.IsPrivate()
}
