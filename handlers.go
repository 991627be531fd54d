package idblaster

import (
	"github.com/madlabz/idblaster/utils"
)

// Handler is an interface that defines the methods for handling events.
type Handler interface {
	Check(*Event) bool
	Invoke(*Event, *Context)
}

// Callback is a function type that represents a callback function for handling events.
type Callback func(*Event, *Context)

// CommandHandler is a struct that implements the Handler interface for handling bot commands.
type CommandHandler struct {
	Callback Callback
	Filter   Filter
	Commands []string
}

// Check checks if the event is one of the handler's commands.
func (ch *CommandHandler) Check(event *Event) bool {
	if event.Type != OnCommand || event.Command == nil {
		return false
	}
	if !utils.Contains(ch.Commands, event.Command.Name) {
		return false
	}
	if ch.Filter != nil {
		return ch.Filter.Check(event)
	}
	return true
}

// Invoke executes the callback function for the command event.
func (ch *CommandHandler) Invoke(event *Event, context *Context) {
	ch.Callback(event, context)
}

// NewCommandHandler returns a new `CommandHandler`.
func NewCommandHandler(callback Callback, filter Filter, commands ...string) Handler {
	return &CommandHandler{
		Callback: callback,
		Filter:   filter,
		Commands: commands,
	}
}

// CallbackHandler is a struct that implements the Handler interface for handling inline button presses.
type CallbackHandler struct {
	Callback Callback
	Filter   Filter
}

// Check checks if the event is a callback query event.
func (ch *CallbackHandler) Check(event *Event) bool {
	if event.Type != OnCallback || event.Callback == nil {
		return false
	}
	if ch.Filter != nil {
		return ch.Filter.Check(event)
	}
	return true
}

// Invoke executes the callback function for the callback query event.
func (ch *CallbackHandler) Invoke(event *Event, context *Context) {
	ch.Callback(event, context)
}

// NewCallbackHandler returns a new `CallbackHandler`.
func NewCallbackHandler(callback Callback, filter Filter) Handler {
	return &CallbackHandler{
		Callback: callback,
		Filter:   filter,
	}
}

// MessageHandler is a struct that implements the Handler interface for handling any incoming message,
// including commands and forwards that no earlier handler took.
type MessageHandler struct {
	Callback Callback
	Filter   Filter
}

// Check checks if the event carries a message.
func (mh *MessageHandler) Check(event *Event) bool {
	if event.Type&(OnMessage|OnCommand|OnForward) == 0 || event.Message == nil {
		return false
	}
	if mh.Filter != nil {
		return mh.Filter.Check(event)
	}
	return true
}

// Invoke executes the callback function for the message event.
func (mh *MessageHandler) Invoke(event *Event, context *Context) {
	mh.Callback(event, context)
}

// NewMessageHandler returns a new `MessageHandler`.
func NewMessageHandler(callback Callback, filter Filter) Handler {
	return &MessageHandler{
		Callback: callback,
		Filter:   filter,
	}
}

// TypeHandler is a struct that implements the Handler interface for handling events of a specific type.
type TypeHandler struct {
	Callback Callback
	Filter   Filter
	Type     EventType
}

// Check checks if the event is of the specified type.
func (th *TypeHandler) Check(event *Event) bool {
	if th.Type&event.Type == 0 {
		return false
	}
	if th.Filter != nil {
		return th.Filter.Check(event)
	}
	return true
}

// Invoke executes the callback function for the event of the specified type.
func (th *TypeHandler) Invoke(event *Event, context *Context) {
	th.Callback(event, context)
}

// NewTypeHandler returns a new `TypeHandler`.
func NewTypeHandler(callback Callback, filter Filter, eventType EventType) Handler {
	return &TypeHandler{
		Callback: callback,
		Filter:   filter,
		Type:     eventType,
	}
}

// UnknownCommandHandler is a struct that implements the Handler interface for commands
// that no [CommandHandler] registered in the application knows.
type UnknownCommandHandler struct {
	Callback Callback
	Filter   Filter
	app      *Application
}

// Check checks if the event is a command nobody handles.
func (uh *UnknownCommandHandler) Check(event *Event) bool {
	if event.Type != OnCommand || event.Command == nil || uh.app == nil {
		return false
	}
	if utils.Contains(uh.app.Commands(), event.Command.Name) {
		return false
	}
	if uh.Filter != nil {
		return uh.Filter.Check(event)
	}
	return true
}

// Invoke executes the callback function for the unknown command event.
func (uh *UnknownCommandHandler) Invoke(event *Event, context *Context) {
	uh.Callback(event, context)
}

// NewUnknownCommandHandler returns a new `UnknownCommandHandler`.
func NewUnknownCommandHandler(callback Callback, filter Filter) Handler {
	return &UnknownCommandHandler{
		Callback: callback,
		Filter:   filter,
	}
}
