package idblaster

import (
	"github.com/madlabz/idblaster/models"
	"github.com/madlabz/idblaster/utils"
	"github.com/rs/zerolog/log"
)

// HandleHelp answers /start and /help.
func HandleHelp(event *Event, context *Context) {
	text := helpText(event.User)
	context.ReplyInPlace(event, text, nil)
}

// HandleAbout answers /about.
func HandleAbout(event *Event, context *Context) {
	context.ReplyInPlace(event, aboutText(), nil)
}

// inspect runs the checks shared by the ID inspection commands.
//
// Args:
//   - event: The command event.
//   - context: The callback context.
//
// Returns:
//   - bool: True when the command may answer.
func inspect(event *Event, context *Context) bool {
	if context.Modes.IsSilent(event.Chat) {
		return false
	}
	if !context.IsAuthorized(event) {
		context.ReplyInPlace(event, denialText(event.Command.Name), nil)
		return false
	}
	return true
}

// HandleID answers /id with the chat, topic and user IDs.
func HandleID(event *Event, context *Context) {
	if !inspect(event, context) {
		return
	}

	text, keyboard := idPayload(event)
	context.ReplyInPlace(event, text, keyboard)
}

// HandleChat answers /chat with the chat ID.
func HandleChat(event *Event, context *Context) {
	if !inspect(event, context) || event.Chat == nil {
		return
	}

	text, keyboard := chatPayload(event.Chat)
	context.ReplyInPlace(event, text, keyboard)
}

// HandleTopic answers /topic with the topic ID.
func HandleTopic(event *Event, context *Context) {
	if !inspect(event, context) || event.Message == nil {
		return
	}

	text, keyboard := topicPayload(event.Message)
	context.ReplyInPlace(event, text, keyboard)
}

// HandleReplyID answers /replyid with the ID of the user the command replies to.
func HandleReplyID(event *Event, context *Context) {
	if !inspect(event, context) {
		return
	}

	target := event.Message.ReplyTarget()
	if target == nil {
		context.ReplyInPlace(event, replyHintText(), nil)
		return
	}

	text, keyboard := replyPayload(target)
	context.ReplyInPlace(event, text, keyboard)
}

// HandleMode answers /mode [silent|group].
//
// Without an argument it reports the current mode. Modes only exist in groups.
func HandleMode(event *Event, context *Context) {
	if event.IsPrivate() {
		context.ReplyInPlace(event, modePrivateText(), nil)
		return
	}
	if !context.IsAuthorized(event) {
		context.ReplyInPlace(event, denialText(event.Command.Name), nil)
		return
	}

	if event.Command.Argument == "" {
		context.ReplyInPlace(event, modeText(context.Modes.CurrentMode(event.Chat)), nil)
		return
	}

	mode, err := models.ParseMode(event.Command.Argument)
	if err != nil {
		context.ReplyInPlace(event, modeInvalidText(event.Command.Argument), nil)
		return
	}

	context.Modes.Set(event.Chat.ID, mode)
	log.Debug().Int64("Chat", event.Chat.ID).Str("Mode", string(mode)).Msg("Mode changed")
	context.ReplyInPlace(event, modeText(mode), nil)
}

// HandleClean answers /clean by deleting the bot's recent messages in the chat.
func HandleClean(event *Event, context *Context) {
	if event.Chat == nil {
		return
	}
	if !context.IsAuthorized(event) {
		context.ReplyInPlace(event, denialText(event.Command.Name), nil)
		return
	}

	// The report is left untracked so a clean always leaves the chat's log empty.
	result := context.Clean(event.Chat.ID)
	context.replyInPlace(event, cleanText(result), nil, false)
}

// HandleCopy answers a copy button press by sending the ID as its own message.
// Malformed payloads get no answer beyond the callback acknowledgement.
func HandleCopy(event *Event, context *Context) {
	if err := context.App.Client.AnswerCallback(event.Callback.ID); err != nil {
		log.Debug().Err(err).Str("Callback", event.Callback.ID).Msg("Failed to answer callback")
	}

	text, err := copyText(event.Callback.Data)
	if err != nil {
		return
	}

	context.ReplyInPlace(event, text, nil)
}

// HandleForward reports where a forwarded message came from.
// Forwards are unsolicited, so unauthorized users get no denial.
func HandleForward(event *Event, context *Context) {
	if event.Forward == nil || context.Modes.IsSilent(event.Chat) {
		return
	}
	if !context.IsAuthorized(event) {
		return
	}

	text, keyboard := forwardPayload(event.Forward)
	context.ReplyInPlace(event, text, keyboard)
}

// HandleDebug dumps the raw IDs of every message.
func HandleDebug(event *Event, context *Context) {
	context.ReplyInPlace(event, debugText(event), nil)
}

// HandleUnknownCommand points the user to the closest known command.
func HandleUnknownCommand(event *Event, context *Context) {
	if context.Modes.IsSilent(event.Chat) {
		return
	}

	suggestion, _ := utils.Suggest(event.Command.Name, context.App.Commands(), SUGGEST_MAX_DISTANCE)
	context.ReplyInPlace(event, unknownCommandText(event.Command.Name, suggestion), nil)
}

// HandleStop logs the chats whose silent mode is lost with the process.
func HandleStop(event *Event, context *Context) {
	chats := context.Modes.SilentChats()
	if len(chats) == 0 {
		return
	}

	log.Info().Ints64("Chats", chats).Msg("Silent mode is not kept across restarts")
}

// mentioned reports whether a command was explicitly addressed to the bot.
func mentioned(event *Event) bool {
	return event.Command != nil && event.Command.Mention != ""
}

// RegisterHandlers adds the bot's handlers to the application.
//
// The raw ID dump is only registered when debug chats or users are configured.
func RegisterHandlers(app *Application) *Application {
	app.AddHandler(NewCommandHandler(HandleHelp, nil, "start", "help")).
		AddHandler(NewCommandHandler(HandleAbout, nil, "about")).
		AddHandler(NewCommandHandler(HandleID, nil, "id")).
		AddHandler(NewCommandHandler(HandleChat, nil, "chat")).
		AddHandler(NewCommandHandler(HandleTopic, nil, "topic")).
		AddHandler(NewCommandHandler(HandleReplyID, nil, "replyid")).
		AddHandler(NewCommandHandler(HandleMode, nil, "mode")).
		AddHandler(NewCommandHandler(HandleClean, nil, "clean")).
		AddHandler(NewCallbackHandler(HandleCopy, NewRegexFilter("^"+COPY_CALLBACK_PREFIX))).
		AddHandler(NewTypeHandler(HandleForward, nil, OnForward)).
		AddHandler(NewTypeHandler(HandleStop, nil, OnStop)).
		AddHandler(NewUnknownCommandHandler(
			HandleUnknownCommand,
			NewChatTypeFilter(models.ChatTypePrivate).Or(NewFuncFilter(mentioned)),
		))

	if app.Config != nil && (len(app.Config.DebugChats) > 0 || len(app.Config.DebugUsers) > 0) {
		filter := NewChatFilter(app.Config.DebugChats...).Or(NewUserFilter(app.Config.DebugUsers...))
		app.AddHandler(NewMessageHandler(HandleDebug, filter))
	}

	return app
}
