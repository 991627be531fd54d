package idblaster

import (
	"encoding/json"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/madlabz/idblaster/models"
)

// The fields below were added to the Bot API after telegram-bot-api v5.5.1,
// so they are decoded from the raw update next to [tgbotapi.Update].
type updateOverlay struct {
	Message       *messageOverlay `json:"message"`
	CallbackQuery *struct {
		Message *messageOverlay `json:"message"`
	} `json:"callback_query"`
}

type messageOverlay struct {
	MessageThreadID int                   `json:"message_thread_id"`
	IsTopicMessage  bool                  `json:"is_topic_message"`
	ForwardOrigin   *forwardOriginOverlay `json:"forward_origin"`
	ReplyToMessage  *messageOverlay       `json:"reply_to_message"`
}

type forwardOriginOverlay struct {
	Type            string         `json:"type"`
	SenderUser      *tgbotapi.User `json:"sender_user"`
	SenderUserName  string         `json:"sender_user_name"`
	SenderChat      *tgbotapi.Chat `json:"sender_chat"`
	Chat            *tgbotapi.Chat `json:"chat"`
	MessageID       int            `json:"message_id"`
	AuthorSignature string         `json:"author_signature"`
}

// decodeUpdate turns a raw Bot API update into an [Event].
//
// Args:
//   - raw: The update as returned by getUpdates.
//   - username: The bot's own username, used to drop commands addressed to other bots.
//
// Returns:
//   - int: The update ID, valid even when the update is skipped.
//   - *Event: The event, nil for update kinds the bot does not handle.
//   - error: An error if the update cannot be decoded.
func decodeUpdate(raw []byte, username string) (int, *Event, error) {
	var update tgbotapi.Update
	if err := json.Unmarshal(raw, &update); err != nil {
		// Still report the ID so the poller can move past the update.
		var id struct {
			UpdateID int `json:"update_id"`
		}
		json.Unmarshal(raw, &id)
		return id.UpdateID, nil, err
	}

	var overlay updateOverlay
	if err := json.Unmarshal(raw, &overlay); err != nil {
		return update.UpdateID, nil, err
	}

	var event *Event
	switch {
	case update.Message != nil:
		event = messageEvent(update.Message, overlay.Message, username)
	case update.CallbackQuery != nil:
		var msgOverlay *messageOverlay
		if overlay.CallbackQuery != nil {
			msgOverlay = overlay.CallbackQuery.Message
		}
		event = callbackEvent(update.CallbackQuery, msgOverlay)
	default:
		return update.UpdateID, nil, nil
	}
	event.UpdateID = update.UpdateID

	return update.UpdateID, event, nil
}

// messageEvent classifies a message as a forward, a command or a plain message.
func messageEvent(msg *tgbotapi.Message, overlay *messageOverlay, username string) *Event {
	message := convertMessage(msg, overlay)
	event := &Event{
		Type:    OnMessage,
		Chat:    message.Chat,
		User:    message.From,
		Message: message,
	}

	if message.Forward != nil {
		event.Type = OnForward
		event.Forward = message.Forward
		return event
	}

	if msg.IsCommand() {
		name, mention, _ := strings.Cut(msg.CommandWithAt(), "@")
		if mention != "" && !strings.EqualFold(mention, username) {
			return event
		}

		argument := strings.TrimSpace(msg.CommandArguments())
		event.Type = OnCommand
		event.Command = &Command{
			Name:      strings.ToLower(name),
			Mention:   mention,
			Argument:  argument,
			Arguments: strings.Fields(argument),
		}
	}

	return event
}

func callbackEvent(query *tgbotapi.CallbackQuery, overlay *messageOverlay) *Event {
	callback := &models.CallbackQuery{
		ID:      query.ID,
		From:    convertUser(query.From),
		Message: convertMessage(query.Message, overlay),
		Data:    query.Data,
	}

	event := &Event{
		Type:     OnCallback,
		User:     callback.From,
		Message:  callback.Message,
		Callback: callback,
	}
	if callback.Message != nil {
		event.Chat = callback.Message.Chat
	}

	return event
}

func convertMessage(msg *tgbotapi.Message, overlay *messageOverlay) *models.Message {
	if msg == nil {
		return nil
	}

	message := &models.Message{
		ID:         msg.MessageID,
		Chat:       convertChat(msg.Chat),
		From:       convertUser(msg.From),
		SenderChat: convertChat(msg.SenderChat),
		Text:       msg.Text,
	}

	var replyOverlay *messageOverlay
	if overlay != nil {
		// Outside forum topics message_thread_id names a reply chain, not a topic.
		if overlay.IsTopicMessage {
			message.ThreadID = overlay.MessageThreadID
		}
		replyOverlay = overlay.ReplyToMessage
	}

	// Inside a topic every message implicitly replies to the topic's first message.
	reply := msg.ReplyToMessage
	if reply != nil && message.InThread() && reply.MessageID == message.ThreadID {
		reply = nil
	}
	message.ReplyTo = convertMessage(reply, replyOverlay)

	if overlay != nil && overlay.ForwardOrigin != nil {
		message.Forward = convertForwardOrigin(overlay.ForwardOrigin)
	} else {
		message.Forward = legacyForwardOrigin(msg)
	}

	return message
}

func convertForwardOrigin(origin *forwardOriginOverlay) *models.ForwardOrigin {
	forward := &models.ForwardOrigin{
		Kind:       origin.Type,
		SenderName: origin.SenderUserName,
		MessageID:  origin.MessageID,
		Signature:  origin.AuthorSignature,
	}

	switch origin.Type {
	case models.OriginUser:
		forward.User = convertUser(origin.SenderUser)
	case models.OriginChat:
		forward.Chat = convertChat(origin.SenderChat)
	case models.OriginChannel:
		forward.Chat = convertChat(origin.Chat)
	}

	return forward
}

// legacyForwardOrigin reads the forward_* fields older Bot API versions send.
func legacyForwardOrigin(msg *tgbotapi.Message) *models.ForwardOrigin {
	switch {
	case msg.ForwardFrom != nil:
		return &models.ForwardOrigin{
			Kind: models.OriginUser,
			User: convertUser(msg.ForwardFrom),
		}
	case msg.ForwardFromChat != nil:
		kind := models.OriginChat
		if msg.ForwardFromChat.IsChannel() {
			kind = models.OriginChannel
		}
		return &models.ForwardOrigin{
			Kind:      kind,
			Chat:      convertChat(msg.ForwardFromChat),
			MessageID: msg.ForwardFromMessageID,
			Signature: msg.ForwardSignature,
		}
	case msg.ForwardSenderName != "":
		return &models.ForwardOrigin{
			Kind:       models.OriginHiddenUser,
			SenderName: msg.ForwardSenderName,
		}
	}

	return nil
}

func convertChat(chat *tgbotapi.Chat) *models.Chat {
	if chat == nil {
		return nil
	}

	return &models.Chat{
		ID:       chat.ID,
		Type:     chat.Type,
		Title:    chat.Title,
		Username: chat.UserName,
	}
}

func convertUser(user *tgbotapi.User) *models.User {
	if user == nil {
		return nil
	}

	return &models.User{
		ID:        user.ID,
		Username:  user.UserName,
		FirstName: user.FirstName,
		IsBot:     user.IsBot,
	}
}
