package idblaster

import (
	"testing"

	"github.com/madlabz/idblaster/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const botUsername = "IDBlasterBot"

func TestDecodeUpdate_TopicCommand(t *testing.T) {
	raw := `{"update_id": 10, "message": {
		"message_id": 55, "message_thread_id": 9, "is_topic_message": true,
		"from": {"id": 1, "is_bot": false, "first_name": "Boss", "username": "boss"},
		"chat": {"id": -100123, "type": "supergroup", "title": "Lab"},
		"date": 1700000000,
		"text": "/mode@IDBlasterBot Silent",
		"entities": [{"type": "bot_command", "offset": 0, "length": 18}],
		"reply_to_message": {"message_id": 9, "chat": {"id": -100123, "type": "supergroup"}, "date": 1}
	}}`

	updateID, event, err := decodeUpdate([]byte(raw), botUsername)
	require.NoError(t, err)
	require.NotNil(t, event)

	assert.Equal(t, 10, updateID)
	assert.Equal(t, OnCommand, event.Type)
	assert.Equal(t, 10, event.UpdateID)
	assert.Equal(t, int64(-100123), event.Chat.ID)
	assert.Equal(t, models.ChatTypeSupergroup, event.Chat.Type)
	assert.Equal(t, int64(1), event.User.ID)
	assert.Equal(t, 9, event.Message.ThreadID, "the thread ID should be recovered")
	assert.Nil(t, event.Message.ReplyTo, "the implicit reply to the topic root should be dropped")

	require.NotNil(t, event.Command)
	assert.Equal(t, "mode", event.Command.Name)
	assert.Equal(t, botUsername, event.Command.Mention)
	assert.Equal(t, "Silent", event.Command.Argument)
	assert.Equal(t, []string{"Silent"}, event.Command.Arguments)
}

func TestDecodeUpdate_OtherBot(t *testing.T) {
	raw := `{"update_id": 11, "message": {
		"message_id": 56, "date": 1,
		"from": {"id": 1, "is_bot": false, "first_name": "Boss"},
		"chat": {"id": -100123, "type": "supergroup"},
		"text": "/id@OtherBot",
		"entities": [{"type": "bot_command", "offset": 0, "length": 12}]
	}}`

	_, event, err := decodeUpdate([]byte(raw), botUsername)
	require.NoError(t, err)

	assert.Equal(t, OnMessage, event.Type, "a command for another bot is a plain message")
	assert.Nil(t, event.Command)
}

func TestDecodeUpdate_ReplyCommand(t *testing.T) {
	raw := `{"update_id": 12, "message": {
		"message_id": 57, "date": 1,
		"from": {"id": 1, "is_bot": false, "first_name": "Boss"},
		"chat": {"id": -100123, "type": "group"},
		"text": "/REPLYID",
		"entities": [{"type": "bot_command", "offset": 0, "length": 8}],
		"reply_to_message": {
			"message_id": 40, "date": 1,
			"from": {"id": 2, "is_bot": false, "first_name": "Pleb", "username": "pleb"},
			"chat": {"id": -100123, "type": "group"}
		}
	}}`

	_, event, err := decodeUpdate([]byte(raw), botUsername)
	require.NoError(t, err)

	require.NotNil(t, event.Command)
	assert.Equal(t, "replyid", event.Command.Name, "command names are lower-cased")
	assert.Empty(t, event.Command.Mention)
	assert.Zero(t, event.Message.ThreadID)

	target := event.Message.ReplyTarget()
	require.NotNil(t, target)
	assert.Equal(t, int64(2), target.ID)
	assert.Equal(t, "pleb", target.Username)
}

func TestDecodeUpdate_ReplyChainInPlainSupergroup(t *testing.T) {
	raw := `{"update_id": 19, "message": {
		"message_id": 51, "message_thread_id": 50, "date": 1,
		"from": {"id": 1, "is_bot": false, "first_name": "Boss"},
		"chat": {"id": -100123, "type": "supergroup", "title": "Lab"},
		"text": "/replyid",
		"entities": [{"type": "bot_command", "offset": 0, "length": 8}],
		"reply_to_message": {
			"message_id": 50, "date": 1,
			"from": {"id": 7, "is_bot": false, "first_name": "Target", "username": "target"},
			"chat": {"id": -100123, "type": "supergroup", "title": "Lab"}
		}
	}}`

	_, event, err := decodeUpdate([]byte(raw), botUsername)
	require.NoError(t, err)

	assert.Zero(t, event.Message.ThreadID, "a reply chain is not a topic")
	target := event.Message.ReplyTarget()
	require.NotNil(t, target, "the replied message should be kept outside topics")
	assert.Equal(t, int64(7), target.ID)

	app, client := newTestApp(nil)
	client.statuses[1] = StatusAdministrator
	app.dispatchEvent(event)

	sent := client.Sent()
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].Text, "User ID: <code>7</code>", "/replyid should report the replied user")
	assert.Equal(t, 51, sent[0].ReplyToID, "the answer should reply to the command")
	assert.Zero(t, sent[0].ThreadID, "the answer should not target a topic")
}

func TestDecodeUpdate_Callback(t *testing.T) {
	raw := `{"update_id": 13, "callback_query": {
		"id": "4382", "chat_instance": "1",
		"from": {"id": 2, "is_bot": false, "first_name": "Pleb"},
		"data": "copy:topic:9",
		"message": {
			"message_id": 77, "message_thread_id": 9, "is_topic_message": true, "date": 1,
			"chat": {"id": -100123, "type": "supergroup"}
		}
	}}`

	_, event, err := decodeUpdate([]byte(raw), botUsername)
	require.NoError(t, err)

	assert.Equal(t, OnCallback, event.Type)
	require.NotNil(t, event.Callback)
	assert.Equal(t, "4382", event.Callback.ID)
	assert.Equal(t, "copy:topic:9", event.Callback.Data)
	assert.Equal(t, int64(2), event.User.ID, "the presser is the effective user")
	assert.Equal(t, int64(-100123), event.Chat.ID)
	assert.Equal(t, 9, event.Message.ThreadID, "the button message keeps its thread")
}

func TestDecodeUpdate_ForwardOrigin(t *testing.T) {
	raw := `{"update_id": 14, "message": {
		"message_id": 58, "date": 1,
		"from": {"id": 1, "is_bot": false, "first_name": "Boss"},
		"chat": {"id": 1, "type": "private"},
		"text": "hello",
		"forward_origin": {
			"type": "channel", "date": 1, "message_id": 321, "author_signature": "Ed",
			"chat": {"id": -100999, "type": "channel", "title": "News"}
		}
	}}`

	_, event, err := decodeUpdate([]byte(raw), botUsername)
	require.NoError(t, err)

	assert.Equal(t, OnForward, event.Type)
	require.NotNil(t, event.Forward)
	assert.Equal(t, models.OriginChannel, event.Forward.Kind)
	assert.Equal(t, int64(-100999), event.Forward.Chat.ID)
	assert.Equal(t, 321, event.Forward.MessageID)
	assert.Equal(t, "Ed", event.Forward.Signature)
}

func TestDecodeUpdate_ForwardOriginHidden(t *testing.T) {
	raw := `{"update_id": 15, "message": {
		"message_id": 59, "date": 1,
		"from": {"id": 1, "is_bot": false, "first_name": "Boss"},
		"chat": {"id": 1, "type": "private"},
		"text": "/id looks like a command",
		"entities": [{"type": "bot_command", "offset": 0, "length": 3}],
		"forward_origin": {"type": "hidden_user", "date": 1, "sender_user_name": "Ghost"}
	}}`

	_, event, err := decodeUpdate([]byte(raw), botUsername)
	require.NoError(t, err)

	assert.Equal(t, OnForward, event.Type, "a forwarded command is still a forward")
	assert.Equal(t, models.OriginHiddenUser, event.Forward.Kind)
	assert.Equal(t, "Ghost", event.Forward.SenderName)
	assert.Nil(t, event.Forward.User)
}

func TestDecodeUpdate_LegacyForward(t *testing.T) {
	raw := `{"update_id": 16, "message": {
		"message_id": 60, "date": 1,
		"from": {"id": 1, "is_bot": false, "first_name": "Boss"},
		"chat": {"id": 1, "type": "private"},
		"text": "hello",
		"forward_from": {"id": 2, "is_bot": true, "first_name": "Helper", "username": "helper_bot"},
		"forward_date": 1
	}}`

	_, event, err := decodeUpdate([]byte(raw), botUsername)
	require.NoError(t, err)

	assert.Equal(t, OnForward, event.Type)
	assert.Equal(t, models.OriginUser, event.Forward.Kind)
	require.NotNil(t, event.Forward.User)
	assert.Equal(t, int64(2), event.Forward.User.ID)
	assert.True(t, event.Forward.User.IsBot)
}

func TestDecodeUpdate_Unhandled(t *testing.T) {
	raw := `{"update_id": 17, "edited_message": {"message_id": 1, "date": 1, "chat": {"id": 1, "type": "private"}}}`

	updateID, event, err := decodeUpdate([]byte(raw), botUsername)

	assert.NoError(t, err)
	assert.Nil(t, event, "edited messages are not handled")
	assert.Equal(t, 17, updateID)
}

func TestDecodeUpdate_Malformed(t *testing.T) {
	raw := `{"update_id": 18, "message": "not an object"}`

	updateID, event, err := decodeUpdate([]byte(raw), botUsername)

	assert.Error(t, err)
	assert.Nil(t, event)
	assert.Equal(t, 18, updateID, "the update ID should survive a decoding failure")
}
