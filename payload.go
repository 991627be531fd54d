package idblaster

import (
	"fmt"
	"strings"

	"github.com/madlabz/idblaster/models"
	"github.com/madlabz/idblaster/utils"
)

// Copy button kinds, see [copyButton].
const (
	CopyKindUser  = "user"
	CopyKindChat  = "chat"
	CopyKindTopic = "topic"
)

var copyLabels = map[string]string{
	CopyKindUser:  "User ID",
	CopyKindChat:  "Chat ID",
	CopyKindTopic: "Topic ID",
}

var copyButtonTexts = map[string]string{
	CopyKindUser:  "👤 Copy User ID",
	CopyKindChat:  "💬 Copy Chat ID",
	CopyKindTopic: "🧵 Copy Topic ID",
}

// copyButton returns a button that re-sends value as plain text when pressed.
func copyButton(kind string, value any) models.Button {
	return models.Button{
		Text: copyButtonTexts[kind],
		Data: fmt.Sprintf("%s%s:%v", COPY_CALLBACK_PREFIX, kind, value),
	}
}

// parseCopyPayload splits "copy:<kind>:<value>".
// The value may itself contain colons.
func parseCopyPayload(data string) (kind, value string, err error) {
	if !strings.HasPrefix(data, COPY_CALLBACK_PREFIX) {
		return "", "", ErrMalformedPayload
	}

	parts := strings.SplitN(data, ":", 3)
	if len(parts) != 3 {
		return "", "", ErrMalformedPayload
	}

	return parts[1], parts[2], nil
}

// copyText renders the answer to a copy button press.
// Unknown kinds fall back to the generic "ID" label.
func copyText(data string) (string, error) {
	kind, value, err := parseCopyPayload(data)
	if err != nil {
		return "", err
	}

	label, ok := copyLabels[kind]
	if !ok {
		label = "ID"
	}

	return fmt.Sprintf("%s: %s", label, utils.Code(value)), nil
}

// footer is the brand line closing most answers.
func footer() string {
	return fmt.Sprintf("🔧 %s\n🌐 %s", utils.Italic(utils.EscapeHTML(BRAND_TAGLINE)), SITE_URL)
}

func chatTitle(chat *models.Chat) string {
	if chat.Title == "" {
		return "(no title)"
	}
	return utils.EscapeHTML(chat.Title)
}

func helpText(user *models.User) string {
	greeting := "there"
	if user != nil {
		greeting = user.MentionHTML(utils.EscapeHTML)
	}

	lines := []string{
		fmt.Sprintf("👋 Hey %s!", greeting),
		"",
		fmt.Sprintf("%s helps you quickly view:", utils.Bold(BOT_NAME)),
		"• Chat ID",
		"• Topic ID",
		"• User ID",
		"",
		"🔧 " + utils.Bold("Commands"),
		"• <code>/id</code> – Full IDs + buttons",
		"• <code>/chat</code> – Only chat ID",
		"• <code>/topic</code> – Only topic ID",
		"• <code>/replyid</code> – ID of the user you reply to",
		"• <code>/mode silent|group</code> – Mute or unmute ID answers in this group",
		"• <code>/clean</code> – Delete my recent messages here",
		"• <code>/about</code> – About MadLabz & $COMMAND",
		"• <code>/help</code> – Show this help message",
		"",
		"Forward me any message to see where it came from.",
		"",
		utils.Bold("Permissions"),
		"• In groups, ID commands are " + utils.Italic("admin-only") + ".",
		"• In private chat with the bot, everyone can use them.",
		"",
		footer(),
	}

	return strings.Join(lines, "\n")
}

func aboutText() string {
	return fmt.Sprintf("⚙️ %s\n\n", utils.Bold("About "+BOT_NAME)) +
		fmt.Sprintf("%s is a tiny utility built for founders, mods, and devs who ", utils.Bold(BOT_NAME)) +
		"need chat IDs, topic IDs, and user IDs " + utils.Italic("fast") + ".\n\n" +
		"It’s part of the " + utils.Bold("MadLabz") + " ecosystem, the lab behind tools like:\n" +
		"• SubutAI (AI warlord assistant)\n\n" +
		utils.Bold("$COMMAND") + " is the core token that powers the MadLabz empire.\n\n" +
		fmt.Sprintf("🌐 MadLabz Hub: <a href=\"%s\">%s</a>\n", SITE_URL, SITE_URL) +
		fmt.Sprintf("💬 Telegram: <a href=\"%s\">%s</a>\n", COMMUNITY_URL, COMMUNITY_URL) +
		fmt.Sprintf("💰 Buy $COMMAND: <a href=\"%s\">Trade link</a>\n\n", TOKEN_TRADE_URL) +
		fmt.Sprintf("⚙️ %s", utils.Italic(utils.EscapeHTML(BRAND_TAGLINE)))
}

// idPayload builds the full ID inspector answer with its copy buttons.
func idPayload(event *Event) (string, *models.Keyboard) {
	var buttons []models.Button
	lines := []string{
		fmt.Sprintf("🔎 %s", utils.Bold(BOT_NAME+" – ID Inspector")),
		"",
		"📌 " + utils.Bold("Chat Information"),
	}

	if chat := event.Chat; chat != nil {
		lines = append(lines,
			"Chat ID: "+utils.Code(chat.ID),
			"Chat Type: "+utils.Code(chat.Type),
			"Chat Title: "+chatTitle(chat),
		)
	} else {
		lines = append(lines, "Chat ID: "+utils.Code("(no chat)"))
	}

	if event.Message.InThread() {
		lines = append(lines, "Topic ID (message_thread_id): "+utils.Code(event.Message.ThreadID))
	} else {
		lines = append(lines, "Topic ID: "+utils.Italic("(not in a topic)"))
	}
	lines = append(lines, "", "👤 "+utils.Bold("Your Information"))

	if user := event.User; user != nil {
		lines = append(lines,
			"User: "+utils.EscapeHTML(user.Handle("(no username)")),
			"User ID: "+utils.Code(user.ID),
		)
		buttons = append(buttons, copyButton(CopyKindUser, user.ID))
	} else {
		lines = append(lines, "(no user info)")
	}
	lines = append(lines, "", footer())

	if event.Chat != nil {
		buttons = append(buttons, copyButton(CopyKindChat, event.Chat.ID))
	}
	if event.Message.InThread() {
		buttons = append(buttons, copyButton(CopyKindTopic, event.Message.ThreadID))
	}

	return strings.Join(lines, "\n"), models.NewKeyboard(buttons...)
}

func chatPayload(chat *models.Chat) (string, *models.Keyboard) {
	text := fmt.Sprintf("💬 %s\nChat ID: %s\nChat Type: %s\nChat Title: %s\n\n%s",
		utils.Bold("Chat ID"), utils.Code(chat.ID), utils.Code(chat.Type), chatTitle(chat), footer())

	return text, models.NewKeyboard(copyButton(CopyKindChat, chat.ID))
}

func topicPayload(msg *models.Message) (string, *models.Keyboard) {
	if !msg.InThread() {
		text := fmt.Sprintf("🧵 %s\nTopic ID: %s\n\n%s",
			utils.Bold("Topic ID"), utils.Italic("None (not in a topic)"), footer())
		return text, nil
	}

	text := fmt.Sprintf("🧵 %s\nTopic ID (message_thread_id): %s\n\n%s",
		utils.Bold("Topic ID"), utils.Code(msg.ThreadID), footer())

	return text, models.NewKeyboard(copyButton(CopyKindTopic, msg.ThreadID))
}

func replyPayload(target *models.User) (string, *models.Keyboard) {
	text := fmt.Sprintf("🎯 %s\nUser: %s\nUser ID: %s\n\n%s",
		utils.Bold("Replied User"), utils.EscapeHTML(target.Handle("(no username)")), utils.Code(target.ID), footer())

	return text, models.NewKeyboard(copyButton(CopyKindUser, target.ID))
}

// forwardPayload describes where a forwarded message came from.
func forwardPayload(origin *models.ForwardOrigin) (string, *models.Keyboard) {
	var buttons []models.Button
	lines := []string{"📨 " + utils.Bold("Forwarded Message")}

	switch {
	case origin.User != nil:
		lines = append(lines,
			"Origin: "+utils.Code("user"),
			"User: "+utils.EscapeHTML(origin.User.Handle("(no username)")),
			"User ID: "+utils.Code(origin.User.ID),
		)
		if origin.User.IsBot {
			lines = append(lines, "Bot: "+utils.Code("yes"))
		}
		buttons = append(buttons, copyButton(CopyKindUser, origin.User.ID))
	case origin.Chat != nil:
		lines = append(lines,
			"Origin: "+utils.Code(origin.Kind),
			"Chat ID: "+utils.Code(origin.Chat.ID),
			"Chat Type: "+utils.Code(origin.Chat.Type),
			"Chat Title: "+chatTitle(origin.Chat),
		)
		if origin.MessageID != 0 {
			lines = append(lines, "Message ID: "+utils.Code(origin.MessageID))
		}
		if origin.Signature != "" {
			lines = append(lines, "Signature: "+utils.EscapeHTML(origin.Signature))
		}
		buttons = append(buttons, copyButton(CopyKindChat, origin.Chat.ID))
	default:
		lines = append(lines,
			"Origin: "+utils.Code("hidden_user"),
			"Sender: "+utils.EscapeHTML(origin.SenderName),
			utils.Italic("This user hides their account in forwards, so no ID is available."),
		)
	}
	lines = append(lines, "", footer())

	return strings.Join(lines, "\n"), models.NewKeyboard(buttons...)
}

// debugText dumps the raw IDs of a message.
func debugText(event *Event) string {
	chatID, userID := any("(no chat)"), any("(no user)")
	if event.Chat != nil {
		chatID = event.Chat.ID
	}
	if event.User != nil {
		userID = event.User.ID
	}

	threadID := any("None")
	if event.Message.InThread() {
		threadID = event.Message.ThreadID
	}

	return fmt.Sprintf("🧪 %s\nChat ID: %s\nTopic ID: %s\nUser ID: %s",
		utils.Bold("Debug IDs"), utils.Code(chatID), utils.Code(threadID), utils.Code(userID))
}

func denialText(command string) string {
	text := fmt.Sprintf("⛔ Only chat admins can use /%s in groups.", command)
	if command == "id" {
		text += "\nUse it in a private chat with the bot if you’re not an admin."
	}
	return text
}

func replyHintText() string {
	return "ℹ️ Reply to a user's message, then send /replyid to see their ID."
}

func modePrivateText() string {
	return "ℹ️ Modes only apply to groups. In a private chat I always answer."
}

func modeInvalidText(arg string) string {
	return fmt.Sprintf("⚠️ Unknown mode %s. Use /mode silent or /mode group.", utils.Code(arg))
}

func unknownCommandText(name, suggestion string) string {
	text := fmt.Sprintf("🤔 I don’t know %s.", utils.Code("/"+name))
	if suggestion != "" {
		text += fmt.Sprintf(" Did you mean %s?", utils.Code("/"+suggestion))
	}
	return text + "\nSend /help to see what I can do."
}

func modeText(mode models.Mode) string {
	if mode == models.ModeSilent {
		return "🔇 Silent mode is on: I won’t answer ID commands or forwarded messages here.\nUse /mode group to turn it off."
	}
	return "🔊 Group mode is on: I answer ID commands and forwarded messages here.\nUse /mode silent to mute me."
}

func cleanText(result CleanResult) string {
	if result.Total == 0 {
		return "🧹 Nothing to clean: I have no recent messages here."
	}

	text := fmt.Sprintf("🧹 Cleaned %d bot messages", result.Deleted)
	if result.Failed > 0 {
		text += fmt.Sprintf(" (%d could not be deleted)", result.Failed)
	}

	return text + "."
}
