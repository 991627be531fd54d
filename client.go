package idblaster

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/madlabz/idblaster/models"
	"golang.org/x/net/proxy"
)

// Client is the subset of the Bot API the application relies on.
type Client interface {
	// SendMessage sends a text message and returns its message ID.
	SendMessage(msg *models.OutgoingMessage) (int, error)
	// DeleteMessage deletes a message in a chat.
	DeleteMessage(chatID int64, messageID int) error
	// GetMembership returns the member status of the user in the chat.
	GetMembership(chatID, userID int64) (string, error)
	// AnswerCallback acknowledges a callback query.
	AnswerCallback(callbackID string) error
}

// UpdateSource produces the events the application dispatches.
type UpdateSource interface {
	Updates(ctx context.Context) <-chan *Event
}

// BotClient implements [Client] and [UpdateSource] on top of telegram-bot-api.
type BotClient struct {
	API         *tgbotapi.BotAPI
	PollTimeout int
}

// NewBotClient authenticates against the Bot API with the configured token.
//
// Args:
//   - config: The process configuration.
//
// Returns:
//   - *BotClient: The connected client.
//   - error: An error if the proxy is invalid or the token is rejected.
func NewBotClient(config *Config) (*BotClient, error) {
	httpClient, err := newHTTPClient(config.Proxy)
	if err != nil {
		return nil, err
	}

	api, err := tgbotapi.NewBotAPIWithClient(config.Token, tgbotapi.APIEndpoint, httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to authorize bot: %w", err)
	}
	api.Debug = config.Debug

	return &BotClient{API: api, PollTimeout: config.PollTimeout}, nil
}

// newHTTPClient returns an HTTP client routed through proxyURL, if any.
// http and https proxies go through the transport, everything else through [proxy.FromURL].
func newHTTPClient(proxyURL string) (*http.Client, error) {
	if proxyURL == "" {
		return &http.Client{}, nil
	}

	u, err := url.Parse(proxyURL)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy url: %w", err)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()

	switch u.Scheme {
	case "http", "https":
		transport.Proxy = http.ProxyURL(u)
	default:
		dialer, err := proxy.FromURL(u, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("unsupported proxy: %w", err)
		}

		transport.Proxy = nil
		if cd, ok := dialer.(proxy.ContextDialer); ok {
			transport.DialContext = cd.DialContext
		} else {
			transport.DialContext = func(_ context.Context, network, addr string) (net.Conn, error) {
				return dialer.Dial(network, addr)
			}
		}
	}

	return &http.Client{Transport: transport}, nil
}

// Username returns the bot's own username.
func (c *BotClient) Username() string {
	return c.API.Self.UserName
}

// SendMessage sends an HTML message.
//
// The request is built by hand because the library predates forum topics
// and cannot set message_thread_id.
func (c *BotClient) SendMessage(msg *models.OutgoingMessage) (int, error) {
	params := tgbotapi.Params{}
	params.AddNonZero64("chat_id", msg.ChatID)
	params.AddNonZero("message_thread_id", msg.ThreadID)
	params.AddNonZero("reply_to_message_id", msg.ReplyToID)
	params.AddNonEmpty("text", msg.Text)
	params.AddNonEmpty("parse_mode", tgbotapi.ModeHTML)
	params.AddBool("disable_web_page_preview", true)
	params.AddBool("allow_sending_without_reply", msg.ReplyToID != 0)

	if msg.Keyboard != nil {
		if err := params.AddInterface("reply_markup", inlineKeyboard(msg.Keyboard)); err != nil {
			return 0, err
		}
	}

	resp, err := c.API.MakeRequest("sendMessage", params)
	if err != nil {
		return 0, err
	}

	var sent tgbotapi.Message
	if err := json.Unmarshal(resp.Result, &sent); err != nil {
		return 0, fmt.Errorf("failed to decode sent message: %w", err)
	}

	return sent.MessageID, nil
}

// DeleteMessage deletes a message in a chat.
func (c *BotClient) DeleteMessage(chatID int64, messageID int) error {
	_, err := c.API.Request(tgbotapi.NewDeleteMessage(chatID, messageID))
	return err
}

// GetMembership returns the member status of the user in the chat.
func (c *BotClient) GetMembership(chatID, userID int64) (string, error) {
	member, err := c.API.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			ChatID: chatID,
			UserID: userID,
		},
	})
	if err != nil {
		return "", err
	}

	return member.Status, nil
}

// AnswerCallback acknowledges a callback query without showing a notification.
func (c *BotClient) AnswerCallback(callbackID string) error {
	_, err := c.API.Request(tgbotapi.NewCallback(callbackID, ""))
	return err
}

// Updates starts long polling and returns the decoded events.
// The channel is closed once ctx is done.
func (c *BotClient) Updates(ctx context.Context) <-chan *Event {
	poller := &Poller{
		Fetch:    c.fetchUpdates,
		Username: c.Username(),
	}
	poller.Sustain(ctx)

	return poller.Events
}

// fetchUpdates performs one getUpdates long-poll starting at offset.
func (c *BotClient) fetchUpdates(offset int) ([]json.RawMessage, error) {
	timeout := c.PollTimeout
	if timeout <= 0 {
		timeout = DEFAULT_POLL_TIMEOUT
	}

	params := tgbotapi.Params{}
	params.AddNonZero("offset", offset)
	params.AddNonZero("timeout", timeout)
	if err := params.AddInterface("allowed_updates", []string{"message", "callback_query"}); err != nil {
		return nil, err
	}

	resp, err := c.API.MakeRequest("getUpdates", params)
	if err != nil {
		return nil, err
	}

	var updates []json.RawMessage
	if err := json.Unmarshal(resp.Result, &updates); err != nil {
		return nil, fmt.Errorf("failed to decode updates: %w", err)
	}

	return updates, nil
}

// inlineKeyboard converts a keyboard into its Bot API form.
func inlineKeyboard(keyboard *models.Keyboard) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(keyboard.Rows))
	for _, row := range keyboard.Rows {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, button := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(button.Text, button.Data))
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(buttons...))
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
