package idblaster

import (
	"context"
	"errors"
	"sync"

	"github.com/madlabz/idblaster/models"
)

var errFake = errors.New("fake failure")

// fakeClient records every call and answers from its fields.
type fakeClient struct {
	mu         sync.Mutex
	nextID     int
	sent       []*models.OutgoingMessage
	deleted    []int
	answered   []string
	statuses   map[int64]string // user ID -> member status
	memberErr  error
	sendErr    error
	failDelete map[int]bool
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		nextID:     1000,
		statuses:   map[int64]string{},
		failDelete: map[int]bool{},
	}
}

func (f *fakeClient) SendMessage(msg *models.OutgoingMessage) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.sendErr != nil {
		return 0, f.sendErr
	}

	f.nextID++
	f.sent = append(f.sent, msg)

	return f.nextID, nil
}

func (f *fakeClient) DeleteMessage(chatID int64, messageID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failDelete[messageID] {
		return errFake
	}
	f.deleted = append(f.deleted, messageID)

	return nil
}

func (f *fakeClient) GetMembership(chatID, userID int64) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.memberErr != nil {
		return "", f.memberErr
	}
	if status, ok := f.statuses[userID]; ok {
		return status, nil
	}

	return "member", nil
}

func (f *fakeClient) AnswerCallback(callbackID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.answered = append(f.answered, callbackID)

	return nil
}

func (f *fakeClient) Sent() []*models.OutgoingMessage {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]*models.OutgoingMessage(nil), f.sent...)
}

// fakeSource is an [UpdateSource] fed by the test.
type fakeSource struct {
	events chan *Event
}

func (s *fakeSource) Updates(ctx context.Context) <-chan *Event {
	return s.events
}

// newTestApp returns an initialized application on a fake client with the bot's handlers.
func newTestApp(config *Config) (*Application, *fakeClient) {
	client := newFakeClient()
	app := New(config, client)
	RegisterHandlers(app)
	app.Initialize()

	return app, client
}

var (
	groupChat   = &models.Chat{ID: 100, Type: models.ChatTypeSupergroup, Title: "Lab <Crew>"}
	privateChat = &models.Chat{ID: 1, Type: models.ChatTypePrivate}
	adminUser   = &models.User{ID: 1, Username: "boss", FirstName: "Boss"}
	memberUser  = &models.User{ID: 2, Username: "pleb", FirstName: "Pleb"}
)

// commandEvent builds a command event as decodeUpdate would.
func commandEvent(chat *models.Chat, user *models.User, threadID int, name, argument string) *Event {
	msg := &models.Message{ID: 42, ThreadID: threadID, Chat: chat, From: user, Text: "/" + name}
	return &Event{
		Type:    OnCommand,
		Chat:    chat,
		User:    user,
		Message: msg,
		Command: &Command{Name: name, Argument: argument},
	}
}

func callbackQueryEvent(chat *models.Chat, user *models.User, data string) *Event {
	msg := &models.Message{ID: 77, Chat: chat}
	callback := &models.CallbackQuery{ID: "cb1", From: user, Message: msg, Data: data}
	return &Event{
		Type:     OnCallback,
		Chat:     chat,
		User:     user,
		Message:  msg,
		Callback: callback,
	}
}

func userWithID(id int64) *models.User {
	return &models.User{ID: id}
}
