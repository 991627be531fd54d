package idblaster

import (
	"sort"

	"github.com/madlabz/idblaster/models"
)

// ChatModes keeps the set of chats that are in silent mode.
//
// Every chat starts in group mode. The set lives for the process lifetime only.
type ChatModes struct {
	silent SyncMap[int64, struct{}]
}

// IsSilent reports whether the bot should stay quiet in the chat.
// Private chats are never silent.
func (cm *ChatModes) IsSilent(chat *models.Chat) bool {
	if chat == nil || chat.IsPrivate() {
		return false
	}
	return cm.silent.Has(chat.ID)
}

// SetSilent puts the chat into silent mode.
func (cm *ChatModes) SetSilent(chatID int64) {
	cm.silent.Set(chatID, struct{}{})
}

// SetGroup puts the chat back into group mode.
func (cm *ChatModes) SetGroup(chatID int64) {
	cm.silent.Del(chatID)
}

// Set applies the given mode to the chat.
func (cm *ChatModes) Set(chatID int64, mode models.Mode) {
	if mode == models.ModeSilent {
		cm.SetSilent(chatID)
	} else {
		cm.SetGroup(chatID)
	}
}

// CurrentMode returns the mode of the chat.
func (cm *ChatModes) CurrentMode(chat *models.Chat) models.Mode {
	if cm.IsSilent(chat) {
		return models.ModeSilent
	}
	return models.ModeGroup
}

// SilentChats returns the IDs of the silent chats in ascending order.
func (cm *ChatModes) SilentChats() []int64 {
	chats := cm.silent.Keys()
	sort.Slice(chats, func(i, j int) bool { return chats[i] < chats[j] })
	return chats
}

// NewChatModes returns an empty ChatModes, every chat in group mode.
func NewChatModes() *ChatModes {
	return &ChatModes{silent: NewSyncMap[int64, struct{}]()}
}
