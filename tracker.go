package idblaster

import (
	"sync"
)

// SentTracker remembers the most recent messages the bot sent in each chat,
// so they can be deleted in bulk later.
//
// Each chat keeps at most limit message IDs in send order; the oldest ID is evicted first.
// A single mutex guards all chats, which makes DrainForClean atomic with respect to RecordSent.
type SentTracker struct {
	mu    sync.Mutex
	limit int
	logs  map[int64][]int
}

// RecordSent appends a message the bot sent in the chat.
func (st *SentTracker) RecordSent(chatID int64, messageID int) {
	st.mu.Lock()
	defer st.mu.Unlock()

	log := append(st.logs[chatID], messageID)
	if excess := len(log) - st.limit; excess > 0 {
		// Copy so the evicted prefix does not pin the old backing array.
		log = append([]int(nil), log[excess:]...)
	}
	st.logs[chatID] = log
}

// DrainForClean returns the tracked messages of the chat in send order and forgets them.
func (st *SentTracker) DrainForClean(chatID int64) []int {
	st.mu.Lock()
	defer st.mu.Unlock()

	log := st.logs[chatID]
	delete(st.logs, chatID)

	return log
}

// Snapshot returns a copy of the tracked messages of the chat.
func (st *SentTracker) Snapshot(chatID int64) []int {
	st.mu.Lock()
	defer st.mu.Unlock()

	return append([]int(nil), st.logs[chatID]...)
}

// Len returns the number of tracked messages in the chat.
func (st *SentTracker) Len(chatID int64) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	return len(st.logs[chatID])
}

// NewSentTracker returns a tracker keeping up to limit messages per chat.
// A limit below 1 falls back to MAX_TRACKED_MESSAGES.
func NewSentTracker(limit int) *SentTracker {
	if limit < 1 {
		limit = MAX_TRACKED_MESSAGES
	}
	return &SentTracker{
		limit: limit,
		logs:  map[int64][]int{},
	}
}
