package idblaster

import (
	"github.com/rs/zerolog/log"
)

// CleanResult summarizes a bulk delete.
type CleanResult struct {
	Total   int // Total is the number of tracked messages.
	Deleted int // Deleted is the number of messages actually deleted.
	Failed  int // Failed is the number of messages that could not be deleted.
}

// Clean deletes the tracked bot messages of a chat one by one.
//
// The tracked list is drained up front. A failed deletion (already deleted, missing rights)
// is logged and skipped; nothing is retried or put back.
//
// Args:
//   - client: The Bot API client.
//   - tracker: The tracker holding the chat's messages.
//   - chatID: The chat to clean.
//
// Returns:
//   - CleanResult: The outcome of the deletions.
func Clean(client Client, tracker *SentTracker, chatID int64) CleanResult {
	messageIDs := tracker.DrainForClean(chatID)
	result := CleanResult{Total: len(messageIDs)}

	for _, messageID := range messageIDs {
		if err := client.DeleteMessage(chatID, messageID); err != nil {
			log.Warn().Err(err).Int64("Chat", chatID).Int("Message", messageID).Msg("Failed to delete message")
			result.Failed++
			continue
		}
		result.Deleted++
	}

	log.Debug().Int64("Chat", chatID).Int("Total", result.Total).Int("Deleted", result.Deleted).Msg("Cleaned")

	return result
}
