package idblaster

import (
	"github.com/madlabz/idblaster/models"
	"github.com/rs/zerolog/log"
)

// PermissionChecker decides whether a user may run privileged commands in a chat.
type PermissionChecker struct {
	Client Client
}

// IsAuthorized reports whether user may run privileged commands in chat.
//
// Everyone is authorized in a private chat. Elsewhere only the owner and the administrators are.
// A failed membership lookup is logged and treated as a denial.
func (pc *PermissionChecker) IsAuthorized(chat *models.Chat, user *models.User) bool {
	if chat == nil || user == nil {
		return false
	}
	if chat.IsPrivate() {
		return true
	}

	status, err := pc.Client.GetMembership(chat.ID, user.ID)
	if err != nil {
		log.Warn().Err(err).Int64("Chat", chat.ID).Int64("User", user.ID).Msg("Failed to fetch chat member")
		return false
	}

	switch status {
	case StatusCreator, StatusOwner, StatusAdministrator:
		return true
	}
	return false
}
