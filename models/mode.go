package models

import (
	"errors"
	"strings"
)

// Mode is the reply mode of a chat.
type Mode string

const (
	ModeGroup  Mode = "group"  // The bot answers normally.
	ModeSilent Mode = "silent" // ID inspection and forward detection stay quiet.
)

var ErrInvalidMode = errors.New("invalid mode")

// ParseMode parses a user supplied mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeGroup:
		return ModeGroup, nil
	case ModeSilent:
		return ModeSilent, nil
	}
	return "", ErrInvalidMode
}
