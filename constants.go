package idblaster

import (
	"errors"
	"time"
)

const (
	BOT_NAME        = "IDBlasterBot"
	BRAND_TAGLINE   = "Powered by MadLabz • $COMMAND"
	SITE_URL        = "https://madlabz.app"
	COMMUNITY_URL   = "https://t.me/LaunchCommand"
	TOKEN_TRADE_URL = "https://pump.fun/coin/943mLkNDxGgTEb8hWkGLqhSAqiCs9fGcBCF8vkj8pump"
)

const (
	MAX_TRACKED_MESSAGES = 50
	EVENT_BUFFER_SIZE    = 100
	DEFAULT_POLL_TIMEOUT = 60
	BASE_BACKOFF_DUR     = 1 * time.Second
	MAX_BACKOFF_DUR      = 30 * time.Second
	SUGGEST_MAX_DISTANCE = 2
	COPY_CALLBACK_PREFIX = "copy:"
)

// Chat member statuses granting access to privileged commands.
const (
	StatusCreator       = "creator"
	StatusOwner         = "owner"
	StatusAdministrator = "administrator"
)

var (
	ErrMissingToken     = errors.New("BOT_TOKEN missing in environment")
	ErrNotInitialized   = errors.New("the application is not initialized")
	ErrNotConnected     = errors.New("not connected")
	ErrMalformedPayload = errors.New("malformed callback payload")
	ErrNoMessage        = errors.New("no message to reply to")
)
