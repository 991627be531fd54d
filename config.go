package idblaster

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/madlabz/idblaster/utils"
)

// Config represents the process configuration.
type Config struct {
	Token       string  // Token is the Bot API token (BOT_TOKEN).
	Proxy       string  // Proxy is an optional http, https or socks5 URL (BOT_PROXY).
	Debug       bool    // Debug enables debug logging (BOT_DEBUG).
	PollTimeout int     // PollTimeout is the long-poll timeout in seconds (BOT_POLL_TIMEOUT).
	DebugChats  []int64 // DebugChats are chats where every message gets a raw ID dump (BOT_DEBUG_CHATS).
	DebugUsers  []int64 // DebugUsers are users whose messages get a raw ID dump (BOT_DEBUG_USERS).
}

// LoadConfig loads the configuration from the environment.
//
// The given dotenv files (".env" when none is given) are loaded first; missing files are ignored
// and variables already set in the environment win over the file contents.
//
// Args:
//   - files: Optional dotenv files.
//
// Returns:
//   - *Config: A pointer to the Config struct.
//   - error: An error if a file is unreadable, a value is malformed or BOT_TOKEN is missing.
func LoadConfig(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	config := &Config{
		Token: strings.TrimSpace(os.Getenv("BOT_TOKEN")),
		Proxy: strings.TrimSpace(os.Getenv("BOT_PROXY")),
		Debug: strings.EqualFold(os.Getenv("BOT_DEBUG"), "true"),
	}
	if config.Token == "" {
		return nil, ErrMissingToken
	}

	var err error
	if v := os.Getenv("BOT_POLL_TIMEOUT"); v != "" {
		if config.PollTimeout, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("invalid BOT_POLL_TIMEOUT: %w", err)
		}
	}
	if config.DebugChats, err = utils.ParseIDList(os.Getenv("BOT_DEBUG_CHATS")); err != nil {
		return nil, fmt.Errorf("invalid BOT_DEBUG_CHATS: %w", err)
	}
	if config.DebugUsers, err = utils.ParseIDList(os.Getenv("BOT_DEBUG_USERS")); err != nil {
		return nil, fmt.Errorf("invalid BOT_DEBUG_USERS: %w", err)
	}

	return config, nil
}
