package models

import "fmt"

// User represents a Telegram user.
type User struct {
	ID        int64  // ID of the user.
	Username  string // Username without the leading "@", may be empty.
	FirstName string // First name of the user.
	IsBot     bool   // Indicates if the user is a bot.
}

// Handle returns the "@username" form, or fallback when the user has no username.
func (u *User) Handle(fallback string) string {
	if u == nil || u.Username == "" {
		return fallback
	}
	return "@" + u.Username
}

// MentionHTML returns an HTML link that mentions the user by first name.
func (u *User) MentionHTML(escape func(string) string) string {
	name := u.FirstName
	if name == "" {
		name = u.Handle("user")
	}
	return fmt.Sprintf(`<a href="tg://user?id=%d">%s</a>`, u.ID, escape(name))
}
