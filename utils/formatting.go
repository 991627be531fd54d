package utils

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// EscapeHTML escapes user supplied text for the HTML parse mode.
func EscapeHTML(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeHTML, s)
}

// Code wraps a value into a <code> tag so Telegram renders it tap-to-copy.
func Code(v any) string {
	return "<code>" + EscapeHTML(fmt.Sprint(v)) + "</code>"
}

// Bold wraps already formatted text into a <b> tag.
func Bold(s string) string {
	return "<b>" + s + "</b>"
}

// Italic wraps already formatted text into an <i> tag.
func Italic(s string) string {
	return "<i>" + s + "</i>"
}
