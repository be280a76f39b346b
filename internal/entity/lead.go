package entity

import (
	"strings"
	"time"
)

// Lead is a prospective customer's contact submission. It lives only for the
// duration of a request: it is composed into notifications and discarded,
// never persisted.
type Lead struct {
	ID         string    `json:"id"`
	Name       string    `json:"name,omitempty"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Lang       Locale    `json:"lang"`
	Source     string    `json:"source"`
	Note       string    `json:"note,omitempty"`
	ReceivedAt time.Time `json:"received_at"`
}

type Locale string

const (
	LocaleRU Locale = "ru"
	LocaleEN Locale = "en"
	LocaleZH Locale = "zh"

	DefaultLocale = LocaleRU
)

// ParseLocale maps a form-supplied language tag to a supported locale.
// Unknown or empty values fall back to the default.
func ParseLocale(s string) Locale {
	switch Locale(strings.ToLower(strings.TrimSpace(s))) {
	case LocaleEN:
		return LocaleEN
	case LocaleZH:
		return LocaleZH
	default:
		return DefaultLocale
	}
}

// LocaleFromLanguageCode maps a Telegram language_code (IETF tag, e.g.
// "en-US", "zh-hans") to a supported locale by prefix.
func LocaleFromLanguageCode(code string) Locale {
	c := strings.ToLower(strings.TrimSpace(code))
	switch {
	case strings.HasPrefix(c, "zh"):
		return LocaleZH
	case strings.HasPrefix(c, "en"):
		return LocaleEN
	default:
		return DefaultLocale
	}
}

// Flag returns the country tag shown on the notification's language line.
func (l Locale) Flag() string {
	switch l {
	case LocaleZH:
		return "cn"
	case LocaleEN:
		return "en"
	default:
		return "ru"
	}
}
