package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLocale(t *testing.T) {
	cases := map[string]Locale{
		"ru":  LocaleRU,
		"en":  LocaleEN,
		"zh":  LocaleZH,
		"EN":  LocaleEN,
		" zh": LocaleZH,
		"de":  LocaleRU, // unsupported falls back
		"":    LocaleRU,
	}
	for input, want := range cases {
		assert.Equal(t, want, ParseLocale(input), "input %q", input)
	}
}

func TestLocaleFromLanguageCode(t *testing.T) {
	cases := map[string]Locale{
		"en":      LocaleEN,
		"en-US":   LocaleEN,
		"zh-hans": LocaleZH,
		"zh-TW":   LocaleZH,
		"ru":      LocaleRU,
		"uk":      LocaleRU, // unsupported falls back
		"":        LocaleRU,
	}
	for input, want := range cases {
		assert.Equal(t, want, LocaleFromLanguageCode(input), "input %q", input)
	}
}

func TestLocaleFlag(t *testing.T) {
	assert.Equal(t, "cn", LocaleZH.Flag())
	assert.Equal(t, "en", LocaleEN.Flag())
	assert.Equal(t, "ru", LocaleRU.Flag())
}
