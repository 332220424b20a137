package constant

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale is the closed set of notification languages.
type Locale int

const (
	// LocaleEN is English, also the fallback for any unsupported tag.
	LocaleEN Locale = iota
	// LocaleRU is Russian.
	LocaleRU

	// LocaleCount must stay last.
	LocaleCount
)

// supportedTags is indexed by Locale.
var supportedTags = [LocaleCount]language.Tag{
	LocaleEN: language.English,
	LocaleRU: language.Russian,
}

var matcher = language.NewMatcher(supportedTags[:])

// ParseLocale maps a BCP 47 language tag ("ru", "ru-RU", "en_US") to a Locale.
// Empty, malformed or unsupported tags resolve to LocaleEN.
func ParseLocale(tag string) Locale {
	tag = strings.TrimSpace(strings.ReplaceAll(tag, "_", "-"))
	if tag == "" {
		return LocaleEN
	}
	t, err := language.Parse(tag)
	if err != nil {
		return LocaleEN
	}
	_, idx, conf := matcher.Match(t)
	if conf < language.High {
		return LocaleEN
	}
	return Locale(idx)
}

// String returns the canonical tag stored on reminders.
func (l Locale) String() string {
	if l < 0 || l >= LocaleCount {
		return LocaleEN.String()
	}
	return supportedTags[l].String()
}
