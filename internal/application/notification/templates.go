// Package notification resolves localized message templates and renders reminder
// notifications from them.
package notification

import "reminder-notifier/internal/domain/constant"

// Templates holds the localized fragments of a reminder notification.
type Templates struct {
	SubjectPrefix  string
	Greeting       string
	BodyIntro      string
	ScheduledLabel string
	SignOff        string
	AppName        string
	Heading        string // Title line of the rich body
	DateLayout     string // time.Format layout for the scheduled time
}

// templates is indexed by constant.Locale. Entries are unkeyed so that adding a
// field to Templates without filling it in every locale fails to compile.
var templates = [...]Templates{
	constant.LocaleEN: {
		"Reminder: ",
		"Hello,",
		"This is a reminder for your task:",
		"Scheduled time:",
		"Best regards,",
		"My Assistant",
		"Reminder",
		"1/2/2006, 3:04:05 PM",
	},
	constant.LocaleRU: {
		"Напоминание: ",
		"Привет,",
		"Это напоминание для твоей задачи:",
		"Запланированное время:",
		"С уважением,",
		"Мой Помощник",
		"Напоминание",
		"02.01.2006, 15:04:05",
	},
}

// A locale without a table entry, or an entry for a locale that does not exist,
// makes one of these array lengths negative.
var (
	_ [len(templates) - int(constant.LocaleCount)]struct{}
	_ [int(constant.LocaleCount) - len(templates)]struct{}
)

// Resolve returns the templates for a locale. Out-of-range values get English.
func Resolve(l constant.Locale) Templates {
	if l < 0 || l >= constant.LocaleCount {
		return templates[constant.LocaleEN]
	}
	return templates[l]
}

// ResolveTag parses a language tag and returns its templates, falling back to English.
func ResolveTag(tag string) Templates {
	return Resolve(constant.ParseLocale(tag))
}
