package notification

import (
	"strings"
	"testing"
	"time"

	"reminder-notifier/internal/domain/constant"
	"reminder-notifier/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dueAt = time.Date(2025, 3, 7, 14, 5, 9, 0, time.UTC)

func newReminder(lang, msg string) *entity.Reminder {
	return &entity.Reminder{
		ID:              "r1",
		OwnerID:         "alice",
		DeliveryAddress: "a@x.com",
		Language:        lang,
		Message:         msg,
		DueAt:           dueAt,
	}
}

func TestRender_English(t *testing.T) {
	n, err := NewRenderer(time.UTC).Render(newReminder("en", "Buy milk"), Resolve(constant.LocaleEN))
	require.NoError(t, err)

	assert.Equal(t, "a@x.com", n.Recipient)
	assert.Equal(t, "Reminder: Buy milk", n.Subject)
	assert.Equal(t,
		"Hello,\n\nThis is a reminder for your task:\n\nBuy milk\n\nScheduled time: 3/7/2025, 2:05:09 PM\n\nBest regards,\nMy Assistant",
		n.PlainBody)
	assert.Contains(t, n.RichBody, "<h2 style=\"color: #2563eb;\">Reminder</h2>")
	assert.Contains(t, n.RichBody, "Buy milk")
	assert.Contains(t, n.RichBody, "Scheduled time: 3/7/2025, 2:05:09 PM")
	assert.Contains(t, n.RichBody, "Best regards,<br>My Assistant")
}

func TestRender_Russian(t *testing.T) {
	n, err := NewRenderer(time.UTC).Render(newReminder("ru", "Купить молоко"), ResolveTag("ru"))
	require.NoError(t, err)

	assert.Equal(t, "Напоминание: Купить молоко", n.Subject)
	assert.Contains(t, n.PlainBody, "Привет,")
	assert.Contains(t, n.PlainBody, "Запланированное время: 07.03.2025, 14:05:09")
	assert.Contains(t, n.PlainBody, "С уважением,\nМой Помощник")
	assert.Contains(t, n.RichBody, "Напоминание</h2>")
}

func TestRender_UnsupportedLanguageMatchesEnglish(t *testing.T) {
	r := NewRenderer(time.UTC)
	fr, err := r.Render(newReminder("fr", "Buy milk"), ResolveTag("fr"))
	require.NoError(t, err)
	en, err := r.Render(newReminder("en", "Buy milk"), ResolveTag("en"))
	require.NoError(t, err)

	assert.Equal(t, en, fr)
}

func TestRender_EmptyMessage(t *testing.T) {
	n, err := NewRenderer(nil).Render(newReminder("en", ""), Resolve(constant.LocaleEN))
	require.NoError(t, err)

	assert.Equal(t, "Reminder: ", n.Subject)
	assert.Contains(t, n.PlainBody, "This is a reminder for your task:\n\n\n\nScheduled time:")
}

func TestRender_EscapesMessageInRichBody(t *testing.T) {
	msg := `<script>alert("x")</script>`
	n, err := NewRenderer(time.UTC).Render(newReminder("en", msg), Resolve(constant.LocaleEN))
	require.NoError(t, err)

	assert.NotContains(t, n.RichBody, "<script>")
	assert.Contains(t, n.RichBody, "&lt;script&gt;")
	assert.True(t, strings.Contains(n.PlainBody, msg), "plain body keeps the message verbatim")
}

func TestRender_UsesConfiguredLocation(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)
	n, err := NewRenderer(moscow).Render(newReminder("ru", "x"), Resolve(constant.LocaleRU))
	require.NoError(t, err)

	assert.Contains(t, n.PlainBody, "07.03.2025, 17:05:09")
}
