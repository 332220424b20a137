package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"reminder-notifier/internal/domain/entity"
	appErrors "reminder-notifier/internal/pkg/errors"
	"strings"
	"time"
)

var richBody = template.Must(template.New("rich").Parse(
	`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2563eb;">{{.Heading}}</h2>
  <p>{{.Greeting}}</p>
  <p>{{.BodyIntro}}</p>
  <div style="background-color: #f3f4f6; padding: 15px; border-radius: 5px; margin: 20px 0;">
    <p style="font-size: 18px; font-weight: bold; margin: 0;">{{.Message}}</p>
  </div>
  <p style="color: #6b7280; font-size: 14px;">{{.ScheduledLabel}} {{.Scheduled}}</p>
  <p>{{.SignOff}}<br>{{.AppName}}</p>
</div>
`))

type richData struct {
	Templates
	Message   string
	Scheduled string
}

// Renderer composes notifications from reminders. The zero value formats times in UTC.
type Renderer struct {
	loc *time.Location
}

// NewRenderer creates a Renderer that formats scheduled times in loc.
func NewRenderer(loc *time.Location) *Renderer {
	return &Renderer{loc: loc}
}

// Render builds the notification for r using t. It does not validate the reminder:
// an empty message renders as empty text.
func (rn *Renderer) Render(r *entity.Reminder, t Templates) (entity.Notification, error) {
	loc := time.UTC
	if rn != nil && rn.loc != nil {
		loc = rn.loc
	}
	scheduled := r.DueAt.In(loc).Format(t.DateLayout)

	plain := strings.Join([]string{
		t.Greeting,
		t.BodyIntro,
		r.Message,
		t.ScheduledLabel + " " + scheduled,
		t.SignOff + "\n" + t.AppName,
	}, "\n\n")

	var rich bytes.Buffer
	if err := richBody.Execute(&rich, richData{Templates: t, Message: r.Message, Scheduled: scheduled}); err != nil {
		return entity.Notification{}, fmt.Errorf("%w: %v", appErrors.ErrRenderFailed, err)
	}

	return entity.Notification{
		Recipient: r.DeliveryAddress,
		Subject:   t.SubjectPrefix + r.Message,
		PlainBody: plain,
		RichBody:  rich.String(),
	}, nil
}
