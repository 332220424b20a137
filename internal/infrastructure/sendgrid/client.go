package sendgrid

import (
	"context"
	"fmt"
	"reminder-notifier/internal/domain/entity"
	"reminder-notifier/internal/pkg/config"
	appErrors "reminder-notifier/internal/pkg/errors"
	"reminder-notifier/internal/pkg/logger"

	"github.com/sendgrid/rest"
	sg "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sender is the part of *sendgrid.Client the channel uses.
type sender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// Client delivers reminders as email through SendGrid.
type Client struct {
	api  sender
	from *mail.Email
	log  logger.Logger
}

// NewClient creates a SendGrid email client from the configured credentials.
func NewClient(cfg config.SendGridConfig, log logger.Logger) (*Client, error) {
	if !cfg.Configured() {
		return nil, fmt.Errorf("%w: SENDGRID_API_KEY and SENDGRID_FROM_EMAIL must be set", appErrors.ErrChannelNotConfigured)
	}
	log.Info(fmt.Sprintf("SendGrid client configured, sending as %s", cfg.FromEmail))
	return newClient(sg.NewSendClient(cfg.APIKey), cfg, log), nil
}

func newClient(api sender, cfg config.SendGridConfig, log logger.Logger) *Client {
	return &Client{
		api:  api,
		from: mail.NewEmail(cfg.FromName, cfg.FromEmail),
		log:  log,
	}
}

// Name identifies the channel in logs.
func (c *Client) Name() string {
	return "sendgrid"
}

// Send emails the notification with both its plain-text and HTML bodies.
func (c *Client) Send(ctx context.Context, n entity.Notification) error {
	if n.Recipient == "" {
		return fmt.Errorf("%w: reminder has no email address", appErrors.ErrChannelNotConfigured)
	}

	msg := mail.NewSingleEmail(c.from, n.Subject, mail.NewEmail("", n.Recipient), n.PlainBody, n.RichBody)
	resp, err := c.api.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrSendFailed, err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%w: sendgrid responded %d: %s", appErrors.ErrSendFailed, resp.StatusCode, resp.Body)
	}
	c.log.Debug(fmt.Sprintf("Email accepted by SendGrid for %s (status %d)", n.Recipient, resp.StatusCode))
	return nil
}
