package line

import (
	"context"
	"fmt"
	"reminder-notifier/internal/domain/entity"
	"reminder-notifier/internal/pkg/config"
	appErrors "reminder-notifier/internal/pkg/errors"
	"reminder-notifier/internal/pkg/logger"
	"unicode/utf8"

	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// maxTextLength is the LINE limit for a text message, in characters.
const maxTextLength = 5000

// Client wraps the linebot.Client and delivers reminders as push messages.
// Recipients are LINE user IDs.
type Client struct {
	*linebot.Client
	log logger.Logger
}

// NewClient creates a LINE Bot client from the configured credentials.
func NewClient(cfg config.LineConfig, log logger.Logger, opts ...linebot.ClientOption) (*Client, error) {
	if !cfg.Configured() {
		return nil, fmt.Errorf("%w: CHANNEL_SECRET and CHANNEL_ACCESS_TOKEN must be set", appErrors.ErrChannelNotConfigured)
	}

	bot, err := linebot.New(cfg.ChannelSecret, cfg.ChannelToken, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create LINE Bot client: %w", err)
	}
	log.Info("Successfully created LINE Bot client.")
	return &Client{
		Client: bot,
		log:    log,
	}, nil
}

// Name identifies the channel in logs.
func (c *Client) Name() string {
	return "line"
}

// Send pushes the plain-text body of a notification to a LINE user.
func (c *Client) Send(ctx context.Context, n entity.Notification) error {
	if n.Recipient == "" {
		return fmt.Errorf("%w: reminder has no LINE recipient", appErrors.ErrChannelNotConfigured)
	}

	text := n.PlainBody
	if utf8.RuneCountInString(text) > maxTextLength {
		text = string([]rune(text)[:maxTextLength])
	}

	if err := c.PushMessages(ctx, n.Recipient, linebot.NewTextMessage(text)); err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrSendFailed, err)
	}
	return nil
}

// PushMessages sends one or more messages using the PushMessage API.
func (c *Client) PushMessages(ctx context.Context, to string, messages ...linebot.SendingMessage) error {
	_, err := c.PushMessage(to, messages...).WithContext(ctx).Do()
	if err != nil {
		return err // Return the error for the caller to handle
	}
	c.log.Debug(fmt.Sprintf("Successfully sent push message to %s.", to))
	return nil
}
