package channel

import (
	"context"
	"fmt"
	"reminder-notifier/internal/domain/entity"
	"reminder-notifier/internal/pkg/logger"
)

// LogChannel writes notifications to the log instead of sending them. It is used when
// no delivery credentials are configured, and always reports success.
type LogChannel struct {
	log logger.Logger
}

// NewLogChannel creates a log-only channel.
func NewLogChannel(log logger.Logger) *LogChannel {
	return &LogChannel{log: log}
}

// Name identifies the channel in logs.
func (c *LogChannel) Name() string {
	return "log"
}

// Send logs the notification.
func (c *LogChannel) Send(_ context.Context, n entity.Notification) error {
	c.log.Info(fmt.Sprintf("Would send notification to %s: subject=%q body=%q", n.Recipient, n.Subject, n.PlainBody))
	return nil
}
