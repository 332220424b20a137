// Package channel selects the delivery channel once at startup from configuration.
package channel

import (
	"fmt"
	"reminder-notifier/internal/domain/delivery"
	"reminder-notifier/internal/infrastructure/line"
	"reminder-notifier/internal/infrastructure/sendgrid"
	"reminder-notifier/internal/pkg/config"
	"reminder-notifier/internal/pkg/logger"
)

// New returns the channel named by cfg.Delivery.Channel. A channel whose credentials are
// missing is replaced by the log-only channel.
func New(cfg *config.Config, log logger.Logger) (delivery.Channel, error) {
	switch cfg.Delivery.Channel {
	case config.ChannelSendGrid:
		if !cfg.SendGrid.Configured() {
			log.Warn("SendGrid API key not configured. Notifications will be logged, not sent.")
			return NewLogChannel(log), nil
		}
		c, err := sendgrid.NewClient(cfg.SendGrid, log)
		if err != nil {
			return nil, err
		}
		return c, nil
	case config.ChannelLine:
		if !cfg.Line.Configured() {
			log.Warn("LINE credentials not configured. Notifications will be logged, not sent.")
			return NewLogChannel(log), nil
		}
		c, err := line.NewClient(cfg.Line, log)
		if err != nil {
			return nil, err
		}
		return c, nil
	case config.ChannelLog:
		return NewLogChannel(log), nil
	default:
		return nil, fmt.Errorf("unknown delivery channel %q", cfg.Delivery.Channel)
	}
}
