package channel

import (
	"context"
	"testing"

	"reminder-notifier/internal/domain/entity"
	"reminder-notifier/internal/pkg/config"
	"reminder-notifier/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SelectsChannel(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{
			name: "sendgrid with key",
			cfg: config.Config{
				Delivery: config.DeliveryConfig{Channel: config.ChannelSendGrid},
				SendGrid: config.SendGridConfig{APIKey: "SG.x", FromEmail: "r@x.com"},
			},
			want: "sendgrid",
		},
		{
			name: "sendgrid without key falls back to log",
			cfg:  config.Config{Delivery: config.DeliveryConfig{Channel: config.ChannelSendGrid}},
			want: "log",
		},
		{
			name: "line with credentials",
			cfg: config.Config{
				Delivery: config.DeliveryConfig{Channel: config.ChannelLine},
				Line:     config.LineConfig{ChannelSecret: "s", ChannelToken: "t"},
			},
			want: "line",
		},
		{
			name: "line without credentials falls back to log",
			cfg:  config.Config{Delivery: config.DeliveryConfig{Channel: config.ChannelLine}},
			want: "log",
		},
		{
			name: "explicit log",
			cfg:  config.Config{Delivery: config.DeliveryConfig{Channel: config.ChannelLog}},
			want: "log",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch, err := New(&tt.cfg, logger.Discard())
			require.NoError(t, err)
			assert.Equal(t, tt.want, ch.Name())
		})
	}
}

func TestNew_UnknownChannel(t *testing.T) {
	_, err := New(&config.Config{Delivery: config.DeliveryConfig{Channel: "fax"}}, logger.Discard())
	assert.Error(t, err)
}

func TestLogChannel_AlwaysSucceeds(t *testing.T) {
	ch := NewLogChannel(logger.Discard())
	assert.NoError(t, ch.Send(context.Background(), entity.Notification{Recipient: "a@x.com", Subject: "s"}))
}
