// Package delivery defines the contract between the delivery coordinator and the
// external channels that transmit notifications.
package delivery

import (
	"context"
	"reminder-notifier/internal/domain/entity"
)

// Channel transmits a rendered notification to its recipient.
//
// Returned errors wrap errors.ErrChannelNotConfigured when the send can never succeed
// (missing credential or recipient), or errors.ErrSendFailed when the provider rejected
// or failed the request.
type Channel interface {
	Send(ctx context.Context, n entity.Notification) error
	// Name identifies the channel in logs.
	Name() string
}
