package line

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"reminder-notifier/internal/domain/entity"
	"reminder-notifier/internal/pkg/config"
	appErrors "reminder-notifier/internal/pkg/errors"
	"reminder-notifier/internal/pkg/logger"

	"github.com/line/line-bot-sdk-go/v7/linebot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCfg = config.LineConfig{ChannelSecret: "secret", ChannelToken: "token"}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(testCfg, logger.Discard(), linebot.WithEndpointBase(srv.URL))
	require.NoError(t, err)
	return c
}

func TestNewClient_RequiresCredentials(t *testing.T) {
	_, err := NewClient(config.LineConfig{}, logger.Discard())
	assert.ErrorIs(t, err, appErrors.ErrChannelNotConfigured)
}

func TestSend_PushesPlainBody(t *testing.T) {
	var got struct {
		To       string `json:"to"`
		Messages []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"messages"`
	}
	var auth, path string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		auth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{}"))
	})

	err := c.Send(context.Background(), entity.Notification{
		Recipient: "U123",
		Subject:   "Reminder: Buy milk",
		PlainBody: "Hello,\n\nBuy milk",
	})
	require.NoError(t, err)

	assert.Equal(t, "/v2/bot/message/push", path)
	assert.Equal(t, "Bearer token", auth)
	assert.Equal(t, "U123", got.To)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "text", got.Messages[0].Type)
	assert.Equal(t, "Hello,\n\nBuy milk", got.Messages[0].Text)
}

func TestSend_TruncatesLongText(t *testing.T) {
	var text string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Messages []struct {
				Text string `json:"text"`
			} `json:"messages"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		text = body.Messages[0].Text
		_, _ = w.Write([]byte("{}"))
	})

	require.NoError(t, c.Send(context.Background(), entity.Notification{
		Recipient: "U1",
		PlainBody: strings.Repeat("я", maxTextLength+10),
	}))
	assert.Equal(t, maxTextLength, len([]rune(text)))
}

func TestSend_ProviderErrorIsSendFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"The property, 'to', in the request body is invalid"}`))
	})

	err := c.Send(context.Background(), entity.Notification{Recipient: "bogus", PlainBody: "x"})
	assert.ErrorIs(t, err, appErrors.ErrSendFailed)
}

func TestSend_NoRecipient(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no request expected")
	})

	err := c.Send(context.Background(), entity.Notification{PlainBody: "x"})
	assert.ErrorIs(t, err, appErrors.ErrChannelNotConfigured)
}
