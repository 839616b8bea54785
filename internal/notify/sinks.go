package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// ConsoleSink writes notifications to the structured log.
type ConsoleSink struct {
	Logger *slog.Logger
}

// NewConsoleSink creates a console sink. A nil logger selects slog.Default.
func NewConsoleSink(logger *slog.Logger) *ConsoleSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &ConsoleSink{Logger: logger}
}

// Send logs the notification.
func (cs *ConsoleSink) Send(ctx context.Context, n *Notification) error {
	cs.Logger.Info("notification",
		"priority", string(n.Priority),
		"category", string(n.Category),
		"title", n.Title,
		"message", n.Message,
		"user_id", n.UserID,
	)
	return nil
}

// StoreSink persists notifications so they can be listed and acknowledged.
type StoreSink struct {
	store Store
}

// NewStoreSink creates a sink backed by a notification store.
func NewStoreSink(store Store) *StoreSink {
	return &StoreSink{store: store}
}

// Send stores the notification.
func (ss *StoreSink) Send(ctx context.Context, n *Notification) error {
	if err := ss.store.CreateNotification(ctx, n); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}
	return nil
}

// WebhookSink posts notifications as JSON to an external endpoint.
type WebhookSink struct {
	URL    string
	Client *http.Client
}

// NewWebhookSink creates a webhook sink with a bounded request timeout so a
// slow receiver can never stall the caller.
func NewWebhookSink(url string) *WebhookSink {
	return &WebhookSink{
		URL:    url,
		Client: &http.Client{Timeout: 5 * time.Second},
	}
}

// Send posts the notification.
func (ws *WebhookSink) Send(ctx context.Context, n *Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ws.URL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := ws.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook endpoint returned status %d", resp.StatusCode)
	}
	return nil
}

// MultiSink fans a notification out to several sinks. Send returns the first
// delivery error but still attempts every sink.
type MultiSink []Sink

// Send delivers to every sink.
func (ms MultiSink) Send(ctx context.Context, n *Notification) error {
	var firstErr error
	for _, sink := range ms {
		if err := sink.Send(ctx, n); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Dispatch delivers a notification without surfacing failures to the caller:
// errors are logged and dropped. This is the fire-and-forget path the core
// components use.
func Dispatch(ctx context.Context, sink Sink, n *Notification) {
	if sink == nil || n == nil {
		return
	}
	if err := sink.Send(ctx, n); err != nil {
		slog.Warn("notification delivery failed",
			"category", string(n.Category),
			"title", n.Title,
			"error", err,
		)
	}
}
