// Package notify delivers alert notifications produced by fraud review and
// compliance threshold checks. Delivery is fire and forget: the producing
// component hands a notification to a Sink and never blocks on or retries a
// failed delivery.
package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Category classifies what a notification is about.
type Category string

const (
	CategoryFraudAlert        Category = "fraud_alert"
	CategoryComplianceWarning Category = "compliance_warning"
	CategorySystemInfo        Category = "system_info"
)

// Priority ranks how urgently a notification should surface.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityNormal   Priority = "normal"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Notification is one alert message. An empty UserID makes it a broadcast
// visible to every user.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id,omitempty"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Category  Category  `json:"category"`
	Priority  Priority  `json:"priority"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// Sink receives notifications. Implementations decide the delivery channel.
type Sink interface {
	Send(ctx context.Context, n *Notification) error
}

// Store persists notifications so users can list and acknowledge them later.
type Store interface {
	CreateNotification(ctx context.Context, n *Notification) error
	// ListNotificationsByUser returns a user's notifications, broadcasts
	// included, newest first. A limit <= 0 means no limit.
	ListNotificationsByUser(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
	UnreadNotificationCount(ctx context.Context, userID string) (int, error)
}

// New builds a notification with defaults filled in: system_info category and
// normal priority unless overridden by the caller.
func New(userID, title, message string, category Category, priority Priority) *Notification {
	if category == "" {
		category = CategorySystemInfo
	}
	if priority == "" {
		priority = PriorityNormal
	}
	return &Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Category:  category,
		Priority:  priority,
		CreatedAt: time.Now().UTC(),
	}
}

// FraudAlert builds the high-priority notification sent when a transaction
// is flagged.
func FraudAlert(userID, transactionID, reason string) *Notification {
	short := transactionID
	if len(short) > 8 {
		short = short[:8]
	}
	message := fmt.Sprintf("Suspicious transaction detected: %s... - %s", short, reason)
	return New(userID, "Fraud Alert", message, CategoryFraudAlert, PriorityHigh)
}

// ComplianceWarning builds the high-priority notification sent when a
// compliance metric crosses its threshold.
func ComplianceWarning(userID, metric string, value, threshold float64) *Notification {
	message := fmt.Sprintf("%s (%.1f) has exceeded threshold (%.1f)", metric, value, threshold)
	return New(userID, "Compliance Warning", message, CategoryComplianceWarning, PriorityHigh)
}

// SystemInfo builds an informational notification.
func SystemInfo(userID, title, message string) *Notification {
	return New(userID, title, message, CategorySystemInfo, PriorityNormal)
}
