package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind selects the delivery channel
type NotificationKind string

const (
	NotificationPush  NotificationKind = "PUSH"
	NotificationEmail NotificationKind = "EMAIL"
)

// SendNotificationRequest is the dispatcher contract: fire-and-forget,
// failure is observable only through logs
type SendNotificationRequest struct {
	Kind       NotificationKind  `json:"notification_type"`
	TemplateID int               `json:"template_id"`
	To         []string          `json:"to"`
	Data       map[string]string `json:"data"`
}

// Notification is a durable per-user history entry for a dispatched message
type Notification struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	Message   string    `json:"message" db:"message"`
	Type      string    `json:"type" db:"type"`
	IsRead    bool      `json:"is_read" db:"is_read"`
	DataJSON  string    `json:"data_json" db:"data_json"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NotificationSettings holds a user's channel preferences
type NotificationSettings struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	PushEnabled  bool      `json:"push_enabled" db:"push_enabled"`
	EmailEnabled bool      `json:"email_enabled" db:"email_enabled"`
}
