package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntry is one append-only record of a staff action.
type AuditEntry struct {
	ID           uuid.UUID
	TenantID     uuid.UUID
	ActorID      uuid.UUID
	TerminalID   string
	Action       string
	ResourceType ResourceType
	ResourceID   *uuid.UUID
	Description  string
	Metadata     map[string]any
	CreatedAt    time.Time
}

// NotificationEvent is queued for the external dispatcher.
type NotificationEvent struct {
	ID           uuid.UUID
	TenantID     uuid.UUID
	Channel      NotificationChannel
	EventType    string
	Recipients   []string
	TemplateData map[string]any
	CreatedAt    time.Time
}

// Notification event types.
const (
	EventGuestWelcome  = "guest_welcome"
	EventGuestThankYou = "guest_thank_you"
	EventReceiptPrint  = "receipt_print"
)
