// Package notification queues notification events for the external dispatcher.
package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/waspershola/africa-lodge-90-sub002/internal/adapter/postgres"
	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

// StatusPending is the status of a freshly queued event.
const StatusPending = "pending"

// Repo provides notification event persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new notification repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Enqueue stores the event as pending.
func (r *Repo) Enqueue(ctx context.Context, ev domain.NotificationEvent) error {
	data := ev.TemplateData
	if data == nil {
		data = map[string]any{}
	}
	dataJSON, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("notification_events marshal template data: %w", err)
	}
	recipients := ev.Recipients
	if recipients == nil {
		recipients = []string{}
	}

	q := postgres.Builder.
		Insert("notification_events").
		Columns("id", "tenant_id", "channel", "event_type", "recipients", "template_data", "status", "created_at").
		Values(ev.ID, ev.TenantID, ev.Channel.String(), ev.EventType, recipients, dataJSON, StatusPending, ev.CreatedAt)

	_, err = postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q, "notification_events.enqueue")
	return err
}
