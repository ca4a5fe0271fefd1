// Package audit implements the append-only audit log using PostgreSQL.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/waspershola/africa-lodge-90-sub002/internal/adapter/postgres"
	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Log appends an entry. Inside RunInTx the entry commits with the change it describes.
// Satisfies frontdesk.auditLogger, hotelconfig.auditLogger and onboarding.auditLogger.
func (r *Repo) Log(ctx context.Context, e domain.AuditEntry) error {
	meta := e.Metadata
	if meta == nil {
		meta = map[string]any{}
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("audit_log marshal metadata: %w", err)
	}

	q := postgres.Builder.
		Insert("audit_log").
		Columns("id", "tenant_id", "actor_id", "terminal_id", "action", "resource_type",
			"resource_id", "description", "metadata", "created_at").
		Values(e.ID, e.TenantID, e.ActorID, e.TerminalID, e.Action, e.ResourceType.String(),
			e.ResourceID, e.Description, metaJSON, e.CreatedAt)

	_, err = postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q, "audit_log.create")
	return err
}
