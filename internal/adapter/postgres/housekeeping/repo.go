// Package housekeeping records cleaning and maintenance tasks.
package housekeeping

import (
	"context"

	"github.com/waspershola/africa-lodge-90-sub002/internal/adapter/postgres"
	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

// Repo provides housekeeping task persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new housekeeping repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// CreateTask queues a task for the housekeeping team.
func (r *Repo) CreateTask(ctx context.Context, task domain.HousekeepingTask) error {
	status := task.Status
	if status == "" {
		status = "pending"
	}

	q := postgres.Builder.
		Insert("housekeeping_tasks").
		Columns("id", "tenant_id", "room_id", "task_type", "priority", "status", "description", "created_by").
		Values(task.ID, task.TenantID, task.RoomID, string(task.TaskType), string(task.Priority),
			status, task.Description, task.CreatedBy)

	_, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q, "housekeeping_tasks.create")
	return err
}
