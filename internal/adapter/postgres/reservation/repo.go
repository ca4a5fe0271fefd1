// Package reservation implements reservation persistence using PostgreSQL.
package reservation

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/waspershola/africa-lodge-90-sub002/internal/adapter/postgres"
	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

const table = "reservations"

var columns = []string{
	"id", "tenant_id", "room_id", "guest_name", "guest_phone", "guest_email", "guest_id_number",
	"check_in_date", "check_out_date", "status", "adults", "room_rate", "total_amount",
	"created_by", "created_at", "updated_at",
}

// Repo provides reservation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new reservation repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// Get returns a reservation of the tenant.
func (r *Repo) Get(ctx context.Context, tenantID, id uuid.UUID) (domain.ReservationRow, error) {
	q := postgres.Builder.
		Select(columns...).
		From(table).
		Where("id = ? AND tenant_id = ?", id, tenantID)

	return postgres.Get[domain.ReservationRow](ctx, r.q(ctx), q, "reservations.get")
}

// ListWindow returns the non-cancelled reservations overlapping the window,
// ordered by arrival.
func (r *Repo) ListWindow(ctx context.Context, tenantID uuid.UUID, w domain.ReservationWindow) ([]domain.ReservationRow, error) {
	q := postgres.Builder.
		Select(columns...).
		From(table).
		Where("tenant_id = ?", tenantID).
		Where(sq.NotEq{"status": domain.ReservationStatusCancelled.String()}).
		Where(sq.Lt{"check_in_date": w.To}).
		Where(sq.Gt{"check_out_date": w.From}).
		OrderBy("check_in_date", "guest_name")

	return postgres.Select[domain.ReservationRow](ctx, r.q(ctx), q, "reservations.list_window")
}

// Create inserts a reservation. Timestamps are set by the database.
func (r *Repo) Create(ctx context.Context, res domain.ReservationRow) error {
	q := postgres.Builder.
		Insert(table).
		Columns(
			"id", "tenant_id", "room_id", "guest_name", "guest_phone", "guest_email", "guest_id_number",
			"check_in_date", "check_out_date", "status", "adults", "room_rate", "total_amount", "created_by",
		).
		Values(
			res.ID, res.TenantID, res.RoomID, res.GuestName, res.GuestPhone, res.GuestEmail, res.GuestIDNumber,
			res.CheckIn, res.CheckOut, res.Status.String(), res.Adults, res.RoomRate, res.TotalAmount, res.CreatedBy,
		)

	_, err := postgres.Exec(ctx, r.q(ctx), q, "reservations.create")
	return err
}

// Delete removes a reservation. Used to undo a walk-in whose check-in failed.
func (r *Repo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	q := postgres.Builder.
		Delete(table).
		Where("id = ? AND tenant_id = ?", id, tenantID)

	return postgres.ExecOne(ctx, r.q(ctx), q, "reservations.delete")
}

// UpdateStatus moves a reservation to a new status.
func (r *Repo) UpdateStatus(ctx context.Context, tenantID, id uuid.UUID, status domain.ReservationStatus) error {
	return r.update(ctx, tenantID, id, "reservations.update_status", map[string]any{
		"status": status.String(),
	})
}

// UpdateStay changes the departure date and the stay total.
func (r *Repo) UpdateStay(ctx context.Context, tenantID, id uuid.UUID, checkOut time.Time, total decimal.Decimal) error {
	return r.update(ctx, tenantID, id, "reservations.update_stay", map[string]any{
		"check_out_date": checkOut,
		"total_amount":   total,
	})
}

// AssignRoom points the reservation at a room. A nil room unassigns it.
func (r *Repo) AssignRoom(ctx context.Context, tenantID, id uuid.UUID, roomID *uuid.UUID) error {
	return r.update(ctx, tenantID, id, "reservations.assign_room", map[string]any{
		"room_id": roomID,
	})
}

// UpdateDetails applies the non-nil fields of changes.
func (r *Repo) UpdateDetails(ctx context.Context, tenantID, id uuid.UUID, changes domain.ReservationChanges) error {
	if changes.IsEmpty() {
		return nil
	}

	set := make(map[string]any)
	if changes.GuestName != nil {
		set["guest_name"] = *changes.GuestName
	}
	if changes.GuestPhone != nil {
		set["guest_phone"] = *changes.GuestPhone
	}
	if changes.GuestEmail != nil {
		set["guest_email"] = *changes.GuestEmail
	}
	if changes.CheckIn != nil {
		set["check_in_date"] = *changes.CheckIn
	}
	if changes.CheckOut != nil {
		set["check_out_date"] = *changes.CheckOut
	}
	if changes.TotalAmount != nil {
		set["total_amount"] = *changes.TotalAmount
	}
	return r.update(ctx, tenantID, id, "reservations.update_details", set)
}

func (r *Repo) update(ctx context.Context, tenantID, id uuid.UUID, op string, set map[string]any) error {
	q := postgres.Builder.
		Update(table).
		SetMap(set).
		Set("updated_at", sq.Expr("now()")).
		Where("id = ? AND tenant_id = ?", id, tenantID)

	return postgres.ExecOne(ctx, r.q(ctx), q, op)
}
