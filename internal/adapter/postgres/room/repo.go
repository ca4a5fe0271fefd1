// Package room reads rooms with their current reservation and writes the
// persisted housekeeping status.
package room

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/waspershola/africa-lodge-90-sub002/internal/adapter/postgres"
	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

// currentReservation picks the checked-in reservation of a room, or else its
// earliest confirmed one.
const currentReservation = `LEFT JOIN LATERAL (
	SELECT * FROM reservations res
	WHERE res.room_id = r.id AND res.status IN ('checked_in', 'confirmed')
	ORDER BY res.status = 'checked_in' DESC, res.check_in_date
	LIMIT 1
) cr ON true`

var columns = []string{
	"r.id",
	"r.tenant_id",
	"r.room_number",
	"rt.name AS type_name",
	"rt.base_rate AS rate",
	"r.floor",
	"r.status",
	"r.updated_at",
	"CASE WHEN cr.id IS NULL THEN NULL ELSE to_jsonb(cr) END AS current_reservation",
}

type record struct {
	ID                 uuid.UUID       `db:"id"`
	TenantID           uuid.UUID       `db:"tenant_id"`
	Number             string          `db:"room_number"`
	TypeName           string          `db:"type_name"`
	Rate               decimal.Decimal `db:"rate"`
	Floor              int             `db:"floor"`
	Status             string          `db:"status"`
	UpdatedAt          time.Time       `db:"updated_at"`
	CurrentReservation []byte          `db:"current_reservation"`
}

func (rec record) toDomain() (domain.RoomRow, error) {
	row := domain.RoomRow{
		ID:        rec.ID,
		TenantID:  rec.TenantID,
		Number:    rec.Number,
		TypeName:  rec.TypeName,
		Rate:      rec.Rate,
		Floor:     rec.Floor,
		Status:    rec.Status,
		UpdatedAt: rec.UpdatedAt,
	}
	if len(rec.CurrentReservation) > 0 {
		var res domain.ReservationRow
		if err := json.Unmarshal(rec.CurrentReservation, &res); err != nil {
			return domain.RoomRow{}, fmt.Errorf("room %s: decode current reservation: %w", rec.ID, err)
		}
		row.CurrentReservation = &res
	}
	return row, nil
}

// Repo provides room persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new room repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) selectRooms() sq.SelectBuilder {
	return postgres.Builder.
		Select(columns...).
		From("rooms r").
		Join("room_types rt ON rt.id = r.room_type_id").
		JoinClause(currentReservation)
}

// List returns every room of the tenant ordered by floor and number.
func (r *Repo) List(ctx context.Context, tenantID uuid.UUID) ([]domain.RoomRow, error) {
	q := r.selectRooms().
		Where("r.tenant_id = ?", tenantID).
		OrderBy("r.floor", "r.room_number")

	recs, err := postgres.Select[record](ctx, postgres.QuerierFromCtx(ctx, r.db), q, "rooms.list")
	if err != nil {
		return nil, err
	}

	rows := make([]domain.RoomRow, len(recs))
	for i, rec := range recs {
		if rows[i], err = rec.toDomain(); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

// Get returns one room of the tenant.
func (r *Repo) Get(ctx context.Context, tenantID, roomID uuid.UUID) (domain.RoomRow, error) {
	q := r.selectRooms().Where("r.tenant_id = ? AND r.id = ?", tenantID, roomID)

	rec, err := postgres.Get[record](ctx, postgres.QuerierFromCtx(ctx, r.db), q, "rooms.get")
	if err != nil {
		return domain.RoomRow{}, err
	}
	return rec.toDomain()
}

// UpdateStatus sets the persisted status of a room.
func (r *Repo) UpdateStatus(ctx context.Context, tenantID, roomID uuid.UUID, status string) error {
	q := postgres.Builder.
		Update("rooms").
		Set("status", status).
		Set("updated_at", sq.Expr("now()")).
		Where("id = ? AND tenant_id = ?", roomID, tenantID)

	return postgres.ExecOne(ctx, postgres.QuerierFromCtx(ctx, r.db), q, "rooms.update_status")
}
