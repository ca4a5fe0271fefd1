// Package folio implements folio, charge and payment persistence using PostgreSQL.
// Folio totals are maintained by database triggers.
package folio

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/waspershola/africa-lodge-90-sub002/internal/adapter/postgres"
	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

var columns = []string{
	"id", "tenant_id", "reservation_id", "folio_number", "balance", "total_charges", "total_payments", "status",
}

// Repo provides folio persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new folio repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// selectCurrent returns one folio per reservation: the oldest open one, or
// the newest closed one when none is open.
func selectCurrent() sq.SelectBuilder {
	return postgres.Builder.
		Select(columns...).
		Options("DISTINCT ON (reservation_id)").
		From("folios").
		OrderBy("reservation_id", "status = 'open' DESC", "CASE WHEN status = 'open' THEN created_at END", "created_at DESC")
}

// GetByReservation returns the current folio of a reservation.
func (r *Repo) GetByReservation(ctx context.Context, tenantID, reservationID uuid.UUID) (domain.FolioRow, error) {
	q := selectCurrent().Where("tenant_id = ? AND reservation_id = ?", tenantID, reservationID)
	return postgres.Get[domain.FolioRow](ctx, r.q(ctx), q, "folios.get_by_reservation")
}

// GetByReservationIDs returns the current folio of each reservation that has one.
func (r *Repo) GetByReservationIDs(ctx context.Context, tenantID uuid.UUID, reservationIDs []uuid.UUID) ([]domain.FolioRow, error) {
	if len(reservationIDs) == 0 {
		return []domain.FolioRow{}, nil
	}
	q := selectCurrent().Where("tenant_id = ? AND reservation_id = ANY(?)", tenantID, reservationIDs)
	return postgres.Select[domain.FolioRow](ctx, r.q(ctx), q, "folios.get_by_reservation_ids")
}

// PostCharge adds a charge to a folio.
func (r *Repo) PostCharge(ctx context.Context, c domain.FolioCharge) error {
	q := postgres.Builder.
		Insert("folio_charges").
		Columns("id", "tenant_id", "folio_id", "charge_type", "description",
			"base_amount", "vat_amount", "service_charge", "total_amount", "posted_by").
		Values(c.ID, c.TenantID, c.FolioID, c.ChargeType.String(), c.Description,
			c.BaseAmount, c.VATAmount, c.ServiceCharge, c.TotalAmount, c.PostedBy)

	_, err := postgres.Exec(ctx, r.q(ctx), q, "folio_charges.post")
	return err
}

// VoidCharge marks a charge as void so it no longer counts towards the folio.
func (r *Repo) VoidCharge(ctx context.Context, tenantID, chargeID uuid.UUID) error {
	q := postgres.Builder.
		Update("folio_charges").
		Set("voided", true).
		Where("id = ? AND tenant_id = ? AND NOT voided", chargeID, tenantID)

	return postgres.ExecOne(ctx, r.q(ctx), q, "folio_charges.void")
}

// RecordPayment adds a payment to a folio.
func (r *Repo) RecordPayment(ctx context.Context, p domain.Payment) error {
	q := postgres.Builder.
		Insert("payments").
		Columns("id", "tenant_id", "folio_id", "amount", "payment_method", "status", "reference", "created_by").
		Values(p.ID, p.TenantID, p.FolioID, p.Amount, p.Method.String(), p.Status, p.Reference, p.CreatedBy)

	_, err := postgres.Exec(ctx, r.q(ctx), q, "payments.record")
	return err
}
