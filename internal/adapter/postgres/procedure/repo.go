// Package procedure calls the backend's atomic server-side procedures.
// Each returns a JSON result; success=false becomes a soft failure whose
// code selects the error kind.
package procedure

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/waspershola/africa-lodge-90-sub002/internal/adapter/postgres"
	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

// Repo calls backend procedures over PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new procedure caller.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// CheckIn runs check_in_atomic and returns the folio the stay is billed to.
func (r *Repo) CheckIn(ctx context.Context, req domain.CheckInRequest) (uuid.UUID, error) {
	guest, err := json.Marshal(req.Guest)
	if err != nil {
		return uuid.Nil, fmt.Errorf("check_in_atomic marshal guest: %w", err)
	}
	charges := req.InitialCharges
	if charges == nil {
		charges = []domain.InitialCharge{}
	}
	chargesJSON, err := json.Marshal(charges)
	if err != nil {
		return uuid.Nil, fmt.Errorf("check_in_atomic marshal charges: %w", err)
	}

	res, err := r.call(ctx, "check_in_atomic", sq.Expr("check_in_atomic(?, ?, ?, ?::jsonb, ?::jsonb, ?)",
		req.TenantID, req.ReservationID, req.RoomID, guest, chargesJSON, req.PerformedBy))
	if err != nil {
		return uuid.Nil, err
	}
	return folioOf("check_in_atomic", res)
}

// CancelReservation runs cancel_reservation_atomic.
func (r *Repo) CancelReservation(ctx context.Context, req domain.CancelRequest) error {
	action := req.PaymentAction
	if action == "" {
		action = domain.PaymentActionNone
	}
	_, err := r.call(ctx, "cancel_reservation_atomic", sq.Expr("cancel_reservation_atomic(?, ?, ?, ?, ?, ?, ?)",
		req.TenantID, req.ReservationID, req.CancelledBy, req.Reason, req.RefundAmount, req.Notes, string(action)))
	return err
}

// ResolveFolio runs handle_multiple_folios and returns the reservation's single open folio.
func (r *Repo) ResolveFolio(ctx context.Context, tenantID, reservationID uuid.UUID) (uuid.UUID, error) {
	res, err := r.call(ctx, "handle_multiple_folios", sq.Expr("handle_multiple_folios(?, ?)", tenantID, reservationID))
	if err != nil {
		return uuid.Nil, err
	}
	return folioOf("handle_multiple_folios", res)
}

func (r *Repo) call(ctx context.Context, op string, fn sq.Sqlizer) (domain.ProcedureResult, error) {
	sql, args, err := postgres.Builder.Select().Column(fn).ToSql()
	if err != nil {
		return domain.ProcedureResult{}, fmt.Errorf("%s: build query: %w", op, err)
	}

	var raw []byte
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&raw); err != nil {
		return domain.ProcedureResult{}, postgres.MapError(err, op)
	}
	return postgres.ProcedureResult(op, raw)
}

func folioOf(op string, res domain.ProcedureResult) (uuid.UUID, error) {
	if res.FolioID == nil {
		return uuid.Nil, &domain.RemoteError{
			Kind: domain.KindUnknown,
			Op:   op,
			Err:  errors.New("procedure result has no folio_id"),
		}
	}
	return *res.FolioID, nil
}
