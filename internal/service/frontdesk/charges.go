package frontdesk

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
	"github.com/waspershola/africa-lodge-90-sub002/internal/tax"
	"github.com/waspershola/africa-lodge-90-sub002/pkg/ctxutil"
)

// AddService posts a service charge to the guest's folio. The posted amounts
// equal the tax preview shown in the dialog.
func (s *Service) AddService(ctx context.Context, room domain.Room, in AddServiceInput) (Outcome, error) {
	id, role, err := identity(ctx)
	if err != nil {
		return Outcome{}, err
	}
	if err := in.Validate(); err != nil {
		return Outcome{}, err
	}
	if err := allowed(room, role, domain.ActionAddService); err != nil {
		return Outcome{}, err
	}
	if err := reservationOf(room, in.ReservationID); err != nil {
		return Outcome{}, err
	}

	settings, err := s.taxSettings(ctx, id.TenantID)
	if err != nil {
		return Outcome{}, fmt.Errorf("add service: load tax settings: %w", err)
	}
	b := QuoteService(in, settings)

	desc := strings.TrimSpace(in.Description)
	if in.Quantity > 1 {
		desc = fmt.Sprintf("%s x%d", desc, in.Quantity)
	}

	out, err := s.postCharge(ctx, id, room, in.ReservationID, b, desc, domain.ActionAddService)
	if err != nil {
		return Outcome{}, fmt.Errorf("add service: %w", err)
	}
	out.Message = fmt.Sprintf("%s charged to room %s", desc, room.Number)
	return out, nil
}

// ApplyOverstayCharge posts an overstay charge to an overstayed room's folio.
func (s *Service) ApplyOverstayCharge(ctx context.Context, room domain.Room, in OverstayChargeInput) (Outcome, error) {
	id, role, err := identity(ctx)
	if err != nil {
		return Outcome{}, err
	}
	if err := in.Validate(); err != nil {
		return Outcome{}, err
	}
	if err := allowed(room, role, domain.ActionApplyOverstayCharge); err != nil {
		return Outcome{}, err
	}
	if err := reservationOf(room, in.ReservationID); err != nil {
		return Outcome{}, err
	}

	settings, err := s.taxSettings(ctx, id.TenantID)
	if err != nil {
		return Outcome{}, fmt.Errorf("overstay charge: load tax settings: %w", err)
	}
	quote := QuoteOverstay(room, in, settings, s.clock.Now())

	out, err := s.postCharge(ctx, id, room, in.ReservationID, quote.Tax, quote.Description, domain.ActionApplyOverstayCharge)
	if err != nil {
		return Outcome{}, fmt.Errorf("overstay charge: %w", err)
	}
	out.Message = fmt.Sprintf("Overstay charge of %s applied to room %s", quote.Tax.TotalAmount.StringFixed(2), room.Number)
	return out, nil
}

func (s *Service) postCharge(ctx context.Context, id ctxutil.Identity, room domain.Room, reservationID uuid.UUID,
	b tax.Breakdown, description string, action domain.ActionKind,
) (Outcome, error) {
	folioID, err := s.procs.ResolveFolio(ctx, id.TenantID, reservationID)
	if err != nil {
		return Outcome{}, fmt.Errorf("resolve folio: %w", err)
	}

	charge := s.charge(id.TenantID, folioID, id.UserID, b.Charge(description))
	if err := s.folios.PostCharge(ctx, charge); err != nil {
		return Outcome{}, fmt.Errorf("post charge: %w", err)
	}

	var out Outcome
	s.record(ctx, &out, id, action, domain.ResourceFolio, folioID, description,
		map[string]any{
			"room_id":        room.ID.String(),
			"charge_id":      charge.ID.String(),
			"charge_type":    b.ChargeType.String(),
			"base_amount":    b.BaseAmount.String(),
			"vat_amount":     b.VATAmount.String(),
			"service_charge": b.ServiceCharge.String(),
			"total_amount":   b.TotalAmount.String(),
		})

	out.Room = withBalanceDelta(room, b.TotalAmount)

	s.log.InfoContext(ctx, "charge posted",
		slog.String("tenant_id", id.TenantID.String()),
		slog.String("folio_id", folioID.String()),
		slog.String("charge_type", b.ChargeType.String()),
		slog.String("total", b.TotalAmount.String()),
	)

	return out, nil
}

// PostPayment records money received against the guest's folio.
func (s *Service) PostPayment(ctx context.Context, room domain.Room, in PostPaymentInput) (Outcome, error) {
	id, role, err := identity(ctx)
	if err != nil {
		return Outcome{}, err
	}
	if err := in.Validate(); err != nil {
		return Outcome{}, err
	}
	if err := allowed(room, role, domain.ActionPostPayment); err != nil {
		return Outcome{}, err
	}
	if err := reservationOf(room, in.ReservationID); err != nil {
		return Outcome{}, err
	}

	folioID, err := s.procs.ResolveFolio(ctx, id.TenantID, in.ReservationID)
	if err != nil {
		return Outcome{}, fmt.Errorf("post payment: resolve folio: %w", err)
	}

	p := s.payment(id.TenantID, folioID, id.UserID, in.Amount, in.Method, strings.TrimSpace(in.Reference))
	if err := s.folios.RecordPayment(ctx, p); err != nil {
		return Outcome{}, fmt.Errorf("post payment: %w", err)
	}

	out := Outcome{Message: fmt.Sprintf("Payment of %s recorded for room %s", p.Amount.StringFixed(2), room.Number)}

	s.record(ctx, &out, id, domain.ActionPostPayment, domain.ResourcePayment, p.ID,
		out.Message,
		map[string]any{
			"folio_id": folioID.String(),
			"amount":   p.Amount.String(),
			"method":   p.Method.String(),
		})

	out.Room = withBalanceDelta(room, p.Amount.Neg())

	s.log.InfoContext(ctx, "payment posted",
		slog.String("tenant_id", id.TenantID.String()),
		slog.String("folio_id", folioID.String()),
		slog.String("method", p.Method.String()),
	)

	return out, nil
}
