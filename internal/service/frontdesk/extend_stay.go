package frontdesk

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

// ExtendStay moves the checkout of the room's reservation later, posts the
// extra nights to the folio and records their payment.
func (s *Service) ExtendStay(ctx context.Context, room domain.Room, in ExtendStayInput) (Outcome, error) {
	id, role, err := identity(ctx)
	if err != nil {
		return Outcome{}, err
	}
	if err := in.Validate(); err != nil {
		return Outcome{}, err
	}
	if err := allowed(room, role, domain.ActionExtendStay); err != nil {
		return Outcome{}, err
	}
	if err := reservationOf(room, in.ReservationID); err != nil {
		return Outcome{}, err
	}

	settings, err := s.taxSettings(ctx, id.TenantID)
	if err != nil {
		return Outcome{}, fmt.Errorf("extend stay: load tax settings: %w", err)
	}
	quote, err := QuoteExtendStay(room, in, settings)
	if err != nil {
		return Outcome{}, err
	}

	oldCheckOut := *room.CheckOut
	oldTotal := room.Reservation.TotalAmount
	newTotal := oldTotal.Add(quote.Tax.TotalAmount)

	comp := s.newCompensations()

	if err := s.reservations.UpdateStay(ctx, id.TenantID, in.ReservationID, in.NewCheckOut, newTotal); err != nil {
		return Outcome{}, fmt.Errorf("extend stay: update reservation: %w", err)
	}
	comp.add("restore checkout date", func(ctx context.Context) error {
		return s.reservations.UpdateStay(ctx, id.TenantID, in.ReservationID, oldCheckOut, oldTotal)
	})

	folioID, err := s.procs.ResolveFolio(ctx, id.TenantID, in.ReservationID)
	if err != nil {
		return Outcome{}, comp.abort(ctx, fmt.Errorf("extend stay: resolve folio: %w", err))
	}

	charge := s.charge(id.TenantID, folioID, id.UserID,
		quote.Tax.Charge(fmt.Sprintf("Stay extension - %d night(s)", quote.Nights)))
	if err := s.folios.PostCharge(ctx, charge); err != nil {
		return Outcome{}, comp.abort(ctx, fmt.Errorf("extend stay: post charge: %w", err))
	}
	comp.add("void extension charge", func(ctx context.Context) error {
		return s.folios.VoidCharge(ctx, id.TenantID, charge.ID)
	})

	if quote.Tax.TotalAmount.IsPositive() {
		p := s.payment(id.TenantID, folioID, id.UserID, quote.Tax.TotalAmount, in.PaymentMethod, "stay extension")
		if err := s.folios.RecordPayment(ctx, p); err != nil {
			return Outcome{}, comp.abort(ctx, fmt.Errorf("extend stay: record payment: %w", err))
		}
	}

	out := Outcome{Message: fmt.Sprintf("Stay extended by %d night(s)", quote.Nights)}

	s.record(ctx, &out, id, domain.ActionExtendStay, domain.ResourceReservation, in.ReservationID,
		fmt.Sprintf("Extended stay in room %s by %d night(s)", room.Number, quote.Nights),
		map[string]any{
			"old_check_out":  oldCheckOut.Format("2006-01-02"),
			"new_check_out":  in.NewCheckOut.Format("2006-01-02"),
			"nights":         quote.Nights,
			"amount":         quote.Tax.TotalAmount.String(),
			"payment_method": in.PaymentMethod.String(),
		})

	extended := room
	newCheckOut := in.NewCheckOut
	extended.CheckOut = &newCheckOut
	ref := *room.Reservation
	ref.CheckOut = newCheckOut
	ref.TotalAmount = newTotal
	extended.Reservation = &ref
	if newCheckOut.After(s.clock.Now()) {
		extended.Status = domain.RoomStatusOccupied
	}
	out.Room = extended

	s.log.InfoContext(ctx, "stay extended",
		slog.String("tenant_id", id.TenantID.String()),
		slog.String("reservation_id", in.ReservationID.String()),
		slog.Int("nights", quote.Nights),
	)

	return out, nil
}
