package frontdesk

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
	"github.com/waspershola/africa-lodge-90-sub002/internal/tax"
)

// ModifyReservation edits the guest details or dates of a reserved room's
// reservation. Date changes reprice the stay at the reservation's rate.
func (s *Service) ModifyReservation(ctx context.Context, room domain.Room, in ModifyReservationInput) (Outcome, error) {
	id, role, err := identity(ctx)
	if err != nil {
		return Outcome{}, err
	}
	if err := in.Validate(); err != nil {
		return Outcome{}, err
	}
	if err := allowed(room, role, domain.ActionModifyReservation); err != nil {
		return Outcome{}, err
	}
	if err := reservationOf(room, in.ReservationID); err != nil {
		return Outcome{}, err
	}

	res, err := s.reservations.Get(ctx, id.TenantID, in.ReservationID)
	if err != nil {
		return Outcome{}, fmt.Errorf("modify reservation: get reservation: %w", err)
	}

	changes := domain.ReservationChanges{
		GuestName:  trimmed(in.GuestName),
		GuestPhone: trimmed(in.GuestPhone),
		GuestEmail: trimmed(in.GuestEmail),
		CheckIn:    in.CheckIn,
		CheckOut:   in.CheckOut,
	}

	if in.CheckIn != nil || in.CheckOut != nil {
		checkIn, checkOut := res.CheckIn, res.CheckOut
		if in.CheckIn != nil {
			checkIn = *in.CheckIn
		}
		if in.CheckOut != nil {
			checkOut = *in.CheckOut
		}
		nights := domain.StayNights(checkIn, checkOut)
		if nights <= 0 {
			return Outcome{}, domain.NewValidationError("check_out", "must be after check-in")
		}
		rate := res.RoomRate
		if rate.IsZero() {
			rate = room.Rate
		}
		settings, err := s.taxSettings(ctx, id.TenantID)
		if err != nil {
			return Outcome{}, fmt.Errorf("modify reservation: load tax settings: %w", err)
		}
		total := tax.Calculate(rate.Mul(decimal.NewFromInt(int64(nights))), domain.ChargeTypeRoom, settings).TotalAmount
		changes.TotalAmount = &total
		res.CheckIn, res.CheckOut, res.TotalAmount = checkIn, checkOut, total
	}

	if err := s.reservations.UpdateDetails(ctx, id.TenantID, res.ID, changes); err != nil {
		return Outcome{}, fmt.Errorf("modify reservation: %w", err)
	}

	if changes.GuestName != nil {
		res.GuestName = *changes.GuestName
	}
	if changes.GuestPhone != nil {
		res.GuestPhone = *changes.GuestPhone
	}
	if changes.GuestEmail != nil {
		res.GuestEmail = *changes.GuestEmail
	}

	out := Outcome{Message: "Reservation updated"}

	meta := map[string]any{"room_id": room.ID.String()}
	if changes.TotalAmount != nil {
		meta["total_amount"] = changes.TotalAmount.String()
		meta["check_in"] = res.CheckIn.Format("2006-01-02")
		meta["check_out"] = res.CheckOut.Format("2006-01-02")
	}
	s.record(ctx, &out, id, domain.ActionModifyReservation, domain.ResourceReservation, res.ID,
		"Modified reservation for room "+room.Number, meta)

	out.Room = reservedBy(room, res)

	s.log.InfoContext(ctx, "reservation modified",
		slog.String("tenant_id", id.TenantID.String()),
		slog.String("reservation_id", res.ID.String()),
		slog.Bool("repriced", changes.TotalAmount != nil),
	)

	return out, nil
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	return &t
}
