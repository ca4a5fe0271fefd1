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

// CheckIn checks in the confirmed reservation held by a reserved room.
func (s *Service) CheckIn(ctx context.Context, room domain.Room, in CheckInInput) (Outcome, error) {
	id, role, err := identity(ctx)
	if err != nil {
		return Outcome{}, err
	}
	if err := in.Validate(); err != nil {
		return Outcome{}, err
	}
	if err := allowed(room, role, domain.ActionCheckIn); err != nil {
		return Outcome{}, err
	}
	if err := reservationOf(room, in.ReservationID); err != nil {
		return Outcome{}, err
	}

	res, err := s.reservations.Get(ctx, id.TenantID, in.ReservationID)
	if err != nil {
		return Outcome{}, fmt.Errorf("check-in: get reservation: %w", err)
	}
	if idNumber := strings.TrimSpace(in.IDNumber); idNumber != "" {
		res.GuestIDNumber = idNumber
	}

	settings, err := s.taxSettings(ctx, id.TenantID)
	if err != nil {
		return Outcome{}, fmt.Errorf("check-in: load tax settings: %w", err)
	}
	nights := max(domain.StayNights(res.CheckIn, res.CheckOut), 1)
	rate := res.RoomRate
	if !rate.IsPositive() {
		rate = room.Rate
	}
	b := tax.Calculate(rate.Mul(decimal.NewFromInt(int64(nights))), domain.ChargeTypeRoom, settings)

	folioID, err := s.procs.CheckIn(ctx, domain.CheckInRequest{
		TenantID:       id.TenantID,
		ReservationID:  res.ID,
		RoomID:         room.ID,
		Guest:          res.Guest(),
		InitialCharges: []domain.InitialCharge{b.Charge(nightsDescription(nights))},
		PerformedBy:    id.UserID,
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("check-in: %w", err)
	}

	out := Outcome{Message: fmt.Sprintf("%s checked in to room %s", res.GuestName, room.Number)}
	balance := b.TotalAmount

	if in.DepositAmount.IsPositive() {
		p := s.payment(id.TenantID, folioID, id.UserID, in.DepositAmount, in.PaymentMethod, "check-in deposit")
		if err := s.folios.RecordPayment(ctx, p); err != nil {
			s.log.ErrorContext(ctx, "check-in deposit not recorded",
				slog.String("reservation_id", res.ID.String()),
				slog.String("error", err.Error()),
			)
			out.warn("Guest is checked in but the deposit was not recorded: " + domain.UserMessage(err))
		} else {
			balance = balance.Sub(p.Amount)
		}
	}

	s.record(ctx, &out, id, domain.ActionCheckIn, domain.ResourceReservation, res.ID,
		fmt.Sprintf("Checked in %s to room %s", res.GuestName, room.Number),
		map[string]any{
			"room_id":     room.ID.String(),
			"room_charge": b.TotalAmount.String(),
			"deposit":     in.DepositAmount.String(),
		})

	out.Room = occupiedBy(room, res, domain.NewFolioSummary(folioID, balance))

	s.log.InfoContext(ctx, "reservation checked in",
		slog.String("tenant_id", id.TenantID.String()),
		slog.String("room_id", room.ID.String()),
		slog.String("reservation_id", res.ID.String()),
	)

	return out, nil
}
