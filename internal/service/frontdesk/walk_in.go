package frontdesk

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

// WalkIn creates a reservation for a guest at the desk and checks them in.
//
// Sequence: create reservation, atomic check-in with the initial room charge,
// then the deposit payment when one was taken. A failed check-in deletes the
// reservation created in the first step.
func (s *Service) WalkIn(ctx context.Context, room domain.Room, in WalkInInput) (Outcome, error) {
	id, role, err := identity(ctx)
	if err != nil {
		return Outcome{}, err
	}
	if err := in.Validate(); err != nil {
		return Outcome{}, err
	}
	if err := allowed(room, role, domain.ActionWalkIn); err != nil {
		return Outcome{}, err
	}

	settings, err := s.taxSettings(ctx, id.TenantID)
	if err != nil {
		return Outcome{}, fmt.Errorf("walk-in: load tax settings: %w", err)
	}
	quote := QuoteWalkIn(room, in, settings)

	now := s.clock.Now()
	guest := domain.GuestRef{
		Name:     strings.TrimSpace(in.Guest.Name),
		Phone:    strings.TrimSpace(in.Guest.Phone),
		Email:    strings.TrimSpace(in.Guest.Email),
		IDNumber: strings.TrimSpace(in.Guest.IDNumber),
	}
	res := domain.ReservationRow{
		ID:            uuid.New(),
		TenantID:      id.TenantID,
		RoomID:        &room.ID,
		GuestName:     guest.Name,
		GuestPhone:    guest.Phone,
		GuestEmail:    guest.Email,
		GuestIDNumber: guest.IDNumber,
		CheckIn:       now,
		CheckOut:      now.AddDate(0, 0, in.Nights),
		Status:        domain.ReservationStatusConfirmed,
		Adults:        1,
		RoomRate:      quote.Rate,
		TotalAmount:   quote.Tax.TotalAmount,
		CreatedBy:     &id.UserID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	comp := s.newCompensations()

	if err := s.reservations.Create(ctx, res); err != nil {
		return Outcome{}, fmt.Errorf("walk-in: create reservation: %w", err)
	}
	comp.add("delete walk-in reservation", func(ctx context.Context) error {
		return s.reservations.Delete(ctx, id.TenantID, res.ID)
	})

	folioID, err := s.procs.CheckIn(ctx, domain.CheckInRequest{
		TenantID:       id.TenantID,
		ReservationID:  res.ID,
		RoomID:         room.ID,
		Guest:          &guest,
		InitialCharges: []domain.InitialCharge{quote.Tax.Charge(nightsDescription(in.Nights))},
		PerformedBy:    id.UserID,
	})
	if err != nil {
		return Outcome{}, comp.abort(ctx, fmt.Errorf("walk-in: check in: %w", err))
	}

	out := Outcome{Message: fmt.Sprintf("%s checked in to room %s", guest.Name, room.Number)}

	if in.DepositAmount.IsPositive() {
		p := s.payment(id.TenantID, folioID, id.UserID, in.DepositAmount, in.PaymentMethod, "walk-in deposit")
		if err := s.folios.RecordPayment(ctx, p); err != nil {
			s.log.ErrorContext(ctx, "walk-in deposit not recorded",
				slog.String("reservation_id", res.ID.String()),
				slog.String("error", err.Error()),
			)
			out.warn("Guest is checked in but the deposit was not recorded: " + domain.UserMessage(err))
			quote.BalanceDue = quote.Tax.TotalAmount
		}
	}

	s.record(ctx, &out, id, domain.ActionWalkIn, domain.ResourceReservation, res.ID,
		fmt.Sprintf("Walk-in check-in for %s in room %s", guest.Name, room.Number),
		map[string]any{
			"room_id":      room.ID.String(),
			"nights":       in.Nights,
			"total_amount": quote.Tax.TotalAmount.String(),
			"deposit":      in.DepositAmount.String(),
		})

	if guest.Email != "" {
		s.send(ctx, domain.NotificationEvent{
			TenantID:   id.TenantID,
			Channel:    domain.ChannelEmail,
			EventType:  domain.EventGuestWelcome,
			Recipients: []string{guest.Email},
			TemplateData: map[string]any{
				"guest_name":  guest.Name,
				"room_number": room.Number,
				"check_out":   res.CheckOut.Format("2006-01-02"),
			},
		})
	}

	out.Room = occupiedBy(room, res, domain.NewFolioSummary(folioID, quote.BalanceDue))

	s.log.InfoContext(ctx, "walk-in checked in",
		slog.String("tenant_id", id.TenantID.String()),
		slog.String("room_id", room.ID.String()),
		slog.String("reservation_id", res.ID.String()),
		slog.String("folio_id", folioID.String()),
	)

	return out, nil
}

// occupiedBy projects a room after a guest has been checked in.
func occupiedBy(room domain.Room, res domain.ReservationRow, folio *domain.FolioSummary) domain.Room {
	res.Status = domain.ReservationStatusCheckedIn
	room.Status = domain.RoomStatusOccupied
	room.PersistedStatus = domain.RoomStatusOccupied.String()
	room.Guest = res.Guest()
	room.Reservation = res.Ref()
	checkIn, checkOut := res.CheckIn, res.CheckOut
	room.CheckIn = &checkIn
	room.CheckOut = &checkOut
	room.Folio = folio
	room.Alerts = domain.RoomAlerts{
		DepositPending: folio != nil && !folio.IsPaid,
		IDMissing:      room.Guest == nil || room.Guest.IDNumber == "",
	}
	return room
}

func nightsDescription(n int) string {
	if n == 1 {
		return "Room charge - 1 night"
	}
	return fmt.Sprintf("Room charge - %d nights", n)
}
