package frontdesk

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
	"github.com/waspershola/africa-lodge-90-sub002/internal/service/roomview"
)

// TransferRoom moves an in-house guest to a vacant room. Moving to a dearer
// room posts the rate difference as a transfer fee.
func (s *Service) TransferRoom(ctx context.Context, room domain.Room, in TransferRoomInput) (Outcome, error) {
	id, role, err := identity(ctx)
	if err != nil {
		return Outcome{}, err
	}
	if err := in.Validate(); err != nil {
		return Outcome{}, err
	}
	if in.TargetRoomID == room.ID {
		return Outcome{}, domain.NewValidationError("target_room_id", "must differ from the current room")
	}
	if err := allowed(room, role, domain.ActionTransferRoom); err != nil {
		return Outcome{}, err
	}
	if err := reservationOf(room, in.ReservationID); err != nil {
		return Outcome{}, err
	}

	target, err := s.vacantTarget(ctx, id.TenantID, in.TargetRoomID)
	if err != nil {
		return Outcome{}, fmt.Errorf("transfer: %w", err)
	}

	settings, err := s.taxSettings(ctx, id.TenantID)
	if err != nil {
		return Outcome{}, fmt.Errorf("transfer: load tax settings: %w", err)
	}
	quote := QuoteTransfer(room, target, settings)
	if quote.Tax != nil && in.PaymentMethod != "" && !in.PaymentMethod.IsValid() {
		return Outcome{}, domain.NewValidationError("payment_method", "invalid value")
	}

	comp := s.newCompensations()

	if err := s.reservations.AssignRoom(ctx, id.TenantID, in.ReservationID, &target.ID); err != nil {
		return Outcome{}, fmt.Errorf("transfer: repoint reservation: %w", err)
	}
	comp.add("repoint reservation to source room", func(ctx context.Context) error {
		return s.reservations.AssignRoom(ctx, id.TenantID, in.ReservationID, &room.ID)
	})

	if err := s.rooms.UpdateStatus(ctx, id.TenantID, target.ID, domain.RoomStatusOccupied.String()); err != nil {
		return Outcome{}, comp.abort(ctx, fmt.Errorf("transfer: occupy target room: %w", err))
	}
	comp.add("restore target room status", func(ctx context.Context) error {
		return s.rooms.UpdateStatus(ctx, id.TenantID, target.ID, target.Status)
	})

	if err := s.rooms.UpdateStatus(ctx, id.TenantID, room.ID, domain.RoomStatusAvailable.String()); err != nil {
		return Outcome{}, comp.abort(ctx, fmt.Errorf("transfer: release source room: %w", err))
	}
	comp.add("restore source room status", func(ctx context.Context) error {
		return s.rooms.UpdateStatus(ctx, id.TenantID, room.ID, room.PersistedStatus)
	})

	var folioID uuid.UUID
	if quote.Tax != nil {
		folioID, err = s.procs.ResolveFolio(ctx, id.TenantID, in.ReservationID)
		if err != nil {
			return Outcome{}, comp.abort(ctx, fmt.Errorf("transfer: resolve folio: %w", err))
		}
		charge := s.charge(id.TenantID, folioID, id.UserID,
			quote.Tax.Charge(fmt.Sprintf("Room transfer %s to %s", room.Number, target.Number)))
		if err := s.folios.PostCharge(ctx, charge); err != nil {
			return Outcome{}, comp.abort(ctx, fmt.Errorf("transfer: post fee: %w", err))
		}
		comp.add("void transfer fee", func(ctx context.Context) error {
			return s.folios.VoidCharge(ctx, id.TenantID, charge.ID)
		})

		if in.PaymentMethod != "" {
			p := s.payment(id.TenantID, folioID, id.UserID, quote.Tax.TotalAmount, in.PaymentMethod, "room transfer fee")
			if err := s.folios.RecordPayment(ctx, p); err != nil {
				return Outcome{}, comp.abort(ctx, fmt.Errorf("transfer: record fee payment: %w", err))
			}
		}
	}

	out := Outcome{Message: fmt.Sprintf("Guest moved from room %s to room %s", room.Number, target.Number)}

	meta := map[string]any{
		"from_room_id": room.ID.String(),
		"to_room_id":   target.ID.String(),
		"reason":       in.Reason,
		"fee":          quote.Fee.String(),
	}
	s.record(ctx, &out, id, domain.ActionTransferRoom, domain.ResourceReservation, in.ReservationID,
		fmt.Sprintf("Transferred guest from room %s to room %s", room.Number, target.Number), meta)

	if quote.Tax != nil && in.PrintReceipt {
		s.send(ctx, domain.NotificationEvent{
			TenantID:  id.TenantID,
			Channel:   domain.ChannelPrinter,
			EventType: domain.EventReceiptPrint,
			TemplateData: map[string]any{
				"folio_id":    folioID.String(),
				"description": "Room transfer fee",
				"amount":      quote.Tax.TotalAmount.StringFixed(2),
				"from_room":   room.Number,
				"to_room":     target.Number,
			},
		})
	}

	now := s.clock.Now()
	moved := roomview.Resolve(target, now)
	moved.Status = domain.RoomStatusOccupied
	if room.CheckOut != nil {
		moved.Status = roomview.OccupiedStatus(*room.CheckOut, now)
	}
	moved.PersistedStatus = domain.RoomStatusOccupied.String()
	moved.Guest = room.Guest
	moved.Reservation = room.Reservation
	moved.CheckIn = room.CheckIn
	moved.CheckOut = room.CheckOut
	moved.Folio = room.Folio
	if quote.Tax != nil && in.PaymentMethod == "" {
		moved = withBalanceDelta(moved, quote.Tax.TotalAmount)
	}
	moved.Alerts.Cleaning = false
	moved.Alerts.Maintenance = false

	out.Room = vacated(room, domain.RoomStatusAvailable)
	out.Related = []domain.Room{moved}

	s.log.InfoContext(ctx, "guest transferred",
		slog.String("tenant_id", id.TenantID.String()),
		slog.String("from_room_id", room.ID.String()),
		slog.String("to_room_id", target.ID.String()),
		slog.String("fee", quote.Fee.String()),
	)

	return out, nil
}

// vacantTarget loads a room that a guest or reservation is being moved to and
// checks that it is free right now.
func (s *Service) vacantTarget(ctx context.Context, tenantID, roomID uuid.UUID) (domain.RoomRow, error) {
	target, err := s.rooms.Get(ctx, tenantID, roomID)
	if err != nil {
		return domain.RoomRow{}, fmt.Errorf("get target room: %w", err)
	}
	status := roomview.ResolveStatus(target, s.clock.Now())
	if !status.IsVacant() {
		return domain.RoomRow{}, &domain.RemoteError{
			Kind:    domain.KindRoomConflict,
			Op:      "target room",
			Message: "room " + target.Number + " is " + status.String(),
			Err:     domain.ErrConflict,
		}
	}
	return target, nil
}
