package frontdesk

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

// CheckOut closes a stay: the reservation becomes checked_out, the room
// becomes available, and a cleaning task is queued for housekeeping.
// Overstayed rooms need a forced, confirmed check-out; a normal check-out
// requires the folio to be settled.
func (s *Service) CheckOut(ctx context.Context, room domain.Room, in CheckOutInput) (Outcome, error) {
	id, role, err := identity(ctx)
	if err != nil {
		return Outcome{}, err
	}
	if err := in.Validate(); err != nil {
		return Outcome{}, err
	}

	kind := domain.ActionCheckOut
	if room.Status == domain.RoomStatusOverstay {
		if !in.Force {
			return Outcome{}, domain.NewValidationError("force", "overstayed rooms need a forced check-out")
		}
		kind = domain.ActionForceCheckOut
	}
	if err := allowed(room, role, kind); err != nil {
		return Outcome{}, err
	}
	if err := reservationOf(room, in.ReservationID); err != nil {
		return Outcome{}, err
	}

	if !in.Force {
		folio, err := s.folios.GetByReservation(ctx, id.TenantID, in.ReservationID)
		if err != nil {
			return Outcome{}, fmt.Errorf("check-out: get folio: %w", err)
		}
		if folio.Balance.IsPositive() {
			return Outcome{}, domain.NewValidationError("balance",
				"outstanding balance of "+folio.Balance.StringFixed(2)+" must be settled before check-out")
		}
	}

	comp := s.newCompensations()

	if err := s.reservations.UpdateStatus(ctx, id.TenantID, in.ReservationID, domain.ReservationStatusCheckedOut); err != nil {
		return Outcome{}, fmt.Errorf("check-out: update reservation: %w", err)
	}
	comp.add("restore reservation status", func(ctx context.Context) error {
		return s.reservations.UpdateStatus(ctx, id.TenantID, in.ReservationID, domain.ReservationStatusCheckedIn)
	})

	if err := s.rooms.UpdateStatus(ctx, id.TenantID, room.ID, domain.RoomStatusAvailable.String()); err != nil {
		return Outcome{}, comp.abort(ctx, fmt.Errorf("check-out: update room: %w", err))
	}
	comp.add("restore room status", func(ctx context.Context) error {
		return s.rooms.UpdateStatus(ctx, id.TenantID, room.ID, room.PersistedStatus)
	})

	priority := domain.TaskPriorityNormal
	if in.Force {
		priority = domain.TaskPriorityHigh
	}
	task := domain.HousekeepingTask{
		ID:          uuid.New(),
		TenantID:    id.TenantID,
		RoomID:      room.ID,
		TaskType:    domain.TaskTypeCleaning,
		Priority:    priority,
		Status:      "pending",
		Description: "Checkout cleaning for room " + room.Number,
		CreatedBy:   id.UserID,
		CreatedAt:   s.clock.Now(),
	}
	if err := s.housekeeping.CreateTask(ctx, task); err != nil {
		return Outcome{}, comp.abort(ctx, fmt.Errorf("check-out: create cleaning task: %w", err))
	}

	out := Outcome{Message: "Room " + room.Number + " checked out"}

	s.record(ctx, &out, id, kind, domain.ResourceReservation, in.ReservationID,
		"Checked out room "+room.Number,
		map[string]any{
			"room_id": room.ID.String(),
			"forced":  in.Force,
			"notes":   in.Notes,
		})

	if room.Guest != nil && room.Guest.Email != "" {
		s.send(ctx, domain.NotificationEvent{
			TenantID:   id.TenantID,
			Channel:    domain.ChannelEmail,
			EventType:  domain.EventGuestThankYou,
			Recipients: []string{room.Guest.Email},
			TemplateData: map[string]any{
				"guest_name":  room.Guest.Name,
				"room_number": room.Number,
			},
		})
	}

	out.Room = vacated(room, domain.RoomStatusAvailable)

	s.log.InfoContext(ctx, "room checked out",
		slog.String("tenant_id", id.TenantID.String()),
		slog.String("room_id", room.ID.String()),
		slog.String("reservation_id", in.ReservationID.String()),
		slog.Bool("forced", in.Force),
	)

	return out, nil
}
