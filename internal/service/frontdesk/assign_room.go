package frontdesk

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
	"github.com/waspershola/africa-lodge-90-sub002/internal/service/roomview"
)

// AssignRoom places an existing pending or confirmed reservation in a vacant
// room and marks the room reserved.
func (s *Service) AssignRoom(ctx context.Context, room domain.Room, in AssignRoomInput) (Outcome, error) {
	id, role, err := identity(ctx)
	if err != nil {
		return Outcome{}, err
	}
	if err := in.Validate(); err != nil {
		return Outcome{}, err
	}
	if err := allowed(room, role, domain.ActionAssignRoom); err != nil {
		return Outcome{}, err
	}

	res, err := s.reservations.Get(ctx, id.TenantID, in.ReservationID)
	if err != nil {
		return Outcome{}, fmt.Errorf("assign room: get reservation: %w", err)
	}
	if res.Status != domain.ReservationStatusPending && res.Status != domain.ReservationStatusConfirmed {
		return Outcome{}, domain.NewValidationError("reservation_id", "reservation is "+string(res.Status))
	}

	comp := s.newCompensations()

	previous := res.RoomID
	if err := s.reservations.AssignRoom(ctx, id.TenantID, res.ID, &room.ID); err != nil {
		return Outcome{}, fmt.Errorf("assign room: update reservation: %w", err)
	}
	comp.add("restore reservation room", func(ctx context.Context) error {
		return s.reservations.AssignRoom(ctx, id.TenantID, res.ID, previous)
	})

	if err := s.rooms.UpdateStatus(ctx, id.TenantID, room.ID, domain.RoomStatusReserved.String()); err != nil {
		return Outcome{}, comp.abort(ctx, fmt.Errorf("assign room: update room: %w", err))
	}

	out := Outcome{Message: fmt.Sprintf("Room %s assigned to %s", room.Number, res.GuestName)}

	s.record(ctx, &out, id, domain.ActionAssignRoom, domain.ResourceReservation, res.ID,
		fmt.Sprintf("Assigned room %s to reservation for %s", room.Number, res.GuestName),
		map[string]any{"room_id": room.ID.String()})

	out.Room = reservedBy(room, res)

	s.log.InfoContext(ctx, "room assigned",
		slog.String("tenant_id", id.TenantID.String()),
		slog.String("room_id", room.ID.String()),
		slog.String("reservation_id", res.ID.String()),
	)

	return out, nil
}

// ReassignRoom moves a reservation from a reserved room to a vacant one.
func (s *Service) ReassignRoom(ctx context.Context, room domain.Room, in ReassignRoomInput) (Outcome, error) {
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
	if err := allowed(room, role, domain.ActionReassignRoom); err != nil {
		return Outcome{}, err
	}
	if err := reservationOf(room, in.ReservationID); err != nil {
		return Outcome{}, err
	}

	target, err := s.vacantTarget(ctx, id.TenantID, in.TargetRoomID)
	if err != nil {
		return Outcome{}, fmt.Errorf("reassign room: %w", err)
	}

	comp := s.newCompensations()

	if err := s.reservations.AssignRoom(ctx, id.TenantID, in.ReservationID, &target.ID); err != nil {
		return Outcome{}, fmt.Errorf("reassign room: update reservation: %w", err)
	}
	comp.add("repoint reservation to source room", func(ctx context.Context) error {
		return s.reservations.AssignRoom(ctx, id.TenantID, in.ReservationID, &room.ID)
	})

	if err := s.rooms.UpdateStatus(ctx, id.TenantID, target.ID, domain.RoomStatusReserved.String()); err != nil {
		return Outcome{}, comp.abort(ctx, fmt.Errorf("reassign room: reserve target room: %w", err))
	}
	comp.add("restore target room status", func(ctx context.Context) error {
		return s.rooms.UpdateStatus(ctx, id.TenantID, target.ID, target.Status)
	})

	if err := s.rooms.UpdateStatus(ctx, id.TenantID, room.ID, domain.RoomStatusAvailable.String()); err != nil {
		return Outcome{}, comp.abort(ctx, fmt.Errorf("reassign room: release source room: %w", err))
	}

	out := Outcome{Message: fmt.Sprintf("Reservation moved from room %s to room %s", room.Number, target.Number)}

	s.record(ctx, &out, id, domain.ActionReassignRoom, domain.ResourceReservation, in.ReservationID,
		out.Message,
		map[string]any{
			"from_room_id": room.ID.String(),
			"to_room_id":   target.ID.String(),
		})

	moved := roomview.Resolve(target, s.clock.Now())
	moved.Status = domain.RoomStatusReserved
	moved.PersistedStatus = domain.RoomStatusReserved.String()
	moved.Guest = room.Guest
	moved.Reservation = room.Reservation
	moved.CheckIn = room.CheckIn
	moved.CheckOut = room.CheckOut
	moved.Folio = room.Folio
	moved.Alerts = room.Alerts

	out.Room = vacated(room, domain.RoomStatusAvailable)
	out.Related = []domain.Room{moved}

	s.log.InfoContext(ctx, "reservation reassigned",
		slog.String("tenant_id", id.TenantID.String()),
		slog.String("from_room_id", room.ID.String()),
		slog.String("to_room_id", target.ID.String()),
	)

	return out, nil
}

func reservedBy(room domain.Room, res domain.ReservationRow) domain.Room {
	room.Status = domain.RoomStatusReserved
	room.PersistedStatus = domain.RoomStatusReserved.String()
	room.Guest = res.Guest()
	room.Reservation = res.Ref()
	checkIn, checkOut := res.CheckIn, res.CheckOut
	room.CheckIn = &checkIn
	room.CheckOut = &checkOut
	room.Alerts.IDMissing = res.GuestIDNumber == ""
	return room
}
