package frontdesk

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

// roomStateTargets maps housekeeping and availability actions to the status
// they persist.
var roomStateTargets = map[domain.ActionKind]domain.RoomStatus{
	domain.ActionSetOutOfService:     domain.RoomStatusOutOfService,
	domain.ActionReturnToService:     domain.RoomStatusAvailable,
	domain.ActionMarkClean:           domain.RoomStatusClean,
	domain.ActionMarkAvailable:       domain.RoomStatusAvailable,
	domain.ActionCompleteMaintenance: domain.RoomStatusAvailable,
}

// ChangeRoomState applies a status-only action to a room. Taking a room out
// of service also opens a maintenance task.
func (s *Service) ChangeRoomState(ctx context.Context, room domain.Room, in RoomStateInput) (Outcome, error) {
	id, role, err := identity(ctx)
	if err != nil {
		return Outcome{}, err
	}
	if err := in.Validate(); err != nil {
		return Outcome{}, err
	}
	if err := allowed(room, role, in.Kind); err != nil {
		return Outcome{}, err
	}

	next := roomStateTargets[in.Kind]
	reason := strings.TrimSpace(in.Reason)

	comp := s.newCompensations()

	if err := s.rooms.UpdateStatus(ctx, id.TenantID, room.ID, next.String()); err != nil {
		return Outcome{}, fmt.Errorf("%s: %w", in.Kind, err)
	}
	comp.add("restore room status", func(ctx context.Context) error {
		return s.rooms.UpdateStatus(ctx, id.TenantID, room.ID, room.PersistedStatus)
	})

	if in.Kind == domain.ActionSetOutOfService {
		task := domain.HousekeepingTask{
			ID:          uuid.New(),
			TenantID:    id.TenantID,
			RoomID:      room.ID,
			TaskType:    domain.TaskTypeMaintenance,
			Priority:    domain.TaskPriorityHigh,
			Status:      "pending",
			Description: reason,
			CreatedBy:   id.UserID,
			CreatedAt:   s.clock.Now(),
		}
		if err := s.housekeeping.CreateTask(ctx, task); err != nil {
			return Outcome{}, comp.abort(ctx, fmt.Errorf("%s: create maintenance task: %w", in.Kind, err))
		}
	}

	out := Outcome{Message: fmt.Sprintf("Room %s is now %s", room.Number, strings.ReplaceAll(next.String(), "_", " "))}

	meta := map[string]any{
		"from": room.Status.String(),
		"to":   next.String(),
	}
	if reason != "" {
		meta["reason"] = reason
	}
	s.record(ctx, &out, id, in.Kind, domain.ResourceRoom, room.ID, out.Message, meta)

	out.Room = vacated(room, next)
	out.Room.Alerts.Maintenance = next == domain.RoomStatusOutOfService

	s.log.InfoContext(ctx, "room state changed",
		slog.String("tenant_id", id.TenantID.String()),
		slog.String("room_id", room.ID.String()),
		slog.String("from", room.Status.String()),
		slog.String("to", next.String()),
	)

	return out, nil
}
