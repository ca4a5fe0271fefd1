package dialog

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
	"github.com/waspershola/africa-lodge-90-sub002/internal/service/actionmenu"
	"github.com/waspershola/africa-lodge-90-sub002/internal/service/board"
	"github.com/waspershola/africa-lodge-90-sub002/internal/service/frontdesk"
)

// Open starts a dialog for an action on a room of the caller's board.
func (s *Service) Open(ctx context.Context, roomID uuid.UUID, kind domain.ActionKind) (View, error) {
	id, err := identity(ctx)
	if err != nil {
		return View{}, err
	}
	if !kind.IsValid() {
		return View{}, domain.NewValidationError("kind", "unknown action "+kind.String())
	}
	action, ok := s.actions[kind]
	if !ok {
		return View{}, domain.NewValidationError("kind", kind.String()+" has no dialog")
	}

	states, err := s.board.TenantRooms(ctx, id.TenantID)
	if err != nil {
		return View{}, err
	}
	st, ok := findState(states, roomID)
	if !ok {
		return View{}, domain.ErrNotFound
	}
	room := st.Room
	if st.Kind == board.StatePending {
		return View{}, &domain.RemoteError{
			Kind:    domain.KindRoomConflict,
			Op:      "dialog.open",
			Message: "Room " + room.Number + " is still updating. Wait a moment and try again.",
		}
	}

	if err := actionmenu.Check(room, domain.UserRole(id.Role), kind); err != nil {
		k := domain.KindRoomConflict
		if errors.Is(err, domain.ErrForbidden) {
			k = domain.KindForbidden
		}
		return View{}, &domain.RemoteError{
			Kind:    k,
			Op:      "dialog.open",
			Message: kind.String() + " is not available for room " + room.Number,
			Err:     err,
		}
	}

	cfg, err := s.hotel.Get(ctx, id.TenantID)
	if err != nil {
		return View{}, err
	}

	c := &Controller{
		id:       uuid.New(),
		tenantID: id.TenantID,
		userID:   id.UserID,
		kind:     kind,
		action:   action,
		room:     room,
		env: frontdesk.PreviewEnv{
			Settings: cfg.Tax,
			Room: func(target uuid.UUID) (domain.Room, bool) {
				return findRoom(states, target)
			},
		},
		form:  action.NewForm(room),
		phase: PhaseOpen,
	}
	c.refreshPreview(s.clock.Now())
	s.open.add(c)

	s.log.InfoContext(ctx, "dialog opened",
		slog.String("dialog_id", c.id.String()),
		slog.String("kind", kind.String()),
		slog.String("room_id", roomID.String()),
	)

	return c.view(), nil
}

// Get returns the current state of a dialog.
func (s *Service) Get(ctx context.Context, dialogID uuid.UUID) (View, error) {
	c, err := s.lookup(ctx, dialogID)
	if err != nil {
		return View{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view(), nil
}

// Close discards a dialog. A dialog cannot be closed while it is submitting.
func (s *Service) Close(ctx context.Context, dialogID uuid.UUID) error {
	c, err := s.lookup(ctx, dialogID)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == PhaseProcessing {
		return busy("dialog.close")
	}
	c.phase = PhaseClosed
	s.open.remove(dialogID)
	return nil
}

func findState(states []board.RoomState, roomID uuid.UUID) (board.RoomState, bool) {
	for _, st := range states {
		if st.Room.ID == roomID {
			return st, true
		}
	}
	return board.RoomState{}, false
}

func findRoom(states []board.RoomState, roomID uuid.UUID) (domain.Room, bool) {
	st, ok := findState(states, roomID)
	return st.Room, ok
}
