package board

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/waspershola/africa-lodge-90-sub002/internal/cache"
	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
	"github.com/waspershola/africa-lodge-90-sub002/internal/service/roomview"
	"github.com/waspershola/africa-lodge-90-sub002/pkg/ctxutil"
)

// StateKind tells whether a room tile shows backend state or an optimistic projection.
type StateKind string

const (
	StatePending   StateKind = "pending"
	StateConfirmed StateKind = "confirmed"
)

// RoomState is one tile of the board.
type RoomState struct {
	Kind          StateKind         `json:"kind"`
	Room          domain.Room       `json:"room"`
	PendingAction domain.ActionKind `json:"pending_action,omitempty"`
	Since         *time.Time        `json:"since,omitempty"`
}

// Rooms returns the board of the caller's tenant in backend order.
func (s *Service) Rooms(ctx context.Context) ([]RoomState, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.TenantRooms(ctx, id.TenantID)
}

// Room returns a single tile of the caller's tenant.
func (s *Service) Room(ctx context.Context, roomID uuid.UUID) (RoomState, error) {
	states, err := s.Rooms(ctx)
	if err != nil {
		return RoomState{}, err
	}
	for _, st := range states {
		if st.Room.ID == roomID {
			return st, nil
		}
	}
	return RoomState{}, fmt.Errorf("room %s: %w", roomID, domain.ErrNotFound)
}

// TenantRooms returns the board of a tenant.
func (s *Service) TenantRooms(ctx context.Context, tenantID uuid.UUID) ([]RoomState, error) {
	rows, err := s.roomRows(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if err := s.fillFolios(ctx, tenantID, rows, false); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	return s.overlay(tenantID, roomview.ResolveAll(rows, now), now), nil
}

// Reservations lists reservations overlapping the window. A zero window means
// the configured default, which is the only one cached.
func (s *Service) Reservations(ctx context.Context, w domain.ReservationWindow) ([]domain.ReservationRow, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if w != (domain.ReservationWindow{}) {
		if !w.To.After(w.From) {
			return nil, domain.NewValidationError("to", "must be after from")
		}
		res, err := s.reservations.ListWindow(ctx, id.TenantID, w)
		if err != nil {
			return nil, fmt.Errorf("list reservations: %w", err)
		}
		return res, nil
	}

	key := cache.Key(id.TenantID, cache.Reservations)
	var res []domain.ReservationRow
	if s.cached(ctx, key, &res) {
		return res, nil
	}
	return s.loadReservations(ctx, id.TenantID)
}

func (s *Service) defaultWindow() domain.ReservationWindow {
	from := s.clock.Now().UTC().Truncate(24 * time.Hour)
	return domain.ReservationWindow{From: from, To: from.Add(s.settings.ReservationWindow)}
}

func (s *Service) roomRows(ctx context.Context, tenantID uuid.UUID) ([]domain.RoomRow, error) {
	var rows []domain.RoomRow
	if s.cached(ctx, cache.Key(tenantID, cache.Rooms), &rows) {
		return rows, nil
	}
	return s.loadRooms(ctx, tenantID)
}

func (s *Service) loadRooms(ctx context.Context, tenantID uuid.UUID) ([]domain.RoomRow, error) {
	rows, err := s.rooms.List(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	s.store(ctx, cache.Key(tenantID, cache.Rooms), rows)
	return rows, nil
}

func (s *Service) loadReservations(ctx context.Context, tenantID uuid.UUID) ([]domain.ReservationRow, error) {
	res, err := s.reservations.ListWindow(ctx, tenantID, s.defaultWindow())
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	s.store(ctx, cache.Key(tenantID, cache.Reservations), res)
	return res, nil
}

// fillFolios attaches the folio of each room's current reservation. fresh
// skips the cached folios.
func (s *Service) fillFolios(ctx context.Context, tenantID uuid.UUID, rows []domain.RoomRow, fresh bool) error {
	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		if r.CurrentReservation != nil {
			ids = append(ids, r.CurrentReservation.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	key := cache.Key(tenantID, cache.Folios)
	var folios map[uuid.UUID]domain.FolioRow
	if fresh || !s.cached(ctx, key, &folios) {
		var err error
		folios, err = s.folios.FoliosByReservation(ctx, tenantID, ids)
		if err != nil {
			return fmt.Errorf("load folios: %w", err)
		}
		s.store(ctx, key, folios)
	}

	for i := range rows {
		res := rows[i].CurrentReservation
		if res == nil {
			continue
		}
		if f, ok := folios[res.ID]; ok {
			rows[i].Folio = &f
		}
	}
	return nil
}
