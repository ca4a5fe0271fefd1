package board

import (
	"time"

	"github.com/google/uuid"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

type pendingEntry struct {
	room   domain.Room
	action domain.ActionKind
	since  time.Time
}

// ApplyPending records optimistic projections of rooms changed by an action.
// They replace the backend view until a refetch confirms it or they expire.
func (s *Service) ApplyPending(tenantID uuid.UUID, action domain.ActionKind, rooms ...domain.Room) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	byRoom := s.pending[tenantID]
	if byRoom == nil {
		byRoom = make(map[uuid.UUID]pendingEntry)
		s.pending[tenantID] = byRoom
	}
	for _, r := range rooms {
		byRoom[r.ID] = pendingEntry{room: r, action: action, since: now}
	}
}

// overlay turns resolved rooms into tiles, substituting live pending entries.
func (s *Service) overlay(tenantID uuid.UUID, rooms []domain.Room, now time.Time) []RoomState {
	s.mu.Lock()
	defer s.mu.Unlock()

	byRoom := s.pending[tenantID]
	out := make([]RoomState, len(rooms))
	for i, r := range rooms {
		out[i] = RoomState{Kind: StateConfirmed, Room: r}

		e, ok := byRoom[r.ID]
		if !ok {
			continue
		}
		if now.Sub(e.since) > s.settings.PendingTTL {
			delete(byRoom, r.ID)
			continue
		}
		since := e.since
		out[i] = RoomState{Kind: StatePending, Room: e.room, PendingAction: e.action, Since: &since}
	}
	if len(byRoom) == 0 {
		delete(s.pending, tenantID)
	}
	return out
}

// confirm drops pending entries recorded at or before t.
func (s *Service) confirm(tenantID uuid.UUID, t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byRoom := s.pending[tenantID]
	for id, e := range byRoom {
		if !e.since.After(t) {
			delete(byRoom, id)
		}
	}
	if len(byRoom) == 0 {
		delete(s.pending, tenantID)
	}
}

// PendingCount returns the number of unconfirmed tiles of a tenant.
func (s *Service) PendingCount(tenantID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending[tenantID])
}
