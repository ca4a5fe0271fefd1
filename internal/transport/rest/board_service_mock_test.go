
package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
	"github.com/waspershola/africa-lodge-90-sub002/internal/service/board"
)

var _ boardService = &boardServiceMock{}

type boardServiceMock struct {
	RoomsFunc        func(ctx context.Context) ([]board.RoomState, error)
	RoomFunc         func(ctx context.Context, roomID uuid.UUID) (board.RoomState, error)
	ReservationsFunc func(ctx context.Context, w domain.ReservationWindow) ([]domain.ReservationRow, error)

	calls struct {
		Rooms []struct {
			Ctx context.Context
		}
		Room []struct {
			Ctx    context.Context
			RoomID uuid.UUID
		}
		Reservations []struct {
			Ctx context.Context
			W   domain.ReservationWindow
		}
	}
	lockRooms        sync.RWMutex
	lockRoom         sync.RWMutex
	lockReservations sync.RWMutex
}

func (mock *boardServiceMock) Rooms(ctx context.Context) ([]board.RoomState, error) {
	if mock.RoomsFunc == nil {
		panic("boardServiceMock.RoomsFunc: method is nil but boardService.Rooms was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockRooms.Lock()
	mock.calls.Rooms = append(mock.calls.Rooms, callInfo)
	mock.lockRooms.Unlock()
	return mock.RoomsFunc(ctx)
}

func (mock *boardServiceMock) RoomsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockRooms.RLock()
	calls = mock.calls.Rooms
	mock.lockRooms.RUnlock()
	return calls
}

func (mock *boardServiceMock) Room(ctx context.Context, roomID uuid.UUID) (board.RoomState, error) {
	if mock.RoomFunc == nil {
		panic("boardServiceMock.RoomFunc: method is nil but boardService.Room was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		RoomID uuid.UUID
	}{
		Ctx:    ctx,
		RoomID: roomID,
	}
	mock.lockRoom.Lock()
	mock.calls.Room = append(mock.calls.Room, callInfo)
	mock.lockRoom.Unlock()
	return mock.RoomFunc(ctx, roomID)
}

func (mock *boardServiceMock) RoomCalls() []struct {
	Ctx    context.Context
	RoomID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		RoomID uuid.UUID
	}
	mock.lockRoom.RLock()
	calls = mock.calls.Room
	mock.lockRoom.RUnlock()
	return calls
}

func (mock *boardServiceMock) Reservations(ctx context.Context, w domain.ReservationWindow) ([]domain.ReservationRow, error) {
	if mock.ReservationsFunc == nil {
		panic("boardServiceMock.ReservationsFunc: method is nil but boardService.Reservations was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   domain.ReservationWindow
	}{
		Ctx: ctx,
		W:   w,
	}
	mock.lockReservations.Lock()
	mock.calls.Reservations = append(mock.calls.Reservations, callInfo)
	mock.lockReservations.Unlock()
	return mock.ReservationsFunc(ctx, w)
}

func (mock *boardServiceMock) ReservationsCalls() []struct {
	Ctx context.Context
	W   domain.ReservationWindow
} {
	var calls []struct {
		Ctx context.Context
		W   domain.ReservationWindow
	}
	mock.lockReservations.RLock()
	calls = mock.calls.Reservations
	mock.lockReservations.RUnlock()
	return calls
}
