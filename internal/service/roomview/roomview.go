// Package roomview projects raw backend room rows into the display model
// rendered on the front-desk grid. Every function here is pure.
package roomview

import (
	"math"
	"time"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

// ResolveStatus derives the display status of a room.
//
// Precedence: a checked-in reservation makes the room occupied, a confirmed
// one makes it reserved, otherwise the persisted status is mapped through the
// lookup table. An occupied room whose checkout has passed is an overstay.
func ResolveStatus(row domain.RoomRow, now time.Time) domain.RoomStatus {
	var status domain.RoomStatus
	res := row.CurrentReservation

	switch {
	case res != nil && res.Status == domain.ReservationStatusCheckedIn:
		status = domain.RoomStatusOccupied
	case res != nil && res.Status == domain.ReservationStatusConfirmed:
		status = domain.RoomStatusReserved
	default:
		status = domain.RoomStatusFromPersisted(row.Status)
	}

	if status == domain.RoomStatusOccupied && res != nil {
		return OccupiedStatus(res.CheckOut, now)
	}
	return status
}

// OccupiedStatus is the status of an occupied room whose stay ends at
// checkOut: overstay once checkout has passed. A zero checkout never overstays.
func OccupiedStatus(checkOut, now time.Time) domain.RoomStatus {
	if !checkOut.IsZero() && checkOut.Before(now) {
		return domain.RoomStatusOverstay
	}
	return domain.RoomStatusOccupied
}

// Resolve normalizes a raw row into a Room.
func Resolve(row domain.RoomRow, now time.Time) domain.Room {
	room := domain.Room{
		ID:              row.ID,
		TenantID:        row.TenantID,
		Number:          row.Number,
		Type:            row.TypeName,
		Rate:            row.Rate,
		Floor:           row.Floor,
		Status:          ResolveStatus(row, now),
		PersistedStatus: row.Status,
	}

	if res := row.CurrentReservation; res != nil && res.Status.IsActive() {
		room.Guest = res.Guest()
		room.Reservation = res.Ref()
		checkIn, checkOut := res.CheckIn, res.CheckOut
		room.CheckIn = &checkIn
		room.CheckOut = &checkOut
	}

	if row.Folio != nil {
		room.Folio = row.Folio.Summary()
	}

	room.Alerts = alerts(row, room)
	return room
}

// ResolveAll resolves every row, keeping input order.
func ResolveAll(rows []domain.RoomRow, now time.Time) []domain.Room {
	rooms := make([]domain.Room, len(rows))
	for i, row := range rows {
		rooms[i] = Resolve(row, now)
	}
	return rooms
}

// OverstayHours returns the whole hours, rounded up, since the room's checkout.
// It is zero when the checkout has not passed or is unknown.
func OverstayHours(room domain.Room, now time.Time) int {
	if room.CheckOut == nil || !room.CheckOut.Before(now) {
		return 0
	}
	return int(math.Ceil(now.Sub(*room.CheckOut).Hours()))
}

func alerts(row domain.RoomRow, room domain.Room) domain.RoomAlerts {
	persisted := domain.RoomStatusFromPersisted(row.Status)

	a := domain.RoomAlerts{
		Cleaning:    persisted == domain.RoomStatusDirty,
		Maintenance: persisted == domain.RoomStatusMaintenance || persisted == domain.RoomStatusOutOfService,
	}
	if room.Folio != nil {
		a.DepositPending = !room.Folio.IsPaid && room.Folio.Balance.IsPositive()
	}
	if room.HasActiveReservation() {
		a.IDMissing = room.Guest == nil || room.Guest.IDNumber == ""
	}
	return a
}
