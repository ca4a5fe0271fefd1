package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReservationRow is a reservation as stored by the backend.
type ReservationRow struct {
	ID            uuid.UUID         `json:"id"             db:"id"`
	TenantID      uuid.UUID         `json:"tenant_id"      db:"tenant_id"`
	RoomID        *uuid.UUID        `json:"room_id"        db:"room_id"`
	GuestName     string            `json:"guest_name"     db:"guest_name"`
	GuestPhone    string            `json:"guest_phone"    db:"guest_phone"`
	GuestEmail    string            `json:"guest_email"    db:"guest_email"`
	GuestIDNumber string            `json:"guest_id_number" db:"guest_id_number"`
	CheckIn       time.Time         `json:"check_in_date"  db:"check_in_date"`
	CheckOut      time.Time         `json:"check_out_date" db:"check_out_date"`
	Status        ReservationStatus `json:"status"         db:"status"`
	Adults        int               `json:"adults"         db:"adults"`
	RoomRate      decimal.Decimal   `json:"room_rate"      db:"room_rate"`
	TotalAmount   decimal.Decimal   `json:"total_amount"   db:"total_amount"`
	CreatedBy     *uuid.UUID        `json:"created_by"     db:"created_by"`
	CreatedAt     time.Time         `json:"created_at"     db:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"     db:"updated_at"`
}

// Guest returns the guest fields as a reference.
func (r ReservationRow) Guest() *GuestRef {
	if r.GuestName == "" {
		return nil
	}
	return &GuestRef{Name: r.GuestName, Phone: r.GuestPhone, Email: r.GuestEmail, IDNumber: r.GuestIDNumber}
}

// Ref returns the reservation slice carried by a Room.
func (r ReservationRow) Ref() *ReservationRef {
	return &ReservationRef{
		ID:          r.ID,
		Status:      r.Status,
		CheckIn:     r.CheckIn,
		CheckOut:    r.CheckOut,
		TotalAmount: r.TotalAmount,
	}
}

// StayNights returns the number of nights between two dates, rounding partial days up.
func StayNights(from, to time.Time) int {
	d := to.Sub(from)
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Hours() / 24))
}

// ReservationWindow bounds the reservations shown on the board.
type ReservationWindow struct {
	From time.Time
	To   time.Time
}
