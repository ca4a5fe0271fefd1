package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RoomRow is a room as the backend returns it, with its current
// reservation and folio nested when present.
type RoomRow struct {
	ID                 uuid.UUID       `json:"id"`
	TenantID           uuid.UUID       `json:"tenant_id"`
	Number             string          `json:"room_number"`
	TypeName           string          `json:"room_type"`
	Rate               decimal.Decimal `json:"rate"`
	Floor              int             `json:"floor"`
	Status             string          `json:"status"`
	UpdatedAt          time.Time       `json:"updated_at"`
	CurrentReservation *ReservationRow `json:"current_reservation,omitempty"`
	Folio              *FolioRow       `json:"folio,omitempty"`
}

// Room is the normalized, display-oriented projection of a RoomRow.
type Room struct {
	ID              uuid.UUID       `json:"id"`
	TenantID        uuid.UUID       `json:"tenant_id"`
	Number          string          `json:"number"`
	Type            string          `json:"type"`
	Rate            decimal.Decimal `json:"rate"`
	Floor           int             `json:"floor"`
	Status          RoomStatus      `json:"status"`
	PersistedStatus string          `json:"persisted_status"`
	Guest           *GuestRef       `json:"guest,omitempty"`
	Reservation     *ReservationRef `json:"reservation,omitempty"`
	CheckIn         *time.Time      `json:"check_in,omitempty"`
	CheckOut        *time.Time      `json:"check_out,omitempty"`
	Folio           *FolioSummary   `json:"folio,omitempty"`
	Alerts          RoomAlerts      `json:"alerts"`
}

// HasActiveReservation reports whether the room carries a confirmed or checked-in reservation.
func (r Room) HasActiveReservation() bool {
	return r.Reservation != nil && r.Reservation.Status.IsActive()
}

// GuestRef identifies the guest currently attached to a room.
type GuestRef struct {
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	IDNumber string `json:"id_number,omitempty"`
}

// ReservationRef is the slice of a reservation that a Room carries.
type ReservationRef struct {
	ID          uuid.UUID         `json:"id"`
	Status      ReservationStatus `json:"status"`
	CheckIn     time.Time         `json:"check_in"`
	CheckOut    time.Time         `json:"check_out"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
}

// FolioSummary is the balance view of a folio shown on the room grid.
type FolioSummary struct {
	ID      uuid.UUID       `json:"id"`
	Balance decimal.Decimal `json:"balance"`
	IsPaid  bool            `json:"is_paid"`
}

// NewFolioSummary builds a summary; a folio is paid when nothing is owed.
func NewFolioSummary(id uuid.UUID, balance decimal.Decimal) *FolioSummary {
	return &FolioSummary{ID: id, Balance: balance, IsPaid: !balance.IsPositive()}
}

// RoomAlerts are the badges rendered on a room tile.
type RoomAlerts struct {
	Cleaning       bool `json:"cleaning"`
	Maintenance    bool `json:"maintenance"`
	DepositPending bool `json:"deposit_pending"`
	IDMissing      bool `json:"id_missing"`
}

// RoomType is a sellable category of rooms with a base rate.
type RoomType struct {
	ID       uuid.UUID       `json:"id"        db:"id"`
	TenantID uuid.UUID       `json:"tenant_id" db:"tenant_id"`
	Name     string          `json:"name"      db:"name"`
	BaseRate decimal.Decimal `json:"base_rate" db:"base_rate"`
	Capacity int             `json:"capacity"  db:"capacity"`
}

// HousekeepingTask is a cleaning, maintenance or inspection job for a room.
type HousekeepingTask struct {
	ID          uuid.UUID    `db:"id"`
	TenantID    uuid.UUID    `db:"tenant_id"`
	RoomID      uuid.UUID    `db:"room_id"`
	TaskType    TaskType     `db:"task_type"`
	Priority    TaskPriority `db:"priority"`
	Status      string       `db:"status"`
	Description string       `db:"description"`
	CreatedBy   uuid.UUID    `db:"created_by"`
	CreatedAt   time.Time    `db:"created_at"`
}

// RoomSeed is a room created by the onboarding wizard.
type RoomSeed struct {
	ID         uuid.UUID `db:"id"`
	TenantID   uuid.UUID `db:"tenant_id"`
	RoomTypeID uuid.UUID `db:"room_type_id"`
	Number     string    `db:"room_number"`
	Floor      int       `db:"floor"`
}
