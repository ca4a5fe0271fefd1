package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProcedureResult is the JSON payload returned by backend procedures.
type ProcedureResult struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Code    string     `json:"code,omitempty"`
	FolioID *uuid.UUID `json:"folio_id,omitempty"`
}

// CheckInRequest is the argument of the atomic check-in procedure.
type CheckInRequest struct {
	TenantID       uuid.UUID
	ReservationID  uuid.UUID
	RoomID         uuid.UUID
	Guest          *GuestRef
	InitialCharges []InitialCharge
	PerformedBy    uuid.UUID
}

// CancelRequest is the argument of the atomic cancellation procedure.
type CancelRequest struct {
	TenantID      uuid.UUID
	ReservationID uuid.UUID
	CancelledBy   uuid.UUID
	Reason        string
	RefundAmount  *decimal.Decimal
	Notes         string
	PaymentAction PaymentAction
}

// ReservationChanges is a partial update of a reservation. Nil fields are kept.
type ReservationChanges struct {
	GuestName   *string
	GuestPhone  *string
	GuestEmail  *string
	CheckIn     *time.Time
	CheckOut    *time.Time
	TotalAmount *decimal.Decimal
}

// IsEmpty reports whether no field is set.
func (c ReservationChanges) IsEmpty() bool {
	return c.GuestName == nil && c.GuestPhone == nil && c.GuestEmail == nil &&
		c.CheckIn == nil && c.CheckOut == nil && c.TotalAmount == nil
}
