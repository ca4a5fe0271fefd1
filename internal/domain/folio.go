package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FolioRow is a guest folio as stored by the backend.
type FolioRow struct {
	ID            uuid.UUID       `json:"id"             db:"id"`
	TenantID      uuid.UUID       `json:"tenant_id"      db:"tenant_id"`
	ReservationID uuid.UUID       `json:"reservation_id" db:"reservation_id"`
	FolioNumber   string          `json:"folio_number"   db:"folio_number"`
	Balance       decimal.Decimal `json:"balance"        db:"balance"`
	TotalCharges  decimal.Decimal `json:"total_charges"  db:"total_charges"`
	TotalPayments decimal.Decimal `json:"total_payments" db:"total_payments"`
	Status        FolioStatus     `json:"status"         db:"status"`
}

// Summary returns the grid view of the folio.
func (f FolioRow) Summary() *FolioSummary {
	return NewFolioSummary(f.ID, f.Balance)
}

// FolioCharge is a posted charge. Amount fields match the tax preview.
type FolioCharge struct {
	ID            uuid.UUID       `db:"id"`
	TenantID      uuid.UUID       `db:"tenant_id"`
	FolioID       uuid.UUID       `db:"folio_id"`
	ChargeType    ChargeType      `db:"charge_type"`
	Description   string          `db:"description"`
	BaseAmount    decimal.Decimal `db:"base_amount"`
	VATAmount     decimal.Decimal `db:"vat_amount"`
	ServiceCharge decimal.Decimal `db:"service_charge"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	PostedBy      uuid.UUID       `db:"posted_by"`
	CreatedAt     time.Time       `db:"created_at"`
}

// Payment is money received against a folio.
type Payment struct {
	ID        uuid.UUID       `db:"id"`
	TenantID  uuid.UUID       `db:"tenant_id"`
	FolioID   uuid.UUID       `db:"folio_id"`
	Amount    decimal.Decimal `db:"amount"`
	Method    PaymentMethod   `db:"payment_method"`
	Status    string          `db:"status"`
	Reference string          `db:"reference"`
	CreatedBy uuid.UUID       `db:"created_by"`
	CreatedAt time.Time       `db:"created_at"`
}

// PaymentStatusCompleted is the only status this service writes.
const PaymentStatusCompleted = "completed"

// InitialCharge is posted by the atomic check-in procedure.
type InitialCharge struct {
	ChargeType    ChargeType      `json:"charge_type"`
	Description   string          `json:"description"`
	BaseAmount    decimal.Decimal `json:"base_amount"`
	VATAmount     decimal.Decimal `json:"vat_amount"`
	ServiceCharge decimal.Decimal `json:"service_charge"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}
