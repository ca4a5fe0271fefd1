package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HotelConfig holds the owner-editable settings of a tenant.
type HotelConfig struct {
	TenantID     uuid.UUID   `json:"tenant_id"`
	HotelName    string      `json:"hotel_name"`
	Address      string      `json:"address"`
	Phone        string      `json:"phone"`
	Email        string      `json:"email"`
	Currency     string      `json:"currency"`
	Timezone     string      `json:"timezone"`
	CheckInTime  string      `json:"check_in_time"`
	CheckOutTime string      `json:"check_out_time"`
	LogoURL      string      `json:"logo_url,omitempty"`
	Tax          TaxSettings `json:"tax"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// TaxSettings drives the tax preview. Rates are percentages.
type TaxSettings struct {
	VATRate                decimal.Decimal `json:"vat_rate"`
	ServiceChargeRate      decimal.Decimal `json:"service_charge_rate"`
	VATInclusive           bool            `json:"vat_inclusive"`
	ServiceChargeInclusive bool            `json:"service_charge_inclusive"`
	VATApplicableTo        []ChargeType    `json:"vat_applicable_to"`
	ServiceApplicableTo    []ChargeType    `json:"service_applicable_to"`
}

// VATApplies reports whether VAT is levied on the charge type. An empty list applies to all.
func (t TaxSettings) VATApplies(ct ChargeType) bool {
	return len(t.VATApplicableTo) == 0 || slices.Contains(t.VATApplicableTo, ct)
}

// ServiceApplies reports whether the service charge is levied on the charge type.
func (t TaxSettings) ServiceApplies(ct ChargeType) bool {
	return len(t.ServiceApplicableTo) == 0 || slices.Contains(t.ServiceApplicableTo, ct)
}

// DefaultHotelConfig returns the settings a fresh tenant starts with.
func DefaultHotelConfig(tenantID uuid.UUID) HotelConfig {
	return HotelConfig{
		TenantID:     tenantID,
		Currency:     "NGN",
		Timezone:     "Africa/Lagos",
		CheckInTime:  "14:00",
		CheckOutTime: "12:00",
		Tax: TaxSettings{
			VATRate:           decimal.RequireFromString("7.5"),
			ServiceChargeRate: decimal.NewFromInt(10),
		},
	}
}

// Tenant is a hotel account.
type Tenant struct {
	ID        uuid.UUID `db:"id"         json:"id"`
	Name      string    `db:"name"       json:"name"`
	OwnerID   uuid.UUID `db:"owner_id"   json:"owner_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
