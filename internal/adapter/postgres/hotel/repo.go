// Package hotel stores the per-tenant hotel configuration.
package hotel

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/waspershola/africa-lodge-90-sub002/internal/adapter/postgres"
	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

const table = "hotel_configs"

var columns = []string{
	"tenant_id", "hotel_name", "address", "phone", "email", "currency", "timezone",
	"check_in_time", "check_out_time", "logo_url", "vat_rate", "service_charge_rate",
	"vat_inclusive", "service_charge_inclusive", "vat_applicable_to", "service_applicable_to", "updated_at",
}

type record struct {
	TenantID               uuid.UUID       `db:"tenant_id"`
	HotelName              string          `db:"hotel_name"`
	Address                string          `db:"address"`
	Phone                  string          `db:"phone"`
	Email                  string          `db:"email"`
	Currency               string          `db:"currency"`
	Timezone               string          `db:"timezone"`
	CheckInTime            string          `db:"check_in_time"`
	CheckOutTime           string          `db:"check_out_time"`
	LogoURL                string          `db:"logo_url"`
	VATRate                decimal.Decimal `db:"vat_rate"`
	ServiceChargeRate      decimal.Decimal `db:"service_charge_rate"`
	VATInclusive           bool            `db:"vat_inclusive"`
	ServiceChargeInclusive bool            `db:"service_charge_inclusive"`
	VATApplicableTo        []string        `db:"vat_applicable_to"`
	ServiceApplicableTo    []string        `db:"service_applicable_to"`
	UpdatedAt              time.Time       `db:"updated_at"`
}

func (rec record) toDomain() domain.HotelConfig {
	return domain.HotelConfig{
		TenantID:     rec.TenantID,
		HotelName:    rec.HotelName,
		Address:      rec.Address,
		Phone:        rec.Phone,
		Email:        rec.Email,
		Currency:     rec.Currency,
		Timezone:     rec.Timezone,
		CheckInTime:  rec.CheckInTime,
		CheckOutTime: rec.CheckOutTime,
		LogoURL:      rec.LogoURL,
		Tax: domain.TaxSettings{
			VATRate:                rec.VATRate,
			ServiceChargeRate:      rec.ServiceChargeRate,
			VATInclusive:           rec.VATInclusive,
			ServiceChargeInclusive: rec.ServiceChargeInclusive,
			VATApplicableTo:        toChargeTypes(rec.VATApplicableTo),
			ServiceApplicableTo:    toChargeTypes(rec.ServiceApplicableTo),
		},
		UpdatedAt: rec.UpdatedAt,
	}
}

func toChargeTypes(in []string) []domain.ChargeType {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.ChargeType, len(in))
	for i, s := range in {
		out[i] = domain.ChargeType(s)
	}
	return out
}

func fromChargeTypes(in []domain.ChargeType) []string {
	out := make([]string, len(in))
	for i, ct := range in {
		out[i] = ct.String()
	}
	return out
}

// Repo provides hotel configuration persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new hotel configuration repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Get returns the configuration of a tenant. A tenant that never saved one
// yields a not_found error.
func (r *Repo) Get(ctx context.Context, tenantID uuid.UUID) (domain.HotelConfig, error) {
	q := postgres.Builder.
		Select(columns...).
		From(table).
		Where("tenant_id = ?", tenantID)

	rec, err := postgres.Get[record](ctx, postgres.QuerierFromCtx(ctx, r.db), q, "hotel_configs.get")
	if err != nil {
		return domain.HotelConfig{}, err
	}
	return rec.toDomain(), nil
}

// Upsert writes every field of cfg and returns the stored row.
func (r *Repo) Upsert(ctx context.Context, cfg domain.HotelConfig) (domain.HotelConfig, error) {
	t := cfg.Tax
	q := postgres.Builder.
		Insert(table).
		Columns(columns[:len(columns)-1]...).
		Values(cfg.TenantID, cfg.HotelName, cfg.Address, cfg.Phone, cfg.Email, cfg.Currency, cfg.Timezone,
			cfg.CheckInTime, cfg.CheckOutTime, cfg.LogoURL, t.VATRate, t.ServiceChargeRate,
			t.VATInclusive, t.ServiceChargeInclusive, fromChargeTypes(t.VATApplicableTo), fromChargeTypes(t.ServiceApplicableTo)).
		Suffix(`ON CONFLICT (tenant_id) DO UPDATE SET
			hotel_name = EXCLUDED.hotel_name,
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			currency = EXCLUDED.currency,
			timezone = EXCLUDED.timezone,
			check_in_time = EXCLUDED.check_in_time,
			check_out_time = EXCLUDED.check_out_time,
			logo_url = EXCLUDED.logo_url,
			vat_rate = EXCLUDED.vat_rate,
			service_charge_rate = EXCLUDED.service_charge_rate,
			vat_inclusive = EXCLUDED.vat_inclusive,
			service_charge_inclusive = EXCLUDED.service_charge_inclusive,
			vat_applicable_to = EXCLUDED.vat_applicable_to,
			service_applicable_to = EXCLUDED.service_applicable_to,
			updated_at = now()`).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	rec, err := postgres.Get[record](ctx, postgres.QuerierFromCtx(ctx, r.db), q, "hotel_configs.upsert")
	if err != nil {
		return domain.HotelConfig{}, err
	}
	return rec.toDomain(), nil
}

// SetLogo stores the public logo URL, creating the row with defaults if needed.
func (r *Repo) SetLogo(ctx context.Context, tenantID uuid.UUID, logoURL string) error {
	q := postgres.Builder.
		Insert(table).
		Columns("tenant_id", "logo_url").
		Values(tenantID, logoURL).
		Suffix("ON CONFLICT (tenant_id) DO UPDATE SET logo_url = EXCLUDED.logo_url, updated_at = now()")

	_, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q, "hotel_configs.set_logo")
	return err
}
