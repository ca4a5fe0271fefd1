package hotelconfig

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
	"github.com/waspershola/africa-lodge-90-sub002/pkg/ctxutil"
)

// Update replaces the hotel configuration. Only owners and managers may edit it.
func (s *Service) Update(ctx context.Context, input UpdateInput) (domain.HotelConfig, error) {
	id, err := privileged(ctx)
	if err != nil {
		return domain.HotelConfig{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.HotelConfig{}, err
	}

	prev, err := s.Get(ctx, id.TenantID)
	if err != nil {
		return domain.HotelConfig{}, err
	}

	next := domain.HotelConfig{
		TenantID:     id.TenantID,
		HotelName:    strings.TrimSpace(input.HotelName),
		Address:      strings.TrimSpace(input.Address),
		Phone:        strings.TrimSpace(input.Phone),
		Email:        strings.TrimSpace(input.Email),
		Currency:     input.Currency,
		Timezone:     input.Timezone,
		CheckInTime:  input.CheckInTime,
		CheckOutTime: input.CheckOutTime,
		LogoURL:      prev.LogoURL,
		Tax:          input.Tax,
		UpdatedAt:    s.clock.Now(),
	}

	var saved domain.HotelConfig
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var upsertErr error
		saved, upsertErr = s.hotels.Upsert(txCtx, next)
		if upsertErr != nil {
			return fmt.Errorf("upsert hotel config: %w", upsertErr)
		}

		if auditErr := s.audit.Log(txCtx, s.auditEntry(ctx, id, "update_hotel_config",
			"Hotel configuration updated", changes(prev, saved))); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return domain.HotelConfig{}, err
	}

	s.log.InfoContext(ctx, "hotel config updated",
		slog.String("tenant_id", id.TenantID.String()),
		slog.String("user_id", id.UserID.String()),
	)

	return saved, nil
}

func (s *Service) auditEntry(ctx context.Context, id ctxutil.Identity, action, description string, meta map[string]any) domain.AuditEntry {
	tenantID := id.TenantID
	return domain.AuditEntry{
		ID:           uuid.New(),
		TenantID:     id.TenantID,
		ActorID:      id.UserID,
		TerminalID:   ctxutil.TerminalIDFromCtx(ctx),
		Action:       action,
		ResourceType: domain.ResourceHotelConfig,
		ResourceID:   &tenantID,
		Description:  description,
		Metadata:     meta,
		CreatedAt:    s.clock.Now(),
	}
}

// changes lists the edited top-level fields with their old and new values.
func changes(prev, next domain.HotelConfig) map[string]any {
	out := make(map[string]any)
	diff := func(field string, old, cur any) {
		if old != cur {
			out[field] = map[string]any{"old": old, "new": cur}
		}
	}
	diff("hotel_name", prev.HotelName, next.HotelName)
	diff("address", prev.Address, next.Address)
	diff("phone", prev.Phone, next.Phone)
	diff("email", prev.Email, next.Email)
	diff("currency", prev.Currency, next.Currency)
	diff("timezone", prev.Timezone, next.Timezone)
	diff("check_in_time", prev.CheckInTime, next.CheckInTime)
	diff("check_out_time", prev.CheckOutTime, next.CheckOutTime)
	diff("vat_rate", prev.Tax.VATRate.String(), next.Tax.VATRate.String())
	diff("service_charge_rate", prev.Tax.ServiceChargeRate.String(), next.Tax.ServiceChargeRate.String())
	diff("vat_inclusive", prev.Tax.VATInclusive, next.Tax.VATInclusive)
	diff("service_charge_inclusive", prev.Tax.ServiceChargeInclusive, next.Tax.ServiceChargeInclusive)
	return out
}
