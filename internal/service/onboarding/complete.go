package onboarding

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
	"github.com/waspershola/africa-lodge-90-sub002/pkg/ctxutil"
)

// Complete creates the hotel from a finished draft: tenant, configuration,
// room types, rooms and the owner membership, all in one transaction. The
// draft is deleted.
func (s *Service) Complete(ctx context.Context) (domain.Tenant, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Tenant{}, domain.ErrUnauthorized
	}

	draft, err := s.load(ctx, userID)
	if err != nil {
		return domain.Tenant{}, err
	}
	if !draft.AllComplete() {
		return domain.Tenant{}, domain.NewValidationError("step", "complete "+draft.FirstIncomplete().String()+" first")
	}

	var (
		profile HotelProfileStep
		types   RoomTypesStep
		rooms   RoomsStep
		tax     TaxStep
	)
	for step, dst := range map[domain.OnboardingStep]any{
		domain.StepHotelProfile: &profile,
		domain.StepRoomTypes:    &types,
		domain.StepRooms:        &rooms,
		domain.StepTaxSettings:  &tax,
	} {
		if err := json.Unmarshal(draft.Data[step], dst); err != nil {
			return domain.Tenant{}, domain.NewValidationError(step.String(), "saved data is unreadable, save the step again")
		}
	}

	now := s.clock.Now()
	tenant := domain.Tenant{ID: uuid.New(), Name: profile.HotelName, OwnerID: userID, CreatedAt: now}
	roomTypes, seeds := plan(tenant.ID, types, rooms)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.tenants.CreateTenant(txCtx, tenant); err != nil {
			return fmt.Errorf("create tenant: %w", err)
		}
		if err := s.tenants.AddMember(txCtx, tenant.ID, userID, domain.UserRoleOwner); err != nil {
			return fmt.Errorf("add owner: %w", err)
		}
		if _, err := s.hotels.Upsert(txCtx, domain.HotelConfig{
			TenantID:     tenant.ID,
			HotelName:    profile.HotelName,
			Address:      profile.Address,
			Phone:        profile.Phone,
			Email:        profile.Email,
			Currency:     profile.Currency,
			Timezone:     profile.Timezone,
			CheckInTime:  profile.CheckInTime,
			CheckOutTime: profile.CheckOutTime,
			Tax:          tax.Settings(),
			UpdatedAt:    now,
		}); err != nil {
			return fmt.Errorf("create hotel config: %w", err)
		}
		if err := s.tenants.CreateRoomTypes(txCtx, roomTypes); err != nil {
			return fmt.Errorf("create room types: %w", err)
		}
		if err := s.tenants.CreateRooms(txCtx, seeds); err != nil {
			return fmt.Errorf("create rooms: %w", err)
		}
		if err := s.drafts.Delete(txCtx, userID); err != nil {
			return fmt.Errorf("delete draft: %w", err)
		}

		tenantID := tenant.ID
		if err := s.audit.Log(txCtx, domain.AuditEntry{
			ID:           uuid.New(),
			TenantID:     tenant.ID,
			ActorID:      userID,
			TerminalID:   ctxutil.TerminalIDFromCtx(ctx),
			Action:       "complete_onboarding",
			ResourceType: domain.ResourceTenant,
			ResourceID:   &tenantID,
			Description:  "Hotel " + tenant.Name + " created",
			Metadata: map[string]any{
				"room_types": len(roomTypes),
				"rooms":      len(seeds),
			},
			CreatedAt: now,
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Tenant{}, err
	}

	s.log.InfoContext(ctx, "onboarding completed",
		slog.String("user_id", userID.String()),
		slog.String("tenant_id", tenant.ID.String()),
		slog.Int("rooms", len(seeds)),
	)

	return tenant, nil
}

// plan assigns ids to the room types and links every room to its type.
func plan(tenantID uuid.UUID, types RoomTypesStep, rooms RoomsStep) ([]domain.RoomType, []domain.RoomSeed) {
	byName := make(map[string]uuid.UUID, len(types.RoomTypes))
	roomTypes := make([]domain.RoomType, 0, len(types.RoomTypes))
	for _, rt := range types.RoomTypes {
		id := uuid.New()
		byName[rt.Name] = id
		roomTypes = append(roomTypes, domain.RoomType{
			ID:       id,
			TenantID: tenantID,
			Name:     rt.Name,
			BaseRate: rt.BaseRate.Round(2),
			Capacity: rt.Capacity,
		})
	}

	seeds := make([]domain.RoomSeed, 0, len(rooms.Rooms))
	for _, r := range rooms.Rooms {
		seeds = append(seeds, domain.RoomSeed{
			ID:         uuid.New(),
			TenantID:   tenantID,
			RoomTypeID: byName[r.RoomType],
			Number:     r.Number,
			Floor:      r.Floor,
		})
	}
	return roomTypes, seeds
}
