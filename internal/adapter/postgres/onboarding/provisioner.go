package onboarding

import (
	"context"

	"github.com/google/uuid"

	"github.com/waspershola/africa-lodge-90-sub002/internal/adapter/postgres"
	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

// Provisioner creates the records of a new tenant. Callers run it inside
// RunInTx so a failed step leaves nothing behind.
type Provisioner struct {
	db postgres.Querier
}

// NewProvisioner creates a new Provisioner.
func NewProvisioner(db postgres.Querier) *Provisioner {
	return &Provisioner{db: db}
}

// CreateTenant inserts the tenant.
func (p *Provisioner) CreateTenant(ctx context.Context, t domain.Tenant) error {
	q := postgres.Builder.
		Insert("tenants").
		Columns("id", "name", "owner_id", "created_at").
		Values(t.ID, t.Name, t.OwnerID, t.CreatedAt)

	_, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, p.db), q, "tenants.create")
	return err
}

// AddMember grants a user a role in the tenant.
func (p *Provisioner) AddMember(ctx context.Context, tenantID, userID uuid.UUID, role domain.UserRole) error {
	q := postgres.Builder.
		Insert("tenant_members").
		Columns("tenant_id", "user_id", "role").
		Values(tenantID, userID, role.String())

	_, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, p.db), q, "tenant_members.create")
	return err
}

// CreateRoomTypes inserts the room types in one statement.
func (p *Provisioner) CreateRoomTypes(ctx context.Context, types []domain.RoomType) error {
	if len(types) == 0 {
		return nil
	}
	q := postgres.Builder.
		Insert("room_types").
		Columns("id", "tenant_id", "name", "base_rate", "capacity")
	for _, rt := range types {
		q = q.Values(rt.ID, rt.TenantID, rt.Name, rt.BaseRate, rt.Capacity)
	}

	_, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, p.db), q, "room_types.create")
	return err
}

// CreateRooms inserts the rooms in one statement. New rooms are available.
func (p *Provisioner) CreateRooms(ctx context.Context, rooms []domain.RoomSeed) error {
	if len(rooms) == 0 {
		return nil
	}
	q := postgres.Builder.
		Insert("rooms").
		Columns("id", "tenant_id", "room_type_id", "room_number", "floor", "status")
	for _, r := range rooms {
		q = q.Values(r.ID, r.TenantID, r.RoomTypeID, r.Number, r.Floor, domain.RoomStatusAvailable.String())
	}

	_, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, p.db), q, "rooms.create")
	return err
}
