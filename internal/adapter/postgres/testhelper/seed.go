package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedTenant creates a tenant with its owner as a member.
func SeedTenant(t *testing.T, pool *pgxpool.Pool) domain.Tenant {
	t.Helper()
	ctx := context.Background()

	tenant := domain.Tenant{
		ID:        uuid.New(),
		Name:      "Test Hotel " + uniqueSuffix(),
		OwnerID:   uuid.New(),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO tenants (id, name, owner_id, created_at) VALUES ($1, $2, $3, $4)`,
		tenant.ID, tenant.Name, tenant.OwnerID, tenant.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTenant insert tenant: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO tenant_members (tenant_id, user_id, role) VALUES ($1, $2, 'OWNER')`,
		tenant.ID, tenant.OwnerID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTenant insert owner: %v", err)
	}

	return tenant
}

// SeedRoomType creates a room type with the given base rate.
func SeedRoomType(t *testing.T, pool *pgxpool.Pool, tenantID uuid.UUID, rate string) domain.RoomType {
	t.Helper()

	rt := domain.RoomType{
		ID:       uuid.New(),
		TenantID: tenantID,
		Name:     "Standard " + uniqueSuffix(),
		BaseRate: decimal.RequireFromString(rate),
		Capacity: 2,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO room_types (id, tenant_id, name, base_rate, capacity) VALUES ($1, $2, $3, $4, $5)`,
		rt.ID, rt.TenantID, rt.Name, rt.BaseRate, rt.Capacity,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRoomType: %v", err)
	}
	return rt
}

// SeedRoom creates a room of the given type with the persisted status.
func SeedRoom(t *testing.T, pool *pgxpool.Pool, rt domain.RoomType, status string) domain.RoomSeed {
	t.Helper()

	room := domain.RoomSeed{
		ID:         uuid.New(),
		TenantID:   rt.TenantID,
		RoomTypeID: rt.ID,
		Number:     uniqueSuffix(),
		Floor:      1,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO rooms (id, tenant_id, room_type_id, room_number, floor, status)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		room.ID, room.TenantID, room.RoomTypeID, room.Number, room.Floor, status,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRoom: %v", err)
	}
	return room
}

// SeedReservation creates a reservation on the room starting today.
func SeedReservation(t *testing.T, pool *pgxpool.Pool, room domain.RoomSeed, status domain.ReservationStatus, nights int) domain.ReservationRow {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	checkIn := now.Truncate(24 * time.Hour)
	rate := decimal.NewFromInt(20000)
	res := domain.ReservationRow{
		ID:          uuid.New(),
		TenantID:    room.TenantID,
		RoomID:      &room.ID,
		GuestName:   "Guest " + uniqueSuffix(),
		GuestPhone:  "+2348000000000",
		CheckIn:     checkIn,
		CheckOut:    checkIn.AddDate(0, 0, nights),
		Status:      status,
		Adults:      1,
		RoomRate:    rate,
		TotalAmount: rate.Mul(decimal.NewFromInt(int64(nights))),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO reservations (id, tenant_id, room_id, guest_name, guest_phone, check_in_date,
		     check_out_date, status, adults, room_rate, total_amount, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		res.ID, res.TenantID, res.RoomID, res.GuestName, res.GuestPhone, res.CheckIn,
		res.CheckOut, string(res.Status), res.Adults, res.RoomRate, res.TotalAmount, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReservation: %v", err)
	}
	return res
}

// SeedFolio opens a folio for the reservation.
func SeedFolio(t *testing.T, pool *pgxpool.Pool, res domain.ReservationRow) domain.FolioRow {
	t.Helper()

	folio := domain.FolioRow{
		ID:            uuid.New(),
		TenantID:      res.TenantID,
		ReservationID: res.ID,
		FolioNumber:   "F-" + uniqueSuffix(),
		Status:        domain.FolioStatusOpen,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO folios (id, tenant_id, reservation_id, folio_number, status) VALUES ($1, $2, $3, $4, $5)`,
		folio.ID, folio.TenantID, folio.ReservationID, folio.FolioNumber, string(folio.Status),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFolio: %v", err)
	}
	return folio
}
