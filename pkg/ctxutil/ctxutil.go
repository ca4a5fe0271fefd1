package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey     ctxKey = "user_id"
	tenantIDKey   ctxKey = "tenant_id"
	roleKey       ctxKey = "role"
	requestIDKey  ctxKey = "request_id"
	terminalIDKey ctxKey = "terminal_id"
)

// Identity is the authenticated staff member acting on a tenant.
type Identity struct {
	UserID   uuid.UUID
	TenantID uuid.UUID
	Role     string
}

// WithIdentity stores user, tenant and role in the context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	ctx = WithUserID(ctx, id.UserID)
	ctx = context.WithValue(ctx, tenantIDKey, id.TenantID)
	return context.WithValue(ctx, roleKey, id.Role)
}

// IdentityFromCtx extracts the identity. ok is false unless both user and
// tenant are present.
func IdentityFromCtx(ctx context.Context) (Identity, bool) {
	userID, ok := UserIDFromCtx(ctx)
	if !ok {
		return Identity{}, false
	}
	tenantID, ok := TenantIDFromCtx(ctx)
	if !ok {
		return Identity{}, false
	}
	role, _ := ctx.Value(roleKey).(string)
	return Identity{UserID: userID, TenantID: tenantID, Role: role}, true
}

// WithUserID stores the user ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// TenantIDFromCtx extracts the tenant ID from the context.
func TenantIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(tenantIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithTerminalID stores the front-desk terminal identifier.
func WithTerminalID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, terminalIDKey, id)
}

// TerminalIDFromCtx returns the terminal identifier, or an empty string.
func TerminalIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(terminalIDKey).(string)
	return id
}
