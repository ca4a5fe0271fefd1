// Package auth validates access tokens issued by the backend's auth store
// and turns them into a staff identity.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
	"github.com/waspershola/africa-lodge-90-sub002/pkg/ctxutil"
)

// TokenValidator checks HS256 access tokens signed with the backend's JWT secret.
type TokenValidator struct {
	secret   []byte
	issuer   string
	audience string
	leeway   time.Duration
}

// NewTokenValidator creates a validator. An empty issuer or audience is not checked.
func NewTokenValidator(secret, issuer, audience string, leeway time.Duration) *TokenValidator {
	return &TokenValidator{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		leeway:   leeway,
	}
}

// AppMetadata is the server-controlled part of the token. Users cannot edit it,
// so tenant and role are read from here.
type AppMetadata struct {
	TenantID string `json:"tenant_id"`
	Role     string `json:"role"`
}

// Claims are the access token claims the service relies on.
type Claims struct {
	jwt.RegisteredClaims
	Email       string      `json:"email,omitempty"`
	AppMetadata AppMetadata `json:"app_metadata"`
}

// ValidateToken parses the token and returns the identity it carries.
func (v *TokenValidator) ValidateToken(_ context.Context, tokenString string) (ctxutil.Identity, error) {
	if tokenString == "" {
		return ctxutil.Identity{}, fmt.Errorf("token is empty")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(v.leeway),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return ctxutil.Identity{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return ctxutil.Identity{}, fmt.Errorf("invalid token claims")
	}

	return claims.identity()
}

func (c *Claims) identity() (ctxutil.Identity, error) {
	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return ctxutil.Identity{}, fmt.Errorf("invalid subject UUID: %w", err)
	}

	// A user who has not finished onboarding has no tenant yet.
	if c.AppMetadata.TenantID == "" {
		return ctxutil.Identity{UserID: userID}, nil
	}

	tenantID, err := uuid.Parse(c.AppMetadata.TenantID)
	if err != nil {
		return ctxutil.Identity{}, fmt.Errorf("invalid tenant_id: %w", err)
	}

	role := domain.UserRole(c.AppMetadata.Role)
	if !role.IsValid() {
		return ctxutil.Identity{}, fmt.Errorf("invalid role %q", c.AppMetadata.Role)
	}

	return ctxutil.Identity{UserID: userID, TenantID: tenantID, Role: role.String()}, nil
}

// Sign issues a token for the identity. The backend's auth store issues real
// tokens; this is used by tests and local tooling.
func (v *TokenValidator) Sign(id ctxutil.Identity, ttl time.Duration, now time.Time) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID.String(),
			Issuer:    v.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	if id.TenantID != uuid.Nil {
		claims.AppMetadata = AppMetadata{TenantID: id.TenantID.String(), Role: id.Role}
	}
	if v.audience != "" {
		claims.Audience = jwt.ClaimStrings{v.audience}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
