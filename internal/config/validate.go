package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	switch strings.ToLower(c.Cache.Driver) {
	case "lru", "redis":
	default:
		return fmt.Errorf("cache.driver must be lru or redis (got %q)", c.Cache.Driver)
	}
	if c.Cache.Size <= 0 {
		return fmt.Errorf("cache.size must be > 0 (got %d)", c.Cache.Size)
	}
	if c.Cache.UsesRedis() && c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required when cache.driver is redis")
	}

	if err := c.Dialog.validate(); err != nil {
		return fmt.Errorf("dialog: %w", err)
	}

	if c.Board.PendingTTL <= 0 {
		return fmt.Errorf("board.pending_ttl must be > 0 (got %s)", c.Board.PendingTTL)
	}
	if c.Board.ReservationWindow <= 0 {
		return fmt.Errorf("board.reservation_window must be > 0 (got %s)", c.Board.ReservationWindow)
	}

	if (c.Storage.BaseURL == "") != (c.Storage.ServiceKey == "") {
		return fmt.Errorf("storage.base_url and storage.service_key must be set together")
	}
	if c.Storage.MaxLogoMB <= 0 {
		return fmt.Errorf("storage.max_logo_mb must be > 0 (got %d)", c.Storage.MaxLogoMB)
	}

	if c.RateLimit.Enabled && (c.RateLimit.PerMinute <= 0 || c.RateLimit.CleanupInterval <= 0) {
		return fmt.Errorf("ratelimit.per_minute and ratelimit.cleanup_interval must be > 0 when enabled")
	}

	return nil
}

func (d DialogConfig) validate() error {
	if d.SubmitTimeout <= 0 {
		return fmt.Errorf("submit_timeout must be > 0 (got %s)", d.SubmitTimeout)
	}
	if d.IdleTTL <= 0 {
		return fmt.Errorf("idle_ttl must be > 0 (got %s)", d.IdleTTL)
	}
	if d.MaxOpen <= 0 {
		return fmt.Errorf("max_open must be > 0 (got %d)", d.MaxOpen)
	}
	return nil
}
