package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	switch c.Platform.Mode {
	case ModeDevelopment, ModeJudging:
	default:
		return fmt.Errorf("platform.mode must be %q or %q (got %q)", ModeDevelopment, ModeJudging, c.Platform.Mode)
	}

	if c.Events.DefaultQueryLimit <= 0 {
		return fmt.Errorf("events.default_query_limit must be > 0 (got %d)", c.Events.DefaultQueryLimit)
	}
	if c.Events.MaxQueryLimit < c.Events.DefaultQueryLimit {
		return fmt.Errorf("events.max_query_limit must be >= default_query_limit (got %d < %d)",
			c.Events.MaxQueryLimit, c.Events.DefaultQueryLimit)
	}

	if c.Chaos.MaxBatchSize <= 0 {
		return fmt.Errorf("chaos.max_batch_size must be > 0 (got %d)", c.Chaos.MaxBatchSize)
	}
	if c.Chaos.Stagger < 0 {
		return fmt.Errorf("chaos.stagger must be >= 0 (got %v)", c.Chaos.Stagger)
	}
	if c.Chaos.MaxDelay <= 0 {
		return fmt.Errorf("chaos.max_delay must be > 0 (got %v)", c.Chaos.MaxDelay)
	}

	if c.Webhook.URL != "" && c.Webhook.Timeout <= 0 {
		return fmt.Errorf("webhook.timeout must be > 0 when webhook.url is set (got %v)", c.Webhook.Timeout)
	}

	if c.Limits.RequestsPerMinute <= 0 {
		return fmt.Errorf("limits.requests_per_minute must be > 0 (got %d)", c.Limits.RequestsPerMinute)
	}
	if c.Limits.CleanupInterval <= 0 {
		return fmt.Errorf("limits.cleanup_interval must be > 0 (got %v)", c.Limits.CleanupInterval)
	}

	return nil
}
