package config

import (
	"fmt"
	"net/url"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.MutationsPerMinute <= 0 {
		return fmt.Errorf("server.mutations_per_minute must be > 0 (got %d)", c.Server.MutationsPerMinute)
	}

	if err := c.Listing.validate(); err != nil {
		return fmt.Errorf("listing: %w", err)
	}

	if c.Bulk.MaxSelected <= 0 {
		return fmt.Errorf("bulk.max_selected must be > 0 (got %d)", c.Bulk.MaxSelected)
	}

	return nil
}

func (l *ListingConfig) validate() error {
	if l.DefaultLimit <= 0 {
		return fmt.Errorf("default_limit must be > 0 (got %d)", l.DefaultLimit)
	}
	if l.MaxLimit < l.DefaultLimit {
		return fmt.Errorf("max_limit must be >= default_limit (got %d < %d)", l.MaxLimit, l.DefaultLimit)
	}
	if l.UnboundedMax < l.MaxLimit {
		return fmt.Errorf("unbounded_max must be >= max_limit (got %d < %d)", l.UnboundedMax, l.MaxLimit)
	}
	return nil
}

// Validate checks the console settings.
func (c *ConsoleConfig) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("console.base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("console.base_url must be an http(s) URL (got %q)", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("console.timeout must be > 0 (got %v)", c.Timeout)
	}
	if c.MaxSelected <= 0 {
		return fmt.Errorf("console.max_selected must be > 0 (got %d)", c.MaxSelected)
	}
	return nil
}
