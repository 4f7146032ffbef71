package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Auth.AdminUsername == "" {
		return fmt.Errorf("auth.admin_username must not be empty")
	}
	if len(c.Auth.AdminPassword) < 8 {
		return fmt.Errorf("auth.admin_password must be at least 8 characters (got %d)", len(c.Auth.AdminPassword))
	}

	if err := c.Glossary.validate(); err != nil {
		return fmt.Errorf("glossary: %w", err)
	}

	return nil
}

func (g *GlossaryConfig) validate() error {
	if g.DefaultPerPage <= 0 {
		return fmt.Errorf("default_per_page must be > 0 (got %d)", g.DefaultPerPage)
	}
	if g.MaxPerPage < g.DefaultPerPage {
		return fmt.Errorf("max_per_page must be >= default_per_page (got %d < %d)", g.MaxPerPage, g.DefaultPerPage)
	}
	if g.CategoryCacheTTL < 0 {
		return fmt.Errorf("category_cache_ttl must be >= 0 (got %v)", g.CategoryCacheTTL)
	}
	if g.MaxIngestRecords <= 0 {
		return fmt.Errorf("max_ingest_records must be > 0 (got %d)", g.MaxIngestRecords)
	}
	if g.SuggestLimit <= 0 {
		return fmt.Errorf("suggest_limit must be > 0 (got %d)", g.SuggestLimit)
	}
	if g.CapacityBytes <= 0 {
		return fmt.Errorf("capacity_bytes must be > 0 (got %d)", g.CapacityBytes)
	}
	return nil
}
