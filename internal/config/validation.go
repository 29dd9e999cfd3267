/*
Package config provides validation helpers for strive-nav configuration.

Validation runs on every load and before every save so that a broken catalog
or out-of-range tuning value is caught at the config boundary rather than
inside the ranking engine.
*/
package config

import "fmt"

// ValidateItem checks a single catalog entry.
func ValidateItem(it Item) error {
	if it.ID == "" {
		return fmt.Errorf("catalog item with empty id")
	}
	if it.Label == "" {
		return fmt.Errorf("item '%s': empty label", it.ID)
	}
	if it.InitialWeight < 0 {
		return fmt.Errorf("item '%s': negative initial weight %g", it.ID, it.InitialWeight)
	}
	return nil
}

// Validate checks the whole configuration: a non-empty catalog with unique
// ids and settings within the engine's accepted ranges.
func (c *Config) Validate() error {
	if len(c.Items) == 0 {
		return fmt.Errorf("catalog is empty: at least one item is required")
	}

	seen := make(map[string]bool, len(c.Items))
	for _, it := range c.Items {
		if err := ValidateItem(it); err != nil {
			return err
		}
		if seen[it.ID] {
			return fmt.Errorf("duplicate item id '%s'", it.ID)
		}
		seen[it.ID] = true
	}

	s := c.Settings
	if s == nil {
		return nil
	}

	if s.WeightDecayFactor != 0 && (s.WeightDecayFactor <= 0 || s.WeightDecayFactor >= 1) {
		return fmt.Errorf("weightDecayFactor must be in (0,1), got %g", s.WeightDecayFactor)
	}
	if s.ClickWeightBoost < 0 {
		return fmt.Errorf("clickWeightBoost must not be negative, got %g", s.ClickWeightBoost)
	}
	if s.ContextRelevanceBoost < 0 {
		return fmt.Errorf("contextRelevanceBoost must not be negative, got %g", s.ContextRelevanceBoost)
	}
	if s.MaxVisibleItems < 0 {
		return fmt.Errorf("maxVisibleItems must not be negative, got %d", s.MaxVisibleItems)
	}
	if s.RecencyWindowHours < 0 {
		return fmt.Errorf("recencyWindowHours must not be negative, got %d", s.RecencyWindowHours)
	}
	if s.DecayIntervalHours < 0 {
		return fmt.Errorf("decayIntervalHours must not be negative, got %d", s.DecayIntervalHours)
	}

	switch s.Backend {
	case "", BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("unknown storage backend '%s' (expected 'file' or 'sqlite')", s.Backend)
	}

	switch s.DecayMode {
	case "", DecayModePerRead, DecayModeWallClock:
	default:
		return fmt.Errorf("unknown decay mode '%s' (expected 'per-read' or 'wall-clock')", s.DecayMode)
	}

	if s.DefaultActiveID != "" && !seen[s.DefaultActiveID] {
		return fmt.Errorf("defaultActiveId '%s' is not in the catalog", s.DefaultActiveID)
	}

	return nil
}
