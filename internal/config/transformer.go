package config

import (
	"time"

	"github.com/TSKVenkat/strive-nav/internal/ranking"
)

// RankingItems converts the catalog to the engine's item type, preserving
// order.
func (c *Config) RankingItems() []ranking.Item {
	items := make([]ranking.Item, len(c.Items))
	for i, it := range c.Items {
		items[i] = ranking.Item{
			ID:            it.ID,
			Label:         it.Label,
			Href:          it.Href,
			Disabled:      it.Disabled,
			InitialWeight: it.InitialWeight,
			Tags:          append([]string(nil), it.Tags...),
		}
	}
	return items
}

// RankingConfig converts the settings to the engine's configuration.
// Zero-valued fields are left zero so the engine applies its own defaults.
func (c *Config) RankingConfig() ranking.Config {
	s := c.Settings
	if s == nil {
		s = &Settings{}
	}

	cfg := ranking.Config{
		StorageKey:             s.StorageKey,
		MaxVisibleItems:        s.MaxVisibleItems,
		WeightDecayFactor:      s.WeightDecayFactor,
		ClickWeightBoost:       s.ClickWeightBoost,
		RecencyWindow:          time.Duration(s.RecencyWindowHours) * time.Hour,
		ContextRelevanceBoost:  s.ContextRelevanceBoost,
		DisableLearning:        s.DisableLearning,
		EnableContextAwareness: s.ContextAwareness,
		DecayInterval:          time.Duration(s.DecayIntervalHours) * time.Hour,
		DefaultActiveID:        s.DefaultActiveID,
	}

	if s.DecayMode == DecayModeWallClock {
		cfg.DecayMode = ranking.DecayWallClock
	}

	return cfg
}
