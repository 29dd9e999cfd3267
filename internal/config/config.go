/*
Package config handles loading, saving, and validating strive-nav configuration.

Configuration is stored in ~/.strive-nav.json: the navigation catalog plus
the ranking engine's tuning settings.

Schema:

	{
	  "items": [
	    {"id": "home", "label": "Home", "href": "/", "tags": ["general"]},
	    {"id": "reports", "label": "Reports", "href": "/reports", "initialWeight": 0.5}
	  ],
	  "settings": {
	    "backend": "file",
	    "maxVisibleItems": 5,
	    "weightDecayFactor": 0.9,
	    "clickWeightBoost": 1,
	    "recencyWindowHours": 168,
	    "contextRelevanceBoost": 0.5,
	    "decayMode": "per-read"
	  }
	}
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Backend names accepted in Settings.Backend.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// DecayMode names accepted in Settings.DecayMode.
const (
	DecayModePerRead   = "per-read"
	DecayModeWallClock = "wall-clock"
)

// Config represents the root configuration structure.
type Config struct {
	// Items is the navigation catalog in display order.
	Items []Item `json:"items"`

	// Settings contains the ranking engine tuning options.
	Settings *Settings `json:"settings,omitempty"`
}

// Item is one catalog entry as stored in the config file.
type Item struct {
	// ID is the unique key for the item.
	ID string `json:"id"`

	// Label is the display text.
	Label string `json:"label"`

	// Href is the navigation target.
	Href string `json:"href,omitempty"`

	// Disabled items are shown but never activated.
	Disabled bool `json:"disabled,omitempty"`

	// InitialWeight seeds the item's importance.
	InitialWeight float64 `json:"initialWeight,omitempty"`

	// Tags are matched against context tags for the relevance boost.
	Tags []string `json:"tags,omitempty"`
}

// Settings contains the ranking engine tuning options. Zero-valued fields
// fall back to the engine's documented defaults.
type Settings struct {
	// StorageKey overrides the key the usage snapshot is stored under.
	StorageKey string `json:"storageKey,omitempty"`

	// Backend selects the usage store: "file" (default) or "sqlite".
	Backend string `json:"backend,omitempty"`

	// MaxVisibleItems bounds the visible partition. Zero means unbounded.
	MaxVisibleItems int `json:"maxVisibleItems,omitempty"`

	// WeightDecayFactor is the decay multiplier, in (0,1).
	WeightDecayFactor float64 `json:"weightDecayFactor,omitempty"`

	// ClickWeightBoost is the additive weight gained per activation.
	ClickWeightBoost float64 `json:"clickWeightBoost,omitempty"`

	// RecencyWindowHours bounds the recency bonus.
	RecencyWindowHours int `json:"recencyWindowHours,omitempty"`

	// ContextRelevanceBoost scales the context tag-match bonus.
	ContextRelevanceBoost float64 `json:"contextRelevanceBoost,omitempty"`

	// DisableLearning freezes usage tracking.
	DisableLearning bool `json:"disableLearning,omitempty"`

	// ContextAwareness enables the context-relevance boost.
	ContextAwareness bool `json:"contextAwareness,omitempty"`

	// DecayMode is "per-read" (default) or "wall-clock".
	DecayMode string `json:"decayMode,omitempty"`

	// DecayIntervalHours is the wall-clock decay interval.
	DecayIntervalHours int `json:"decayIntervalHours,omitempty"`

	// DefaultActiveID seeds the active selection.
	DefaultActiveID string `json:"defaultActiveId,omitempty"`
}

// NewConfig creates an empty configuration with default settings.
func NewConfig() *Config {
	return &Config{
		Settings: &Settings{
			Backend: BackendFile,
		},
	}
}

// GetDefaultConfigPath returns the path to ~/.strive-nav.json.
func GetDefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".strive-nav.json"), nil
}

// Load reads the configuration from the default path.
func Load() (*Config, error) {
	configPath, err := GetDefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}
