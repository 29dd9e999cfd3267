package ranking

import (
	"fmt"
	"time"
)

// DecayMode selects how weight decay is applied during a ranking pass.
type DecayMode int

const (
	// DecayPerRead multiplies every weight by WeightDecayFactor once per
	// Ranking call. This couples decay to read frequency rather than
	// wall-clock time: callers that rank in a tight loop will see weights
	// shrink on every call. It is the historical behavior and the default.
	DecayPerRead DecayMode = iota

	// DecayWallClock scales the decay exponent by elapsed wall-clock time
	// since the previous ranking pass, so ranking twice in quick succession
	// decays no faster than ranking once.
	DecayWallClock
)

const (
	// DefaultStorageKey is the storage key used when none is configured.
	DefaultStorageKey = "strive-ui-smart-navigation"

	// defaultWeightDecayFactor is the per-pass decay multiplier.
	defaultWeightDecayFactor = 0.9

	// defaultClickWeightBoost is the additive weight gained per activation.
	defaultClickWeightBoost = 1.0

	// defaultRecencyWindow bounds the linearly-decaying recency bonus.
	defaultRecencyWindow = 7 * 24 * time.Hour

	// defaultContextRelevanceBoost scales the tag-match bonus.
	defaultContextRelevanceBoost = 0.5

	// defaultDecayInterval is the wall-clock span over which one full decay
	// factor is applied in DecayWallClock mode.
	defaultDecayInterval = 24 * time.Hour
)

// Config holds the engine's tunable parameters. The zero value is usable:
// every field falls back to its documented default.
type Config struct {
	// StorageKey is the key the usage snapshot is persisted under.
	// Default: DefaultStorageKey.
	StorageKey string

	// MaxVisibleItems bounds the visible partition. Zero means unbounded.
	MaxVisibleItems int

	// WeightDecayFactor is the decay multiplier, required to be in (0,1).
	// Default: 0.9.
	WeightDecayFactor float64

	// ClickWeightBoost is added to an item's weight on each activation and
	// scales the recency bonus. Default: 1.
	ClickWeightBoost float64

	// RecencyWindow is the span after an activation during which the
	// recency bonus applies. Default: 7 days.
	RecencyWindow time.Duration

	// ContextRelevanceBoost scales the context tag-match bonus.
	// Default: 0.5.
	ContextRelevanceBoost float64

	// DisableLearning freezes usage tracking: RecordActivation becomes a
	// no-op, no snapshot is loaded or persisted, and no decay is applied,
	// so the ranking never changes across calls.
	DisableLearning bool

	// EnableContextAwareness turns on the context-relevance boost and the
	// SetContextTags operation.
	EnableContextAwareness bool

	// DecayMode selects per-read (default) or wall-clock decay.
	DecayMode DecayMode

	// DecayInterval is the wall-clock span corresponding to one decay
	// factor in DecayWallClock mode. Default: 24h. Ignored in DecayPerRead
	// mode.
	DecayInterval time.Duration

	// Controlled puts the active selection under external ownership: the
	// engine never mutates its active id from SetActive, it only notifies
	// OnActiveChange. The caller pushes the externally-owned value back in
	// via SyncActive.
	Controlled bool

	// DefaultActiveID seeds the active selection in uncontrolled mode.
	// When empty or unknown, the first catalog item is used.
	DefaultActiveID string

	// OnActiveChange, when set, is invoked with the new id whenever
	// SetActive is called with an id different from the current one.
	OnActiveChange func(id string)
}

// applyDefaults fills zero-valued fields with their documented defaults.
func (c *Config) applyDefaults() {
	if c.StorageKey == "" {
		c.StorageKey = DefaultStorageKey
	}
	if c.WeightDecayFactor == 0 {
		c.WeightDecayFactor = defaultWeightDecayFactor
	}
	if c.ClickWeightBoost == 0 {
		c.ClickWeightBoost = defaultClickWeightBoost
	}
	if c.RecencyWindow == 0 {
		c.RecencyWindow = defaultRecencyWindow
	}
	if c.ContextRelevanceBoost == 0 {
		c.ContextRelevanceBoost = defaultContextRelevanceBoost
	}
	if c.DecayInterval == 0 {
		c.DecayInterval = defaultDecayInterval
	}
}

// validate checks parameter ranges after defaults have been applied.
func (c *Config) validate() error {
	if c.WeightDecayFactor <= 0 || c.WeightDecayFactor >= 1 {
		return fmt.Errorf("ranking: weight decay factor must be in (0,1), got %g", c.WeightDecayFactor)
	}
	if c.ClickWeightBoost < 0 {
		return fmt.Errorf("ranking: click weight boost must not be negative, got %g", c.ClickWeightBoost)
	}
	if c.ContextRelevanceBoost < 0 {
		return fmt.Errorf("ranking: context relevance boost must not be negative, got %g", c.ContextRelevanceBoost)
	}
	if c.MaxVisibleItems < 0 {
		return fmt.Errorf("ranking: max visible items must not be negative, got %d", c.MaxVisibleItems)
	}
	if c.RecencyWindow < 0 {
		return fmt.Errorf("ranking: recency window must not be negative, got %s", c.RecencyWindow)
	}
	return nil
}
