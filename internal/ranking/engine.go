package ranking

import (
	"fmt"
	"log"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/TSKVenkat/strive-nav/internal/storage"
)

// Engine ranks a navigation catalog by accumulated usage.
//
// All methods are safe for concurrent use. The engine is the sole writer of
// its storage key; concurrent writers sharing a key (e.g. two processes over
// the same database) race with last-write-wins semantics, which the design
// accepts.
type Engine struct {
	mu    sync.Mutex
	items []Item
	cfg   Config
	store storage.Store

	records     map[string]*UsageRecord
	contextTags []string
	active      string
	lastDecay   time.Time

	// now is swapped out by tests for deterministic time handling.
	now func() time.Time
}

// New builds an engine over the given catalog.
//
// The catalog must be non-empty with unique ids. Persisted usage data under
// cfg.StorageKey is loaded and reconciled against the catalog: records for
// ids no longer present are dropped, and items without a record get a fresh
// zero record seeded from InitialWeight. Storage failures (unavailable
// backend, corrupt payload) are swallowed and the engine starts from a fresh
// state; New never fails because of storage.
func New(items []Item, cfg Config, store storage.Store) (*Engine, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("ranking: catalog must not be empty")
	}
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if it.ID == "" {
			return nil, fmt.Errorf("ranking: catalog item with empty id")
		}
		if seen[it.ID] {
			return nil, fmt.Errorf("ranking: duplicate item id %q", it.ID)
		}
		seen[it.ID] = true
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		items: append([]Item(nil), items...),
		cfg:   cfg,
		store: store,
		now:   time.Now,
	}
	e.records = e.reconcile(e.loadSnapshot())
	e.lastDecay = e.now()

	e.active = cfg.DefaultActiveID
	if e.active == "" || !seen[e.active] {
		e.active = items[0].ID
	}

	return e, nil
}

// loadSnapshot reads the persisted usage map. Any failure yields nil, which
// reconcile treats as "no history".
func (e *Engine) loadSnapshot() map[string]*UsageRecord {
	if e.store == nil || e.cfg.DisableLearning {
		return nil
	}

	raw, err := e.store.Get(e.cfg.StorageKey)
	if err != nil {
		if err != storage.ErrNotFound {
			log.Printf("Warning: failed to load usage data: %v", err)
		}
		return nil
	}

	records, err := decodeSnapshot(raw)
	if err != nil {
		log.Printf("Warning: discarding malformed usage data: %v", err)
		return nil
	}
	return records
}

// reconcile merges persisted records with the current catalog: stale ids are
// pruned and missing records are synthesized with zero usage.
func (e *Engine) reconcile(persisted map[string]*UsageRecord) map[string]*UsageRecord {
	records := make(map[string]*UsageRecord, len(e.items))
	for _, it := range e.items {
		if rec, ok := persisted[it.ID]; ok && rec != nil {
			rec.ID = it.ID
			records[it.ID] = rec
			continue
		}
		records[it.ID] = &UsageRecord{ID: it.ID, Weight: it.InitialWeight}
	}
	return records
}

// RecordActivation registers one activation of the given item: its click
// count increments, its last-activation time is stamped, and its weight
// gains ClickWeightBoost. The updated snapshot is persisted.
//
// Unknown ids are ignored, and the call is a no-op when learning is
// disabled. The engine does not consult the item's Disabled flag; gating
// activations on it is the caller's responsibility.
func (e *Engine) RecordActivation(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cfg.DisableLearning {
		return
	}
	rec, ok := e.records[id]
	if !ok {
		return
	}

	rec.ClickCount++
	rec.LastClickTime = e.now().UnixMilli()
	rec.Weight += e.cfg.ClickWeightBoost
	e.persist()
}

// SetActive changes the active selection.
//
// Setting the id that is already active is a no-op and fires no callback.
// In controlled mode the engine's own value is left untouched and only
// OnActiveChange is invoked; the caller owns the value and pushes it back
// via SyncActive. Unknown ids are ignored.
func (e *Engine) SetActive(id string) {
	e.mu.Lock()

	if id == e.active || !e.inCatalog(id) {
		e.mu.Unlock()
		return
	}
	if !e.cfg.Controlled {
		e.active = id
	}
	notify := e.cfg.OnActiveChange
	e.mu.Unlock()

	if notify != nil {
		notify(id)
	}
}

// SyncActive updates the engine's mirror of an externally-owned active id
// without firing OnActiveChange. It is intended for controlled mode.
func (e *Engine) SyncActive(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.inCatalog(id) {
		e.active = id
	}
}

// Active returns the current active item id.
func (e *Engine) Active() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

// SetContextTags replaces the live context-tag set used by the relevance
// boost. It is a no-op unless context awareness is enabled. Context tags are
// session-scoped and never persisted.
func (e *Engine) SetContextTags(tags []string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.cfg.EnableContextAwareness {
		return
	}
	e.contextTags = append([]string(nil), tags...)
}

// Ranking computes the current ordering and its visible/hidden partition.
//
// Unless learning is disabled, each call first applies one decay pass to the
// stored weights and persists them; with per-read decay this means ranking
// in a tight loop continuously shrinks weights. The effective weight then
// adds a linearly-vanishing recency bonus for items activated inside
// RecencyWindow and a context-relevance bonus proportional to the fraction
// of context tags the item matches. The sort is stable, so tied items keep
// catalog order.
func (e *Engine) Ranking() Ranking {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	e.applyDecay(now)

	weights := make([]float64, len(e.items))
	for i, it := range e.items {
		weights[i] = e.effectiveWeight(it, now)
	}

	order := make([]int, len(e.items))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return weights[order[a]] > weights[order[b]]
	})

	sorted := make([]Item, len(order))
	for i, idx := range order {
		sorted[i] = e.items[idx]
	}

	visible := len(sorted)
	if e.cfg.MaxVisibleItems > 0 && e.cfg.MaxVisibleItems < visible {
		visible = e.cfg.MaxVisibleItems
	}

	return Ranking{
		Sorted:  sorted,
		Visible: sorted[:visible],
		Hidden:  sorted[visible:],
	}
}

// applyDecay shrinks every stored weight by the configured decay factor and
// persists the result. Learning-disabled engines skip decay entirely so
// their ranking stays frozen.
func (e *Engine) applyDecay(now time.Time) {
	if e.cfg.DisableLearning {
		return
	}

	factor := e.cfg.WeightDecayFactor
	if e.cfg.DecayMode == DecayWallClock {
		elapsed := now.Sub(e.lastDecay)
		if elapsed <= 0 {
			return
		}
		factor = math.Pow(factor, elapsed.Seconds()/e.cfg.DecayInterval.Seconds())
	}
	e.lastDecay = now

	for _, rec := range e.records {
		rec.Weight *= factor
	}
	e.persist()
}

// effectiveWeight combines the stored weight with the recency and
// context-relevance bonuses.
func (e *Engine) effectiveWeight(it Item, now time.Time) float64 {
	rec, ok := e.records[it.ID]
	if !ok {
		return it.InitialWeight
	}

	weight := rec.Weight

	if rec.LastClickTime > 0 && e.cfg.RecencyWindow > 0 {
		elapsed := now.UnixMilli() - rec.LastClickTime
		window := e.cfg.RecencyWindow.Milliseconds()
		if elapsed >= 0 && elapsed < window {
			weight += e.cfg.ClickWeightBoost * (1 - float64(elapsed)/float64(window))
		}
	}

	if e.cfg.EnableContextAwareness && len(e.contextTags) > 0 && len(it.Tags) > 0 {
		matching := 0
		for _, tag := range e.contextTags {
			if it.hasTag(tag) {
				matching++
			}
		}
		weight += float64(matching) / float64(len(e.contextTags)) * e.cfg.ContextRelevanceBoost
	}

	return weight
}

// Reset zeroes every usage record back to the item's initial weight and
// persists the cleared snapshot.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, it := range e.items {
		e.records[it.ID] = &UsageRecord{ID: it.ID, Weight: it.InitialWeight}
	}
	e.lastDecay = e.now()
	e.persist()
}

// Records returns a copy of the current usage map.
func (e *Engine) Records() map[string]UsageRecord {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make(map[string]UsageRecord, len(e.records))
	for id, rec := range e.records {
		out[id] = *rec
	}
	return out
}

// Items returns the catalog in its original order.
func (e *Engine) Items() []Item {
	return append([]Item(nil), e.items...)
}

// persist writes the usage snapshot through the store. Failures are logged
// and otherwise ignored; the engine keeps operating on in-memory state.
// Callers must hold e.mu.
func (e *Engine) persist() {
	if e.store == nil {
		return
	}

	raw, err := encodeSnapshot(e.records)
	if err != nil {
		log.Printf("Warning: failed to encode usage data: %v", err)
		return
	}
	if err := e.store.Set(e.cfg.StorageKey, raw); err != nil {
		log.Printf("Warning: failed to persist usage data: %v", err)
	}
}

// inCatalog reports whether id names a catalog item. Callers must hold e.mu.
func (e *Engine) inCatalog(id string) bool {
	_, ok := e.records[id]
	return ok
}
