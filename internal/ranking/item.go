/*
Package ranking implements the adaptive navigation ranking engine.

The engine maintains per-item usage statistics (click counts, recency,
configured importance), computes a decayed and boosted effective weight per
item on each read, sorts items by weight with a stable tie-break on catalog
order, and partitions the result into a bounded visible head and an overflow
hidden tail.

Usage data is persisted through a storage.Store collaborator after every
mutation. Storage failures never surface: the engine degrades to operating
on in-memory state only.
*/
package ranking

// Item is one entry in the navigation catalog. Items are caller-supplied and
// immutable as far as the engine is concerned.
type Item struct {
	// ID is the unique key for the item within the catalog.
	ID string `json:"id"`

	// Label is the display text.
	Label string `json:"label"`

	// Href is the navigation target. Activation side effects beyond usage
	// tracking are the caller's concern.
	Href string `json:"href,omitempty"`

	// Disabled marks items that are never activated by the presentation
	// layer. Disabled items still participate in ranking, and the engine
	// does not gate RecordActivation on this flag; gating is the caller's
	// responsibility.
	Disabled bool `json:"disabled,omitempty"`

	// InitialWeight seeds the item's importance before any usage exists.
	InitialWeight float64 `json:"initialWeight,omitempty"`

	// Tags are matched against the engine's context tags for the
	// context-relevance boost.
	Tags []string `json:"tags,omitempty"`
}

// hasTag reports whether the item carries the given tag.
func (it Item) hasTag(tag string) bool {
	for _, t := range it.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Ranking is the result of one ranking pass.
type Ranking struct {
	// Sorted is the full catalog ordered by descending effective weight.
	Sorted []Item

	// Visible is the first MaxVisibleItems entries of Sorted (all of them
	// when no limit is configured).
	Visible []Item

	// Hidden is the overflow tail of Sorted.
	Hidden []Item
}
