package ranking

import "encoding/json"

// UsageRecord holds the persisted usage statistics for one catalog item.
//
// ClickCount and LastClickTime only ever grow; Weight is additive-boosted on
// activation and shrunk by decay, so it is not monotonic.
type UsageRecord struct {
	// ID references the catalog item.
	ID string `json:"id"`

	// ClickCount is the total number of recorded activations.
	ClickCount int64 `json:"clickCount"`

	// LastClickTime is the Unix-epoch millisecond timestamp of the most
	// recent activation, 0 if the item was never activated.
	LastClickTime int64 `json:"lastClickTime"`

	// Weight is the persisted score subject to decay and boosts.
	Weight float64 `json:"weight"`
}

// encodeSnapshot serializes the usage map to its wire form: a JSON object
// mapping item id to record.
func encodeSnapshot(records map[string]*UsageRecord) (string, error) {
	data, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decodeSnapshot parses a persisted snapshot. Malformed payloads are
// rejected wholesale; callers treat the error as "no persisted data".
func decodeSnapshot(raw string) (map[string]*UsageRecord, error) {
	records := make(map[string]*UsageRecord)
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, err
	}
	return records, nil
}
