package domain

import "time"

// HistoryEntry records one successful conversion.
// From and To hold the tokens that passed lookup, not necessarily the canonical symbols.
type HistoryEntry struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Value     float64   `json:"value"`
	Result    float64   `json:"result"`
	Timestamp time.Time `json:"timestamp"`
}
