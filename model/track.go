package model

// Track describes the canonical track we want to find a candidate for,
// as reported by a metadata provider. Artists is ordered with the primary
// artist first. A Duration of 0 means the provider didn't report one.
type Track struct {
	Title        string   `json:"title"`
	Artists      []string `json:"artists"`
	Duration     int      `json:"duration_seconds"`
	VerifiedHint bool     `json:"verified_hint,omitempty"`
}
