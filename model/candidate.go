package model

// Candidate is a single raw search result from a catalog. Verified marks
// results that came from a curated/official catalog rather than generic
// search. Live marks streams and other non-track entities that sometimes
// appear in search results. A Duration of 0 means unknown.
type Candidate struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Channel  string `json:"channel"`
	Duration int    `json:"duration_seconds"`
	Verified bool   `json:"verified,omitempty"`
	Live     bool   `json:"live,omitempty"`
	URL      string `json:"url"`
}

// ScoredCandidate is the result of scoring one Candidate against a Track.
// Instances are never mutated after creation; rescoring produces a new one.
// Rejected candidates always have a TotalScore of 0 and a RejectionReason.
type ScoredCandidate struct {
	Candidate       Candidate `json:"candidate"`
	TitleScore      float64   `json:"title_score"`
	ArtistScore     float64   `json:"artist_score"`
	DurationScore   float64   `json:"duration_score"`
	Bonus           int       `json:"bonus"`
	TotalScore      float64   `json:"total_score"`
	Rejected        bool      `json:"rejected,omitempty"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
}

// MatchResult is the terminal outcome of one resolution call. Best is nil
// when no acceptable candidate was found, in which case Reason says why.
// Best is never a rejected candidate.
type MatchResult struct {
	Best   *ScoredCandidate `json:"best,omitempty"`
	Reason string           `json:"reason,omitempty"`
}
