package model

import "context"

// SearchSource is a catalog that can be searched for candidate tracks.
// When verifiedOnly is set only candidates from a curated/official catalog
// are returned. Implementations may return fewer than limit candidates,
// including none at all.
type SearchSource interface {
	Search(ctx context.Context, query string, verifiedOnly bool, limit int) ([]Candidate, error)
}
