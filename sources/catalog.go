package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/agnivade/levenshtein"
	"github.com/cis3296s25/tracktidy/matcher"
	"github.com/cis3296s25/tracktidy/model"
)

const maxKeyDistance = 3

// Catalog is a SearchSource backed by a JSON snapshot of previously
// exported search results, keyed by query string. It lets resolution run
// offline against captured catalog data, and doubles as a deterministic
// source for testing.
type Catalog struct {
	Path string

	mu      sync.Mutex
	entries []catalogEntry
}

type catalogEntry struct {
	Query      string            `json:"query"`
	Candidates []model.Candidate `json:"candidates"`
}

// Search looks up the catalog entry for the query and returns its
// candidates, filtered to verified ones when verifiedOnly is set and
// truncated to limit. Queries are matched against entry keys tolerantly: an
// exact match on the slugified key first, then a small edit distance, so
// hand-edited snapshot keys don't have to byte-match provider output. An
// unknown query returns no candidates, not an error.
func (c *Catalog) Search(ctx context.Context, query string, verifiedOnly bool, limit int) ([]model.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := c.load()
	if err != nil {
		return nil, err
	}

	entry := findEntry(entries, query)
	if entry == nil {
		slog.Debug("No catalog entry for query", "query", query)
		return nil, nil
	}

	var results []model.Candidate
	for _, candidate := range entry.Candidates {
		if verifiedOnly && !candidate.Verified {
			continue
		}
		results = append(results, candidate)
		if limit > 0 && len(results) >= limit {
			break
		}
	}

	slog.Debug("Catalog search", "query", query, "matched_key", entry.Query, "count", len(results))
	return results, nil
}

// load lazily reads and parses the snapshot file.
func (c *Catalog) load() ([]catalogEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entries != nil {
		return c.entries, nil
	}

	data, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var entries []catalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	slog.Debug("Loaded catalog", "path", c.Path, "entries", len(entries))
	c.entries = entries
	return c.entries, nil
}

func findEntry(entries []catalogEntry, query string) *catalogEntry {
	key := matcher.Slugify(query)

	for i := range entries {
		if matcher.Slugify(entries[i].Query) == key {
			return &entries[i]
		}
	}

	for i := range entries {
		if levenshtein.ComputeDistance(matcher.Slugify(entries[i].Query), key) <= maxKeyDistance {
			return &entries[i]
		}
	}

	return nil
}

var _ model.SearchSource = &Catalog{}
