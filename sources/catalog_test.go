package sources

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/cis3296s25/tracktidy/matcher"
	"github.com/cis3296s25/tracktidy/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, entries any) string {
	t.Helper()

	data, err := json.Marshal(entries)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func testEntries() []map[string]any {
	return []map[string]any{
		{
			"query": "The Weeknd - Blinding Lights",
			"candidates": []model.Candidate{
				{
					ID:       "official",
					Title:    "Blinding Lights",
					Channel:  "The Weeknd - Topic",
					Duration: 201,
					Verified: true,
					URL:      "https://example.com/official",
				},
				{
					ID:       "8d",
					Title:    "Blinding Lights (8D Audio)",
					Channel:  "Random Uploads",
					Duration: 195,
					URL:      "https://example.com/8d",
				},
				{
					ID:       "lyrics",
					Title:    "Blinding Lights (Lyrics)",
					Channel:  "Lyric Videos",
					Duration: 200,
					URL:      "https://example.com/lyrics",
				},
			},
		},
	}
}

func TestCatalogSearch(t *testing.T) {
	catalog := &Catalog{Path: writeCatalog(t, testEntries())}

	t.Run("exact query", func(t *testing.T) {
		results, err := catalog.Search(context.Background(), "The Weeknd - Blinding Lights", false, 0)
		require.NoError(t, err)
		assert.Len(t, results, 3)
	})

	t.Run("case and punctuation insensitive", func(t *testing.T) {
		results, err := catalog.Search(context.Background(), "the weeknd: blinding lights", false, 0)
		require.NoError(t, err)
		assert.Len(t, results, 3)
	})

	t.Run("near miss query still matches", func(t *testing.T) {
		results, err := catalog.Search(context.Background(), "The Weeknd - Blinding Light", false, 0)
		require.NoError(t, err)
		assert.Len(t, results, 3)
	})

	t.Run("verified only", func(t *testing.T) {
		results, err := catalog.Search(context.Background(), "The Weeknd - Blinding Lights", true, 0)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "official", results[0].ID)
	})

	t.Run("limit truncates", func(t *testing.T) {
		results, err := catalog.Search(context.Background(), "The Weeknd - Blinding Lights", false, 2)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("unknown query returns nothing", func(t *testing.T) {
		results, err := catalog.Search(context.Background(), "Dua Lipa - Levitating", false, 0)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := catalog.Search(ctx, "The Weeknd - Blinding Lights", false, 0)
		assert.Error(t, err)
	})
}

func TestCatalogMissingFile(t *testing.T) {
	catalog := &Catalog{Path: filepath.Join(t.TempDir(), "does-not-exist.json")}

	_, err := catalog.Search(context.Background(), "The Weeknd - Blinding Lights", false, 0)
	assert.Error(t, err)
}

func TestCatalogMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	catalog := &Catalog{Path: path}
	_, err := catalog.Search(context.Background(), "The Weeknd - Blinding Lights", false, 0)
	assert.Error(t, err)
}

func TestCatalogResolvesEndToEnd(t *testing.T) {
	catalog := &Catalog{Path: writeCatalog(t, testEntries())}
	resolver := &matcher.Resolver{Source: catalog}

	result := resolver.Resolve(context.Background(), model.Track{
		Title:    "Blinding Lights",
		Artists:  []string{"The Weeknd"},
		Duration: 200,
	})

	require.NotNil(t, result.Best)
	assert.Equal(t, "official", result.Best.Candidate.ID)
	assert.Equal(t, 100.0, result.Best.TotalScore)
}
