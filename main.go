package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/cis3296s25/tracktidy/matcher"
	"github.com/cis3296s25/tracktidy/model"
	"github.com/cis3296s25/tracktidy/sources"
	"github.com/csmith/envflag/v2"
	"github.com/csmith/slogflags"
)

var (
	title        = flag.String("title", "", "Track title to resolve")
	artists      = flag.String("artists", "", "Comma-separated list of artists, primary first")
	duration     = flag.Int("duration", 0, "Track duration in seconds (0 if unknown)")
	verifiedHint = flag.Bool("verified-hint", false, "Treat the track metadata as coming from a verified source")

	queriesFile = flag.String("queries", "", "Path to a JSON file of tracks to resolve in batch")

	catalogPath = flag.String("catalog", "", "Path to a JSON catalog snapshot to search")
	searchLimit = flag.Int("limit", 0, "Maximum candidates to consider per search strategy")
)

func main() {
	envflag.Parse()
	_ = slogflags.Logger(slogflags.WithSetDefault(true))

	if *catalogPath == "" {
		slog.Error("A catalog snapshot must be specified")
		os.Exit(1)
	}

	tracks, err := selectedTracks()
	if err != nil {
		slog.Error("Failed to get tracks", "error", err)
		os.Exit(1)
	}

	resolver := &matcher.Resolver{
		Source: &sources.Catalog{Path: *catalogPath},
		Limit:  *searchLimit,
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	ctx := context.Background()
	for _, track := range tracks {
		slog.Info("Resolving track", "title", track.Title, "artists", strings.Join(track.Artists, ", "))

		result := resolver.Resolve(ctx, track)
		if err := encoder.Encode(result); err != nil {
			slog.Error("Failed to write result", "error", err)
			os.Exit(1)
		}
	}
}

func selectedTracks() ([]model.Track, error) {
	if *queriesFile != "" {
		return tracksFromFile(*queriesFile)
	}

	if *title == "" {
		return nil, errors.New("either a title or a queries file must be specified")
	}

	track := model.Track{
		Title:        *title,
		Duration:     *duration,
		VerifiedHint: *verifiedHint,
	}
	for _, artist := range strings.Split(*artists, ",") {
		if artist = strings.TrimSpace(artist); artist != "" {
			track.Artists = append(track.Artists, artist)
		}
	}

	return []model.Track{track}, nil
}

func tracksFromFile(path string) ([]model.Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tracks []model.Track
	if err := json.Unmarshal(data, &tracks); err != nil {
		return nil, err
	}

	return tracks, nil
}
