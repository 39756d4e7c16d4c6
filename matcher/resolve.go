package matcher

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cis3296s25/tracktidy/model"
)

// Strategy is one way of phrasing a catalog search. Verified marks
// strategies that query a curated/official catalog, which relaxes the
// artist threshold and shifts scoring weight onto the title.
type Strategy struct {
	Name     string
	Query    func(track model.Track) string
	Verified bool
}

// DefaultStrategies returns the search strategies in the order they should
// be tried: the verified catalog first with the plain query and an "official
// audio" variant, then general search with the same two phrasings.
func DefaultStrategies() []Strategy {
	return []Strategy{
		{Name: "verified", Query: rawQuery, Verified: true},
		{Name: "verified-audio", Query: audioQuery, Verified: true},
		{Name: "general", Query: rawQuery},
		{Name: "general-audio", Query: audioQuery},
	}
}

func rawQuery(track model.Track) string {
	if len(track.Artists) == 0 {
		return track.Title
	}
	return fmt.Sprintf("%s - %s", strings.Join(track.Artists, ", "), track.Title)
}

func audioQuery(track model.Track) string {
	return rawQuery(track) + " official audio"
}

// Resolver finds the best candidate for a track by trying search strategies
// in order and scoring everything they return. The zero value of Config,
// Strategies and Limit means "use defaults"; only Source is required.
type Resolver struct {
	Source     model.SearchSource
	Config     Config
	Strategies []Strategy
	Limit      int
}

// Resolve runs every strategy against the source, scores each candidate and
// returns the best non-rejected one seen. A strategy that fails is logged
// and skipped, never fatal. Resolution stops early once a candidate beats
// the excellent-match threshold. When nothing acceptable is found the
// result carries a reason instead of a best candidate; callers should treat
// that as a normal outcome.
func (r *Resolver) Resolve(ctx context.Context, track model.Track) model.MatchResult {
	cfg := r.Config
	if cfg.SearchLimit == 0 {
		cfg = DefaultConfig()
	}

	strategies := r.Strategies
	if strategies == nil {
		strategies = DefaultStrategies()
	}

	limit := r.Limit
	if limit == 0 {
		limit = cfg.SearchLimit
	}

	scorer := &Scorer{Config: cfg}

	var best *model.ScoredCandidate
	seenCandidates := false

	for _, strategy := range strategies {
		query := strategy.Query(track)

		candidates, err := r.Source.Search(ctx, query, strategy.Verified, limit)
		if err != nil {
			slog.Warn("Search strategy failed, skipping", "strategy", strategy.Name, "query", query, "error", err)
			continue
		}

		slog.Debug("Search strategy returned candidates", "strategy", strategy.Name, "query", query, "count", len(candidates))

		for _, candidate := range candidates {
			if !playable(candidate) {
				slog.Debug("Discarding unplayable candidate", "strategy", strategy.Name, "id", candidate.ID, "title", candidate.Title)
				continue
			}
			seenCandidates = true

			verified := strategy.Verified || candidate.Verified || track.VerifiedHint
			scored := scorer.Score(track, candidate, verified)
			if scored.Rejected {
				slog.Debug("Rejected candidate", "strategy", strategy.Name, "title", candidate.Title, "reason", scored.RejectionReason)
				continue
			}

			if best == nil || scored.TotalScore > best.TotalScore {
				best = &scored
			}
		}

		if best != nil && best.TotalScore > cfg.ExcellentScore {
			slog.Info("Excellent match found, stopping early", "strategy", strategy.Name, "title", best.Candidate.Title, "score", best.TotalScore)
			return model.MatchResult{Best: best}
		}
	}

	if best != nil {
		slog.Info("Best match selected", "title", best.Candidate.Title, "score", best.TotalScore)
		return model.MatchResult{Best: best}
	}

	reason := ReasonAllRejected
	if !seenCandidates {
		reason = ReasonNoCandidates
	}
	slog.Info("No match found", "track", track.Title, "reason", reason)
	return model.MatchResult{Reason: reason}
}

// playable filters out search results that can't be downloaded as tracks:
// live streams and malformed entries missing an ID or URL.
func playable(candidate model.Candidate) bool {
	return !candidate.Live && candidate.ID != "" && candidate.URL != "" && candidate.Title != ""
}
