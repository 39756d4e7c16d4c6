package matcher

// DefaultForbiddenWords lists markers that indicate a candidate is not the
// original recording. Matching is done against de-hyphenated slugs, so
// multi-word markers are written without spaces.
var DefaultForbiddenWords = []string{
	"bassboosted",
	"remix",
	"remastered",
	"remaster",
	"reverb",
	"bassboost",
	"live",
	"acoustic",
	"8daudio",
	"concert",
	"acapella",
	"slowed",
	"instrumental",
	"cover",
	"nightcore",
	"edit",
	"vip",
	"extended",
	"rework",
}

// Weights are the per-signal multipliers used to combine sub-scores into a
// total. They should sum to 1.
type Weights struct {
	Title    float64
	Artist   float64
	Duration float64
}

// Config holds every scoring knob in one value so the scorer stays pure and
// independently testable. The zero value is not useful; start from
// DefaultConfig.
type Config struct {
	// ForbiddenWords are the non-original-content markers checked by
	// ForbiddenWords. A marker found in the original title is never
	// counted against a candidate.
	ForbiddenWords []string

	// ForbiddenPenalty is subtracted from the title score once per
	// matched marker.
	ForbiddenPenalty float64

	// MinTitleScore rejects any candidate whose title score falls below it.
	MinTitleScore float64

	// MinArtistScore rejects unverified candidates whose artist score
	// falls below it. Verified candidates are exempt.
	MinArtistScore float64

	// VerifiedWeights apply when the candidate comes from a verified
	// source; title text is trusted more than the artist heuristics.
	// UnverifiedWeights apply otherwise and demand stronger artist
	// corroboration.
	VerifiedWeights   Weights
	UnverifiedWeights Weights

	// ExcellentScore is the total above which the resolver stops trying
	// further strategies.
	ExcellentScore float64

	// SearchLimit bounds how many candidates each strategy requests.
	SearchLimit int
}

// DefaultConfig returns the scoring configuration the engine was tuned with.
func DefaultConfig() Config {
	return Config{
		ForbiddenWords:    DefaultForbiddenWords,
		ForbiddenPenalty:  15,
		MinTitleScore:     60,
		MinArtistScore:    50,
		VerifiedWeights:   Weights{Title: 0.5, Artist: 0.3, Duration: 0.2},
		UnverifiedWeights: Weights{Title: 0.4, Artist: 0.4, Duration: 0.2},
		ExcellentScore:    85,
		SearchLimit:       8,
	}
}
