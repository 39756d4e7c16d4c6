package matcher

import (
	"math"
	"strings"

	"github.com/cis3296s25/tracktidy/model"
)

// Rejection reasons reported on ScoredCandidate and MatchResult.
const (
	ReasonNoCommonWords = "no common words"
	ReasonTitleTooLow   = "title score too low"
	ReasonArtistTooLow  = "artist score too low"
	ReasonNoCandidates  = "no candidates"
	ReasonAllRejected   = "all candidates rejected"
)

// Scorer scores candidates against a track using the thresholds and weights
// in Config.
type Scorer struct {
	Config Config
}

// TitleScore compares the track title against a candidate title: sequence
// similarity of the slugs, minus a penalty per forbidden marker found in the
// candidate but not the track, floored at 0.
func (s *Scorer) TitleScore(trackTitle, candidateTitle string) float64 {
	score := Similarity(Slugify(trackTitle), Slugify(candidateTitle))
	score -= s.Config.ForbiddenPenalty * float64(len(ForbiddenWords(s.Config.ForbiddenWords, trackTitle, candidateTitle)))
	return math.Max(0, score)
}

// ArtistScore rates how well the candidate's title and channel account for
// the track's artists. It's a primary-artist-first ladder rather than a
// symmetric similarity: a primary artist named in the title beats one named
// in the channel, which beats a partial token match. Secondary artists found
// in either field add a bonus, but their mere presence on the track halves
// the combined score. Returns 0 when no artists are supplied.
func ArtistScore(artists []string, candidateTitle, channel string) float64 {
	if len(artists) == 0 {
		return 0
	}

	primarySlug := Slugify(artists[0])
	titleSlug := Slugify(candidateTitle)
	channelSlug := Slugify(channel)

	var score float64
	switch {
	case strings.Contains(titleSlug, primarySlug):
		score = 90
	case strings.Contains(channelSlug, primarySlug):
		score = 80
	case anyTokenIn(primarySlug, titleSlug):
		score = 70
	default:
		score = Similarity(primarySlug, channelSlug) / 2
	}

	if len(artists) > 1 {
		bonus := 0.0
		for _, artist := range artists[1:] {
			artistSlug := Slugify(artist)
			if strings.Contains(titleSlug, artistSlug) || strings.Contains(channelSlug, artistSlug) {
				bonus += 10
			}
		}
		bonus = math.Min(bonus, 10*float64(len(artists)-1))

		// Halved whenever secondary artists exist, matched or not. The
		// scoring corpus was tuned against this arithmetic.
		score = (score + bonus) / 2
	}

	return math.Min(score, 100)
}

func anyTokenIn(slug, haystack string) bool {
	for _, token := range strings.Split(slug, "-") {
		if strings.Contains(haystack, token) {
			return true
		}
	}
	return false
}

// DurationScore compares durations with an exponential decay: identical
// durations score 100, a 10-20 second difference is heavily penalized, and
// past a minute the score is near zero. Unknown durations get a neutral 50.
func DurationScore(trackDuration, candidateDuration int) float64 {
	if trackDuration <= 0 || candidateDuration <= 0 {
		return 50
	}

	diff := trackDuration - candidateDuration
	if diff < 0 {
		diff = -diff
	}
	return 100 * math.Exp(-0.1*float64(diff))
}

// Score evaluates one candidate against the track and returns an immutable
// ScoredCandidate. verified indicates the candidate should be treated as
// coming from a trusted source: title weighting goes up and the artist
// threshold is waived. Rejected candidates carry a zero total and a reason.
func (s *Scorer) Score(track model.Track, candidate model.Candidate, verified bool) model.ScoredCandidate {
	if !HasCommonWords(track.Title, candidate.Title) {
		return model.ScoredCandidate{
			Candidate:       candidate,
			Rejected:        true,
			RejectionReason: ReasonNoCommonWords,
		}
	}

	titleScore := s.TitleScore(track.Title, candidate.Title)
	artistScore := ArtistScore(track.Artists, candidate.Title, candidate.Channel)
	durationScore := DurationScore(track.Duration, candidate.Duration)
	bonus := qualityBonus(candidate, verified)

	if titleScore < s.Config.MinTitleScore {
		return model.ScoredCandidate{
			Candidate:       candidate,
			TitleScore:      titleScore,
			ArtistScore:     artistScore,
			DurationScore:   durationScore,
			Bonus:           bonus,
			Rejected:        true,
			RejectionReason: ReasonTitleTooLow,
		}
	}

	if artistScore < s.Config.MinArtistScore && !verified {
		return model.ScoredCandidate{
			Candidate:       candidate,
			TitleScore:      titleScore,
			ArtistScore:     artistScore,
			DurationScore:   durationScore,
			Bonus:           bonus,
			Rejected:        true,
			RejectionReason: ReasonArtistTooLow,
		}
	}

	weights := s.Config.UnverifiedWeights
	if verified {
		weights = s.Config.VerifiedWeights
	}

	total := titleScore*weights.Title + artistScore*weights.Artist + durationScore*weights.Duration
	total += float64(bonus)
	total = math.Min(total, 100)
	total = math.Max(total, 0)

	return model.ScoredCandidate{
		Candidate:     candidate,
		TitleScore:    titleScore,
		ArtistScore:   artistScore,
		DurationScore: durationScore,
		Bonus:         bonus,
		TotalScore:    total,
	}
}

// qualityBonus awards points for markers of official uploads. The
// topic/official/vevo tier is mutually exclusive with only the
// highest-priority match applying; the audio and verified bonuses stack on
// top.
func qualityBonus(candidate model.Candidate, verified bool) int {
	title := strings.ToLower(candidate.Title)
	channel := strings.ToLower(candidate.Channel)

	bonus := 0
	switch {
	case strings.Contains(channel, " - topic"):
		bonus += 15
	case strings.Contains(title, "official") || strings.Contains(channel, "official"):
		bonus += 10
	case strings.Contains(channel, "vevo"):
		bonus += 8
	}

	if strings.Contains(title, "official audio") {
		bonus += 10
	} else if strings.Contains(title, "audio") {
		bonus += 5
	}

	if verified {
		bonus += 10
	}

	return bonus
}
