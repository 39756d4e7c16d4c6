package matcher

import "strings"

// HasCommonWords reports whether any word of the track title appears in the
// candidate title. It's a cheap pre-filter: candidates sharing no words with
// the track are rejected before any scoring happens.
func HasCommonWords(title, candidateTitle string) bool {
	candidateSlug := Slugify(candidateTitle)

	for _, word := range strings.Split(Slugify(title), "-") {
		if word != "" && strings.Contains(candidateSlug, word) {
			return true
		}
	}

	return false
}

// ForbiddenWords returns the markers from words found in the candidate title
// but not in the original title, so a track legitimately called "Live" isn't
// penalized for it. Both titles are compared as de-hyphenated slugs.
func ForbiddenWords(words []string, title, candidateTitle string) []string {
	titleSlug := strings.ReplaceAll(Slugify(title), "-", "")
	candidateSlug := strings.ReplaceAll(Slugify(candidateTitle), "-", "")

	var matched []string
	for _, word := range words {
		if strings.Contains(candidateSlug, word) && !strings.Contains(titleSlug, word) {
			matched = append(matched, word)
		}
	}

	return matched
}
