package matcher

import (
	"regexp"
	"strings"
)

var (
	slugStripRegex    = regexp.MustCompile(`[^\p{L}\p{N}_\s-]+`)
	slugCollapseRegex = regexp.MustCompile(`[\s-]+`)
)

// Slugify converts free text into the normalized form used for every
// comparison in the matcher: lowercase, punctuation stripped, runs of
// whitespace and hyphens collapsed to single hyphens. It is idempotent, and
// empty input yields an empty string.
func Slugify(text string) string {
	text = strings.ToLower(text)
	text = slugStripRegex.ReplaceAllString(text, "")
	text = slugCollapseRegex.ReplaceAllString(text, "-")
	return strings.Trim(text, "-")
}
