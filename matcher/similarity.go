package matcher

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Similarity computes a character-level sequence-matcher ratio between two
// strings, scaled to 0-100: 2 * matched characters / (len(a) + len(b)).
// Callers are expected to pass slugified strings. Returns 0 if either input
// is empty.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	m := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return m.Ratio() * 100
}
