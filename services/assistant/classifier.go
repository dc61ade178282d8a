package assistant

import (
	"regexp"
	"strings"
)

// categoryAlternation covers the fixed inventory of place categories the
// assistant knows how to ground on a map.
const categoryAlternation = `hospitals?|restaurants?|shops?|pharmacies|pharmacy|banks?|atms?|gas stations?|grocery stores?|cafes?|libraries|library|parks?|accessible places`

// locationPatterns is the ordered rule table for location-query detection.
// A match on any rule classifies the utterance as location-seeking.
var locationPatterns = []*regexp.Regexp{
	// generic proximity phrasing
	regexp.MustCompile(`(?i)\b(near me|nearby|close by|around here|directions to)\b`),
	// category-specific "near" phrasing, e.g. "hospitals near"
	regexp.MustCompile(`(?i)\b(` + categoryAlternation + `)\b.*\bnear\b`),
	// catch-all "X near Y" shape
	regexp.MustCompile(`(?i)\S.*\bnear\b\s+\S`),
}

// IsLocationQuery reports whether the utterance is asking about places.
// Best-effort heuristic: false positives and negatives are acceptable, the
// result only shapes the prompt and the map payload. Pure function, never fails.
func IsLocationQuery(utterance string) bool {
	trimmed := strings.TrimSpace(utterance)
	if trimmed == "" {
		return false
	}
	for _, p := range locationPatterns {
		if p.MatchString(trimmed) {
			return true
		}
	}
	return false
}
