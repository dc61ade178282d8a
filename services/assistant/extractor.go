package assistant

import (
	"regexp"
	"strings"
)

// DefaultSearchTerms is returned when nothing usable can be extracted.
const DefaultSearchTerms = "accessible places near me"

type captureKind int

const (
	captureFirst    captureKind = iota // use the first capture group
	captureCombined                    // join two groups as "X near Y"
	capturePrefixed                    // join qualifier + subject, e.g. "accessible shops"
)

type searchPattern struct {
	re   *regexp.Regexp
	kind captureKind
}

// searchPatterns is tried in order, most specific first; the first match wins.
var searchPatterns = []searchPattern{
	{regexp.MustCompile(`(?i)find (.*?) near`), captureFirst},
	{regexp.MustCompile(`(?i)show me (.*?) near`), captureFirst},
	{regexp.MustCompile(`(?i)where are (.*?) near`), captureFirst},
	{regexp.MustCompile(`(?i)(.+?) near (.+)`), captureCombined},
	{regexp.MustCompile(`(?i)\b(` + categoryAlternation + `)\b.*near`), captureFirst},
	{regexp.MustCompile(`(?i)(accessible|wheelchair) (.*?) near`), capturePrefixed},
}

// categoryPattern backs the last-resort fallback: a bare category keyword
// anywhere in the utterance.
var categoryPattern = regexp.MustCompile(`(?i)\b(` + categoryAlternation + `)\b`)

// ExtractSearchTerms derives a human-readable map query from the utterance.
// It never returns an empty string: garbage input yields DefaultSearchTerms.
func ExtractSearchTerms(utterance string) string {
	for _, p := range searchPatterns {
		m := p.re.FindStringSubmatch(utterance)
		if m == nil {
			continue
		}
		switch p.kind {
		case captureCombined:
			return strings.TrimSpace(m[1]) + " near " + strings.TrimSpace(m[2])
		case capturePrefixed:
			return strings.TrimSpace(m[1]) + " " + strings.TrimSpace(m[2])
		default:
			if term := strings.TrimSpace(m[1]); term != "" {
				return term
			}
		}
	}

	if m := categoryPattern.FindString(utterance); m != "" {
		return m + " near me"
	}
	return DefaultSearchTerms
}

// nearMentionPattern pulls the place mention following "near".
var nearMentionPattern = regexp.MustCompile(`(?i)near (.+)`)

// NearMention returns the place mention following "near", or "" if absent.
func NearMention(utterance string) string {
	m := nearMentionPattern.FindStringSubmatch(utterance)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
