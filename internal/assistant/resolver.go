package assistant

import (
	"regexp"
	"strings"

	"web-chatter/internal/session"
)

// Resolved is the outcome of query resolution for one turn.
type Resolved struct {
	// Query is the effective search query.
	Query string
	// DirectURL, when set, means the question embedded a URL and that page
	// is fetched directly instead of searching.
	DirectURL string
	// FollowUp reports that the question was a vague follow-up and Query
	// was substituted with the tracked entity name.
	FollowUp bool
}

// Phrases that refer back to the current topic without naming it.
// Matched case-insensitively as substrings.
var vaguePhrases = []string{
	"tell me more",
	"more about",
	"more details",
	"what about it",
	"what about this",
	"explain more",
	"and then",
	"go on",
	"continue",
	"elaborate",
}

// siteHint biases a query toward reference sites when a keyword appears.
type siteHint struct {
	keyword string
	sites   []string
}

var siteHints = []siteHint{
	{keyword: "movie", sites: []string{"imdb.com", "rottentomatoes.com"}},
	{keyword: "company", sites: []string{"linkedin.com", "crunchbase.com", "bloomberg.com"}},
}

var urlPattern = regexp.MustCompile(`https?://[^\s]+`)

// Words above this count mark a question as specific enough to become the
// tracked entity once retrieval succeeds.
const specificWordThreshold = 3

// Resolve turns the raw question into an effective search target. Pure:
// the same question and entity always yield the same result.
func Resolve(question string, entity session.Entity) Resolved {
	trimmed := strings.TrimSpace(question)
	lower := strings.ToLower(trimmed)

	if u := urlPattern.FindString(trimmed); u != "" {
		return Resolved{Query: trimmed, DirectURL: u}
	}

	if entity.Name != "" {
		for _, phrase := range vaguePhrases {
			if strings.Contains(lower, phrase) {
				return Resolved{Query: entity.Name, FollowUp: true}
			}
		}
	}

	for _, hint := range siteHints {
		if strings.Contains(lower, hint.keyword) {
			return Resolved{Query: trimmed + " " + siteClause(hint.sites)}
		}
	}

	// No rule matched (including a vague follow-up with nothing tracked
	// yet): the question runs verbatim.
	return Resolved{Query: trimmed}
}

func siteClause(sites []string) string {
	parts := make([]string, len(sites))
	for i, s := range sites {
		parts[i] = "site:" + s
	}
	return strings.Join(parts, " OR ")
}

// IsSpecific reports whether a question is concrete enough to overwrite
// the tracked entity.
func IsSpecific(question string) bool {
	return len(strings.Fields(question)) > specificWordThreshold
}
