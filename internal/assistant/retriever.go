package assistant

import (
	"context"
	"log"
	"net/url"
	"strings"

	"web-chatter/internal/scrape"
	"web-chatter/internal/search"
	"web-chatter/internal/session"
)

// NoContent marks a turn where no URL yielded usable text. The responder
// checks for it and leaves the web-context block out of the prompt.
const NoContent = "No content found from top URLs."

const (
	defaultResultLimit  = 5
	filteredResultLimit = 10
)

// Retriever fetches and extracts page text for a resolved query. It never
// returns an error: every upstream failure degrades to NoContent.
type Retriever struct {
	provider  search.Provider
	extractor *scrape.Extractor
	trusted   []string
	limit     int
}

func NewRetriever(provider search.Provider, extractor *scrape.Extractor, trustedDomains []string, limit int) *Retriever {
	if limit <= 0 {
		limit = defaultResultLimit
	}
	return &Retriever{
		provider:  provider,
		extractor: extractor,
		trusted:   trustedDomains,
		limit:     limit,
	}
}

// Retrieve returns the combined page text for this turn, or NoContent.
// Side effects on success for a specific, non-follow-up question: the
// tracked entity becomes the question and the text is cached under it.
func (r *Retriever) Retrieve(ctx context.Context, sess *session.Session, question string, rq Resolved) string {
	if text, ok := sess.CachedContext(question); ok {
		return text
	}

	urls := r.candidateURLs(ctx, rq)
	var texts []string
	for _, u := range urls {
		page := r.extractor.Extract(ctx, u)
		if page.Err != nil || page.Text == "" {
			continue
		}
		texts = append(texts, page.Text)
	}

	if len(texts) == 0 {
		return NoContent
	}
	combined := strings.Join(texts, "\n\n")

	if !rq.FollowUp && IsSpecific(question) {
		sess.SetEntity(session.Entity{Type: "topic", Name: question})
		sess.CacheContext(question, combined)
	}
	return combined
}

func (r *Retriever) candidateURLs(ctx context.Context, rq Resolved) []string {
	if rq.DirectURL != "" {
		return []string{rq.DirectURL}
	}

	limit := r.limit
	if len(r.trusted) > 0 && limit < filteredResultLimit {
		limit = filteredResultLimit
	}

	results, err := r.provider.Search(ctx, rq.Query, limit)
	if err != nil {
		log.Printf("search failed for %q: %v", rq.Query, err)
		return nil
	}

	var urls []string
	for _, res := range results {
		// The allow-list applies to search results only, never to a URL
		// the user supplied themselves.
		if len(r.trusted) > 0 && !r.isTrusted(res.Link) {
			continue
		}
		urls = append(urls, res.Link)
	}
	return urls
}

func (r *Retriever) isTrusted(link string) bool {
	parsed, err := url.Parse(link)
	if err != nil {
		return false
	}
	host := strings.ToLower(parsed.Hostname())
	for _, domain := range r.trusted {
		domain = strings.ToLower(domain)
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}
