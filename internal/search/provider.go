package search

import "context"

// Result is a single organic search hit.
type Result struct {
	Title   string
	Link    string
	Snippet string
}

// Provider abstracts a web search backend.
type Provider interface {
	Search(ctx context.Context, query string, limit int) ([]Result, error)
	Name() string
}
