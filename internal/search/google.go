package search

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

// GoogleClient queries the Google Custom Search JSON API through the
// official client. Custom Search caps a single page at 10 results.
type GoogleClient struct {
	svc      *customsearch.Service
	engineID string
}

func NewGoogle(apiKey, engineID string) (*GoogleClient, error) {
	svc, err := customsearch.NewService(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create customsearch service: %w", err)
	}
	return &GoogleClient{svc: svc, engineID: engineID}, nil
}

func (c *GoogleClient) Name() string { return "google" }

func (c *GoogleClient) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 5
	}
	if limit > 10 {
		limit = 10
	}

	resp, err := c.svc.Cse.List().Cx(c.engineID).Q(query).Num(int64(limit)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("customsearch request failed: %w", err)
	}

	results := make([]Result, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Link == "" {
			continue
		}
		results = append(results, Result{
			Title:   strings.TrimSpace(item.Title),
			Link:    strings.TrimSpace(item.Link),
			Snippet: strings.TrimSpace(item.Snippet),
		})
	}
	return results, nil
}
