package search

import (
	"fmt"

	"web-chatter/internal/config"
)

// NewFromConfig creates the provider selected by SEARCH_PROVIDER.
func NewFromConfig(cfg *config.Config) (Provider, error) {
	switch cfg.SearchProvider {
	case config.SearchSerpAPI:
		return NewSerpAPI(cfg.SerpAPIKey), nil
	case config.SearchGoogle:
		return NewGoogle(cfg.GoogleCSEKey, cfg.GoogleCSEID)
	default:
		return nil, fmt.Errorf("unknown search provider: %s", cfg.SearchProvider)
	}
}
