package app

import (
	"fmt"
	"log"

	"web-chatter/internal/assistant"
	"web-chatter/internal/config"
	"web-chatter/internal/llm"
	"web-chatter/internal/scrape"
	"web-chatter/internal/search"
	"web-chatter/internal/storage"
)

// BuildEngine wires the full per-turn pipeline from config. Shared by every
// frontend binary.
func BuildEngine(cfg *config.Config) (*assistant.Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	llmClient, err := llm.NewFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create llm client: %w", err)
	}

	provider, err := search.NewFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create search provider: %w", err)
	}

	extractor := scrape.NewExtractor(
		scrape.NewHTTPFetcher(nil),
		scrape.NewHeadlessFetcher(cfg.FallbackTimeout),
		cfg.PageCharLimit,
	)

	var rec storage.Recorder
	if cfg.LogFilePath != "" {
		fr, err := storage.NewFileRecorder(cfg.LogFilePath)
		if err != nil {
			log.Printf("failed to init turn recorder: %v", err)
		} else {
			rec = fr
		}
	}

	retriever := assistant.NewRetriever(provider, extractor, cfg.TrustedDomains, cfg.ResultLimit)
	responder := assistant.NewResponder(llmClient, cfg.HistoryWindow, cfg.PromptCharLimit)
	return assistant.NewEngine(retriever, responder, rec), nil
}
