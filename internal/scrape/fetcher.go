package scrape

import (
	"context"
	"log"
)

// Fetcher turns a URL into extracted plain text.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Page is the outcome of extracting one URL. Err is set when both the
// primary and the fallback path failed; Text is never set alongside it.
type Page struct {
	URL  string
	Text string
	Err  error
}

// Extractor runs the primary fetcher and falls back to the headless one
// when the primary fails or yields nothing.
type Extractor struct {
	primary   Fetcher
	fallback  Fetcher
	charLimit int
}

func NewExtractor(primary, fallback Fetcher, charLimit int) *Extractor {
	return &Extractor{primary: primary, fallback: fallback, charLimit: charLimit}
}

func (e *Extractor) Extract(ctx context.Context, url string) Page {
	text, err := e.primary.Fetch(ctx, url)
	if err != nil || text == "" {
		if err != nil {
			log.Printf("primary fetch failed for %s: %v", url, err)
		}
		if e.fallback == nil {
			if err == nil {
				err = errEmptyPage
			}
			return Page{URL: url, Err: err}
		}
		text, err = e.fallback.Fetch(ctx, url)
		if err != nil {
			log.Printf("fallback fetch failed for %s: %v", url, err)
			return Page{URL: url, Err: err}
		}
		if text == "" {
			return Page{URL: url, Err: errEmptyPage}
		}
	}
	if e.charLimit > 0 && len(text) > e.charLimit {
		text = text[:e.charLimit]
	}
	return Page{URL: url, Text: text}
}
