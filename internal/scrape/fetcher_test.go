package scrape

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHTTPFetcherExtractsText(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><head><title>t</title></head><body><h1>Heading</h1><p>Some body text.</p></body></html>`))
	}))
	defer ts.Close()

	f := NewHTTPFetcher(nil)
	text, err := f.Fetch(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if !strings.Contains(text, "Heading") || !strings.Contains(text, "Some body text.") {
		t.Fatalf("extracted text wrong: %q", text)
	}
	if strings.Contains(text, "<p>") {
		t.Fatalf("html markup leaked: %q", text)
	}
}

func TestHTTPFetcherErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer ts.Close()

	f := NewHTTPFetcher(nil)
	if _, err := f.Fetch(context.Background(), ts.URL); err == nil {
		t.Fatalf("expected error on 403")
	}
}

type stubFetcher struct {
	text string
	err  error
}

func (s *stubFetcher) Fetch(context.Context, string) (string, error) { return s.text, s.err }

func TestExtractorPrefersPrimary(t *testing.T) {
	primary := &stubFetcher{text: "primary text"}
	fallback := &stubFetcher{text: "fallback text"}
	e := NewExtractor(primary, fallback, 0)

	page := e.Extract(context.Background(), "https://example.com")
	if page.Err != nil || page.Text != "primary text" {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestExtractorFallsBackOnPrimaryFailure(t *testing.T) {
	primary := &stubFetcher{err: errors.New("blocked")}
	fallback := &stubFetcher{text: "fallback text"}
	e := NewExtractor(primary, fallback, 0)

	page := e.Extract(context.Background(), "https://example.com")
	if page.Err != nil || page.Text != "fallback text" {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestExtractorFallsBackOnEmptyPrimary(t *testing.T) {
	primary := &stubFetcher{text: ""}
	fallback := &stubFetcher{text: "rendered text"}
	e := NewExtractor(primary, fallback, 0)

	page := e.Extract(context.Background(), "https://example.com")
	if page.Err != nil || page.Text != "rendered text" {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestExtractorReportsDoubleFailure(t *testing.T) {
	primary := &stubFetcher{err: errors.New("blocked")}
	fallback := &stubFetcher{err: errors.New("render timeout")}
	e := NewExtractor(primary, fallback, 0)

	page := e.Extract(context.Background(), "https://example.com")
	if page.Err == nil {
		t.Fatalf("double failure must be reported: %+v", page)
	}
	if page.Text != "" {
		t.Fatalf("failed page must carry no text: %+v", page)
	}
}

func TestExtractorCapsText(t *testing.T) {
	primary := &stubFetcher{text: strings.Repeat("a", 100)}
	e := NewExtractor(primary, nil, 10)

	page := e.Extract(context.Background(), "https://example.com")
	if len(page.Text) != 10 {
		t.Fatalf("text not capped: %d", len(page.Text))
	}
}
