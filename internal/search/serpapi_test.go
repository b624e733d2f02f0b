package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSerpAPISearchParsesOrganicResults(t *testing.T) {
	var gotQuery, gotKey string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotKey = r.URL.Query().Get("api_key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"organic_results": [
				{"title": "Go", "link": "https://go.dev", "snippet": "the go website"},
				{"title": "No link entry", "snippet": "dropped"},
				{"title": "Wiki", "link": "https://en.wikipedia.org/wiki/Go", "snippet": "wiki"}
			]
		}`))
	}))
	defer ts.Close()

	c := NewSerpAPI("test-key")
	c.endpoint = ts.URL

	results, err := c.Search(context.Background(), "golang", 5)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if gotQuery != "golang" || gotKey != "test-key" {
		t.Fatalf("unexpected request params: q=%q api_key=%q", gotQuery, gotKey)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results (entry without link dropped), got %d", len(results))
	}
	if results[0].Link != "https://go.dev" || results[0].Title != "Go" {
		t.Fatalf("unexpected first result: %+v", results[0])
	}
}

func TestSerpAPISearchRespectsLimit(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"organic_results": [
			{"link": "https://a.example.com"},
			{"link": "https://b.example.com"},
			{"link": "https://c.example.com"}
		]}`))
	}))
	defer ts.Close()

	c := NewSerpAPI("k")
	c.endpoint = ts.URL

	results, err := c.Search(context.Background(), "q", 2)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("limit not applied: %d", len(results))
	}
}

func TestSerpAPISearchErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	c := NewSerpAPI("k")
	c.endpoint = ts.URL

	if _, err := c.Search(context.Background(), "q", 5); err == nil {
		t.Fatalf("expected error on non-200 status")
	}
}
