package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestUnavailableProvider(t *testing.T) {
	p := Unavailable{}

	if p.Available() {
		t.Error("expected Unavailable to report not available")
	}

	_, err := p.Search(context.Background(), "anything", DefaultOptions())
	if err != ErrUnavailable {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestTavilyWithoutKeyIsUnavailable(t *testing.T) {
	p := NewTavilyProvider("", 10)

	if p.Available() {
		t.Error("expected provider without key to report not available")
	}

	_, err := p.Search(context.Background(), "anything", DefaultOptions())
	if err != ErrUnavailable {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestTavilySearchParsesResults(t *testing.T) {
	var gotAuth string
	var gotReq map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]interface{}{
				{"title": "First", "url": "https://a.example", "content": "snippet one", "score": 0.9},
				{"title": "Second", "url": "https://b.example", "content": "snippet two", "published_date": "2026-08-01", "score": 0.5},
			},
		})
	}))
	defer server.Close()

	p := NewTavilyProvider("test-key", 10).WithBaseURL(server.URL)

	results, err := p.Search(context.Background(), "beekeeping", Options{MaxResults: 2})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if gotAuth != "Bearer test-key" {
		t.Errorf("expected bearer auth, got %q", gotAuth)
	}
	if gotReq["query"] != "beekeeping" {
		t.Errorf("expected query in request, got %v", gotReq["query"])
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Title != "First" || results[0].Snippet != "snippet one" {
		t.Errorf("unexpected first result: %+v", results[0])
	}
	if results[1].PublishedDate != "2026-08-01" {
		t.Errorf("expected published date carried through, got %q", results[1].PublishedDate)
	}
}

func TestTavilySearchRecencyWindow(t *testing.T) {
	var gotReq map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"results": []map[string]interface{}{}})
	}))
	defer server.Close()

	p := NewTavilyProvider("test-key", 10).WithBaseURL(server.URL)

	opts := Options{MaxResults: 3, DateFrom: time.Now().AddDate(0, 0, -7)}
	if _, err := p.Search(context.Background(), "trends", opts); err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if gotReq["topic"] != "news" {
		t.Errorf("expected news topic for recency search, got %v", gotReq["topic"])
	}
	if gotReq["days"] == nil {
		t.Error("expected day window in recency search")
	}
}

func TestTavilySearchAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	p := NewTavilyProvider("bad-key", 10).WithBaseURL(server.URL)

	_, err := p.Search(context.Background(), "anything", DefaultOptions())
	if err == nil {
		t.Fatal("expected error for non-2xx response")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("expected status in error, got %v", err)
	}
}

func TestFormatResults(t *testing.T) {
	formatted := FormatResults([]Result{
		{Title: "One", URL: "https://one.example", Snippet: "first snippet"},
		{Title: "Two", Snippet: "second snippet", PublishedDate: "2026-08-15"},
	})

	if !strings.Contains(formatted, "1. One") || !strings.Contains(formatted, "2. Two") {
		t.Errorf("expected numbered titles, got %q", formatted)
	}
	if !strings.Contains(formatted, "https://one.example") {
		t.Errorf("expected URL, got %q", formatted)
	}
	if !strings.Contains(formatted, "published: 2026-08-15") {
		t.Errorf("expected published date, got %q", formatted)
	}

	if FormatResults(nil) != "" {
		t.Error("expected empty string for no results")
	}
}
