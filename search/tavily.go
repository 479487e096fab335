// Tavily search provider implementation.
//
// Information Hiding:
// - Tavily REST endpoint and request/response JSON hidden
// - HTTP client, timeout, and error mapping hidden

package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTavilyBaseURL = "https://api.tavily.com"

// TavilyProvider implements Provider using the Tavily search API.
type TavilyProvider struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

// NewTavilyProvider creates a Tavily provider. An empty API key yields a
// provider that reports unavailable instead of failing requests with 401s.
func NewTavilyProvider(apiKey string, timeoutSecs uint64) *TavilyProvider {
	return &TavilyProvider{
		client: &http.Client{
			Timeout: time.Duration(timeoutSecs) * time.Second,
		},
		apiKey:  apiKey,
		baseURL: defaultTavilyBaseURL,
	}
}

// WithBaseURL overrides the API endpoint (used in tests).
func (p *TavilyProvider) WithBaseURL(url string) *TavilyProvider {
	p.baseURL = url
	return p
}

// Name returns the provider name.
func (p *TavilyProvider) Name() string { return "tavily" }

// Available reports whether an API key is configured.
func (p *TavilyProvider) Available() bool { return p.apiKey != "" }

// tavilyRequest is the wire format for POST /search.
type tavilyRequest struct {
	Query          string   `json:"query"`
	MaxResults     int      `json:"max_results,omitempty"`
	Topic          string   `json:"topic,omitempty"`
	Days           int      `json:"days,omitempty"`
	StartDate      string   `json:"start_date,omitempty"`
	EndDate        string   `json:"end_date,omitempty"`
	IncludeDomains []string `json:"include_domains,omitempty"`
}

type tavilyResult struct {
	Title         string  `json:"title"`
	URL           string  `json:"url"`
	Content       string  `json:"content"`
	PublishedDate string  `json:"published_date"`
	Score         float64 `json:"score"`
}

type tavilyResponse struct {
	Results []tavilyResult `json:"results"`
}

// Search runs a query against the Tavily API.
func (p *TavilyProvider) Search(ctx context.Context, query string, opts Options) ([]Result, error) {
	if !p.Available() {
		return nil, ErrUnavailable
	}

	reqBody := tavilyRequest{
		Query:          query,
		MaxResults:     opts.MaxResults,
		IncludeDomains: opts.Domains,
	}
	if !opts.DateFrom.IsZero() {
		// Recency-biased searches use the news topic with a day window,
		// which ranks fresh results higher than a bare date filter.
		reqBody.Topic = "news"
		reqBody.Days = int(time.Since(opts.DateFrom).Hours()/24) + 1
		reqBody.StartDate = opts.DateFrom.Format("2006-01-02")
	}
	if !opts.DateTo.IsZero() {
		reqBody.EndDate = opts.DateTo.Format("2006-01-02")
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/search", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("search API error: %s: %s", resp.Status, truncate(string(body), 200))
	}

	var parsed tavilyResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	results := make([]Result, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		results = append(results, Result{
			Title:         r.Title,
			URL:           r.URL,
			Snippet:       r.Content,
			PublishedDate: r.PublishedDate,
			Score:         r.Score,
		})
	}
	return results, nil
}

// truncate shortens a string for error messages.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// Verify TavilyProvider implements Provider
var _ Provider = (*TavilyProvider)(nil)
