// Package search provides the web-search collaborator: ranked text snippets
// for a query, used as grounding context for content generation.
//
// Information Hiding:
// - Provider API endpoint, authentication, and wire format hidden
// - Missing credentials surface as ErrUnavailable, never as a crash

package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnavailable is returned when no search backend is configured.
// Callers are expected to degrade, not abort.
var ErrUnavailable = errors.New("search: no provider configured")

// Result is a single ranked search hit.
type Result struct {
	Title         string  `json:"title"`
	URL           string  `json:"url"`
	Snippet       string  `json:"snippet"`
	PublishedDate string  `json:"published_date,omitempty"`
	Author        string  `json:"author,omitempty"`
	Score         float64 `json:"score,omitempty"`
}

// Options controls a search request.
type Options struct {
	MaxResults int
	DateFrom   time.Time // zero value = no lower bound
	DateTo     time.Time // zero value = no upper bound
	Domains    []string  // restrict to these domains when non-empty
}

// DefaultOptions returns options with a sensible result count.
func DefaultOptions() Options {
	return Options{MaxResults: 5}
}

// Provider defines the abstract interface for search backends.
type Provider interface {
	// Name returns the provider name (for logging/debugging).
	Name() string

	// Search runs a query and returns ranked results.
	Search(ctx context.Context, query string, opts Options) ([]Result, error)

	// Available reports whether the backend is configured and usable.
	Available() bool
}

// FormatResults renders results as a numbered text block for prompt
// embedding. Empty input yields an empty string.
func FormatResults(results []Result) string {
	if len(results) == 0 {
		return ""
	}

	var b strings.Builder
	for i, r := range results {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r.Title)
		if r.URL != "" {
			fmt.Fprintf(&b, "   %s\n", r.URL)
		}
		if r.PublishedDate != "" {
			fmt.Fprintf(&b, "   published: %s\n", r.PublishedDate)
		}
		if r.Snippet != "" {
			fmt.Fprintf(&b, "   %s\n", r.Snippet)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// Unavailable is a Provider that always reports ErrUnavailable. It stands in
// when no credentials are configured so callers never need a nil check.
type Unavailable struct{}

// Name returns the provider name.
func (Unavailable) Name() string { return "unavailable" }

// Search always fails with ErrUnavailable.
func (Unavailable) Search(ctx context.Context, query string, opts Options) ([]Result, error) {
	return nil, ErrUnavailable
}

// Available reports false.
func (Unavailable) Available() bool { return false }

// Verify Unavailable implements Provider
var _ Provider = Unavailable{}
