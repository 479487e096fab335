// Package storage provides session transcript storage abstraction.
//
// Information Hiding:
// - Storage backend implementation details hidden behind interface
// - Allows swapping between memory and other backends without API changes

package storage

import (
	"context"
	"time"

	"github.com/shivaylamba/curator/content"
)

// EntryKind classifies a transcript entry.
type EntryKind string

const (
	// EntryGeneration records a successful content generation.
	EntryGeneration EntryKind = "generation"
	// EntryRefinement records a refinement of prior content.
	EntryRefinement EntryKind = "refinement"
	// EntryTopicChange records a topic switch.
	EntryTopicChange EntryKind = "topic"
)

// Entry is one event in a session transcript.
type Entry struct {
	Time        time.Time
	Kind        EntryKind
	ContentType content.Type
	Detail      string
}

// TranscriptStorage defines the interface for storing session transcripts.
type TranscriptStorage interface {
	// Append appends an entry to a session's transcript.
	Append(ctx context.Context, sessionID string, entry Entry) error

	// Load loads the transcript for a session.
	// Returns empty slice (not nil) if the session doesn't exist.
	Load(ctx context.Context, sessionID string) ([]Entry, error)

	// Delete deletes the transcript for a session.
	Delete(ctx context.Context, sessionID string) error

	// ListSessions lists all session IDs.
	ListSessions(ctx context.Context) ([]string, error)
}
