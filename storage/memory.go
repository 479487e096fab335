// Package storage provides in-memory transcript storage.
//
// Information Hiding:
// - Map storage structure hidden from users
// - Thread-safe access via RWMutex hidden behind interface
// - Suitable for ephemeral interactive sessions

package storage

import (
	"context"
	"sync"
)

// InMemoryTranscript implements TranscriptStorage using an in-memory map.
// Data is lost when the process terminates.
type InMemoryTranscript struct {
	mu       sync.RWMutex
	sessions map[string][]Entry
}

// NewInMemoryTranscript creates a new in-memory transcript store.
func NewInMemoryTranscript() *InMemoryTranscript {
	return &InMemoryTranscript{
		sessions: make(map[string][]Entry),
	}
}

// Append appends an entry to a session's transcript.
func (s *InMemoryTranscript) Append(ctx context.Context, sessionID string, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sessionID] = append(s.sessions[sessionID], entry)
	return nil
}

// Load loads the transcript for a session.
// Returns empty slice if the session doesn't exist.
func (s *InMemoryTranscript) Load(ctx context.Context, sessionID string) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, ok := s.sessions[sessionID]
	if !ok {
		return []Entry{}, nil
	}

	// Return a copy to avoid external mutations
	copied := make([]Entry, len(entries))
	copy(copied, entries)
	return copied, nil
}

// Delete deletes the transcript for a session.
func (s *InMemoryTranscript) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}

// ListSessions lists all session IDs.
func (s *InMemoryTranscript) ListSessions(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]string, 0, len(s.sessions))
	for sessionID := range s.sessions {
		sessions = append(sessions, sessionID)
	}
	return sessions, nil
}

// Verify InMemoryTranscript implements TranscriptStorage
var _ TranscriptStorage = (*InMemoryTranscript)(nil)
