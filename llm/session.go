// ChatSession - a long-lived conversation handle over a Provider.
//
// Information Hiding:
// - System prompt placement and history management hidden
// - Streaming accumulation hidden behind a blocking Send

package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// ChatSession holds a conversation with one provider and one system prompt.
// It is created once, reused across prompts, and replaced on model switch.
// Send blocks until the full streamed response has been accumulated; a
// partial response is never returned as success.
type ChatSession struct {
	provider Provider
	system   string
	history  []ChatMessage
	onChunk  func(string)
	closed   bool
}

// NewSession creates a chat session for a provider with a system prompt.
func NewSession(provider Provider, systemPrompt string) *ChatSession {
	return &ChatSession{
		provider: provider,
		system:   systemPrompt,
	}
}

// OnChunk registers a callback invoked for every streamed text delta.
// Used for live display; accumulation happens regardless.
func (s *ChatSession) OnChunk(fn func(string)) *ChatSession {
	s.onChunk = fn
	return s
}

// Provider returns the underlying provider.
func (s *ChatSession) Provider() Provider {
	return s.provider
}

// Model returns the model the session is bound to.
func (s *ChatSession) Model() string {
	return s.provider.Model()
}

// Send sends a prompt and returns the fully accumulated response text.
// On success the exchange is appended to the session history. On error the
// history is left untouched so the session stays usable.
func (s *ChatSession) Send(ctx context.Context, prompt string) (string, error) {
	if s.closed {
		return "", fmt.Errorf("session is closed")
	}

	messages := make([]ChatMessage, 0, len(s.history)+2)
	if s.system != "" {
		messages = append(messages, SystemMessage(s.system))
	}
	messages = append(messages, s.history...)
	messages = append(messages, UserMessage(prompt))

	chunks := make(chan string)
	var builder strings.Builder
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for chunk := range chunks {
			builder.WriteString(chunk)
			if s.onChunk != nil {
				s.onChunk(chunk)
			}
		}
	}()

	_, err := s.provider.StreamChat(ctx, messages, chunks)
	close(chunks)
	wg.Wait()

	if err != nil {
		return "", fmt.Errorf("send failed: %w", err)
	}

	response := builder.String()
	s.history = append(s.history, UserMessage(prompt), AssistantMessage(response))
	return response, nil
}

// History returns a copy of the accumulated exchanges (without the system
// prompt).
func (s *ChatSession) History() []ChatMessage {
	copied := make([]ChatMessage, len(s.history))
	copy(copied, s.history)
	return copied
}

// Close releases the session. Further Sends fail.
func (s *ChatSession) Close() {
	s.closed = true
	s.history = nil
}
