package llm

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// scriptedProvider replays canned responses as streamed chunks.
type scriptedProvider struct {
	responses []string
	calls     int
	failWith  error
}

func (p *scriptedProvider) Name() string  { return "scripted" }
func (p *scriptedProvider) Model() string { return "scripted-1" }

func (p *scriptedProvider) Chat(ctx context.Context, messages []ChatMessage) (LLMResponse, error) {
	if p.failWith != nil {
		return LLMResponse{}, p.failWith
	}
	resp := p.responses[p.calls%len(p.responses)]
	p.calls++
	return LLMResponse{Content: resp}, nil
}

func (p *scriptedProvider) StreamChat(ctx context.Context, messages []ChatMessage, chunks chan<- string) (*TokenUsage, error) {
	if p.failWith != nil {
		return nil, p.failWith
	}
	resp := p.responses[p.calls%len(p.responses)]
	p.calls++
	// Emit in small chunks to exercise accumulation
	for i := 0; i < len(resp); i += 3 {
		end := i + 3
		if end > len(resp) {
			end = len(resp)
		}
		select {
		case chunks <- resp[i:end]:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return &TokenUsage{TotalTokens: 42}, nil
}

func TestSessionSendAccumulatesChunks(t *testing.T) {
	provider := &scriptedProvider{responses: []string{"## Answer\nfull response text"}}
	session := NewSession(provider, "system prompt")

	var streamed strings.Builder
	session.OnChunk(func(c string) { streamed.WriteString(c) })

	got, err := session.Send(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if got != "## Answer\nfull response text" {
		t.Errorf("unexpected accumulated response: %q", got)
	}
	if streamed.String() != got {
		t.Errorf("chunk callback saw %q, want %q", streamed.String(), got)
	}
}

func TestSessionHistoryGrowsPerExchange(t *testing.T) {
	provider := &scriptedProvider{responses: []string{"first", "second"}}
	session := NewSession(provider, "system")

	if _, err := session.Send(context.Background(), "one"); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if _, err := session.Send(context.Background(), "two"); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	history := session.History()
	if len(history) != 4 {
		t.Fatalf("expected 4 history messages, got %d", len(history))
	}
	if history[0].Role != "user" || history[0].Content != "one" {
		t.Errorf("unexpected first message: %+v", history[0])
	}
	if history[3].Role != "assistant" || history[3].Content != "second" {
		t.Errorf("unexpected last message: %+v", history[3])
	}
}

func TestSessionSendErrorLeavesHistoryUntouched(t *testing.T) {
	provider := &scriptedProvider{failWith: fmt.Errorf("boom")}
	session := NewSession(provider, "system")

	if _, err := session.Send(context.Background(), "hello"); err == nil {
		t.Fatal("expected error from failing provider")
	}
	if len(session.History()) != 0 {
		t.Errorf("expected empty history after failed send, got %d", len(session.History()))
	}
}

func TestSessionClosedSendFails(t *testing.T) {
	provider := &scriptedProvider{responses: []string{"x"}}
	session := NewSession(provider, "system")
	session.Close()

	if _, err := session.Send(context.Background(), "hello"); err == nil {
		t.Error("expected error sending on closed session")
	}
}
