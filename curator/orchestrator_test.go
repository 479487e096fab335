package curator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shivaylamba/curator/content"
	"github.com/shivaylamba/curator/search"
)

// fakeChat counts AI calls and replays a canned response.
type fakeChat struct {
	model    string
	response string
	calls    int
	failWith error
	closed   bool
	prompts  []string
}

func (f *fakeChat) Send(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.failWith != nil {
		return "", f.failWith
	}
	return f.response, nil
}

func (f *fakeChat) Model() string { return f.model }
func (f *fakeChat) Close()        { f.closed = true }

// fakeSearch counts search calls.
type fakeSearch struct {
	results  []search.Result
	calls    int
	failWith error
}

func (f *fakeSearch) Name() string    { return "fake" }
func (f *fakeSearch) Available() bool { return f.failWith == nil }

func (f *fakeSearch) Search(ctx context.Context, query string, opts search.Options) ([]search.Result, error) {
	f.calls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.results, nil
}

func newTestOrchestrator(chat *fakeChat, searcher *fakeSearch) *Orchestrator {
	session := NewSession("home workouts", content.PlatformAll)
	return NewOrchestrator(session, chat, searcher)
}

func TestGenerateCachesResult(t *testing.T) {
	chat := &fakeChat{model: "m", response: "## Script\nline one"}
	searcher := &fakeSearch{results: []search.Result{{Title: "t", URL: "u", Snippet: "s"}}}
	o := newTestOrchestrator(chat, searcher)

	first := o.Generate(context.Background(), content.TypeScript, false)
	if !first.OK() {
		t.Fatalf("first generate failed: %s", first.Err)
	}

	second := o.Generate(context.Background(), content.TypeScript, false)
	if !second.OK() {
		t.Fatalf("second generate failed: %s", second.Err)
	}
	if chat.calls != 1 {
		t.Errorf("expected 1 AI call across two generates, got %d", chat.calls)
	}
	if second.Text != first.Text {
		t.Error("cached generate should return identical text")
	}
}

func TestGenerateRegenerateBypassesCache(t *testing.T) {
	chat := &fakeChat{model: "m", response: "## Script\nbody"}
	o := newTestOrchestrator(chat, &fakeSearch{})

	o.Generate(context.Background(), content.TypeScript, false)
	o.Generate(context.Background(), content.TypeScript, true)

	if chat.calls != 2 {
		t.Errorf("regenerate should force a fresh AI call, got %d calls", chat.calls)
	}
}

func TestGenerateCleansResponse(t *testing.T) {
	chat := &fakeChat{model: "m", response: "Sure, here you go!\n## Hooks\n1. First hook"}
	o := newTestOrchestrator(chat, &fakeSearch{})

	res := o.Generate(context.Background(), content.TypeHooks, false)
	if !res.OK() {
		t.Fatalf("generate failed: %s", res.Err)
	}
	if !strings.HasPrefix(res.Text, "## Hooks") {
		t.Errorf("preamble should be stripped, got %q", res.Text)
	}

	cached, _ := o.Session().Cache().Get(content.TypeHooks)
	if cached != res.Text {
		t.Error("cached text should match the cleaned result")
	}
}

func TestGenerateSearchFailureDegrades(t *testing.T) {
	chat := &fakeChat{model: "m", response: "## Ideas\n1. idea"}
	searcher := &fakeSearch{failWith: errors.New("api down")}
	o := newTestOrchestrator(chat, searcher)

	res := o.Generate(context.Background(), content.TypeIdeas, false)
	if !res.OK() {
		t.Fatalf("search failure should not fail generation: %s", res.Err)
	}
	if chat.calls != 1 {
		t.Errorf("expected 1 AI call, got %d", chat.calls)
	}
	if !strings.Contains(chat.prompts[0], "none available") {
		t.Error("degraded prompt should carry the no-context placeholder")
	}
}

func TestGenerateAIFailureReturnsFailure(t *testing.T) {
	chat := &fakeChat{model: "m", failWith: errors.New("rate limited")}
	o := newTestOrchestrator(chat, &fakeSearch{})

	res := o.Generate(context.Background(), content.TypeScript, false)
	if res.OK() {
		t.Fatal("expected failure result")
	}
	if !strings.Contains(res.Err, "rate limited") {
		t.Errorf("failure should carry the cause, got %q", res.Err)
	}
	if o.Session().Cache().Len() != 0 {
		t.Error("failed generation should not populate the cache")
	}
}

func TestGenerateTopicChangeInvalidatesCache(t *testing.T) {
	chat := &fakeChat{model: "m", response: "## Script\nbody"}
	o := newTestOrchestrator(chat, &fakeSearch{})

	o.Generate(context.Background(), content.TypeScript, false)
	o.Session().SetTopic("meal prep")
	o.Generate(context.Background(), content.TypeScript, false)

	if chat.calls != 2 {
		t.Errorf("topic change should force regeneration, got %d calls", chat.calls)
	}
}

func TestRefineWithoutCacheMakesNoNetworkCall(t *testing.T) {
	chat := &fakeChat{model: "m", response: "anything"}
	searcher := &fakeSearch{}
	o := newTestOrchestrator(chat, searcher)

	res := o.Refine(context.Background(), content.TypeScript, "make it shorter")
	if res.OK() {
		t.Fatal("refine without cached content should fail")
	}
	if chat.calls != 0 || searcher.calls != 0 {
		t.Errorf("refine without cache made network calls: ai=%d search=%d", chat.calls, searcher.calls)
	}
}

func TestRefineOverwritesCache(t *testing.T) {
	chat := &fakeChat{model: "m", response: "## Script\noriginal"}
	o := newTestOrchestrator(chat, &fakeSearch{})

	o.Generate(context.Background(), content.TypeScript, false)

	chat.response = "## Script\nrefined"
	res := o.Refine(context.Background(), content.TypeScript, "punchier")
	if !res.OK() {
		t.Fatalf("refine failed: %s", res.Err)
	}

	cached, _ := o.Session().Cache().Get(content.TypeScript)
	if cached != "## Script\nrefined" {
		t.Errorf("refine should overwrite the cache, got %q", cached)
	}
}

func TestMoreVariationsDoesNotOverwriteCache(t *testing.T) {
	chat := &fakeChat{model: "m", response: "## Hooks\noriginal"}
	o := newTestOrchestrator(chat, &fakeSearch{})

	o.Generate(context.Background(), content.TypeHooks, false)

	chat.response = "## Hooks\nvariations"
	res := o.MoreVariations(context.Background(), content.TypeHooks)
	if !res.OK() {
		t.Fatalf("variations failed: %s", res.Err)
	}
	if res.Text != "## Hooks\nvariations" {
		t.Errorf("unexpected variations text: %q", res.Text)
	}

	cached, _ := o.Session().Cache().Get(content.TypeHooks)
	if cached != "## Hooks\noriginal" {
		t.Errorf("variations should not overwrite the cache, got %q", cached)
	}
}

func TestMoreVariationsWithoutCacheFails(t *testing.T) {
	chat := &fakeChat{model: "m"}
	o := newTestOrchestrator(chat, &fakeSearch{})

	if res := o.MoreVariations(context.Background(), content.TypeHooks); res.OK() {
		t.Error("variations without cached content should fail")
	}
	if chat.calls != 0 {
		t.Errorf("variations without cache made %d AI calls", chat.calls)
	}
}

func TestSwitchModelKeepsOldClientOnFailure(t *testing.T) {
	chat := &fakeChat{model: "old", response: "## X\nbody"}
	o := newTestOrchestrator(chat, &fakeSearch{})
	o.WithChatFactory(func(spec string) (ChatClient, error) {
		return nil, fmt.Errorf("unknown model %q", spec)
	})

	if err := o.SwitchModel("bogus"); err == nil {
		t.Fatal("expected switch error")
	}
	if o.Model() != "old" {
		t.Errorf("failed switch should keep the previous client, got %q", o.Model())
	}
	if chat.closed {
		t.Error("failed switch should not close the previous client")
	}
}

func TestSwitchModelReplacesClient(t *testing.T) {
	chat := &fakeChat{model: "old"}
	o := newTestOrchestrator(chat, &fakeSearch{})
	o.WithChatFactory(func(spec string) (ChatClient, error) {
		return &fakeChat{model: spec}, nil
	})

	if err := o.SwitchModel("gpt-5.2"); err != nil {
		t.Fatalf("switch failed: %v", err)
	}
	if o.Model() != "gpt-5.2" {
		t.Errorf("model = %q, want gpt-5.2", o.Model())
	}
	if !chat.closed {
		t.Error("old client should be closed after a successful switch")
	}
}

func TestSwitchModelWithoutFactoryFails(t *testing.T) {
	o := newTestOrchestrator(&fakeChat{model: "m"}, &fakeSearch{})
	if err := o.SwitchModel("anything"); err == nil {
		t.Error("switch without a factory should fail")
	}
}

func TestGenerateIdeasIssuesMultipleQueries(t *testing.T) {
	chat := &fakeChat{model: "m", response: "## Ideas\n1. idea"}
	searcher := &fakeSearch{results: []search.Result{{Title: "t"}}}
	o := newTestOrchestrator(chat, searcher)

	o.Generate(context.Background(), content.TypeIdeas, false)
	if searcher.calls < 2 {
		t.Errorf("ideas generation should fan out multiple queries, got %d", searcher.calls)
	}
}
