// Generation orchestrator - decides whether to reuse cache, issue a search,
// build a prompt, and send it to the AI client.
//
// Information Hiding:
// - Search-mode selection per content type hidden
// - Search failures downgraded to degraded context, never surfaced as
//   generation failures
// - AI failures converted to Result failures at this boundary, never thrown
//   past it

package curator

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/shivaylamba/curator/content"
	"github.com/shivaylamba/curator/llm"
	"github.com/shivaylamba/curator/search"
)

// ChatClient is the AI collaborator seen by the orchestrator. Send blocks
// until the full response has been accumulated. *llm.ChatSession satisfies it.
type ChatClient interface {
	Send(ctx context.Context, prompt string) (string, error)
	Model() string
	Close()
}

// Verify *llm.ChatSession implements ChatClient
var _ ChatClient = (*llm.ChatSession)(nil)

// defaultTimeout bounds one generation call. Expiry is a generation
// failure, not a crash.
const defaultTimeout = 120 * time.Second

// Orchestrator mediates between session state, the search collaborator, and
// the AI collaborator. At most one generation call runs at a time.
type Orchestrator struct {
	session    *Session
	chat       ChatClient
	searcher   search.Provider
	timeout    time.Duration
	maxResults int
	logger     *zap.Logger

	// newChat builds a replacement chat client for model switches.
	newChat func(modelSpec string) (ChatClient, error)
}

// NewOrchestrator creates an orchestrator over a session, a chat client and
// a search provider.
func NewOrchestrator(session *Session, chat ChatClient, searcher search.Provider) *Orchestrator {
	return &Orchestrator{
		session:    session,
		chat:       chat,
		searcher:   searcher,
		timeout:    defaultTimeout,
		maxResults: 5,
		logger:     zap.NewNop(),
	}
}

// WithTimeout sets the per-call generation timeout.
func (o *Orchestrator) WithTimeout(d time.Duration) *Orchestrator {
	if d > 0 {
		o.timeout = d
	}
	return o
}

// WithMaxResults sets the search result count.
func (o *Orchestrator) WithMaxResults(n int) *Orchestrator {
	if n > 0 {
		o.maxResults = n
	}
	return o
}

// WithLogger sets the debug logger.
func (o *Orchestrator) WithLogger(logger *zap.Logger) *Orchestrator {
	if logger != nil {
		o.logger = logger
	}
	return o
}

// WithChatFactory enables model switching by supplying a constructor for
// replacement chat clients.
func (o *Orchestrator) WithChatFactory(fn func(modelSpec string) (ChatClient, error)) *Orchestrator {
	o.newChat = fn
	return o
}

// Session returns the session state.
func (o *Orchestrator) Session() *Session {
	return o.session
}

// Model returns the model of the active chat client.
func (o *Orchestrator) Model() string {
	return o.chat.Model()
}

// Generate produces content of the given type for the active topic. With
// regenerate false, a cached entry is returned immediately with no network
// calls. Otherwise it searches (degrading on failure), prompts the AI
// client, cleans the response, and caches it.
func (o *Orchestrator) Generate(ctx context.Context, t content.Type, regenerate bool) Result {
	if !regenerate {
		if cached, ok := o.session.Cache().Get(t); ok {
			o.session.noteGenerated(t)
			return Success(cached)
		}
	}

	searchContext := o.runSearch(ctx, t)

	prompt := content.GenerationPrompt(t, o.session.Topic(), o.session.Platform(), searchContext)
	text, err := o.send(ctx, prompt)
	if err != nil {
		return Failure("generation failed: %v", err)
	}

	cleaned := content.Clean(text)
	if cleaned == "" {
		return Failure("model returned an empty response")
	}

	o.session.Cache().Put(t, cleaned)
	o.session.noteGenerated(t)
	return Success(cleaned)
}

// Refine rewrites previously generated content using user feedback. The
// refined text overwrites the cached entry: refinement is destructive, not
// additive. Fails without any network call when nothing is cached.
func (o *Orchestrator) Refine(ctx context.Context, t content.Type, feedback string) Result {
	prior, ok := o.session.Cache().Get(t)
	if !ok {
		return Failure("nothing to refine: no %s content generated yet", t)
	}

	prompt := content.RefinementPrompt(t, prior, feedback)
	text, err := o.send(ctx, prompt)
	if err != nil {
		return Failure("refinement failed: %v", err)
	}

	cleaned := content.Clean(text)
	if cleaned == "" {
		return Failure("model returned an empty response")
	}

	o.session.Cache().Put(t, cleaned)
	o.session.noteGenerated(t)
	return Success(cleaned)
}

// MoreVariations asks for additional, distinct variations of previously
// generated content. The result does not overwrite the cache; callers
// decide whether to merge or replace.
func (o *Orchestrator) MoreVariations(ctx context.Context, t content.Type) Result {
	prior, ok := o.session.Cache().Get(t)
	if !ok {
		return Failure("nothing to vary: no %s content generated yet", t)
	}

	prompt := content.VariationsPrompt(t, prior)
	text, err := o.send(ctx, prompt)
	if err != nil {
		return Failure("variations failed: %v", err)
	}

	cleaned := content.Clean(text)
	if cleaned == "" {
		return Failure("model returned an empty response")
	}

	return Success(cleaned)
}

// SwitchModel replaces the chat client with one bound to the given model.
// A failed switch leaves the previous client active.
func (o *Orchestrator) SwitchModel(modelSpec string) error {
	if o.newChat == nil {
		return errNoChatFactory
	}

	replacement, err := o.newChat(modelSpec)
	if err != nil {
		return err
	}

	old := o.chat
	o.chat = replacement
	old.Close()

	o.logger.Debug("model switched", zap.String("model", replacement.Model()))
	return nil
}

// send issues one AI call under the configured timeout.
func (o *Orchestrator) send(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	start := time.Now()
	text, err := o.chat.Send(ctx, prompt)
	o.logger.Debug("ai call",
		zap.Duration("elapsed", time.Since(start)),
		zap.Bool("ok", err == nil))
	return text, err
}

// runSearch performs the search appropriate for a content type and returns
// formatted context. Total search failure degrades to an empty context; it
// never aborts generation.
func (o *Orchestrator) runSearch(ctx context.Context, t content.Type) string {
	topic := o.session.Topic()

	var queries []string
	opts := search.Options{MaxResults: o.maxResults}

	switch t {
	case content.TypeTrending:
		// Recency-biased: last seven days.
		opts.DateFrom = time.Now().AddDate(0, 0, -7)
		queries = []string{topic + " latest trends"}
	case content.TypeIdeas:
		// Multi-query inspiration search.
		queries = []string{
			topic + " short form video ideas",
			topic + " viral content",
			topic,
		}
	default:
		queries = []string{topic}
	}

	var all []search.Result
	for _, q := range queries {
		results, err := o.searcher.Search(ctx, q, opts)
		if err != nil {
			o.logger.Debug("search degraded",
				zap.String("query", q),
				zap.Error(err))
			continue
		}
		all = append(all, results...)
	}

	if len(all) == 0 {
		return ""
	}
	if len(all) > o.maxResults {
		all = all[:o.maxResults]
	}

	o.session.SetResults(all)
	return search.FormatResults(all)
}

// errNoChatFactory is returned when model switching was not configured.
var errNoChatFactory = &configError{"model switching is not available in this session"}

type configError struct{ msg string }

func (e *configError) Error() string { return e.msg }
