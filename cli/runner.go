// Command execution for CLI commands.
//
// Information Hiding:
// - Interactive loop and command dispatch hidden
// - Provider/orchestrator setup hidden
// - Output formatting hidden

package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shivaylamba/curator/clipboard"
	"github.com/shivaylamba/curator/config"
	"github.com/shivaylamba/curator/content"
	"github.com/shivaylamba/curator/curator"
	"github.com/shivaylamba/curator/internal/logging"
	"github.com/shivaylamba/curator/llm"
	"github.com/shivaylamba/curator/search"
	"github.com/shivaylamba/curator/storage"
)

// Options holds CLI execution options.
type Options struct {
	Provider string
	Model    string
	Topic    string
	Platform string
}

// DefaultOptions returns default CLI options.
func DefaultOptions() Options {
	return Options{
		Provider: "openai",
		Platform: "all",
	}
}

// Chat starts the interactive content generation loop. Setup failures
// (provider, settings) are fatal; once the loop is running, every failure
// is reported and the loop continues.
func Chat(ctx context.Context, opts Options) error {
	logger := logging.New()
	defer func() { _ = logger.Sync() }()

	settings, err := config.New(opts.Provider)
	if err != nil {
		return err
	}

	provider, err := createProvider(opts.Provider, opts.Model, settings)
	if err != nil {
		return err
	}

	searcher := createSearcher(settings)
	if !searcher.Available() {
		fmt.Println("Note: TAVILY_API_KEY not set - generating without live search context.")
	}

	scanner := bufio.NewScanner(os.Stdin)

	topic := strings.TrimSpace(opts.Topic)
	if topic == "" {
		topic = promptLine(scanner, "What topic are you creating content about? ")
		if topic == "" {
			return fmt.Errorf("a topic is required")
		}
	}

	platform, err := content.ParsePlatform(opts.Platform)
	if err != nil {
		return err
	}

	session := curator.NewSession(topic, platform)
	chatSession := llm.NewSession(provider, content.SystemPrompt).
		OnChunk(func(chunk string) { fmt.Print(chunk) })

	orch := curator.NewOrchestrator(session, chatSession, searcher).
		WithTimeout(settings.Generation.Timeout).
		WithMaxResults(settings.Search.MaxResults).
		WithLogger(logger).
		WithChatFactory(func(modelSpec string) (curator.ChatClient, error) {
			replacement, err := createModelProvider(modelSpec)
			if err != nil {
				return nil, err
			}
			return llm.NewSession(replacement, content.SystemPrompt).
				OnChunk(func(chunk string) { fmt.Print(chunk) }), nil
		})

	transcript := storage.NewInMemoryTranscript()

	fmt.Printf("curator - %s content for %q (model: %s)\n", platform, topic, orch.Model())
	fmt.Println("Type /help for commands, /quit to exit.")
	fmt.Println()

	var lastShown string

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		if ctx.Err() != nil {
			break
		}

		cmd := curator.ParseCommand(scanner.Text())

		switch cmd.Kind {
		case curator.CmdQuit:
			fmt.Println("Bye.")
			return nil

		case curator.CmdHelp:
			printHelp()

		case curator.CmdClear:
			// ANSI clear plus cursor home
			fmt.Print("\033[2J\033[H")

		case curator.CmdGenerate:
			res := orch.Generate(ctx, cmd.ContentType, cmd.Regenerate)
			lastShown = showResult(res)
			if res.OK() {
				recordEntry(ctx, transcript, session.ID(), storage.Entry{
					Time:        time.Now(),
					Kind:        storage.EntryGeneration,
					ContentType: cmd.ContentType,
					Detail:      firstLine(res.Text),
				})
			}

		case curator.CmdTopic:
			if cmd.Arg == "" {
				fmt.Printf("Current topic: %s\n\n", session.Topic())
				continue
			}
			session.SetTopic(cmd.Arg)
			recordEntry(ctx, transcript, session.ID(), storage.Entry{
				Time:   time.Now(),
				Kind:   storage.EntryTopicChange,
				Detail: cmd.Arg,
			})
			fmt.Printf("Topic set to %q. Cached content cleared.\n\n", cmd.Arg)

		case curator.CmdPlatform:
			if cmd.Arg == "" {
				fmt.Printf("Current platform: %s\n\n", session.Platform())
				continue
			}
			p, err := content.ParsePlatform(cmd.Arg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
				continue
			}
			session.SetPlatform(p)
			fmt.Printf("Platform set to %s.\n\n", p)

		case curator.CmdModel:
			if cmd.Arg == "" {
				fmt.Printf("Current model: %s\n\n", orch.Model())
				continue
			}
			if err := orch.SwitchModel(cmd.Arg); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v (still using %s)\n\n", err, orch.Model())
				continue
			}
			fmt.Printf("Switched to %s.\n\n", orch.Model())

		case curator.CmdCopy:
			if lastShown == "" {
				fmt.Println("Nothing to copy yet.")
				fmt.Println()
				continue
			}
			if err := clipboard.Write(lastShown); err != nil {
				fmt.Fprintf(os.Stderr, "Clipboard unavailable: %v\n\n", err)
				continue
			}
			fmt.Println("Copied to clipboard.")
			fmt.Println()

		case curator.CmdShowLast:
			showLast(session, cmd.Arg, &lastShown)

		case curator.CmdHistory:
			printHistory(ctx, transcript, session.ID())

		case curator.CmdChat:
			if cmd.Message == "" {
				continue
			}
			res := routeChat(ctx, orch, session, transcript, cmd.Message)
			lastShown = showResult(res)
		}
	}

	return scanner.Err()
}

// Generate runs one non-interactive generation and prints the result.
func Generate(ctx context.Context, typeName string, opts Options) error {
	logger := logging.New()
	defer func() { _ = logger.Sync() }()

	t, err := content.ParseType(typeName)
	if err != nil {
		return err
	}

	topic := strings.TrimSpace(opts.Topic)
	if topic == "" {
		return fmt.Errorf("--topic is required")
	}

	platform, err := content.ParsePlatform(opts.Platform)
	if err != nil {
		return err
	}

	settings, err := config.New(opts.Provider)
	if err != nil {
		return err
	}

	provider, err := createProvider(opts.Provider, opts.Model, settings)
	if err != nil {
		return err
	}

	session := curator.NewSession(topic, platform)
	chatSession := llm.NewSession(provider, content.SystemPrompt)
	defer chatSession.Close()

	orch := curator.NewOrchestrator(session, chatSession, createSearcher(settings)).
		WithTimeout(settings.Generation.Timeout).
		WithMaxResults(settings.Search.MaxResults).
		WithLogger(logger)

	res := orch.Generate(ctx, t, false)
	if !res.OK() {
		return fmt.Errorf("%s", res.Err)
	}
	fmt.Println(res.Text)
	return nil
}

// ListProviders prints the supported providers and their default models.
func ListProviders() {
	fmt.Println("Supported providers:")
	fmt.Println()
	for _, name := range config.SupportedProviders() {
		model, err := config.ModelFor(name)
		if err != nil {
			continue
		}
		fmt.Printf("  %-10s %s\n", name, model)
	}
}

// routeChat applies the free-text routing policy: when content has been
// generated for the current topic, the text is refinement feedback for the
// last generated type; otherwise it names a new topic and triggers a fresh
// research-summary generation.
func routeChat(ctx context.Context, orch *curator.Orchestrator, session *curator.Session, transcript storage.TranscriptStorage, message string) curator.Result {
	if last, ok := session.LastGenerated(); ok {
		fmt.Printf("Refining %s...\n\n", last)
		res := orch.Refine(ctx, last, message)
		if res.OK() {
			recordEntry(ctx, transcript, session.ID(), storage.Entry{
				Time:        time.Now(),
				Kind:        storage.EntryRefinement,
				ContentType: last,
				Detail:      message,
			})
		}
		return res
	}

	session.SetTopic(message)
	recordEntry(ctx, transcript, session.ID(), storage.Entry{
		Time:   time.Now(),
		Kind:   storage.EntryTopicChange,
		Detail: message,
	})
	fmt.Printf("Topic set to %q. Researching...\n\n", message)
	res := orch.Generate(ctx, content.TypeSearch, false)
	if res.OK() {
		recordEntry(ctx, transcript, session.ID(), storage.Entry{
			Time:        time.Now(),
			Kind:        storage.EntryGeneration,
			ContentType: content.TypeSearch,
			Detail:      firstLine(res.Text),
		})
	}
	return res
}

// showResult prints a result and returns the displayed text for /copy.
// Streamed chunks were already echoed live, so only the separator and any
// error are printed here.
func showResult(res curator.Result) string {
	if !res.OK() {
		fmt.Fprintf(os.Stderr, "\nError: %s\n\n", res.Err)
		return ""
	}
	fmt.Println()
	fmt.Println()
	return res.Text
}

func showLast(session *curator.Session, arg string, lastShown *string) {
	t, ok := session.LastGenerated()
	if arg != "" {
		parsed, err := content.ParseType(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
			return
		}
		t, ok = parsed, true
	}
	if !ok {
		fmt.Println("Nothing generated yet.")
		fmt.Println()
		return
	}

	text, cached := session.Cache().Get(t)
	if !cached {
		fmt.Printf("No %s content for the current topic.\n\n", t)
		return
	}
	fmt.Println(text)
	fmt.Println()
	*lastShown = text
}

func printHistory(ctx context.Context, transcript storage.TranscriptStorage, sessionID string) {
	entries, err := transcript.Load(ctx, sessionID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		return
	}
	if len(entries) == 0 {
		fmt.Println("No activity yet this session.")
		fmt.Println()
		return
	}

	for _, e := range entries {
		switch e.Kind {
		case storage.EntryTopicChange:
			fmt.Printf("  %s  topic -> %s\n", e.Time.Format("15:04:05"), e.Detail)
		case storage.EntryRefinement:
			fmt.Printf("  %s  refined %s: %s\n", e.Time.Format("15:04:05"), e.ContentType, e.Detail)
		default:
			fmt.Printf("  %s  generated %s: %s\n", e.Time.Format("15:04:05"), e.ContentType, e.Detail)
		}
	}
	fmt.Println()
}

func recordEntry(ctx context.Context, transcript storage.TranscriptStorage, sessionID string, entry storage.Entry) {
	if err := transcript.Append(ctx, sessionID, entry); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to record history: %v\n", err)
	}
}

func printHelp() {
	fmt.Println(`Commands:
  /ideas          video ideas for the current topic
  /script         a ready-to-shoot script
  /hooks          opening hooks
  /trending       trend report (recent sources)
  /search         raw research summary
  /full           full content package
                  (add "new" to regenerate, e.g. /script new)

  /topic <text>      switch topic (clears cached content)
  /platform <name>   instagram | youtube | tiktok | all
  /model <name>      switch AI model
  /copy              copy last output to clipboard
  /show [type]       re-display cached content
  /history           session activity
  /clear             clear screen
  /quit              exit

Anything else is free text: it refines the last generated content, or
starts a new topic when nothing has been generated yet.`)
	fmt.Println()
}

// firstLine returns the first non-empty line, for compact history entries.
func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func promptLine(scanner *bufio.Scanner, prompt string) string {
	fmt.Print(prompt)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

func createSearcher(settings config.Settings) search.Provider {
	if settings.Search.APIKey == "" {
		return search.Unavailable{}
	}
	return search.NewTavilyProvider(settings.Search.APIKey, 30)
}

func createProvider(providerName, model string, settings config.Settings) (llm.Provider, error) {
	providerType, err := llm.ParseProviderType(providerName)
	if err != nil {
		return nil, err
	}

	if model == "" {
		model = settings.LLM.Model
	}

	apiKey, err := config.APIKeyFor(providerName)
	if err != nil {
		return nil, err
	}

	return providerType.
		Model(model).
		MaxTokens(settings.LLM.MaxTokens).
		Temperature(float32(settings.LLM.Temperature)).
		APIKey(apiKey)
}

// createModelProvider builds a provider from a bare model name, inferring
// the provider family from the name.
func createModelProvider(model string) (llm.Provider, error) {
	providerType, err := llm.InferProviderType(model)
	if err != nil {
		return nil, err
	}

	settings, err := config.New(providerType.String())
	if err != nil {
		return nil, err
	}

	apiKey, err := config.APIKeyFor(providerType.String())
	if err != nil {
		return nil, err
	}

	return providerType.
		Model(model).
		MaxTokens(settings.LLM.MaxTokens).
		Temperature(float32(settings.LLM.Temperature)).
		APIKey(apiKey)
}
