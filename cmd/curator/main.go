// Package main provides the curator CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/shivaylamba/curator/cli"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	provider string
	model    string
	topic    string
	platform string
)

func main() {
	// Load .env file if present (ignore "file not found" errors)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: failed to load .env file: %v\n", err)
		}
	}

	rootCmd := &cobra.Command{
		Use:   "curator",
		Short: "Short-form video content generation from live web research",
		Long: `An interactive CLI that chains web search and a conversational AI to
produce short-form video content: scripts, hooks, idea lists, and trend
reports for Instagram Reels, YouTube Shorts, and TikTok.`,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&provider, "provider", "p", "openai", "AI provider (openai, anthropic, deepseek, gemini)")
	rootCmd.PersistentFlags().StringVarP(&model, "model", "m", "", "Model override (defaults to the provider's default model)")
	rootCmd.PersistentFlags().StringVarP(&topic, "topic", "t", "", "Content topic")
	rootCmd.PersistentFlags().StringVar(&platform, "platform", "all", "Target platform (instagram, youtube, tiktok, all)")

	// Add commands
	rootCmd.AddCommand(chatCmd())
	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(providersCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// signalContext returns a context cancelled on SIGINT/SIGTERM so in-flight
// generation calls stop cleanly.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive content generation session",
		Long: `Start an interactive session for a topic. Slash commands generate
content (/ideas, /script, /hooks, /trending, /search, /full); free text
refines the last generated content or starts a new topic.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()
			return cli.Chat(ctx, options())
		},
	}
}

func generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate [type]",
		Short: "Generate one piece of content and exit",
		Long: `Generate content of the given type (ideas, script, hooks, trending,
search, full) for --topic and print it to stdout. Suitable for scripting.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()
			return cli.Generate(ctx, args[0], options())
		},
	}
}

func providersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List supported AI providers and their default models",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli.ListProviders()
			return nil
		},
	}
}

func options() cli.Options {
	return cli.Options{
		Provider: provider,
		Model:    model,
		Topic:    topic,
		Platform: platform,
	}
}
