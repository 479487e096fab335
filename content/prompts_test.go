package content

import (
	"strings"
	"testing"
)

func TestGenerationPromptIncludesTopicAndPlatform(t *testing.T) {
	prompt := GenerationPrompt(TypeScript, "urban beekeeping", PlatformTikTok, "")

	if !strings.Contains(prompt, "urban beekeeping") {
		t.Error("expected topic in prompt")
	}
	if !strings.Contains(prompt, "TikTok") {
		t.Error("expected platform guidelines in prompt")
	}
	if !strings.Contains(prompt, "none available") {
		t.Error("expected degraded search placeholder when context is empty")
	}
}

func TestGenerationPromptEmbedsSearchContext(t *testing.T) {
	prompt := GenerationPrompt(TypeTrending, "sourdough", PlatformAll, "1. Sourdough is back\n   sourdough.example")

	if !strings.Contains(prompt, "Sourdough is back") {
		t.Error("expected search context in prompt")
	}
	if strings.Contains(prompt, "none available") {
		t.Error("did not expect degraded placeholder with context present")
	}
}

func TestGenerationPromptDistinctPerType(t *testing.T) {
	seen := make(map[string]Type)
	for _, ct := range Types() {
		p := GenerationPrompt(ct, "topic", PlatformAll, "")
		if prior, dup := seen[p]; dup {
			t.Errorf("types %v and %v produced identical prompts", prior, ct)
		}
		seen[p] = ct
	}
}

func TestRefinementPromptEmbedsPriorAndFeedback(t *testing.T) {
	prompt := RefinementPrompt(TypeHooks, "## Hooks\n1. old hook", "make them punchier")

	if !strings.Contains(prompt, "old hook") {
		t.Error("expected prior content in refinement prompt")
	}
	if !strings.Contains(prompt, "make them punchier") {
		t.Error("expected feedback in refinement prompt")
	}
}

func TestVariationsPromptEmbedsPrior(t *testing.T) {
	prompt := VariationsPrompt(TypeIdeas, "## Ideas\n1. first idea")
	if !strings.Contains(prompt, "first idea") {
		t.Error("expected prior content in variations prompt")
	}
	if !strings.Contains(prompt, "distinct") {
		t.Error("expected variations prompt to demand distinct output")
	}
}
