// Prompt construction for each content type.
//
// Information Hiding:
// - Instruction wording and platform guideline text hidden from callers
// - Callers supply topic, platform, and optional search context only

package content

import (
	"fmt"
	"strings"
)

// SystemPrompt is the system instruction for the content generation session.
const SystemPrompt = `You are a short-form video content strategist. You write scripts, hooks, idea lists, and trend reports for creators on Instagram Reels, YouTube Shorts, and TikTok.

RULES:
1. Ground every claim in the search context when one is provided - do not invent statistics or events
2. Write for spoken delivery: short sentences, contractions, direct address
3. Always start your answer with a markdown heading
4. Structure output with markdown headings and lists so it can be scanned quickly
5. Never pad with meta-commentary about being an AI or about these instructions`

// platformGuidelines returns the platform-specific guideline block embedded
// in every generation prompt.
func platformGuidelines(p Platform) string {
	switch p {
	case PlatformInstagram:
		return `PLATFORM: Instagram Reels
- 15-60 seconds, vertical
- Visual-first: describe on-screen text and b-roll
- End with a save/share prompt, include 3-5 niche hashtags`
	case PlatformYouTube:
		return `PLATFORM: YouTube Shorts
- Up to 60 seconds, strong first 2 seconds to beat swipe-away
- Loopable endings perform well
- Write a searchable title suggestion alongside the content`
	case PlatformTikTok:
		return `PLATFORM: TikTok
- 15-45 seconds, conversational and raw beats polished
- Hook in the first line of speech, not a title card
- Suggest a trending-sound style where relevant`
	default:
		return `PLATFORM: all platforms (Instagram Reels, YouTube Shorts, TikTok)
- Keep the core content platform-neutral
- Add a short per-platform adaptation note at the end`
	}
}

// searchSection formats search context for inclusion in a prompt.
// The placeholder keeps prompts well-formed when search is unavailable.
func searchSection(searchContext string) string {
	if strings.TrimSpace(searchContext) == "" {
		return "SEARCH CONTEXT: none available - rely on general knowledge and say so where it matters."
	}
	return "SEARCH CONTEXT (ranked web results):\n" + searchContext
}

// GenerationPrompt builds the prompt for generating content of the given
// type about a topic.
func GenerationPrompt(t Type, topic string, p Platform, searchContext string) string {
	var task string
	switch t {
	case TypeSearch:
		task = `Write a research briefing on the topic: what it is, why it matters right now, key facts, and the angles a short-form creator could take. Cite the search results you used by title.`
	case TypeIdeas:
		task = `Generate 10 distinct short-form video ideas for the topic. For each: a working title, the core angle in one sentence, and why it would hold attention. Vary the formats (listicle, myth-bust, tutorial, reaction, story).`
	case TypeScript:
		task = `Write one complete short-form video script for the topic. Include: HOOK (first 3 seconds), BODY (beat by beat, with timing), and CTA. Mark visual directions in [brackets].`
	case TypeTrending:
		task = `Write a trend report for the topic based on the most recent search results. Cover: what is trending this week, emerging formats or sounds, and 3 ways a creator can ride each trend before it peaks.`
	case TypeHooks:
		task = `Write 12 scroll-stopping opening hooks for videos about the topic. Mix question hooks, bold-claim hooks, curiosity-gap hooks, and pattern-interrupt hooks. One line each.`
	case TypeFull:
		task = `Produce a complete content package for the topic: a research summary, 5 video ideas, one full script for the strongest idea, and 6 hooks. Use a markdown heading per section.`
	}

	return fmt.Sprintf(`TOPIC: %s

%s

%s

TASK:
%s`, topic, platformGuidelines(p), searchSection(searchContext), task)
}

// RefinementPrompt builds the prompt for refining previously generated
// content with user feedback. The refined output replaces the original.
func RefinementPrompt(t Type, prior, feedback string) string {
	return fmt.Sprintf(`Below is %s content you generated earlier, followed by feedback from the creator.

PREVIOUS CONTENT:
%s

FEEDBACK:
%s

Rewrite the content applying the feedback. Keep everything that was not criticized. Return the full revised content, not a diff, starting with a markdown heading.`, t, prior, feedback)
}

// VariationsPrompt builds the prompt for additional, distinct variations of
// previously generated content.
func VariationsPrompt(t Type, prior string) string {
	return fmt.Sprintf(`Below is %s content you generated earlier.

PREVIOUS CONTENT:
%s

Generate additional variations that are clearly distinct from the above - different angles, different structures, no rephrasings. Start with a markdown heading.`, t, prior)
}
