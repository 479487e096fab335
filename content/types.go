// Package content provides the domain types for generated short-form content:
// the closed content-type and platform enums, the per-session content cache,
// response cleanup, and prompt construction.
package content

import (
	"fmt"
	"strings"
)

// Type identifies one kind of generated output. The set is closed: the cache
// and the prompt builders are both indexed by it.
type Type int

const (
	// TypeSearch is a research summary of the current topic.
	TypeSearch Type = iota
	// TypeIdeas is a list of short-form video ideas.
	TypeIdeas
	// TypeScript is a full short-form video script.
	TypeScript
	// TypeTrending is a report on current trends around the topic.
	TypeTrending
	// TypeHooks is a set of opening hooks.
	TypeHooks
	// TypeFull is a complete content package (ideas + script + hooks).
	TypeFull

	numTypes
)

// String returns the canonical lowercase name.
func (t Type) String() string {
	switch t {
	case TypeSearch:
		return "search"
	case TypeIdeas:
		return "ideas"
	case TypeScript:
		return "script"
	case TypeTrending:
		return "trending"
	case TypeHooks:
		return "hooks"
	case TypeFull:
		return "full"
	default:
		return "unknown"
	}
}

// Types returns all content types in declaration order.
func Types() []Type {
	result := make([]Type, 0, numTypes)
	for t := Type(0); t < numTypes; t++ {
		result = append(result, t)
	}
	return result
}

// ParseType parses a content type name (case-insensitive).
func ParseType(s string) (Type, error) {
	switch strings.ToLower(s) {
	case "search":
		return TypeSearch, nil
	case "ideas", "idea":
		return TypeIdeas, nil
	case "script":
		return TypeScript, nil
	case "trending", "trends", "trend":
		return TypeTrending, nil
	case "hooks", "hook":
		return TypeHooks, nil
	case "full":
		return TypeFull, nil
	default:
		return 0, fmt.Errorf("unknown content type: %q", s)
	}
}

// Platform identifies the target short-form platform. Platform only changes
// prompt wording; it never invalidates cached content.
type Platform int

const (
	// PlatformAll targets every platform at once.
	PlatformAll Platform = iota
	// PlatformInstagram targets Instagram Reels.
	PlatformInstagram
	// PlatformYouTube targets YouTube Shorts.
	PlatformYouTube
	// PlatformTikTok targets TikTok.
	PlatformTikTok
)

// String returns the canonical lowercase name.
func (p Platform) String() string {
	switch p {
	case PlatformInstagram:
		return "instagram"
	case PlatformYouTube:
		return "youtube"
	case PlatformTikTok:
		return "tiktok"
	case PlatformAll:
		return "all"
	default:
		return "unknown"
	}
}

// ParsePlatform parses a platform name (case-insensitive, aliases allowed).
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(s) {
	case "instagram", "insta", "ig", "reels":
		return PlatformInstagram, nil
	case "youtube", "yt", "shorts":
		return PlatformYouTube, nil
	case "tiktok", "tt":
		return PlatformTikTok, nil
	case "all", "any":
		return PlatformAll, nil
	default:
		return 0, fmt.Errorf("unknown platform: %q", s)
	}
}
