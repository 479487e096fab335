// Command dispatcher - parses one line of user input into exactly one
// command variant. Pure function: same input, same variant, no I/O.

package curator

import (
	"strings"

	"github.com/shivaylamba/curator/content"
)

// CommandKind identifies a command variant.
type CommandKind int

const (
	// CmdChat is free-text input routed by the caller (refine or new topic).
	CmdChat CommandKind = iota
	// CmdGenerate requests content generation for a type.
	CmdGenerate
	// CmdTopic switches the active topic.
	CmdTopic
	// CmdPlatform switches the target platform.
	CmdPlatform
	// CmdModel switches the AI model.
	CmdModel
	// CmdCopy copies the last generated content to the clipboard.
	CmdCopy
	// CmdShowLast re-displays the last generated content.
	CmdShowLast
	// CmdClear clears the screen.
	CmdClear
	// CmdHelp shows command help.
	CmdHelp
	// CmdHistory lists the session transcript.
	CmdHistory
	// CmdQuit exits the loop.
	CmdQuit
)

// Command is the closed tagged variant produced for each input line.
type Command struct {
	Kind        CommandKind
	ContentType content.Type // for CmdGenerate
	Regenerate  bool         // for CmdGenerate: bypass the cache
	Arg         string       // for CmdTopic, CmdPlatform, CmdModel, CmdShowLast
	Message     string       // for CmdChat
}

// generateCommands maps slash-command names (and aliases) to content types.
var generateCommands = map[string]content.Type{
	"/search":   content.TypeSearch,
	"/ideas":    content.TypeIdeas,
	"/idea":     content.TypeIdeas,
	"/script":   content.TypeScript,
	"/trending": content.TypeTrending,
	"/trends":   content.TypeTrending,
	"/trend":    content.TypeTrending,
	"/hooks":    content.TypeHooks,
	"/hook":     content.TypeHooks,
	"/full":     content.TypeFull,
}

// ParseCommand classifies one line of input. Rules, in order:
//  1. trim the input
//  2. lowercase-match the first token against the command table
//  3. empty trimmed input yields a chat variant with an empty message
//     (callers treat it as a no-op)
//  4. unrecognized slash-prefixed input falls back to chat with the raw,
//     original text
//  5. anything else is chat with the trimmed text
func ParseCommand(input string) Command {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Command{Kind: CmdChat, Message: ""}
	}

	if !strings.HasPrefix(trimmed, "/") {
		return Command{Kind: CmdChat, Message: trimmed}
	}

	fields := strings.Fields(trimmed)
	head := strings.ToLower(fields[0])
	rest := strings.TrimSpace(trimmed[len(fields[0]):])

	if ct, ok := generateCommands[head]; ok {
		lower := strings.ToLower(rest)
		return Command{
			Kind:        CmdGenerate,
			ContentType: ct,
			Regenerate:  lower == "new" || lower == "fresh" || lower == "regen",
		}
	}

	switch head {
	case "/topic":
		return Command{Kind: CmdTopic, Arg: rest}
	case "/platform":
		return Command{Kind: CmdPlatform, Arg: rest}
	case "/model":
		return Command{Kind: CmdModel, Arg: rest}
	case "/copy":
		return Command{Kind: CmdCopy}
	case "/show", "/last":
		return Command{Kind: CmdShowLast, Arg: rest}
	case "/clear", "/cls":
		return Command{Kind: CmdClear}
	case "/help", "/h":
		return Command{Kind: CmdHelp}
	case "/history":
		return Command{Kind: CmdHistory}
	case "/quit", "/exit", "/q":
		return Command{Kind: CmdQuit}
	}

	// Unknown slash command: fall back to chat with the raw input.
	return Command{Kind: CmdChat, Message: input}
}
