package curator

import (
	"testing"

	"github.com/shivaylamba/curator/content"
)

func TestParseCommandGenerate(t *testing.T) {
	tests := []struct {
		input string
		want  content.Type
		regen bool
	}{
		{"/script", content.TypeScript, false},
		{"/Script", content.TypeScript, false},
		{"  /script  ", content.TypeScript, false},
		{"/script new", content.TypeScript, true},
		{"/script fresh", content.TypeScript, true},
		{"/hooks", content.TypeHooks, false},
		{"/hook", content.TypeHooks, false},
		{"/ideas", content.TypeIdeas, false},
		{"/idea", content.TypeIdeas, false},
		{"/trending", content.TypeTrending, false},
		{"/trends", content.TypeTrending, false},
		{"/search", content.TypeSearch, false},
		{"/full", content.TypeFull, false},
	}

	for _, tt := range tests {
		got := ParseCommand(tt.input)
		if got.Kind != CmdGenerate {
			t.Errorf("ParseCommand(%q).Kind = %v, want CmdGenerate", tt.input, got.Kind)
			continue
		}
		if got.ContentType != tt.want {
			t.Errorf("ParseCommand(%q).ContentType = %v, want %v", tt.input, got.ContentType, tt.want)
		}
		if got.Regenerate != tt.regen {
			t.Errorf("ParseCommand(%q).Regenerate = %v, want %v", tt.input, got.Regenerate, tt.regen)
		}
	}
}

func TestParseCommandAliasesMatchCanonical(t *testing.T) {
	if ParseCommand("/Ideas") != ParseCommand("/idea") {
		t.Error("/Ideas and /idea should parse identically")
	}
	if ParseCommand("/trend") != ParseCommand("/trending") {
		t.Error("/trend and /trending should parse identically")
	}
}

func TestParseCommandControl(t *testing.T) {
	tests := []struct {
		input string
		kind  CommandKind
		arg   string
	}{
		{"/topic home workouts", CmdTopic, "home workouts"},
		{"/platform tiktok", CmdPlatform, "tiktok"},
		{"/model gpt-5.2", CmdModel, "gpt-5.2"},
		{"/copy", CmdCopy, ""},
		{"/show", CmdShowLast, ""},
		{"/last script", CmdShowLast, "script"},
		{"/clear", CmdClear, ""},
		{"/help", CmdHelp, ""},
		{"/history", CmdHistory, ""},
		{"/quit", CmdQuit, ""},
		{"/exit", CmdQuit, ""},
		{"/q", CmdQuit, ""},
	}

	for _, tt := range tests {
		got := ParseCommand(tt.input)
		if got.Kind != tt.kind {
			t.Errorf("ParseCommand(%q).Kind = %v, want %v", tt.input, got.Kind, tt.kind)
		}
		if got.Arg != tt.arg {
			t.Errorf("ParseCommand(%q).Arg = %q, want %q", tt.input, got.Arg, tt.arg)
		}
	}
}

func TestParseCommandChat(t *testing.T) {
	got := ParseCommand("  hello there  ")
	if got.Kind != CmdChat || got.Message != "hello there" {
		t.Errorf("free text should be trimmed chat, got %+v", got)
	}
}

func TestParseCommandEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\t"} {
		got := ParseCommand(input)
		if got.Kind != CmdChat || got.Message != "" {
			t.Errorf("ParseCommand(%q) = %+v, want empty chat", input, got)
		}
	}
}

func TestParseCommandUnknownSlashFallsBackToChat(t *testing.T) {
	got := ParseCommand("/frobnicate everything")
	if got.Kind != CmdChat {
		t.Fatalf("unknown slash command should be chat, got kind %v", got.Kind)
	}
	if got.Message != "/frobnicate everything" {
		t.Errorf("unknown slash command should keep raw input, got %q", got.Message)
	}
}
