package content

import (
	"strings"
	"testing"
)

func TestParseMarkerSplit(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		wantHook string
		wantBody string
	}{
		{
			name:     "dot marker",
			raw:      "Bitcoin to $100k?\n\n2. Bitcoin has shown strong momentum this week.",
			wantHook: "Bitcoin to $100k?",
			wantBody: "2. Bitcoin has shown strong momentum this week.",
		},
		{
			name:     "paren marker",
			raw:      "The hook line\n2) Body starts here\nand continues.",
			wantHook: "The hook line",
			wantBody: "2) Body starts here\nand continues.",
		},
		{
			name:     "dash marker",
			raw:      "The hook line\n2- Body starts here",
			wantHook: "The hook line",
			wantBody: "2- Body starts here",
		},
		{
			name:     "multi-line hook before marker",
			raw:      "First hook line\nsecond hook line\n2. The body",
			wantHook: "First hook line\nsecond hook line",
			wantBody: "2. The body",
		},
		{
			name:     "indented marker",
			raw:      "Hook\n  2. Indented body",
			wantHook: "Hook",
			wantBody: "2. Indented body",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Parse(tc.raw)
			if got.Hook != tc.wantHook {
				t.Errorf("hook = %q, want %q", got.Hook, tc.wantHook)
			}
			if got.Body != tc.wantBody {
				t.Errorf("body = %q, want %q", got.Body, tc.wantBody)
			}
		})
	}
}

func TestParseWithoutMarker(t *testing.T) {
	raw := "Markets are moving fast today.\nVolume is spiking across the board."

	got := Parse(raw)
	if got.Hook != "Markets are moving fast today." {
		t.Errorf("hook = %q, want first line", got.Hook)
	}
	if got.Body != raw {
		t.Errorf("body = %q, want full normalized text", got.Body)
	}
}

func TestParseDecimalIsNotAMarker(t *testing.T) {
	// "2.5 million" is prose, not an ordinal-two marker.
	raw := "Hook line\n2.5 million traders can't be wrong."

	got := Parse(raw)
	if got.Body != "Hook line\n2.5 million traders can't be wrong." {
		t.Errorf("body = %q, decimal line was treated as a marker", got.Body)
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\n  \n"} {
		got := Parse(raw)
		if got.Hook != FallbackHook || got.Body != FallbackBody {
			t.Errorf("Parse(%q) = %+v, want sentinels", raw, got)
		}
	}
}

func TestNormalizeStripsEmphasis(t *testing.T) {
	got := Normalize("**Bold** hook with *italics* and __underline__")
	want := "Bold hook with italics and underline"
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalizeStripsCodeFences(t *testing.T) {
	raw := "```\nThe hook\n\n2. The body\n```"
	got := Parse(raw)
	if got.Hook != "The hook" {
		t.Errorf("hook = %q, fence lines not removed", got.Hook)
	}
	if got.Body != "2. The body" {
		t.Errorf("body = %q", got.Body)
	}
}

func TestNormalizeStripsFieldLabels(t *testing.T) {
	raw := "Hook: Everyone is watching this market\n\nArticle: 2. The numbers tell the story."

	got := Parse(raw)
	if got.Hook != "Everyone is watching this market" {
		t.Errorf("hook = %q, field label not removed", got.Hook)
	}
	if got.Body != "2. The numbers tell the story." {
		t.Errorf("body = %q", got.Body)
	}
}

func TestNormalizeStripsLeadingOrdinalOne(t *testing.T) {
	raw := "1. The hook line\n\n2. The body line"

	got := Parse(raw)
	if got.Hook != "The hook line" {
		t.Errorf("hook = %q, leading ordinal not removed", got.Hook)
	}
}

func TestNormalizeCollapsesBlankRuns(t *testing.T) {
	got := Normalize("\n\n\nHook\n\n\n\nBody")
	if got != "Hook\n\nBody" {
		t.Errorf("Normalize() = %q", got)
	}
}

func TestStripHookPrefix(t *testing.T) {
	hook := "Bitcoin to $100k?"

	body := StripHookPrefix(hook, "Bitcoin to $100k?\nThe rally everyone saw coming.")
	if body != "The rally everyone saw coming." {
		t.Errorf("body = %q, duplicated hook not stripped", body)
	}

	// Body that is nothing but the hook stays intact.
	body = StripHookPrefix(hook, hook)
	if body != hook {
		t.Errorf("body = %q, want unchanged", body)
	}

	// Unrelated body stays intact.
	body = StripHookPrefix(hook, "A different opening line.")
	if body != "A different opening line." {
		t.Errorf("body = %q, want unchanged", body)
	}

	if got := StripHookPrefix("", "anything"); got != "anything" {
		t.Errorf("empty hook stripped body to %q", got)
	}
}

func TestParsedBodyNeverReopensWithHook(t *testing.T) {
	raw := "Markets are moving fast today.\nVolume is spiking across the board."

	parsed := Parse(raw)
	body := StripHookPrefix(parsed.Hook, parsed.Body)
	if strings.HasPrefix(body, parsed.Hook) {
		t.Errorf("body %q still opens with hook %q", body, parsed.Hook)
	}
}
