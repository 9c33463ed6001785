package content

import (
	"regexp"
	"strings"
)

// Sentinel content used only when a reply normalizes to nothing at all.
const (
	FallbackHook = "This market is heating up."
	FallbackBody = "No analysis available."
)

var (
	codeFenceRe   = regexp.MustCompile("(?m)^[ \t]*```[^\n]*$")
	emphasisRe    = regexp.MustCompile(`\*{1,2}|_{2}`)
	fieldLabelRe  = regexp.MustCompile(`(?im)^[ \t]*(?:hook|headline|title|article|body)[ \t]*:[ \t]*`)
	leadOrdinalRe = regexp.MustCompile(`^1[.)\-][ \t]+`)
	blankRunRe    = regexp.MustCompile(`\n{3,}`)

	// bodyMarkerRe matches the ordinal-two line that opens the article body:
	// the digit 2 followed by '.', ')' or '-' and whitespace.
	bodyMarkerRe = regexp.MustCompile(`(?i)^[ \t]*2[.)\-]\s`)
)

// A pass is one named, independently testable normalization step. The fixed
// order matters: labels are stripped only after emphasis markers around them
// are gone.
type pass struct {
	name  string
	apply func(string) string
}

var normalizePasses = []pass{
	{"strip-code-fences", func(s string) string {
		return codeFenceRe.ReplaceAllString(s, "")
	}},
	{"strip-emphasis", func(s string) string {
		return emphasisRe.ReplaceAllString(s, "")
	}},
	{"strip-field-labels", func(s string) string {
		return fieldLabelRe.ReplaceAllString(s, "")
	}},
	{"collapse-whitespace", func(s string) string {
		s = blankRunRe.ReplaceAllString(s, "\n\n")
		s = strings.TrimSpace(s)
		return leadOrdinalRe.ReplaceAllString(s, "")
	}},
}

// Normalize applies the cleanup passes to a raw model reply.
func Normalize(raw string) string {
	s := raw
	for _, p := range normalizePasses {
		s = p.apply(s)
	}
	return s
}

// Parsed is the hook/body split of one model reply.
type Parsed struct {
	Hook string
	Body string
}

// Parse normalizes raw generated text and splits it into a headline and body.
// The body starts at the first line matching the ordinal-two marker; without
// one, the hook is the first line and the body is the whole text. Parse never
// fails: empty input yields the fixed sentinels.
func Parse(raw string) Parsed {
	text := Normalize(raw)
	if text == "" {
		return Parsed{Hook: FallbackHook, Body: FallbackBody}
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if bodyMarkerRe.MatchString(line) {
			return Parsed{
				Hook: strings.TrimSpace(strings.Join(lines[:i], "\n")),
				Body: strings.TrimSpace(strings.Join(lines[i:], "\n")),
			}
		}
	}

	return Parsed{
		Hook: strings.TrimSpace(lines[0]),
		Body: text,
	}
}

// StripHookPrefix removes a duplicated hook from the start of the body so the
// article never reopens with its own headline. When stripping would leave
// nothing, the body is kept as is.
func StripHookPrefix(hook, body string) string {
	if hook == "" || !strings.HasPrefix(body, hook) {
		return body
	}
	rest := strings.TrimSpace(strings.TrimPrefix(body, hook))
	if rest == "" {
		return body
	}
	return rest
}
