// Package content builds generation prompts and parses model replies into
// article fields.
package content

import "fmt"

// PromptVersion identifies the prompt contract. Stamped on every persisted
// article so historical records can be audited against the template that
// produced them. Bump on any change to the template below.
const PromptVersion = 2

// ReferenceDateFormat renders the fixed run date, e.g. "November 06, 2025".
const ReferenceDateFormat = "January 02, 2006"

// PromptInput holds the market facts a prompt is rendered from.
type PromptInput struct {
	Title   string
	Favored string
	Odds    string
	// Date is the fixed reference date for the run, pre-rendered with
	// ReferenceDateFormat. Supplied explicitly so the request is
	// reproducible within a run.
	Date string
}

const promptTemplate = `You are a high-energy talk show host writing a viral news post about the prediction market: %q
Favored outcome: %s at %s
Today is %s.

Write exactly two numbered sections:
1. A one-line hook. One sentence, no surrounding quotes, under 120 characters.
2. A 150-word article. Intense, curious, conversational.

Rules: no markdown emphasis, no hashtags, never write in the first person.`

// BuildPrompt renders the generation request. Pure function of its input:
// identical facts always produce an identical prompt. The structure it asks
// for is a request, not a guarantee; the parser enforces it against whatever
// actually comes back.
func BuildPrompt(in PromptInput) string {
	return fmt.Sprintf(promptTemplate, in.Title, in.Favored, in.Odds, in.Date)
}
