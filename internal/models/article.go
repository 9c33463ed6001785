package models

import "time"

// Article is the persisted record for one market event. It is written at most
// once under the event id key and never updated or deleted by the pipeline.
// The field layout is the read contract of the display layer; changes must be
// additive or explicitly versioned via PromptVersion.
type Article struct {
	EventID string `bson:"event_id" json:"id"`

	// Market facts
	Title string `bson:"title" json:"title"`
	Slug  string `bson:"slug" json:"slug"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`

	// Generated content
	Hook string `bson:"hook" json:"hook"`
	Body string `bson:"article" json:"article"`

	// Derived summary
	Favored string `bson:"favored" json:"favored"`
	Odds    string `bson:"odds" json:"odds"`

	// Metrics at write time
	Volume24hr   float64 `bson:"volume24hr" json:"volume24hr"`
	Liquidity    float64 `bson:"liquidity" json:"liquidity"`
	OpenInterest float64 `bson:"open_interest" json:"open_interest"`

	// Timing
	EndDate     string    `bson:"end_date,omitempty" json:"end_date,omitempty"`
	ArticleDate string    `bson:"article_date,omitempty" json:"article_date,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`

	// Prompt contract in force when this record was written.
	PromptVersion int `bson:"prompt_version" json:"prompt_version"`
}
