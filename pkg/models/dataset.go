package models

import (
	"time"
)

// QAPair is a single question/answer pair produced by the generator.
// Context carries the filing excerpt the answer is grounded in, when the
// model returns one.
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Context  string `json:"context,omitempty"`
}

// OutputRecord is one line of the JSON Lines dataset. One record per QAPair,
// written once, never mutated.
type OutputRecord struct {
	Company    string `json:"company"`
	Year       int    `json:"year"`
	SourceFile string `json:"source_file"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Context    string `json:"context,omitempty"`
}

// DatasetRun captures the outcome of one pipeline run for persistence.
type DatasetRun struct {
	ID          string    `json:"id"`
	Ticker      string    `json:"ticker"`
	FiscalYear  int       `json:"fiscal_year"`
	Company     string    `json:"company"`
	SourceFile  string    `json:"source_file"`
	Pairs       []QAPair  `json:"pairs"`
	LLMProvider string    `json:"llm_provider"`
	GeneratedAt time.Time `json:"generated_at"`
}
