package domain

import "time"

// Letter is a submitted essay with its stored feedback text.
type Letter struct {
	ID        int
	UserID    int64
	Text      string
	Feedback  string
	CreatedAt time.Time
}

// CriterionResult is the analyzer's verdict on one assessment criterion.
type CriterionResult struct {
	Score           int           `json:"score"`
	Justification   string        `json:"justification"`
	Recommendations string        `json:"recommendations"`
	MistakenWords   []MistakeWord `json:"mistaken_words,omitempty"`
}

// Feedback maps criterion codes (K1..K4) to results.
type Feedback map[string]CriterionResult
