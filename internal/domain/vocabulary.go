package domain

import "time"

// VocabularyEntry is a mistake word stored for a user:
// the incorrect form they wrote, the correct form and its translation.
type VocabularyEntry struct {
	ID          int
	UserID      int64
	Incorrect   string
	Correct     string
	Translation string
	CreatedAt   time.Time
}

// MistakeWord is a word triple extracted from essay feedback,
// not yet persisted.
type MistakeWord struct {
	Incorrect   string `json:"incorrect"`
	Correct     string `json:"correct"`
	Translation string `json:"translation"`
}

// Valid reports whether the triple can be stored.
func (w MistakeWord) Valid() bool {
	return w.Incorrect != "" && w.Correct != "" && w.Translation != ""
}
