package domain

import (
	"math"
	"time"
)

// TrainingSession is one in-progress quiz run over a user's
// shuffled vocabulary snapshot.
type TrainingSession struct {
	UserID       int64
	Words        []VocabularyEntry
	Cursor       int
	Correct      int
	Total        int
	LastActivity time.Time
}

// CurrentWord returns the word the cursor points at.
// Valid only while Finished is false.
func (s TrainingSession) CurrentWord() VocabularyEntry {
	return s.Words[s.Cursor]
}

// Finished reports whether every word has been answered.
func (s TrainingSession) Finished() bool {
	return s.Cursor >= s.Total
}

// Percentage returns the success rate rounded to whole percent.
// Total is at least 1: sessions are never created over an empty vocabulary.
func (s TrainingSession) Percentage() int {
	return int(math.Round(float64(s.Correct) / float64(s.Total) * 100))
}
