package testutil

import (
	"time"

	"github.com/e-zhenka/letter-exam-bot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestEntry creates a test vocabulary entry
func NewTestEntry(id int, userID int64, incorrect, correct, translation string) domain.VocabularyEntry {
	return domain.VocabularyEntry{
		ID:          id,
		UserID:      userID,
		Incorrect:   incorrect,
		Correct:     correct,
		Translation: translation,
		CreatedAt:   time.Now(),
	}
}

// NewTestFeedback creates analyzer feedback covering all four criteria
func NewTestFeedback(mistaken ...domain.MistakeWord) domain.Feedback {
	return domain.Feedback{
		"K1": {Score: 3, Justification: "Задача решена полностью"},
		"K2": {Score: 2, Justification: "Текст организован верно"},
		"K3": {Score: 2, Justification: "Есть лексические ошибки", Recommendations: "Повторите словарь", MistakenWords: mistaken},
		"K4": {Score: 1, Justification: "Есть орфографические ошибки"},
	}
}
