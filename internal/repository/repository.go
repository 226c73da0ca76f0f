package repository

import (
	"github.com/e-zhenka/letter-exam-bot/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	UpsertUser(userID int64, username string) error
}

// LetterRepository defines essay submission operations
type LetterRepository interface {
	SaveLetter(userID int64, text, feedback string) error
	GetLetters(userID int64) ([]domain.Letter, error)
}

// VocabularyRepository defines mistake-word data operations
type VocabularyRepository interface {
	AddWords(userID int64, words []domain.MistakeWord) error
	GetVocabulary(userID int64) ([]domain.VocabularyEntry, error)
}
