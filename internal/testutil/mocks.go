package testutil

import (
	"context"

	"github.com/e-zhenka/letter-exam-bot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) UpsertUser(userID int64, username string) error {
	args := m.Called(userID, username)
	return args.Error(0)
}

// MockLetterRepository is a mock for LetterRepository
type MockLetterRepository struct {
	mock.Mock
}

func (m *MockLetterRepository) SaveLetter(userID int64, text, feedback string) error {
	args := m.Called(userID, text, feedback)
	return args.Error(0)
}

func (m *MockLetterRepository) GetLetters(userID int64) ([]domain.Letter, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Letter), args.Error(1)
}

// MockVocabularyRepository is a mock for VocabularyRepository
type MockVocabularyRepository struct {
	mock.Mock
}

func (m *MockVocabularyRepository) AddWords(userID int64, words []domain.MistakeWord) error {
	args := m.Called(userID, words)
	return args.Error(0)
}

func (m *MockVocabularyRepository) GetVocabulary(userID int64) ([]domain.VocabularyEntry, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VocabularyEntry), args.Error(1)
}

// MockAnalyzer is a mock for the essay analyzer
type MockAnalyzer struct {
	mock.Mock
}

func (m *MockAnalyzer) Analyze(ctx context.Context, text string) (domain.Feedback, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Feedback), args.Error(1)
}
