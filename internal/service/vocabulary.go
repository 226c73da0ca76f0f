package service

import (
	"github.com/e-zhenka/letter-exam-bot/internal/domain"
	"github.com/e-zhenka/letter-exam-bot/internal/repository"
)

// VocabularyService handles mistake-word bookkeeping
type VocabularyService struct {
	vocabRepo repository.VocabularyRepository
}

// NewVocabularyService creates a new vocabulary service
func NewVocabularyService(vocabRepo repository.VocabularyRepository) *VocabularyService {
	return &VocabularyService{vocabRepo: vocabRepo}
}

// RecordMistakes stores a batch of mistake words for the user
func (s *VocabularyService) RecordMistakes(userID int64, words []domain.MistakeWord) error {
	if len(words) == 0 {
		return nil
	}
	return s.vocabRepo.AddWords(userID, words)
}

// ListVocabulary returns the user's mistake words, most recent first
func (s *VocabularyService) ListVocabulary(userID int64) ([]domain.VocabularyEntry, error) {
	return s.vocabRepo.GetVocabulary(userID)
}
