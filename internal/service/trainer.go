package service

import (
	"strings"

	"github.com/e-zhenka/letter-exam-bot/internal/domain"
	"github.com/e-zhenka/letter-exam-bot/internal/repository"
	"github.com/e-zhenka/letter-exam-bot/internal/session"

	"go.uber.org/zap"
)

// TrainerService runs translation quizzes over a user's vocabulary
type TrainerService struct {
	vocabRepo repository.VocabularyRepository
	sessions  *session.Store
	logger    *zap.Logger
}

// NewTrainerService creates a new trainer service
func NewTrainerService(vocabRepo repository.VocabularyRepository, sessions *session.Store, logger *zap.Logger) *TrainerService {
	return &TrainerService{
		vocabRepo: vocabRepo,
		sessions:  sessions,
		logger:    logger,
	}
}

// StartResult is the first prompt of a new training session
type StartResult struct {
	Prompt string
	Total  int
}

// AnswerResult is the verdict on one submitted answer
type AnswerResult struct {
	Correct      bool
	Expected     string
	Given        string
	Translation  string
	Done         bool
	CorrectCount int
	Total        int
	Percentage   int
	NextPrompt   string
}

// Start creates a training session over the user's vocabulary and
// returns the first prompt. A user with no words gets
// domain.ErrEmptyVocabulary.
func (s *TrainerService) Start(userID int64) (StartResult, error) {
	words, err := s.vocabRepo.GetVocabulary(userID)
	if err != nil {
		return StartResult{}, err
	}
	if len(words) == 0 {
		return StartResult{}, domain.ErrEmptyVocabulary
	}

	sess := s.sessions.Create(userID, words)

	s.logger.Info("Training session started",
		zap.Int64("user_id", userID),
		zap.Int("total_words", sess.Total),
	)

	return StartResult{
		Prompt: sess.CurrentWord().Translation,
		Total:  sess.Total,
	}, nil
}

// SubmitAnswer grades one answer against the word at the cursor and
// advances the session. When the last word is answered the session is
// removed and the result carries the final score. The whole transition
// runs inside the store's per-call critical section, so concurrent
// answers from the same user grade distinct words.
func (s *TrainerService) SubmitAnswer(userID int64, text string) (AnswerResult, error) {
	var result AnswerResult

	exists := s.sessions.Mutate(userID, func(sess *domain.TrainingSession) bool {
		word := sess.CurrentWord()
		given := normalizeAnswer(text)
		expected := normalizeAnswer(word.Correct)

		result = AnswerResult{
			Correct:     given == expected,
			Expected:    expected,
			Given:       given,
			Translation: word.Translation,
			Total:       sess.Total,
		}

		if result.Correct {
			sess.Correct++
		}
		sess.Cursor++
		result.CorrectCount = sess.Correct

		if sess.Finished() {
			result.Done = true
			result.Percentage = sess.Percentage()
			return false
		}

		result.NextPrompt = sess.CurrentWord().Translation
		return true
	})
	if !exists {
		return AnswerResult{}, domain.ErrNoActiveSession
	}

	if result.Done {
		s.logger.Info("Training session completed",
			zap.Int64("user_id", userID),
			zap.Int("correct", result.CorrectCount),
			zap.Int("total", result.Total),
			zap.Int("percentage", result.Percentage),
		)
	}
	return result, nil
}

// Cancel drops the user's training session, if any
func (s *TrainerService) Cancel(userID int64) {
	s.sessions.Remove(userID)
	s.logger.Info("Training session cancelled", zap.Int64("user_id", userID))
}

// HasSession reports whether the user has a training session in progress
func (s *TrainerService) HasSession(userID int64) bool {
	_, exists := s.sessions.Get(userID)
	return exists
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
