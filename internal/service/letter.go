package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/e-zhenka/letter-exam-bot/internal/domain"
	"github.com/e-zhenka/letter-exam-bot/internal/repository"

	"go.uber.org/zap"
)

// analyzeTimeout bounds one analyzer call so a stalled upstream
// request cannot pin a handler goroutine indefinitely
const analyzeTimeout = 60 * time.Second

// Analyzer scores an essay per criterion and extracts mistake words
type Analyzer interface {
	Analyze(ctx context.Context, text string) (domain.Feedback, error)
}

// LetterService orchestrates essay review: analysis, persistence
// and vocabulary seeding
type LetterService struct {
	userRepo   repository.UserRepository
	letterRepo repository.LetterRepository
	vocabRepo  repository.VocabularyRepository
	analyzer   Analyzer
	logger     *zap.Logger
}

// NewLetterService creates a new letter service
func NewLetterService(
	userRepo repository.UserRepository,
	letterRepo repository.LetterRepository,
	vocabRepo repository.VocabularyRepository,
	analyzer Analyzer,
	logger *zap.Logger,
) *LetterService {
	return &LetterService{
		userRepo:   userRepo,
		letterRepo: letterRepo,
		vocabRepo:  vocabRepo,
		analyzer:   analyzer,
		logger:     logger,
	}
}

// RegisterUser creates or refreshes the user's profile row
func (s *LetterService) RegisterUser(userID int64, username string) error {
	return s.userRepo.UpsertUser(userID, username)
}

// ReviewResult is a formatted essay review
type ReviewResult struct {
	CriterionMessages []string
	TotalScore        int
	MaxScore          int
	Percentage        int
}

// Assessment criteria in presentation order, with titles and maximum scores
var criteria = []struct {
	Code  string
	Title string
	Max   int
}{
	{"K1", "Решение коммуникативной задачи", 3},
	{"K2", "Организация текста", 2},
	{"K3", "Лексико-грамматическое оформление", 3},
	{"K4", "Орфография и пунктуация", 2},
}

// Review analyzes an essay, saves it with its feedback and records the
// K3 mistake words into the user's vocabulary. A vocabulary failure is
// logged and does not fail the review.
func (s *LetterService) Review(ctx context.Context, userID int64, username, text string) (ReviewResult, error) {
	if err := s.userRepo.UpsertUser(userID, username); err != nil {
		return ReviewResult{}, fmt.Errorf("upsert user: %w", err)
	}

	analyzeCtx, cancel := context.WithTimeout(ctx, analyzeTimeout)
	defer cancel()

	feedback, err := s.analyzer.Analyze(analyzeCtx, text)
	if err != nil {
		return ReviewResult{}, fmt.Errorf("analyze letter: %w", err)
	}

	result := buildReviewResult(feedback)

	stored := strings.Join(result.CriterionMessages, "\n\n")
	if err := s.letterRepo.SaveLetter(userID, text, stored); err != nil {
		return ReviewResult{}, fmt.Errorf("save letter: %w", err)
	}

	// Vocabulary recording degrades gracefully: the review already
	// succeeded and must not be reported as failed.
	if k3, ok := feedback["K3"]; ok && len(k3.MistakenWords) > 0 {
		if err := s.vocabRepo.AddWords(userID, k3.MistakenWords); err != nil {
			s.logger.Error("Failed to record mistake words",
				zap.Int64("user_id", userID),
				zap.Int("word_count", len(k3.MistakenWords)),
				zap.Error(err),
			)
		}
	}

	return result, nil
}

func buildReviewResult(feedback domain.Feedback) ReviewResult {
	var result ReviewResult

	for _, c := range criteria {
		cr, ok := feedback[c.Code]
		if !ok {
			continue
		}

		result.TotalScore += cr.Score
		result.MaxScore += c.Max

		msg := fmt.Sprintf("📌 %s (%s)\n\nБалл: %d/%d\n\nОбоснование:\n%s",
			c.Title, c.Code, cr.Score, c.Max, cr.Justification)
		if cr.Recommendations != "" {
			msg += fmt.Sprintf("\n\nРекомендации:\n%s", cr.Recommendations)
		}
		result.CriterionMessages = append(result.CriterionMessages, msg)
	}

	if result.MaxScore > 0 {
		result.Percentage = int(math.Round(float64(result.TotalScore) / float64(result.MaxScore) * 100))
	}

	return result
}
